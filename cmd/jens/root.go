package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultOutput = "zz_jens_gen.go"
	defaultFormat = "json"
)

// options is shared by all subcommands. Values resolve flag > JENS_* env >
// .jens.yaml > default.
type options struct {
	cfgFile string
	v       *viper.Viper
	log     *slog.Logger
}

func newRootCmd(versionString string) *cobra.Command {
	o := &options{v: viper.New(), log: slog.New(slog.DiscardHandler)}
	root := &cobra.Command{
		Use:   "jens",
		Short: "Closed composable enumerations for Go",
		Long: `jens turns interfaces that embed jens.Enumerable into closed enumerations.

Item slots are interfaces marked with a //jens:item directive. "jens generate"
validates every schema of a package and writes the registrations the runtime
registry needs; "jens inspect" prints what a schema enumerates.`,
		Version:           versionString,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return o.initConfig(cmd) },
	}
	root.PersistentFlags().StringVarP(&o.cfgFile, "config", "c", "",
		"config file (default: .jens.yaml in the current directory)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	_ = o.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newGenerateCmd(o), newInspectCmd(o), newVersionCmd(versionString))
	return root
}

func (o *options) initConfig(cmd *cobra.Command) error {
	o.v.SetDefault("output", defaultOutput)
	o.v.SetDefault("format", defaultFormat)
	o.v.SetDefault("verbose", false)
	o.v.SetEnvPrefix("JENS")
	o.v.AutomaticEnv()

	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
	} else {
		o.v.AddConfigPath(".")
		o.v.SetConfigName(".jens")
		o.v.SetConfigType("yaml")
	}
	if err := o.v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must exist.
		var nf viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &nf) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level := slog.LevelWarn
	if o.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	o.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if f := o.v.ConfigFileUsed(); f != "" {
		o.log.Debug("config loaded", "file", f)
	}
	return nil
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
