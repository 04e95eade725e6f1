package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reoring/jens/internal/gen"
	"github.com/reoring/jens/internal/scan"
)

func newGenerateCmd(o *options) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Validate schemas and write their registrations",
		Long: `Scan the Go package in dir (default ".") and write the registration file.

Every interface embedding jens.Enumerable is validated with the same rules the
runtime applies; any invalid schema fails the command and nothing is written.

Examples:
  # Usually run through go:generate
  //go:generate go run github.com/reoring/jens/cmd/jens generate .

  # Print instead of writing
  jens generate ./internal/colors --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := dirArg(args)
			p, err := scan.Dir(dir)
			if err != nil {
				return err
			}
			f, err := gen.Build(p)
			if err != nil {
				return err
			}
			code, err := gen.Render(f)
			if err != nil {
				return err
			}
			if dryRun {
				_, err = cmd.OutOrStdout().Write(code)
				return err
			}

			out := o.v.GetString("output")
			if !filepath.IsAbs(out) {
				out = filepath.Join(dir, out)
			}
			if err := os.WriteFile(out, code, 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			o.log.Info("registrations written", "package", f.Package, "contracts", len(f.Contracts), "file", out)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", defaultOutput, "output file name, relative to dir")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the generated file to stdout")
	_ = o.v.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}
