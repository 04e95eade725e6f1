package main

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/jens/internal/model"
	"github.com/reoring/jens/internal/scan"
	js "github.com/reoring/jens/jsonschema"
)

var formats = []string{"json", "yaml", "jsonschema"}

func newInspectCmd(o *options) *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "inspect [dir]",
		Short: "Print the item slots of each schema",
		Long: `Validate the schemas of the Go package in dir (default ".") and print their
descriptions: canonical string, item names, ordinals and descriptions.

Formats: json (default), yaml, jsonschema.

Examples:
  jens inspect ./internal/colors
  jens inspect ./internal/colors --schema Palette -f yaml
  jens inspect . -f jsonschema | jq '.[].enum'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := o.v.GetString("format")
			if !slices.Contains(formats, format) {
				return fmt.Errorf("unknown format %q (want one of %v)", format, formats)
			}
			p, err := scan.Dir(dirArg(args))
			if err != nil {
				return err
			}
			descs, err := describeAll(p, only)
			if err != nil {
				return err
			}
			o.log.Debug("schemas described", "package", p.ImportPath, "count", len(descs))

			out, err := encode(descs, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", defaultFormat, "output format: json, yaml or jsonschema")
	cmd.Flags().StringSliceVarP(&only, "schema", "s", nil, "only these schemas (repeatable)")
	_ = o.v.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

// describeAll validates the selected schemas and collects every failure.
func describeAll(p *scan.Package, only []string) ([]model.Description, error) {
	names := only
	if len(names) == 0 {
		for _, it := range p.Schemas() {
			names = append(names, it.Name)
		}
	}
	descs := make([]model.Description, 0, len(names))
	var errs []error
	for _, n := range names {
		s, slots, err := p.Check(n)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		descs = append(descs, model.Describe(s, slots))
	}
	return descs, errors.Join(errs...)
}

func encode(descs []model.Description, format string) ([]byte, error) {
	switch format {
	case "yaml":
		buf := &bytes.Buffer{}
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)
		if err := enc.Encode(descs); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case "jsonschema":
		schemas := make([]*js.Schema, 0, len(descs))
		for _, d := range descs {
			schemas = append(schemas, d.JSONSchema())
		}
		return marshal(schemas)
	default:
		return marshal(descs)
	}
}

func marshal(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(b, '\n'), nil
}
