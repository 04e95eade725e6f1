package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(versionString string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the jens version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "jens", versionString)
			return err
		},
	}
}
