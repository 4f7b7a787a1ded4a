package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/brack"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Parse and compile programs, reporting any errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *multierror.Error
			for _, filename := range args {
				source, err := readSource(filename)
				if err != nil {
					result = multierror.Append(result, err)
					continue
				}
				if _, err := brack.Compile(cmd.Context(), source,
					brack.WithFilename(filename)); err != nil {
					result = multierror.Append(result,
						fmt.Errorf("%s: %w", filename, err))
					continue
				}
				if colorEnabled() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
						color.GreenString("ok"), filename)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", filename)
				}
			}
			return result.ErrorOrNil()
		},
	}
}
