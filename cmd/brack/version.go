package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	var outputFormat string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat == "json" {
				data, err := formatJSON(map[string]string{
					"version": version,
					"commit":  commit,
					"date":    date,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "brack %s (commit %s, built %s)\n",
				version, commit, date)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text",
		"output format: text or json")
	return cmd
}
