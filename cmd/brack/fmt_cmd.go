package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/brack/ast"
	"github.com/deepnoodle-ai/brack/parser"
)

func newFmtCommand() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Format a program with canonical indentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			program, err := parser.Parse(cmd.Context(), source, parser.WithFilename(args[0]))
			if err != nil {
				return err
			}
			formatted := ast.Format(program)
			if write {
				return os.WriteFile(args[0], []byte(formatted), 0644)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatted)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false,
		"write the formatted result back to the source file")
	return cmd
}
