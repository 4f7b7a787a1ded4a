package main

import (
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/brack"
	"github.com/deepnoodle-ai/brack/dis"
)

func newDisCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dis [file]",
		Short: "Disassemble compiled bytecode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			opts := []brack.Option{brack.WithFilename(args[0])}
			if noOpt, _ := cmd.Flags().GetBool("no-opt"); noOpt {
				opts = append(opts, brack.WithoutOptimization())
			}
			code, err := brack.Compile(cmd.Context(), source, opts...)
			if err != nil {
				return err
			}
			return dis.Print(dis.Disassemble(code), cmd.OutOrStdout())
		},
	}
	cmd.Flags().Bool("no-opt", false, "Disassemble the unoptimized lowering")
	return cmd
}
