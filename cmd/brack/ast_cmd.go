package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/brack/ast"
	"github.com/deepnoodle-ai/brack/parser"
)

func newAstCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ast [file]",
		Short: "Display the syntax tree for a program",
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
			printer := &astPrinter{cmd: cmd}
			ast.Walk(printer, program)
			return nil
		},
	}
}

// astPrinter renders one line per node, indented by nesting depth.
type astPrinter struct {
	cmd   *cobra.Command
	depth int
}

func (p *astPrinter) Visit(node ast.Node) ast.Visitor {
	indent := strings.Repeat("  ", p.depth)
	switch n := node.(type) {
	case *ast.Program:
		fmt.Fprintf(p.cmd.OutOrStdout(), "%sprogram (%d nodes)\n", indent, len(n.Nodes))
	case *ast.Loop:
		fmt.Fprintf(p.cmd.OutOrStdout(), "%sloop (%d nodes) at %d:%d\n",
			indent, len(n.Nodes), n.Pos().LineNumber(), n.Pos().ColumnNumber())
	default:
		fmt.Fprintf(p.cmd.OutOrStdout(), "%s%s\n", indent, node.String())
	}
	return &astPrinter{cmd: p.cmd, depth: p.depth + 1}
}
