package ast

import "strings"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	switch n := node.(type) {
	case *Program:
		for _, child := range n.Nodes {
			Walk(v, child)
		}
	case *Loop:
		for _, child := range n.Nodes {
			Walk(v, child)
		}
	}
}

// Format returns an indented rendering of the program, one operator run per
// nesting level, with loop bodies indented by one tab.
func Format(p *Program) string {
	var f formatter
	f.nodes(p.Nodes, 0)
	return f.out.String()
}

type formatter struct {
	out strings.Builder
}

func (f *formatter) nodes(nodes []Node, depth int) {
	var run []Node
	flush := func() {
		if len(run) == 0 {
			return
		}
		f.indent(depth)
		for _, node := range run {
			f.out.WriteString(node.String())
		}
		f.out.WriteString("\n")
		run = run[:0]
	}
	for _, node := range nodes {
		if loop, ok := node.(*Loop); ok {
			flush()
			f.indent(depth)
			f.out.WriteString("[\n")
			f.nodes(loop.Nodes, depth+1)
			f.indent(depth)
			f.out.WriteString("]\n")
			continue
		}
		run = append(run, node)
	}
	flush()
}

func (f *formatter) indent(depth int) {
	for i := 0; i < depth; i++ {
		f.out.WriteString("\t")
	}
}
