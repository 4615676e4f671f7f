package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Diagnostic serialization of the AST and the NFA. The formats are
// stable: tests pin them, and the node numbering follows a depth-first
// walk over edge insertion order so equal programs dump equally.

// DumpExpr renders an expression tree, one operator per indented block.
func DumpExpr(e Expr) string {
	d := &exprDumper{}
	Walk(d, e)
	return d.sb.String()
}

type exprDumper struct {
	sb     strings.Builder
	indent int
}

func (d *exprDumper) line(s string) {
	d.sb.WriteString(strings.Repeat(" ", d.indent))
	d.sb.WriteString(s)
	d.sb.WriteString("\n")
}

func (d *exprDumper) block(header string, e Expr) {
	d.line(header + " {")
	d.indent += 2
	WalkChildren(d, e)
	d.indent -= 2
	d.line("}")
}

func (d *exprDumper) VisitConcatenation(e *ConcatenationExpr) {
	d.block("Concatenation", e)
}

func (d *exprDumper) VisitDisjunction(e *DisjunctionExpr) {
	d.block("Disjunction", e)
}

func (d *exprDumper) VisitEmpty(*EmptyExpr) {
	d.line("Empty")
}

func (d *exprDumper) VisitCharacterClass(e *CharacterClassExpr) {
	var sb strings.Builder
	for _, r := range e.Ranges {
		fmt.Fprintf(&sb, "\\u%04x", r.Lo)
		if r.Lo != r.Hi {
			fmt.Fprintf(&sb, "-\\u%04x", r.Hi)
		}
	}
	inverse := ""
	if e.Inverse {
		inverse = "^"
	}
	d.line("Character Class [" + inverse + sb.String() + "]")
}

func (d *exprDumper) VisitAssertion(e *AssertionExpr) {
	d.line("Assertion: " + assertionName(e.Assert))
}

func assertionName(k AssertionKind) string {
	switch k {
	case BeginOfLine:
		return "Begin of Line"
	case EndOfLine:
		return "End of Line"
	case WordBoundary:
		return "Word Boundary"
	case NonWordBoundary:
		return "Non-Word Boundary"
	}
	return "Look Ahead"
}

func (d *exprDumper) VisitLookAhead(e *LookAheadExpr) {
	name := "Look Ahead"
	if e.Inverse {
		name = "Inverse Look Ahead"
	}
	d.block("Assertion: "+name, e)
}

func (d *exprDumper) VisitQuantification(e *QuantificationExpr) {
	max := "Inf)"
	if e.Max != Infinite {
		max = strconv.Itoa(e.Max) + "]"
	}
	greedy := "Greedy"
	if !e.Greedy {
		greedy = "Non-Greedy"
	}
	d.block(fmt.Sprintf("Quantification: [%d, %s (%s)", e.Min, max, greedy), e)
}

func (d *exprDumper) VisitGroup(e *GroupExpr) {
	if e.Capture {
		d.block(fmt.Sprintf("Group: Captured #%d", e.Storage), e)
	} else {
		d.block("Group: Non-Captured", e)
	}
}

func (d *exprDumper) VisitBackreference(e *BackreferenceExpr) {
	d.line(fmt.Sprintf("Backreference #%d", e.Storage))
}

// Dump renders the main NFA followed by every lookahead sub-NFA in
// discovery order.
func (p *Program) Dump() string {
	var sb strings.Builder

	sb.WriteString("Main NFA {\n")
	p.dumpNFA(&sb, p.NFA)
	sb.WriteString("}\n")

	for i, la := range p.LookaheadOrder {
		fmt.Fprintf(&sb, "\nSub NFA #%d {\n", i)
		p.dumpNFA(&sb, p.Lookaheads[la])
		sb.WriteString("}\n")
	}

	return sb.String()
}

func (p *Program) lookaheadIndex(e *LookAheadExpr) int {
	for i, la := range p.LookaheadOrder {
		if la == e {
			return i
		}
	}
	return -1
}

// collectNodes walks the graph depth-first in edge order and numbers
// nodes as they are discovered.
func collectNodes(start *Node, nodes []*Node, index map[*Node]int) []*Node {
	index[start] = len(nodes)
	nodes = append(nodes, start)
	for _, edge := range start.Edges {
		if _, seen := index[edge.To]; !seen {
			nodes = collectNodes(edge.To, nodes, index)
		}
	}
	return nodes
}

func (p *Program) dumpNFA(sb *strings.Builder, nfa *NFA) {
	index := make(map[*Node]int)
	nodes := collectNodes(nfa.Start, nil, index)

	fmt.Fprintf(sb, "  Start: Node #%d\n", index[nfa.Start])
	fmt.Fprintf(sb, "  End: Node #%d\n", index[nfa.End])

	for i, node := range nodes {
		fmt.Fprintf(sb, "  Node #%d {\n", i)
		for _, edge := range node.Edges {
			sb.WriteString("    Edge {\n")
			p.dumpEdge(sb, edge)
			fmt.Fprintf(sb, "      Transfer to Node #%d\n", index[edge.To])
			sb.WriteString("    }\n")
		}
		sb.WriteString("  }\n")
	}
}

func (p *Program) dumpEdge(sb *strings.Builder, edge *Edge) {
	switch edge.Kind {
	case EdgeEpsilon:
		sb.WriteString("      Epsilon\n")

	case EdgeCharacterSet:
		sb.WriteString("      " + DumpExpr(edge.Class))

	case EdgeAssertion:
		switch a := edge.Assert.(type) {
		case *LookAheadExpr:
			inverse := ""
			if a.Inverse {
				inverse = "Inverse "
			}
			fmt.Fprintf(sb, "      %sLook Ahead: Sub NFA #%d\n", inverse, p.lookaheadIndex(a))
		case *AssertionExpr:
			sb.WriteString("      " + DumpExpr(a))
		}

	case EdgeBackreference:
		fmt.Fprintf(sb, "      Backreference #%d\n", edge.Storage)

	case EdgeBeginCapture:
		fmt.Fprintf(sb, "      Begin Capture #%d\n", edge.Storage)

	case EdgeEndCapture:
		fmt.Fprintf(sb, "      End Capture #%d\n", edge.Storage)

	case EdgeBeginNonGreedy:
		sb.WriteString("      Begin Non-Greedy\n")

	case EdgeEndNonGreedy:
		sb.WriteString("      End Non-Greedy\n")
	}
}
