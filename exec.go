package jsregexp

import "github.com/lembacon/jsregexp/syntax"

// The executor enumerates every successful path through the NFA from a
// fixed start position by depth-first backtracking, then keeps the
// candidate that consumed the most input (first found wins ties).
// Edges are attempted strictly in insertion order; together with the
// longest-candidate rule that is what makes quantifiers greedy.

// frame is one level of the search stack: a node, the index of the
// next edge to attempt out of it, and the text cursor relative to the
// scan start. Once a successor frame exists, nextEdge-1 is the edge
// that was taken.
type frame struct {
	node     *syntax.Node
	nextEdge int
	cursor   int
}

// candidate is a completed start-to-end path: a snapshot of the frame
// stack plus the number of code units it consumed.
type candidate struct {
	frames []frame
	length int
}

// execute runs one search at start and fills captures on success.
func (re *Regexp) execute(in *inputText, start int, captures []Range) bool {
	cands := re.findCandidates(re.prog.NFA, in, start)
	if len(cands) == 0 {
		return false
	}

	best := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].length > cands[best].length {
			best = i
		}
	}

	re.fillCaptures(&cands[best], start, captures)
	return true
}

func (re *Regexp) findCandidates(nfa *syntax.NFA, in *inputText, start int) []candidate {
	textLen := in.length - start

	stack := []frame{{node: nfa.Start}}
	var cands []candidate

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.nextEdge >= len(top.node.Edges) {
			stack = stack[:len(stack)-1]
			continue
		}

		edge := top.node.Edges[top.nextEdge]
		top.nextEdge++
		cursor := top.cursor

		pass := false
		switch edge.Kind {
		case syntax.EdgeCharacterSet:
			if cursor < textLen && edge.Class.Match(in.text[start+cursor], re.ignoreCase()) {
				cursor++
				pass = true
			}

		case syntax.EdgeAssertion:
			pass = re.assert(edge.Assert, in, start+cursor)

		case syntax.EdgeEpsilon, syntax.EdgeBeginCapture, syntax.EdgeEndCapture:
			pass = true

		default:
			// Backreference and non-greedy markers are unreachable
			// from parsed patterns; a hand-built tree that contains
			// one fails the whole path here.
		}

		if !pass {
			continue
		}

		// An epsilon cycle revisits a node on the current path without
		// consuming input; following it again can only spin forever.
		looped := false
		for i := range stack {
			if stack[i].node == edge.To && stack[i].cursor == cursor {
				looped = true
				break
			}
		}
		if looped {
			continue
		}

		stack = append(stack, frame{node: edge.To, cursor: cursor})

		if edge.To == nfa.End {
			frames := make([]frame, len(stack))
			copy(frames, stack)
			cands = append(cands, candidate{frames: frames, length: cursor})
		}
	}

	return cands
}

// assert evaluates a zero-width assertion at an absolute input
// position, so anchors and word boundaries see the text before the
// scan start too.
func (re *Regexp) assert(a syntax.Expr, in *inputText, abs int) bool {
	switch a := a.(type) {
	case *syntax.LookAheadExpr:
		sub := re.prog.Lookaheads[a]
		pass := len(re.findCandidates(sub, in, abs)) > 0
		if a.Inverse {
			pass = !pass
		}
		return pass

	case *syntax.AssertionExpr:
		switch a.Assert {
		case syntax.BeginOfLine:
			if abs == 0 {
				return true
			}
			return re.multiline() && isLineTerminator(in.text[abs-1])

		case syntax.EndOfLine:
			if abs == in.length {
				return true
			}
			return re.multiline() && isLineTerminator(in.text[abs])

		case syntax.WordBoundary, syntax.NonWordBoundary:
			before := abs > 0 && isWordChar(in.text[abs-1])
			after := abs < in.length && isWordChar(in.text[abs])
			pass := before != after
			if a.Assert == syntax.NonWordBoundary {
				pass = !pass
			}
			return pass
		}
	}
	return false
}

// fillCaptures walks the winning path and resolves the capture marker
// edges. The edge taken out of frame i is node.Edges[nextEdge-1].
func (re *Regexp) fillCaptures(c *candidate, start int, captures []Range) {
	captures[0] = Range{Position: start, Length: c.length}

	for i := 0; i+1 < len(c.frames); i++ {
		f := c.frames[i]
		edge := f.node.Edges[f.nextEdge-1]
		switch edge.Kind {
		case syntax.EdgeBeginCapture:
			captures[edge.Storage].Position = start + f.cursor
		case syntax.EdgeEndCapture:
			captures[edge.Storage].Length = start + f.cursor - captures[edge.Storage].Position
		}
	}
}

func isLineTerminator(ch uint16) bool {
	switch ch {
	case '\r', '\n', 0x2028, 0x2029:
		return true
	}
	return false
}

// isWordChar deliberately counts every code unit from 0x1F up as a
// word character in addition to ASCII alphanumerics. That is far wider
// than the ECMAScript \w set, but \b and \B have always behaved this
// way in this engine and the behavior is part of the contract.
func isWordChar(ch uint16) bool {
	if ch >= 0x1F {
		return true
	}
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')
}
