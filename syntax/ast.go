package syntax

import "math"

// The parser produces a tree of Expr nodes. Nodes are immutable once
// parsing finishes; the NFA compiler and the executor keep references
// into the tree, so a compiled program must not outlive its AST.
type Expr interface {
	Kind() ExprKind
}

type ExprKind int32

const (
	KindConcatenation ExprKind = iota
	KindDisjunction
	KindEmpty
	KindCharacterClass
	KindAssertion
	KindQuantification
	KindGroup
	KindBackreference
)

// ConcatenationExpr matches its sub-expressions in sequence.
type ConcatenationExpr struct {
	Subs []Expr
}

// DisjunctionExpr matches any one of its alternatives.
type DisjunctionExpr struct {
	Subs []Expr
}

// EmptyExpr matches the empty string. The empty character class []
// also parses to EmptyExpr, so it consumes nothing instead of
// matching a code unit.
type EmptyExpr struct{}

// CharacterClassExpr matches a single code unit against a set of
// inclusive ranges. With Inverse set it matches code units outside
// every range instead.
type CharacterClassExpr struct {
	Ranges  []CharRange
	Inverse bool
}

type AssertionKind int32

const (
	BeginOfLine AssertionKind = iota
	EndOfLine
	WordBoundary
	NonWordBoundary
	LookAhead
)

// AssertionExpr is a zero-width assertion other than lookahead.
type AssertionExpr struct {
	Assert AssertionKind
}

// LookAheadExpr asserts that its sub-expression matches (or, with
// Inverse, fails to match) at the current position without consuming
// input. Its assertion kind is always LookAhead.
type LookAheadExpr struct {
	Sub     Expr
	Inverse bool
}

// QuantificationExpr repeats its sub-expression between Min and Max
// times. Max may be Infinite. Greedy is always true in the accepted
// language; the non-greedy form is reserved syntax.
type QuantificationExpr struct {
	Sub    Expr
	Min    int
	Max    int
	Greedy bool
}

// Infinite is the unbounded-maximum sentinel for quantifications.
const Infinite = math.MaxInt

// GroupExpr wraps a sub-expression in parentheses. Capturing groups
// carry a 1-based storage index assigned in left-to-right open-paren
// order; non-capturing groups have Storage == InvalidStorage.
type GroupExpr struct {
	Sub     Expr
	Storage int
	Capture bool
}

const InvalidStorage = -1

// BackreferenceExpr refers to the text captured by an earlier group.
// The parser recognizes the syntax but rejects it, so the node is only
// reachable through hand-built trees.
type BackreferenceExpr struct {
	Storage int
}

func (*ConcatenationExpr) Kind() ExprKind  { return KindConcatenation }
func (*DisjunctionExpr) Kind() ExprKind    { return KindDisjunction }
func (*EmptyExpr) Kind() ExprKind          { return KindEmpty }
func (*CharacterClassExpr) Kind() ExprKind { return KindCharacterClass }
func (*AssertionExpr) Kind() ExprKind      { return KindAssertion }
func (*LookAheadExpr) Kind() ExprKind      { return KindAssertion }
func (*QuantificationExpr) Kind() ExprKind { return KindQuantification }
func (*GroupExpr) Kind() ExprKind          { return KindGroup }
func (*BackreferenceExpr) Kind() ExprKind  { return KindBackreference }

// Visitor is a read-only visitor over the AST. Composite nodes are
// visited before their children; Walk drives the traversal.
type Visitor interface {
	VisitConcatenation(*ConcatenationExpr)
	VisitDisjunction(*DisjunctionExpr)
	VisitEmpty(*EmptyExpr)
	VisitCharacterClass(*CharacterClassExpr)
	VisitAssertion(*AssertionExpr)
	VisitLookAhead(*LookAheadExpr)
	VisitQuantification(*QuantificationExpr)
	VisitGroup(*GroupExpr)
	VisitBackreference(*BackreferenceExpr)
}

// Walk dispatches e to the matching Visitor method. Visiting children
// is the visitor's choice; WalkChildren descends one level.
func Walk(v Visitor, e Expr) {
	switch e := e.(type) {
	case *ConcatenationExpr:
		v.VisitConcatenation(e)
	case *DisjunctionExpr:
		v.VisitDisjunction(e)
	case *EmptyExpr:
		v.VisitEmpty(e)
	case *CharacterClassExpr:
		v.VisitCharacterClass(e)
	case *AssertionExpr:
		v.VisitAssertion(e)
	case *LookAheadExpr:
		v.VisitLookAhead(e)
	case *QuantificationExpr:
		v.VisitQuantification(e)
	case *GroupExpr:
		v.VisitGroup(e)
	case *BackreferenceExpr:
		v.VisitBackreference(e)
	}
}

// WalkChildren visits the direct children of e, in order.
func WalkChildren(v Visitor, e Expr) {
	switch e := e.(type) {
	case *ConcatenationExpr:
		for _, sub := range e.Subs {
			Walk(v, sub)
		}
	case *DisjunctionExpr:
		for _, sub := range e.Subs {
			Walk(v, sub)
		}
	case *LookAheadExpr:
		Walk(v, e.Sub)
	case *QuantificationExpr:
		Walk(v, e.Sub)
	case *GroupExpr:
		Walk(v, e.Sub)
	}
}
