// Package evalexpr implements a small arithmetic, boolean, string, and tuple
// expression language meant to be embedded in a host program.
//
// An expression is compiled once with Compile into a *Node, then evaluated
// any number of times against a Context supplying variables and functions:
//
//	n, err := evalexpr.Compile("a = 5; a = a + 2; a")
//	v, err := n.Eval(evalexpr.NewDefaultContext())
//
// A Node is immutable after compilation and may be evaluated concurrently by
// distinct Contexts; a single Context is not safe for concurrent evaluation
// of assignment-bearing expressions.
package evalexpr
