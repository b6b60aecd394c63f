package evalexpr

import "strings"

// nodeKind identifies the operator a Node applies, and with it the node's
// arity and evaluation semantics.
type nodeKind uint8

const (
	nodeConst nodeKind = iota // leaf: push value
	nodeVariable              // leaf: push lookup(name)

	nodeCall // unary: call function name on the evaluated child

	nodeNeg // unary: arithmetic negation
	nodeNot // unary: boolean negation

	nodeAdd
	nodeSub
	nodeMul
	nodeDiv
	nodeMod
	nodePow

	nodeEq
	nodeNeq
	nodeLt
	nodeLeq
	nodeGt
	nodeGeq

	nodeAnd // short-circuit
	nodeOr  // short-circuit

	nodeAssign
	nodeAddAssign
	nodeSubAssign
	nodeMulAssign
	nodeDivAssign
	nodeModAssign
	nodePowAssign
	nodeAndAssign
	nodeOrAssign

	nodeAggregate // binary, flattening: ,
	nodeChain     // variadic: ;
)

func (k nodeKind) isAssign() bool {
	return k >= nodeAssign && k <= nodeOrAssign
}

// arithOp returns the nodeKind that a compound-assign operator applies
// before writing the result back, e.g. nodeAddAssign applies nodeAdd.
func (k nodeKind) arithOp() nodeKind {
	switch k {
	case nodeAddAssign:
		return nodeAdd
	case nodeSubAssign:
		return nodeSub
	case nodeMulAssign:
		return nodeMul
	case nodeDivAssign:
		return nodeDiv
	case nodeModAssign:
		return nodeMod
	case nodePowAssign:
		return nodePow
	case nodeAndAssign:
		return nodeAnd
	case nodeOrAssign:
		return nodeOr
	default:
		panic("evalexpr: arithOp of non-compound-assign node kind")
	}
}

func (k nodeKind) String() string {
	switch k {
	case nodeConst:
		return "const"
	case nodeVariable:
		return "variable"
	case nodeCall:
		return "call"
	case nodeNeg:
		return "neg"
	case nodeNot:
		return "not"
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodeMod:
		return "%"
	case nodePow:
		return "^"
	case nodeEq:
		return "=="
	case nodeNeq:
		return "!="
	case nodeLt:
		return "<"
	case nodeLeq:
		return "<="
	case nodeGt:
		return ">"
	case nodeGeq:
		return ">="
	case nodeAnd:
		return "&&"
	case nodeOr:
		return "||"
	case nodeAssign:
		return "="
	case nodeAddAssign:
		return "+="
	case nodeSubAssign:
		return "-="
	case nodeMulAssign:
		return "*="
	case nodeDivAssign:
		return "/="
	case nodeModAssign:
		return "%="
	case nodePowAssign:
		return "^="
	case nodeAndAssign:
		return "&&="
	case nodeOrAssign:
		return "||="
	case nodeAggregate:
		return ","
	case nodeChain:
		return ";"
	default:
		return "invalid"
	}
}

// Node is a compiled expression: the root of an operator tree produced by
// Compile. A Node is immutable after construction and references no
// Context, so it may be freely retained, cloned by sharing, and evaluated
// any number of times, including concurrently by distinct Contexts.
type Node struct {
	kind nodeKind
	pos  int

	// value is the payload of a nodeConst leaf.
	value Value
	// name is the identifier of a nodeVariable leaf or the function name of
	// a nodeCall node.
	name string

	children []*Node
	// trailingChain records whether a nodeChain ended with a trailing ';',
	// in which case evaluation yields Empty regardless of the last child.
	trailingChain bool
}

// String renders n for diagnostics. It is not guaranteed to reparse to an
// equivalent tree.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeConst:
		b.WriteString(n.value.String())
	case nodeVariable:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		n.children[0].fmt(b)
		b.WriteByte(')')
	case nodeNeg:
		b.WriteByte('-')
		n.children[0].fmt(b)
	case nodeNot:
		b.WriteByte('!')
		n.children[0].fmt(b)
	case nodeChain:
		b.WriteByte('(')
		for i, c := range n.children {
			if i > 0 {
				b.WriteString("; ")
			}
			c.fmt(b)
		}
		if n.trailingChain {
			b.WriteString(";")
		}
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		n.children[0].fmt(b)
		b.WriteString(" " + n.kind.String() + " ")
		n.children[1].fmt(b)
		b.WriteByte(')')
	}
}
