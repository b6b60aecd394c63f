package evalexpr

import "math"

// Eval evaluates n against ctx, returning the resulting Value or the first
// error encountered. Eval never mutates n; if n contains an assignment, it
// mutates ctx instead (which must implement MutableContext, or evaluation
// fails with ContextNotManipulableError).
func (n *Node) Eval(ctx Context) (Value, error) {
	switch n.kind {
	case nodeConst:
		return n.value, nil
	case nodeVariable:
		v, ok := ctx.GetValue(n.name)
		if !ok {
			return Value{}, &VariableIdentifierNotFoundError{Name: n.name}
		}
		return v, nil
	case nodeCall:
		fn, ok := ctx.GetFunction(n.name)
		if !ok {
			return Value{}, &FunctionIdentifierNotFoundError{Name: n.name}
		}
		arg, err := n.children[0].Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		return fn.Call(n.name, arg)
	case nodeNeg:
		v, err := n.children[0].Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		switch v.kind {
		case Int:
			r, err := intNeg(v.i)
			if err != nil {
				return Value{}, err
			}
			return IntValue(r), nil
		case Float:
			return FloatValue(-v.f), nil
		default:
			return Value{}, &ExpectedTypeError{Expected: Number, Actual: v.kind}
		}
	case nodeNot:
		v, err := n.children[0].Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		b, err := v.AsBoolean()
		if err != nil {
			return Value{}, err
		}
		return BooleanValue(!b), nil
	case nodeAnd:
		return evalShortCircuit(n, ctx, false)
	case nodeOr:
		return evalShortCircuit(n, ctx, true)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		l, err := n.children[0].Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		r, err := n.children[1].Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		return evalArith(n.kind, l, r)
	case nodeEq, nodeNeq, nodeLt, nodeLeq, nodeGt, nodeGeq:
		l, err := n.children[0].Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		r, err := n.children[1].Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		return evalCompare(n.kind, l, r)
	case nodeAggregate:
		l, err := n.children[0].Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		r, err := n.children[1].Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		return aggregate(l, r), nil
	case nodeChain:
		last := EmptyValue
		for _, c := range n.children {
			v, err := c.Eval(ctx)
			if err != nil {
				return Value{}, err
			}
			last = v
		}
		if n.trailingChain {
			return EmptyValue, nil
		}
		return last, nil
	default:
		if n.kind.isAssign() {
			return n.evalAssign(ctx)
		}
		panic("evalexpr: eval on invalid node kind " + n.kind.String())
	}
}

// evalShortCircuit evaluates a nodeAnd (shortOn=false) or nodeOr (shortOn=
// true) node. The right child, and any side effect it carries, is not
// evaluated at all when the left operand already determines the result.
func evalShortCircuit(n *Node, ctx Context, shortOn bool) (Value, error) {
	l, err := n.children[0].Eval(ctx)
	if err != nil {
		return Value{}, err
	}
	lb, err := l.AsBoolean()
	if err != nil {
		return Value{}, err
	}
	if lb == shortOn {
		return BooleanValue(shortOn), nil
	}
	r, err := n.children[1].Eval(ctx)
	if err != nil {
		return Value{}, err
	}
	rb, err := r.AsBoolean()
	if err != nil {
		return Value{}, err
	}
	return BooleanValue(rb), nil
}

// evalAssign evaluates an assignment or compound-assignment node. The left
// operand must be a bare variable identifier; anything else, including an
// identifier that would itself be classified as a FunctionIdentifier,
// yields ExpectedVariableError.
func (n *Node) evalAssign(ctx Context) (Value, error) {
	mctx, ok := ctx.(MutableContext)
	if !ok {
		return Value{}, &ContextNotManipulableError{}
	}
	left := n.children[0]
	if left.kind != nodeVariable {
		return Value{}, &ExpectedVariableError{Actual: left.String()}
	}

	if n.kind == nodeAssign {
		rhs, err := n.children[1].Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		if err := mctx.SetValue(left.name, rhs); err != nil {
			return Value{}, err
		}
		return EmptyValue, nil
	}

	cur, ok := ctx.GetValue(left.name)
	if !ok {
		return Value{}, &VariableIdentifierNotFoundError{Name: left.name}
	}
	op := n.kind.arithOp()
	var (
		result Value
		err    error
	)
	switch op {
	case nodeAnd, nodeOr:
		lb, err2 := cur.AsBoolean()
		if err2 != nil {
			return Value{}, err2
		}
		shortOn := op == nodeOr
		if lb == shortOn {
			result = BooleanValue(shortOn)
		} else {
			rhs, err2 := n.children[1].Eval(ctx)
			if err2 != nil {
				return Value{}, err2
			}
			rb, err2 := rhs.AsBoolean()
			if err2 != nil {
				return Value{}, err2
			}
			result = BooleanValue(rb)
		}
	default:
		rhs, err2 := n.children[1].Eval(ctx)
		if err2 != nil {
			return Value{}, err2
		}
		result, err = evalArith(op, cur, rhs)
		if err != nil {
			return Value{}, err
		}
	}
	if err := mctx.SetValue(left.name, result); err != nil {
		return Value{}, err
	}
	return EmptyValue, nil
}

// aggregate implements the flattening behavior of the ',' operator: if
// either side already evaluated to a Tuple, its elements are spliced in
// rather than nested.
func aggregate(l, r Value) Value {
	elems := make([]Value, 0, 2)
	if l.kind == Tuple {
		elems = append(elems, l.tup...)
	} else {
		elems = append(elems, l)
	}
	if r.kind == Tuple {
		elems = append(elems, r.tup...)
	} else {
		elems = append(elems, r)
	}
	return TupleValue(elems)
}

// evalArith evaluates one of the arithmetic node kinds. Integer operands use
// checked int64 arithmetic, reporting OverflowError rather than wrapping;
// mixed or Float operands are computed in float64. '^' always promotes both
// operands to Float, even when both are Int, per the value-coercion rule.
func evalArith(op nodeKind, l, r Value) (Value, error) {
	if op == nodeAdd && l.kind == String && r.kind == String {
		return StringValue(l.str + r.str), nil
	}
	if op == nodeAdd && (l.kind == String || r.kind == String) {
		if l.kind != String {
			return Value{}, &ExpectedTypeError{Expected: String, Actual: l.kind}
		}
		return Value{}, &ExpectedTypeError{Expected: String, Actual: r.kind}
	}
	if op == nodePow {
		lf, err := l.AsNumber()
		if err != nil {
			return Value{}, err
		}
		rf, err := r.AsNumber()
		if err != nil {
			return Value{}, err
		}
		return FloatValue(math.Pow(lf, rf)), nil
	}
	if l.kind == Int && r.kind == Int {
		v, err := intArith(op, l.i, r.i)
		if err != nil {
			return Value{}, err
		}
		return IntValue(v), nil
	}
	lf, rf, _, err := numericCoerce(l, r)
	if err != nil {
		return Value{}, err
	}
	return FloatValue(floatArith(op, lf, rf)), nil
}

func intArith(op nodeKind, a, b int64) (int64, error) {
	switch op {
	case nodeAdd:
		s := a + b
		if (b > 0 && s < a) || (b < 0 && s > a) {
			return 0, &OverflowError{Op: "+"}
		}
		return s, nil
	case nodeSub:
		s := a - b
		if (b < 0 && s < a) || (b > 0 && s > a) {
			return 0, &OverflowError{Op: "-"}
		}
		return s, nil
	case nodeMul:
		if a == 0 || b == 0 {
			return 0, nil
		}
		p := a * b
		if p/b != a || (a == math.MinInt64 && b == -1) {
			return 0, &OverflowError{Op: "*"}
		}
		return p, nil
	case nodeDiv:
		if b == 0 {
			return 0, &DivisionError{Op: "/"}
		}
		if a == math.MinInt64 && b == -1 {
			return 0, &OverflowError{Op: "/"}
		}
		return a / b, nil
	case nodeMod:
		if b == 0 {
			return 0, &DivisionError{Op: "%"}
		}
		if a == math.MinInt64 && b == -1 {
			return 0, &OverflowError{Op: "%"}
		}
		return a % b, nil
	default:
		panic("evalexpr: intArith on non-arithmetic node kind")
	}
}

func floatArith(op nodeKind, a, b float64) float64 {
	switch op {
	case nodeAdd:
		return a + b
	case nodeSub:
		return a - b
	case nodeMul:
		return a * b
	case nodeDiv:
		return a / b
	case nodeMod:
		return math.Mod(a, b)
	default:
		panic("evalexpr: floatArith on non-arithmetic node kind")
	}
}

func intNeg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, &OverflowError{Op: "-"}
	}
	return -a, nil
}

// evalCompare evaluates one of the comparison node kinds. == and != use
// Value.Equal and are defined for any pair of Values; ordering comparisons
// are defined only for two Strings (lexicographic) or two numbers (after
// the usual Int/Float coercion).
func evalCompare(op nodeKind, l, r Value) (Value, error) {
	switch op {
	case nodeEq:
		return BooleanValue(l.Equal(r)), nil
	case nodeNeq:
		return BooleanValue(!l.Equal(r)), nil
	}
	if l.kind == String && r.kind == String {
		switch op {
		case nodeLt:
			return BooleanValue(l.str < r.str), nil
		case nodeLeq:
			return BooleanValue(l.str <= r.str), nil
		case nodeGt:
			return BooleanValue(l.str > r.str), nil
		case nodeGeq:
			return BooleanValue(l.str >= r.str), nil
		}
	}
	lf, rf, _, err := numericCoerce(l, r)
	if err != nil {
		return Value{}, err
	}
	switch op {
	case nodeLt:
		return BooleanValue(lf < rf), nil
	case nodeLeq:
		return BooleanValue(lf <= rf), nil
	case nodeGt:
		return BooleanValue(lf > rf), nil
	case nodeGeq:
		return BooleanValue(lf >= rf), nil
	default:
		panic("evalexpr: evalCompare on non-comparison node kind")
	}
}
