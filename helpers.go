package evalexpr

// Eval compiles source and evaluates it against ctx in one step. It is
// equivalent to calling Compile followed by Node.Eval, for callers that do
// not need to retain the compiled Node for reuse.
func Eval(source string, ctx Context) (Value, error) {
	node, err := Compile(source)
	if err != nil {
		return Value{}, err
	}
	return node.Eval(ctx)
}

// EvalEmpty compiles and evaluates source against a freshly allocated
// MapContext with no bindings, so source may assign into names that don't
// exist yet. It is the no-context convenience helper: source starts from an
// empty context rather than requiring the caller to construct one, matching
// eval(source)'s documented behavior of internally allocating a fresh
// mutable context so bare assignments still work. Callers that need to read
// back bindings afterward, or that want the builtins registered, should
// build a Context themselves and call Eval.
func EvalEmpty(source string) (Value, error) {
	return Eval(source, NewMapContext())
}

// EvalString compiles and evaluates source, then asserts the result is a
// String.
func EvalString(source string, ctx Context) (string, error) {
	v, err := Eval(source, ctx)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

// EvalInt compiles and evaluates source, then asserts the result is an Int.
func EvalInt(source string, ctx Context) (int64, error) {
	v, err := Eval(source, ctx)
	if err != nil {
		return 0, err
	}
	return v.AsInt()
}

// EvalFloat compiles and evaluates source, then asserts the result is a
// Float.
func EvalFloat(source string, ctx Context) (float64, error) {
	v, err := Eval(source, ctx)
	if err != nil {
		return 0, err
	}
	return v.AsFloat()
}

// EvalBoolean compiles and evaluates source, then asserts the result is a
// Boolean.
func EvalBoolean(source string, ctx Context) (bool, error) {
	v, err := Eval(source, ctx)
	if err != nil {
		return false, err
	}
	return v.AsBoolean()
}

// EvalTuple compiles and evaluates source, then asserts the result is a
// Tuple.
func EvalTuple(source string, ctx Context) ([]Value, error) {
	v, err := Eval(source, ctx)
	if err != nil {
		return nil, err
	}
	return v.AsTuple()
}

// EvalInt evaluates n against ctx, then asserts the result is an Int.
func (n *Node) EvalInt(ctx Context) (int64, error) {
	v, err := n.Eval(ctx)
	if err != nil {
		return 0, err
	}
	return v.AsInt()
}

// EvalFloat evaluates n against ctx, then asserts the result is a Float.
func (n *Node) EvalFloat(ctx Context) (float64, error) {
	v, err := n.Eval(ctx)
	if err != nil {
		return 0, err
	}
	return v.AsFloat()
}

// EvalString evaluates n against ctx, then asserts the result is a String.
func (n *Node) EvalString(ctx Context) (string, error) {
	v, err := n.Eval(ctx)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

// EvalBoolean evaluates n against ctx, then asserts the result is a Boolean.
func (n *Node) EvalBoolean(ctx Context) (bool, error) {
	v, err := n.Eval(ctx)
	if err != nil {
		return false, err
	}
	return v.AsBoolean()
}

// EvalTuple evaluates n against ctx, then asserts the result is a Tuple.
func (n *Node) EvalTuple(ctx Context) ([]Value, error) {
	v, err := n.Eval(ctx)
	if err != nil {
		return nil, err
	}
	return v.AsTuple()
}

// IterIdentifiers calls yield once for every identifier referenced anywhere
// in n's tree, in the order they appear, whether it names a variable or a
// function. Iteration stops early if yield returns false.
func (n *Node) IterIdentifiers(yield func(name string) bool) {
	n.walkIdentifiers(func(name string, isCall bool) bool {
		return yield(name)
	})
}

// IterVariableIdentifiers calls yield once for every VariableIdentifier
// referenced in n's tree, in the order they appear. A name used both as a
// variable and as a function call target is yielded once per variable use.
func (n *Node) IterVariableIdentifiers(yield func(name string) bool) {
	n.walkIdentifiers(func(name string, isCall bool) bool {
		if isCall {
			return true
		}
		return yield(name)
	})
}

// IterFunctionIdentifiers calls yield once for every FunctionIdentifier
// called in n's tree, in the order they appear.
func (n *Node) IterFunctionIdentifiers(yield func(name string) bool) {
	n.walkIdentifiers(func(name string, isCall bool) bool {
		if !isCall {
			return true
		}
		return yield(name)
	})
}

// walkIdentifiers performs a pre-order walk of n, invoking visit for every
// nodeVariable and nodeCall leaf/node. It returns false, stopping the walk,
// as soon as visit does.
func (n *Node) walkIdentifiers(visit func(name string, isCall bool) bool) bool {
	if n == nil {
		return true
	}
	switch n.kind {
	case nodeVariable:
		if !visit(n.name, false) {
			return false
		}
	case nodeCall:
		if !visit(n.name, true) {
			return false
		}
	}
	for _, c := range n.children {
		if !c.walkIdentifiers(visit) {
			return false
		}
	}
	return true
}
