package evalexpr_test

import (
	"testing"

	evalexpr "github.com/zehntor/evalexpr"
)

func TestMapContextGetSet(t *testing.T) {
	ctx := evalexpr.NewMapContext()
	if _, ok := ctx.GetValue("a"); ok {
		t.Fatal("fresh MapContext: GetValue(a) found a binding")
	}
	if err := ctx.SetValue("a", evalexpr.IntValue(1)); err != nil {
		t.Fatalf("SetValue(a, 1): %v", err)
	}
	v, ok := ctx.GetValue("a")
	if !ok {
		t.Fatal("GetValue(a) after SetValue: not found")
	}
	if n, _ := v.AsInt(); n != 1 {
		t.Errorf("GetValue(a) = %v, want 1", v)
	}
}

func TestMapContextSetValueTypeSafety(t *testing.T) {
	ctx := evalexpr.NewMapContext()
	if err := ctx.SetValue("a", evalexpr.IntValue(1)); err != nil {
		t.Fatal(err)
	}
	err := ctx.SetValue("a", evalexpr.StringValue("x"))
	if _, ok := err.(*evalexpr.ExpectedTypeError); !ok {
		t.Fatalf("SetValue(a, string) after Int binding: got %v, want *ExpectedTypeError", err)
	}
	v, _ := ctx.GetValue("a")
	if n, _ := v.AsInt(); n != 1 {
		t.Errorf("a after rejected rebind = %v, want unchanged 1", v)
	}
	// Rebinding to the same type succeeds.
	if err := ctx.SetValue("a", evalexpr.IntValue(2)); err != nil {
		t.Fatalf("SetValue(a, 2) same type: %v", err)
	}
	v, _ = ctx.GetValue("a")
	if n, _ := v.AsInt(); n != 2 {
		t.Errorf("a after same-type rebind = %v, want 2", v)
	}
}

func TestMapContextSetFunction(t *testing.T) {
	ctx := evalexpr.NewMapContext()
	if _, ok := ctx.GetFunction("double"); ok {
		t.Fatal("fresh MapContext: GetFunction(double) found a binding")
	}
	double := evalexpr.NewFunctionWithArgumentCount(1, func(v evalexpr.Value) (evalexpr.Value, error) {
		n, err := v.AsInt()
		if err != nil {
			return evalexpr.Value{}, err
		}
		return evalexpr.IntValue(n * 2), nil
	})
	ctx.SetFunction("double", double)
	if _, ok := ctx.GetFunction("double"); !ok {
		t.Fatal("GetFunction(double) after SetFunction: not found")
	}
	got := mustEval(t, "double 21", ctx)
	if n, _ := got.AsInt(); n != 42 {
		t.Errorf(`eval("double 21") = %v, want 42`, got)
	}
}

func TestMapContextClone(t *testing.T) {
	ctx := evalexpr.NewMapContext()
	if err := ctx.SetValue("a", evalexpr.IntValue(1)); err != nil {
		t.Fatal(err)
	}
	clone := ctx.Clone()
	if err := clone.SetValue("a", evalexpr.IntValue(2)); err != nil {
		t.Fatal(err)
	}
	if err := clone.SetValue("b", evalexpr.IntValue(3)); err != nil {
		t.Fatal(err)
	}

	v, _ := ctx.GetValue("a")
	if n, _ := v.AsInt(); n != 1 {
		t.Errorf("original a after clone mutation = %v, want unchanged 1", v)
	}
	if _, ok := ctx.GetValue("b"); ok {
		t.Error("original ctx: b should not exist, clone's new binding leaked back")
	}

	v, _ = clone.GetValue("a")
	if n, _ := v.AsInt(); n != 2 {
		t.Errorf("clone a = %v, want 2", v)
	}
}

func TestNewDefaultContextRegistersBuiltins(t *testing.T) {
	ctx := evalexpr.NewDefaultContext()
	if _, ok := ctx.GetFunction("sqrt"); !ok {
		t.Error("NewDefaultContext: sqrt builtin not registered")
	}
	got := mustEval(t, "sqrt 16", ctx)
	if f, _ := got.AsFloat(); f != 4 {
		t.Errorf(`eval("sqrt 16") = %v, want 4`, got)
	}
}

func TestNewMapContextHasNoBuiltins(t *testing.T) {
	ctx := evalexpr.NewMapContext()
	if _, ok := ctx.GetFunction("sqrt"); ok {
		t.Error("NewMapContext: sqrt should not be registered")
	}
	_, err := evalexpr.Eval("sqrt 16", ctx)
	if _, ok := err.(*evalexpr.FunctionIdentifierNotFoundError); !ok {
		t.Errorf(`eval("sqrt 16") against NewMapContext: got %v, want *FunctionIdentifierNotFoundError`, err)
	}
}

func TestEmptyContext(t *testing.T) {
	ctx := evalexpr.EmptyContext{}
	if _, ok := ctx.GetValue("a"); ok {
		t.Error("EmptyContext.GetValue: found a binding")
	}
	if _, ok := ctx.GetFunction("f"); ok {
		t.Error("EmptyContext.GetFunction: found a binding")
	}
}
