package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeVars_VariableIsItsOwnFreeVar(t *testing.T) {
	assert.Equal(t, Set{"x": {}}, FreeVars(NewVariable("x")))
}

func TestFreeVars_ConstantHasNoFreeVars(t *testing.T) {
	assert.Empty(t, FreeVars(NewConst("a")))
}

func TestFreeVars_FunctionUnionsArgFreeVars(t *testing.T) {
	f := NewFunction("f", []Term{NewVariable("x"), NewVariable("y"), NewConst("a")})
	assert.Equal(t, Set{"x": {}, "y": {}}, FreeVars(f))
}

func TestSubstitute_ReplacesMatchingVariable(t *testing.T) {
	got := Substitute(NewVariable("x"), "x", NewConst("a"))
	assert.True(t, Equal(got, NewConst("a")))
}

func TestSubstitute_LeavesOtherVariablesAlone(t *testing.T) {
	got := Substitute(NewVariable("y"), "x", NewConst("a"))
	assert.True(t, Equal(got, NewVariable("y")))
}

func TestSubstitute_RecursesIntoFunctionArgs(t *testing.T) {
	f := NewFunction("f", []Term{NewVariable("x"), NewVariable("y")})
	got := Substitute(f, "x", NewConst("a"))
	want := NewFunction("f", []Term{NewConst("a"), NewVariable("y")})
	assert.True(t, Equal(got, want))
}

func TestEqual_StructurallyIdenticalFunctionsAreEqual(t *testing.T) {
	a := NewFunction("f", []Term{NewVariable("x"), NewConst("a")})
	b := NewFunction("f", []Term{NewVariable("x"), NewConst("a")})
	assert.True(t, Equal(a, b))
}

func TestEqual_DifferentArityIsUnequal(t *testing.T) {
	a := NewFunction("f", []Term{NewVariable("x")})
	b := NewFunction("f", []Term{NewVariable("x"), NewVariable("y")})
	assert.False(t, Equal(a, b))
}

func TestHash_StructurallyEqualTermsHashEqual(t *testing.T) {
	a := NewFunction("f", []Term{NewVariable("x")})
	b := NewFunction("f", []Term{NewVariable("x")})
	assert.Equal(t, Hash(a), Hash(b))
}

func TestSet_UnionIsIndependentOfOperands(t *testing.T) {
	a := NewSet().Add("x")
	b := NewSet().Add("y")
	u := a.Union(b)
	assert.True(t, u.Contains("x"))
	assert.True(t, u.Contains("y"))
	assert.False(t, a.Contains("y"), "Union must not mutate its operands")
}

func TestSet_CloneIsIndependent(t *testing.T) {
	a := NewSet().Add("x")
	b := a.Clone()
	b.Add("y")
	assert.False(t, a.Contains("y"), "Clone must be independent of the original")
}
