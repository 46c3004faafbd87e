package resolver_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiz-lang/wiz/lang/ast"
	"github.com/wiz-lang/wiz/lang/language"
	"github.com/wiz-lang/wiz/lang/parser"
	"github.com/wiz-lang/wiz/lang/report"
	"github.com/wiz-lang/wiz/lang/resolver"
	"github.com/wiz-lang/wiz/lang/scanner"
)

func resolve(t *testing.T, langName, src string) ([]ast.Stmt, resolver.Locals, *report.Handler, string) {
	t.Helper()
	lang := language.Lookup(langName)
	require.NotNil(t, lang)
	var buf bytes.Buffer
	h := report.NewHandler(&buf, lang)
	toks := scanner.Scan(src, lang, h)
	require.False(t, h.HadError, "scan errors: %s", buf.String())
	stmts := parser.Parse(toks, h)
	require.False(t, h.HadError, "parse errors: %s", buf.String())
	locals := resolver.Resolve(stmts, lang, h)
	return stmts, locals, h, buf.String()
}

func TestGlobalsAbsentFromTable(t *testing.T) {
	stmts, locals, h, _ := resolve(t, "English", "variable x = 1\nwrite(x)\n")
	require.False(t, h.HadError)

	// both the callee and the argument are globals: no side-table entries
	assert.Empty(t, locals)
	require.Len(t, stmts, 2)
}

func TestLocalHopCounts(t *testing.T) {
	src := `function outer() begin
variable x = 1
begin
write(x)
x = 2
end
end
`
	stmts, locals, h, _ := resolve(t, "English", src)
	require.False(t, h.HadError)

	fn := stmts[0].(*ast.FunctionStmt)
	inner := fn.Body[1].(*ast.BlockStmt)

	// write(x): the callee "write" is global, x is one scope up
	call := inner.Stmts[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	_, ok := locals[call.Callee]
	assert.False(t, ok, "global callee must not be in the table")

	arg := call.Args[0].(*ast.VariableExpr)
	d, ok := locals[arg]
	require.True(t, ok)
	assert.Equal(t, 1, d)

	// x = 2 assigns one scope up as well
	asg := inner.Stmts[1].(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	d, ok = locals[asg]
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestClosureCapturesDistance(t *testing.T) {
	src := `function makeCounter() begin
variable n = 0
function inc() begin
n = n + 1
return n
end
return inc
end
`
	stmts, locals, h, _ := resolve(t, "English", src)
	require.False(t, h.HadError)

	outer := stmts[0].(*ast.FunctionStmt)
	inc := outer.Body[1].(*ast.FunctionStmt)

	// inside inc, n lives in makeCounter's scope: one hop from inc's body
	asg := inc.Body[0].(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	d, ok := locals[asg]
	require.True(t, ok)
	assert.Equal(t, 1, d)

	ret := inc.Body[1].(*ast.ReturnStmt)
	d, ok = locals[ret.Value.(*ast.VariableExpr)]
	require.True(t, ok)
	assert.Equal(t, 1, d)

	// return inc resolves in makeCounter's own scope, zero hops
	retInc := outer.Body[2].(*ast.ReturnStmt)
	d, ok = locals[retInc.Value.(*ast.VariableExpr)]
	require.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestThisAndSuperDistances(t *testing.T) {
	src := `class A begin m() begin write(1) end end
class B inherits A begin
m() begin
super.m()
return this
end
end
`
	stmts, locals, h, _ := resolve(t, "English", src)
	require.False(t, h.HadError)

	b := stmts[1].(*ast.ClassStmt)
	m := b.Methods[0]

	// method body scope → this scope = 1 hop; → super scope = 2 hops
	call := m.Body[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	sup := call.Callee.(*ast.SuperExpr)
	d, ok := locals[sup]
	require.True(t, ok)
	assert.Equal(t, 2, d)

	ret := m.Body[1].(*ast.ReturnStmt)
	this := ret.Value.(*ast.ThisExpr)
	d, ok = locals[this]
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestPortugueseThisSuperSpellings(t *testing.T) {
	src := `classe A inicio m() inicio escreva(1) fim fim
classe B herda de A inicio
m() inicio
super.m()
retorne isto
fim
fim
`
	stmts, locals, h, _ := resolve(t, "Português", src)
	require.False(t, h.HadError)

	b := stmts[1].(*ast.ClassStmt)
	m := b.Methods[0]
	call := m.Body[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	d, ok := locals[call.Callee.(*ast.SuperExpr)]
	require.True(t, ok)
	assert.Equal(t, 2, d)

	ret := m.Body[1].(*ast.ReturnStmt)
	d, ok = locals[ret.Value.(*ast.ThisExpr)]
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestDuplicateLocal(t *testing.T) {
	src := `function f() begin
variable a = 1
variable a = 2
end
`
	_, _, h, out := resolve(t, "English", src)
	assert.True(t, h.HadError)
	assert.Contains(t, out, "Already a variable with this name in this scope")
}

func TestDuplicateGlobalAllowed(t *testing.T) {
	_, _, h, _ := resolve(t, "English", "variable a = 1\nvariable a = 2\n")
	assert.False(t, h.HadError)
}

func TestReadInOwnInitializer(t *testing.T) {
	src := `variable a = 1
function f() begin
variable a = a
end
`
	_, _, h, out := resolve(t, "English", src)
	assert.True(t, h.HadError)
	assert.Contains(t, out, "Can't read local variable in its own initializer")
}

func TestSelfInheritance(t *testing.T) {
	_, _, h, out := resolve(t, "English", "class C inherits C begin end\n")
	assert.True(t, h.HadError)
	assert.Contains(t, out, "A class can not inherit from itself")
}

func TestReturnValueFromInitializer(t *testing.T) {
	src := `class C begin
init() begin
return 1
end
end
`
	_, _, h, out := resolve(t, "English", src)
	assert.True(t, h.HadError)
	assert.Contains(t, out, "Can't return a value from an initializer")
}

func TestBareReturnFromInitializerAllowed(t *testing.T) {
	src := `class C begin
init() begin
return
end
end
`
	_, _, h, _ := resolve(t, "English", src)
	assert.False(t, h.HadError)
}

func TestThisOutsideClass(t *testing.T) {
	_, _, h, out := resolve(t, "English", "write(this)\n")
	assert.True(t, h.HadError)
	assert.Contains(t, out, `Can not use "this" outside of a class`)
}

func TestSuperOutsideClass(t *testing.T) {
	_, _, h, out := resolve(t, "English", "super.m()\n")
	assert.True(t, h.HadError)
	assert.Contains(t, out, `Can not use "super" outside of a class`)
}

func TestSuperWithoutSuperclass(t *testing.T) {
	src := `class C begin
m() begin
super.m()
end
end
`
	_, _, h, out := resolve(t, "English", src)
	assert.True(t, h.HadError)
	assert.Contains(t, out, `Can not use "super" in a class with no super class`)
}
