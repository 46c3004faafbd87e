package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiz-lang/wiz/lang/ast"
	"github.com/wiz-lang/wiz/lang/language"
	"github.com/wiz-lang/wiz/lang/parser"
	"github.com/wiz-lang/wiz/lang/report"
	"github.com/wiz-lang/wiz/lang/scanner"
	"github.com/wiz-lang/wiz/lang/token"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *report.Handler, string) {
	t.Helper()
	lang := language.Lookup("English")
	var buf bytes.Buffer
	h := report.NewHandler(&buf, lang)
	toks := scanner.Scan(src, lang, h)
	require.False(t, h.HadError, "scan errors: %s", buf.String())
	stmts := parser.Parse(toks, h)
	return stmts, h, buf.String()
}

func TestEmptyProgram(t *testing.T) {
	stmts, h, _ := parse(t, "")
	require.False(t, h.HadError)
	assert.Empty(t, stmts)

	stmts, h, _ = parse(t, "\n\n\n")
	require.False(t, h.HadError)
	assert.Empty(t, stmts)
}

func TestVarDeclaration(t *testing.T) {
	stmts, h, _ := parse(t, "variable x = 1 + 2\nvariable y\n")
	require.False(t, h.HadError)
	require.Len(t, stmts, 2)

	v := stmts[0].(*ast.VarStmt)
	assert.Equal(t, "x", v.Name.Lexeme)
	bin := v.Init.(*ast.BinaryExpr)
	assert.Equal(t, token.PLUS, bin.Op.Kind)

	v = stmts[1].(*ast.VarStmt)
	assert.Equal(t, "y", v.Name.Lexeme)
	assert.Nil(t, v.Init)
}

func TestPrecedence(t *testing.T) {
	stmts, h, _ := parse(t, "write(1 + 2 * 3)\n")
	require.False(t, h.HadError)
	require.Len(t, stmts, 1)

	call := stmts[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	require.Len(t, call.Args, 1)
	add := call.Args[0].(*ast.BinaryExpr)
	assert.Equal(t, token.PLUS, add.Op.Kind)
	mul := add.Right.(*ast.BinaryExpr)
	assert.Equal(t, token.STAR, mul.Op.Kind)
}

func TestLogicalAndComparisons(t *testing.T) {
	stmts, h, _ := parse(t, "x = a or b and c == 1 < 2\n")
	require.False(t, h.HadError)
	require.Len(t, stmts, 1)

	asg := stmts[0].(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	or := asg.Value.(*ast.BinaryExpr)
	assert.Equal(t, token.OR, or.Op.Kind)
	and := or.Right.(*ast.BinaryExpr)
	assert.Equal(t, token.AND, and.Op.Kind)
	eq := and.Right.(*ast.BinaryExpr)
	assert.Equal(t, token.EQEQ, eq.Op.Kind)
	lt := eq.Right.(*ast.BinaryExpr)
	assert.Equal(t, token.LT, lt.Op.Kind)
}

func TestFunctionDeclaration(t *testing.T) {
	stmts, h, _ := parse(t, "function add(a, b) begin\nreturn a + b\nend\n")
	require.False(t, h.HadError)
	require.Len(t, stmts, 1)

	fn := stmts[0].(*ast.FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
	require.Len(t, fn.Body, 1)
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.NotNil(t, ret.Value)
}

func TestClassDeclaration(t *testing.T) {
	src := `class Point begin
init(x, y) begin this.x = x
this.y = y end
sum() begin return this.x + this.y end
end
`
	stmts, h, _ := parse(t, src)
	require.False(t, h.HadError)
	require.Len(t, stmts, 1)

	cls := stmts[0].(*ast.ClassStmt)
	assert.Equal(t, "Point", cls.Name.Lexeme)
	assert.Nil(t, cls.Superclass)
	require.Len(t, cls.Methods, 2)
	assert.Equal(t, "init", cls.Methods[0].Name.Lexeme)
	assert.Equal(t, "sum", cls.Methods[1].Name.Lexeme)

	// init body: two Set statements
	set := cls.Methods[0].Body[0].(*ast.ExprStmt).Expr.(*ast.SetExpr)
	assert.Equal(t, "x", set.Name.Lexeme)
	_ = set.Object.(*ast.ThisExpr)
}

func TestClassInherits(t *testing.T) {
	stmts, h, _ := parse(t, "class B inherits A begin end\n")
	require.False(t, h.HadError)
	cls := stmts[0].(*ast.ClassStmt)
	require.NotNil(t, cls.Superclass)
	assert.Equal(t, "A", cls.Superclass.Name.Lexeme)
	assert.Empty(t, cls.Methods)
}

func TestIfElseChain(t *testing.T) {
	src := `if x > 1 begin
write(1)
end
else if x > 0 begin
write(2)
end
else begin
write(3)
end
`
	stmts, h, _ := parse(t, src)
	require.False(t, h.HadError)
	require.Len(t, stmts, 1)

	ifs := stmts[0].(*ast.IfStmt)
	require.NotNil(t, ifs.Else)
	inner := ifs.Else.(*ast.IfStmt)
	require.NotNil(t, inner.Else)
	_ = inner.Else.(*ast.BlockStmt)
}

func TestWhile(t *testing.T) {
	stmts, h, _ := parse(t, "while x < 10 begin\nx = x + 1\nend\n")
	require.False(t, h.HadError)
	w := stmts[0].(*ast.WhileStmt)
	_ = w.Cond.(*ast.BinaryExpr)
	body := w.Body.(*ast.BlockStmt)
	require.Len(t, body.Stmts, 1)
}

func TestSuperAndCalls(t *testing.T) {
	stmts, h, _ := parse(t, "class B inherits A begin m() begin super.m()\nend end\n")
	require.False(t, h.HadError)
	cls := stmts[0].(*ast.ClassStmt)
	call := cls.Methods[0].Body[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	sup := call.Callee.(*ast.SuperExpr)
	assert.Equal(t, "m", sup.Method.Lexeme)
}

func TestCallChain(t *testing.T) {
	stmts, h, _ := parse(t, "a.b(1).c = 2\n")
	require.False(t, h.HadError)
	set := stmts[0].(*ast.ExprStmt).Expr.(*ast.SetExpr)
	assert.Equal(t, "c", set.Name.Lexeme)
	call := set.Object.(*ast.CallExpr)
	get := call.Callee.(*ast.GetExpr)
	assert.Equal(t, "b", get.Name.Lexeme)
}

func TestEOFTerminatesStatement(t *testing.T) {
	// no trailing newline: EOF substitutes for the terminator
	stmts, h, _ := parse(t, "write(1)")
	require.False(t, h.HadError)
	require.Len(t, stmts, 1)
}

func TestInvalidAssignmentTarget(t *testing.T) {
	_, h, out := parse(t, "1 + 2 = 3\n")
	assert.True(t, h.HadError)
	assert.Contains(t, out, "Invalid assignment target")
}

func TestForIsReserved(t *testing.T) {
	_, h, out := parse(t, "for x\n")
	assert.True(t, h.HadError)
	assert.Contains(t, out, `"for" statements are reserved`)
}

func TestSynchronizeRecovers(t *testing.T) {
	// the bad first line must not hide the good declaration that follows
	stmts, h, out := parse(t, "variable = 3\nvariable y = 1\n")
	assert.True(t, h.HadError)
	assert.Contains(t, out, "Expect variable name")
	require.Len(t, stmts, 1)
	v := stmts[0].(*ast.VarStmt)
	assert.Equal(t, "y", v.Name.Lexeme)
}

func TestMissingEnd(t *testing.T) {
	_, h, out := parse(t, "if x begin\nwrite(1)\n")
	assert.True(t, h.HadError)
	assert.Contains(t, out, `Expect "end" after block`)
}

func TestPrinterSmoke(t *testing.T) {
	stmts, h, _ := parse(t, "function f(a) begin\nreturn a\nend\nwrite(f(1))\n")
	require.False(t, h.HadError)

	var buf bytes.Buffer
	ast.Fprint(&buf, stmts)
	out := buf.String()
	assert.Contains(t, out, "function f(a)")
	assert.Contains(t, out, "return")
	assert.Contains(t, out, "call {args=1}")
}
