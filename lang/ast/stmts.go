package ast

import (
	"github.com/wiz-lang/wiz/lang/token"
)

type (
	// BlockStmt represents a begin..end block.
	BlockStmt struct {
		Stmts []Stmt
	}

	// ClassStmt represents a class declaration. Superclass is nil when the
	// class has no inherits clause.
	ClassStmt struct {
		Name       token.Token
		Superclass *VariableExpr
		Methods    []*FunctionStmt
	}

	// ExprStmt represents an expression used as a statement.
	ExprStmt struct {
		Expr Expr
	}

	// FunctionStmt represents a function declaration or a class method.
	FunctionStmt struct {
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// IfStmt represents an if statement. Else is nil when there is no else
	// branch; an "else if" chain nests IfStmt values in Else.
	IfStmt struct {
		Cond Expr
		Then Stmt
		Else Stmt
	}

	// ReturnStmt represents a return statement. Value is nil for a bare
	// return.
	ReturnStmt struct {
		Keyword token.Token
		Value   Expr
	}

	// VarStmt represents a variable declaration. Init is nil when the
	// declaration has no initializer.
	VarStmt struct {
		Name token.Token
		Init Expr
	}

	// WhileStmt represents a while loop.
	WhileStmt struct {
		Cond Expr
		Body Stmt
	}
)

func (*BlockStmt) stmt()    {}
func (*ClassStmt) stmt()    {}
func (*ExprStmt) stmt()     {}
func (*FunctionStmt) stmt() {}
func (*IfStmt) stmt()       {}
func (*ReturnStmt) stmt()   {}
func (*VarStmt) stmt()      {}
func (*WhileStmt) stmt()    {}
