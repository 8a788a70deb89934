package flux

// The AST is a closed family of expression and statement nodes. Each node
// exclusively owns its children; the tree is acyclic and never mutated
// after parsing. Following DESIGN NOTES §9's preference for a tagged sum
// over a double-dispatch visitor, every node simply implements a marker
// interface and the evaluator dispatches with a type switch.

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// Program is the root of a parsed source: an ordered statement sequence.
type Program struct {
	Statements []Stmt
}

// --- Expressions -------------------------------------------------------

// Literal wraps an already-evaluated constant value (number, string,
// bool, or nil) produced directly by the parser.
type Literal struct {
	Value Value
}

// Identifier names a variable to resolve against the current environment.
type Identifier struct {
	Name string
	Line int
	Col  int
}

// Binary covers every infix operator, including assignment: `=` is
// desugared into a Binary node whose Left is an Identifier (spec.md §4.2,
// "Assignment desugaring") rather than a dedicated Assign node.
type Binary struct {
	Left  Expr
	Op    string
	Right Expr
	Line  int
	Col   int
}

// Unary covers the prefix operators `-`, `not`, and `!`.
type Unary struct {
	Op      string
	Operand Expr
	Line    int
	Col     int
}

// Call applies Callee to Args, left-chained so that `f(1)(2)` parses as
// Call{Call{f, [1]}, [2]}.
type Call struct {
	Callee Expr
	Args   []Expr
	Line   int
	Col    int
}

func (*Literal) exprNode()    {}
func (*Identifier) exprNode() {}
func (*Binary) exprNode()     {}
func (*Unary) exprNode()      {}
func (*Call) exprNode()       {}

// --- Statements ----------------------------------------------------------

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// VarDecl introduces a new binding in the current frame, shadowing any
// outer binding of the same name. Initializer is nil when the declaration
// has no `= expr` part, in which case the bound value is Nil.
type VarDecl struct {
	Name        string
	Initializer Expr
}

// Block is a brace-delimited statement sequence executed in a fresh child
// frame (except when it is the direct body of a user function call — see
// spec.md §9's Open Question, honored in interpreter.go).
type Block struct {
	Statements []Stmt
}

// If executes Then when Cond is truthy, otherwise Else (which is nil when
// there was no `else` clause).
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// While re-evaluates Cond before every iteration of Body.
type While struct {
	Cond Expr
	Body Stmt
}

// FunctionDecl declares a named function value that captures the
// environment current at the point of declaration.
type FunctionDecl struct {
	Name   string
	Params []string
	Body   *Block
	Line   int
	Col    int
}

// Return unwinds the innermost user-function call. Value is nil for a
// bare `return`, in which case the carried value is Nil.
type Return struct {
	Value Expr
}

// Print evaluates Expr, stringifies it, and writes it to stdout followed
// by a newline.
type Print struct {
	Expr Expr
}

func (*ExpressionStmt) stmtNode() {}
func (*VarDecl) stmtNode()        {}
func (*Block) stmtNode()          {}
func (*If) stmtNode()             {}
func (*While) stmtNode()          {}
func (*FunctionDecl) stmtNode()   {}
func (*Return) stmtNode()         {}
func (*Print) stmtNode()          {}
