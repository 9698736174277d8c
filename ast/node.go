// Package ast defines the parse tree shapes consumed by the interpreter.
package ast

// Node is a closed set of parse tree nodes.
type Node interface {
	node()
}

type LiteralKind uint8

const (
	LiteralInt LiteralKind = iota + 1
	LiteralDouble
	LiteralString
	LiteralChar
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralInt:
		return "int"
	case LiteralDouble:
		return "double"
	case LiteralString:
		return "string"
	case LiteralChar:
		return "char"
	}
	return "invalid"
}

// Literal holds the lexical text of a literal, without quotes.
type Literal struct {
	Kind LiteralKind
	Raw  string
}

type Identifier struct {
	Name string
}

type Assignment struct {
	// Left is an *Identifier, a *Declaration or an *ArrayIndex
	Left  Node
	Right Node
}

type FunctionCall struct {
	Name *Identifier
	// Argument is nil for calls without arguments
	Argument Node
}

type Declaration struct {
	Type       *Type
	Identifier *Identifier
	// ArraySize is set for array declarations
	ArraySize *Literal
}

func (d *Declaration) IsArray() bool {
	return d.ArraySize != nil
}

type Cast struct {
	Type *Type
	// Operand is nil for an empty operand
	Operand Node
}

type ArrayIndex struct {
	Identifier *Identifier
	Index      Node
}

type Operator struct {
	Left  Node
	Op    byte
	Right Node
}

type Parenthesis struct {
	Inner Node
}

// Type is a type name like "int" or "char*".
type Type struct {
	Name string
}

func (*Literal) node()      {}
func (*Identifier) node()   {}
func (*Assignment) node()   {}
func (*FunctionCall) node() {}
func (*Declaration) node()  {}
func (*Cast) node()         {}
func (*ArrayIndex) node()   {}
func (*Operator) node()     {}
func (*Parenthesis) node()  {}
func (*Type) node()         {}
