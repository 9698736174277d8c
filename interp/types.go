package interp

import "strings"

// Type is the name of a variable type, like "int" or "char*".
type Type string

const (
	TypeInt      Type = "int"
	TypeDouble   Type = "double"
	TypeString   Type = "string"
	TypeChar     Type = "char"
	TypeVoid     Type = "void"
	TypeFunction Type = "function"
)

func (t Type) IsPointer() bool {
	return strings.HasSuffix(string(t), "*")
}

func (t Type) isNumeric() bool {
	return t == TypeInt || t == TypeDouble
}

func (t Type) isText() bool {
	return t == TypeString || t == TypeChar
}

// Variable is a typed value.
// Value holds an int64 for int and pointer types, a float64 for double,
// a string for string, a rune for char and a Builtin for function.
// A nil Value means the variable has no value yet.
type Variable struct {
	Type  Type
	Value any
}

type ResultKind uint8

const (
	ResultVariable ResultKind = iota
	ResultUIAction
)

type Action uint8

const (
	ActionNone Action = iota
	ActionClearConsole
)

func (a Action) String() string {
	switch a {
	case ActionClearConsole:
		return "clearConsole"
	}
	return "none"
}

// Result is the outcome of evaluating one command.
type Result struct {
	Kind ResultKind
	// SideEffect is set when the memory space may have changed
	SideEffect bool
	Variable
	Action Action
}
