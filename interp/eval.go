package interp

import (
	"fmt"
	"math"
	"strconv"

	"github.com/reusee/memsim/ast"
)

func (i *Interpreter) eval(node ast.Node) (ret Result, err error) {
	switch node := node.(type) {

	case *ast.Literal:
		v, err := literalValue(node)
		if err != nil {
			return ret, err
		}
		return Result{Variable: v}, nil

	case *ast.Identifier:
		v, ok := i.variables[node.Name]
		if !ok {
			return ret, undefined(node.Name)
		}
		return Result{Variable: v}, nil

	case *ast.Assignment:
		return i.evalAssignment(node)

	case *ast.FunctionCall:
		return i.evalCall(node)

	case *ast.Declaration:
		v, err := i.declare(node)
		if err != nil {
			return ret, err
		}
		return Result{Variable: v}, nil

	case *ast.Cast:
		return ret, fmt.Errorf("%w: casting", ErrUnsupported)

	case *ast.ArrayIndex:
		return ret, fmt.Errorf("%w: array indexing", ErrUnsupported)

	case *ast.Operator:
		return i.evalOperator(node)

	case *ast.Parenthesis:
		return i.eval(node.Inner)

	case *ast.Type:
		return valueResult(TypeString, node.Name), nil

	case nil:
		return ret, fmt.Errorf("%w: nil node", ErrInternal)

	}

	return ret, fmt.Errorf("%w: unknown node %T", ErrInternal, node)
}

// evalVariable evaluates a node that must produce a value.
func (i *Interpreter) evalVariable(node ast.Node) (Variable, error) {
	res, err := i.eval(node)
	if err != nil {
		return Variable{}, err
	}
	if res.Kind == ResultUIAction {
		return Variable{}, fmt.Errorf("%w: %s() has no value", ErrTypeMismatch, res.Action)
	}
	return res.Variable, nil
}

func undefined(name string) error {
	return fmt.Errorf("%w: '%s' is not defined", ErrUndefinedReference, name)
}

func literalValue(lit *ast.Literal) (Variable, error) {
	switch lit.Kind {

	case ast.LiteralInt:
		n, err := strconv.ParseInt(lit.Raw, 10, 64)
		if err != nil {
			return Variable{}, fmt.Errorf("%w: literal %s does not fit int", ErrTypeMismatch, lit.Raw)
		}
		return Variable{Type: TypeInt, Value: n}, nil

	case ast.LiteralDouble:
		f, err := strconv.ParseFloat(lit.Raw, 64)
		if err != nil {
			return Variable{}, fmt.Errorf("%w: bad double literal %s", ErrTypeMismatch, lit.Raw)
		}
		return Variable{Type: TypeDouble, Value: f}, nil

	case ast.LiteralString:
		return Variable{Type: TypeString, Value: lit.Raw}, nil

	case ast.LiteralChar:
		runes := []rune(lit.Raw)
		if len(runes) != 1 {
			return Variable{}, fmt.Errorf("%w: bad char literal %q", ErrTypeMismatch, lit.Raw)
		}
		return Variable{Type: TypeChar, Value: runes[0]}, nil

	}
	return Variable{}, fmt.Errorf("%w: unknown literal kind %d", ErrInternal, lit.Kind)
}

func (i *Interpreter) declare(decl *ast.Declaration) (Variable, error) {
	if decl.IsArray() {
		return Variable{}, fmt.Errorf("%w: array declaration", ErrUnsupported)
	}
	name := decl.Identifier.Name
	if _, ok := i.variables[name]; ok {
		return Variable{}, fmt.Errorf("%w: identifier '%s' has already been declared", ErrAlreadyDeclared, name)
	}
	v := Variable{
		Type: Type(decl.Type.Name),
	}
	i.variables[name] = v
	i.logger.Debug("declare", "name", name, "type", v.Type)
	return v, nil
}

func (i *Interpreter) evalAssignment(node *ast.Assignment) (ret Result, err error) {
	var name string
	switch left := node.Left.(type) {

	case *ast.Identifier:
		if _, ok := i.variables[left.Name]; !ok {
			return ret, undefined(left.Name)
		}
		name = left.Name

	case *ast.Declaration:
		if _, err := i.declare(left); err != nil {
			return ret, err
		}
		name = left.Identifier.Name
		defer func() {
			if err != nil {
				// the declaration takes effect only with the assignment
				delete(i.variables, name)
			}
		}()

	case *ast.ArrayIndex:
		return ret, fmt.Errorf("%w: array indexing", ErrUnsupported)

	default:
		return ret, fmt.Errorf("%w: cannot assign to %T", ErrInternal, left)
	}

	value, err := i.evalVariable(node.Right)
	if err != nil {
		return ret, err
	}

	// the right side may have reset the symbol table
	target, ok := i.variables[name]
	if !ok {
		return ret, undefined(name)
	}

	assigned, err := convert(value, target.Type)
	if err != nil {
		return ret, err
	}
	i.variables[name] = assigned

	return Result{Variable: assigned}, nil
}

// convert returns v as a value of type t.
func convert(v Variable, t Type) (Variable, error) {
	switch {

	case v.Type == t:
		return v, nil

	case t == TypeInt && v.Type == TypeDouble:
		if v.Value == nil {
			return Variable{Type: t}, nil
		}
		f := v.Value.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Variable{}, fmt.Errorf("%w: %v does not fit int", ErrTypeMismatch, f)
		}
		return Variable{Type: t, Value: int64(math.Trunc(f))}, nil

	case t == TypeDouble && v.Type == TypeInt:
		if v.Value == nil {
			return Variable{Type: t}, nil
		}
		return Variable{Type: t, Value: float64(v.Value.(int64))}, nil

	case t.IsPointer() && v.Type == TypeInt:
		// pointers are integer handles
		return Variable{Type: t, Value: v.Value}, nil

	}

	return Variable{}, fmt.Errorf("%w: cannot assign %s to %s", ErrTypeMismatch, v.Type, t)
}

func (i *Interpreter) evalCall(node *ast.FunctionCall) (ret Result, err error) {
	callee, ok := i.variables[node.Name.Name]
	if !ok {
		return ret, undefined(node.Name.Name)
	}
	b, ok := callee.Value.(Builtin)
	if callee.Type != TypeFunction || !ok {
		return ret, fmt.Errorf("%w: '%s' is not a function", ErrNotAFunction, node.Name.Name)
	}

	var arg *Variable
	if node.Argument != nil {
		v, err := i.evalVariable(node.Argument)
		if err != nil {
			return ret, err
		}
		arg = &v
	}

	return i.call(b, arg)
}

func (i *Interpreter) evalOperator(node *ast.Operator) (ret Result, err error) {
	left, err := i.evalVariable(node.Left)
	if err != nil {
		return ret, err
	}
	right, err := i.evalVariable(node.Right)
	if err != nil {
		return ret, err
	}
	v, err := operate(left, node.Op, right)
	if err != nil {
		return ret, err
	}
	return Result{Variable: v}, nil
}

func operate(left Variable, op byte, right Variable) (Variable, error) {
	if left.Value == nil || right.Value == nil {
		return Variable{}, fmt.Errorf("%w: operand has no value", ErrTypeMismatch)
	}
	if left.Type.IsPointer() || right.Type.IsPointer() {
		return Variable{}, fmt.Errorf("%w: pointer arithmetic", ErrUnsupported)
	}

	switch {

	case left.Type.isNumeric() && right.Type.isNumeric():
		a, aIsInt := left.Value.(int64)
		b, bIsInt := right.Value.(int64)
		if aIsInt && bIsInt {
			if n, ok := intOperate(a, op, b); ok {
				return Variable{Type: TypeInt, Value: n}, nil
			}
		}
		x, y := toFloat(left.Value), toFloat(right.Value)
		var f float64
		switch op {
		case '+':
			f = x + y
		case '-':
			f = x - y
		case '*':
			f = x * y
		case '/':
			f = x / y
		default:
			return Variable{}, fmt.Errorf("%w: unknown operator %c", ErrInternal, op)
		}
		return number(f), nil

	case left.Type.isText() && right.Type.isText():
		if op != '+' {
			return Variable{}, fmt.Errorf("%w: cannot apply %c to %s and %s", ErrTypeMismatch, op, left.Type, right.Type)
		}
		return Variable{
			Type:  TypeString,
			Value: toString(left.Value) + toString(right.Value),
		}, nil

	}

	return Variable{}, fmt.Errorf("%w: cannot apply %c to %s and %s", ErrTypeMismatch, op, left.Type, right.Type)
}

// intOperate computes + - * in int64, reporting false for division and on overflow.
func intOperate(a int64, op byte, b int64) (int64, bool) {
	switch op {
	case '+':
		c := a + b
		if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
			return 0, false
		}
		return c, true
	case '-':
		c := a - b
		if (a >= 0 && b < 0 && c < 0) || (a < 0 && b > 0 && c >= 0) {
			return 0, false
		}
		return c, true
	case '*':
		if a == 0 || b == 0 {
			return 0, true
		}
		c := a * b
		if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, false
		}
		return c, true
	}
	return 0, false
}

// number returns an int when f has no fractional part, a double otherwise.
func number(f float64) Variable {
	if !math.IsInf(f, 0) && !math.IsNaN(f) &&
		f == math.Trunc(f) &&
		f >= math.MinInt64 && f < math.MaxInt64 {
		return Variable{Type: TypeInt, Value: int64(f)}
	}
	return Variable{Type: TypeDouble, Value: f}
}

func toFloat(v any) float64 {
	switch v := v.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	}
	panic(fmt.Errorf("%w: not a number: %T", ErrInternal, v))
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case rune:
		return string(v)
	}
	panic(fmt.Errorf("%w: not a text value: %T", ErrInternal, v))
}
