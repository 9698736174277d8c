package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/memsim/ast"
)

func parseOne(t *testing.T, src string) ast.Node {
	t.Helper()
	nodes, err := Parse(src)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	if len(nodes) != 1 {
		t.Fatalf("%s: got %d candidates", src, len(nodes))
	}
	return nodes[0]
}

func TestParseLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind ast.LiteralKind
		raw  string
	}{
		{"42", ast.LiteralInt, "42"},
		{"3.25", ast.LiteralDouble, "3.25"},
		{`"first fit"`, ast.LiteralString, "first fit"},
		{"'c'", ast.LiteralChar, "c"},
		{"7;", ast.LiteralInt, "7"},
	}
	for _, c := range cases {
		lit, ok := parseOne(t, c.src).(*ast.Literal)
		if !ok {
			t.Fatalf("%s: not a literal", c.src)
		}
		if lit.Kind != c.kind || lit.Raw != c.raw {
			t.Fatalf("%s: got %+v", c.src, lit)
		}
	}
}

func TestParseDeclarationAndAssignment(t *testing.T) {
	assign, ok := parseOne(t, "int* p = malloc(4);").(*ast.Assignment)
	if !ok {
		t.Fatal("not an assignment")
	}
	decl, ok := assign.Left.(*ast.Declaration)
	if !ok {
		t.Fatalf("got %T", assign.Left)
	}
	if decl.Type.Name != "int*" || decl.Identifier.Name != "p" || decl.IsArray() {
		t.Fatalf("got %+v", decl)
	}
	call, ok := assign.Right.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("got %T", assign.Right)
	}
	if call.Name.Name != "malloc" {
		t.Fatalf("got %v", call.Name.Name)
	}
	if lit := call.Argument.(*ast.Literal); lit.Raw != "4" {
		t.Fatalf("got %v", lit.Raw)
	}

	assign, ok = parseOne(t, "x = 5").(*ast.Assignment)
	if !ok {
		t.Fatal("not an assignment")
	}
	if ident := assign.Left.(*ast.Identifier); ident.Name != "x" {
		t.Fatalf("got %v", ident.Name)
	}

	decl, ok = parseOne(t, "char buf[16]").(*ast.Declaration)
	if !ok {
		t.Fatal("not a declaration")
	}
	if !decl.IsArray() || decl.ArraySize.Raw != "16" {
		t.Fatalf("got %+v", decl)
	}
}

func TestParseCalls(t *testing.T) {
	call := parseOne(t, "help()").(*ast.FunctionCall)
	if call.Argument != nil {
		t.Fatalf("got %v", call.Argument)
	}

	call = parseOne(t, "sizeof(double)").(*ast.FunctionCall)
	if typ, ok := call.Argument.(*ast.Type); !ok || typ.Name != "double" {
		t.Fatalf("got %#v", call.Argument)
	}

	call = parseOne(t, "free(p)").(*ast.FunctionCall)
	if ident, ok := call.Argument.(*ast.Identifier); !ok || ident.Name != "p" {
		t.Fatalf("got %#v", call.Argument)
	}
}

func TestParseOperators(t *testing.T) {
	op := parseOne(t, "(1 + 2) * x").(*ast.Operator)
	if op.Op != '*' {
		t.Fatalf("got %c", op.Op)
	}
	paren, ok := op.Left.(*ast.Parenthesis)
	if !ok {
		t.Fatalf("got %T", op.Left)
	}
	if inner := paren.Inner.(*ast.Operator); inner.Op != '+' {
		t.Fatalf("got %c", inner.Op)
	}

	op = parseOne(t, "malloc(0 - 1)").(*ast.FunctionCall).Argument.(*ast.Operator)
	if op.Op != '-' {
		t.Fatalf("got %c", op.Op)
	}

	op = parseOne(t, "7/2").(*ast.Operator)
	if op.Op != '/' {
		t.Fatalf("got %c", op.Op)
	}
}

func TestParseUnsupportedShapes(t *testing.T) {
	if cast, ok := parseOne(t, "(int) x").(*ast.Cast); !ok || cast.Operand == nil {
		t.Fatal("expecting cast")
	}
	for _, src := range []string{"(int)", "(double*);"} {
		cast, ok := parseOne(t, src).(*ast.Cast)
		if !ok {
			t.Fatalf("%s: expecting cast", src)
		}
		if cast.Operand != nil {
			t.Fatalf("%s: got %T", src, cast.Operand)
		}
	}
	if _, ok := parseOne(t, "a[1]").(*ast.ArrayIndex); !ok {
		t.Fatal("expecting array index")
	}
	assign := parseOne(t, "a[1] = 2").(*ast.Assignment)
	if _, ok := assign.Left.(*ast.ArrayIndex); !ok {
		t.Fatalf("got %T", assign.Left)
	}
	if typ, ok := parseOne(t, "void*").(*ast.Type); !ok || typ.Name != "void*" {
		t.Fatal("expecting type")
	}
}

func TestParseIncomplete(t *testing.T) {
	for _, src := range []string{
		"malloc(",
		"malloc(3",
		"(1 + 2",
		"x =",
		`setAllocationMethod("best`,
		"int x[",
		"",
	} {
		nodes, err := Parse(src)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if len(nodes) != 0 {
			t.Fatalf("%s: got %v", src, nodes)
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	for _, src := range []string{
		"1 + 2 + 3",
		"x = = 1",
		"@",
		"int 5",
		"'ab'",
		"malloc(3))",
		"string* s",
	} {
		_, err := Parse(src)
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("%s: got %v", src, err)
		}
	}

	_, err := Parse("x = @")
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("got %v", err)
	}
	if posErr.Column != 5 {
		t.Fatalf("got %v", posErr.Column)
	}
	if !strings.Contains(err.Error(), "    ^") {
		t.Fatalf("got %q", err.Error())
	}
}
