package parser

type Token struct {
	Kind TokenKind
	Text string
	// Column is 1-based
	Column int
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenIdentifier
	TokenInt
	TokenDouble
	TokenString
	TokenChar
	TokenSymbol
	// TokenUnterminated is a string or char literal missing its closing quote
	TokenUnterminated
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdentifier:
		return "identifier"
	case TokenInt:
		return "int literal"
	case TokenDouble:
		return "double literal"
	case TokenString:
		return "string literal"
	case TokenChar:
		return "char literal"
	case TokenSymbol:
		return "symbol"
	case TokenUnterminated:
		return "unterminated literal"
	}
	return "invalid token"
}

var typeKeywords = map[string]bool{
	"int":    true,
	"double": true,
	"string": true,
	"char":   true,
	"void":   true,
}

// string has no pointer form
var pointerTypes = map[string]bool{
	"int":    true,
	"double": true,
	"char":   true,
	"void":   true,
}
