package parser

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSyntax = errors.New("syntax error")

type PosError struct {
	Err    error
	Source string
	Column int
}

func (p PosError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at column %d\n", p.Err.Error(), p.Column))
	sb.WriteString("  ")
	sb.WriteString(p.Source)
	sb.WriteString("\n  ")
	runes := []rune(p.Source)
	for i := 0; i < p.Column-1 && i < len(runes); i++ {
		if runes[i] == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^")
	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}
