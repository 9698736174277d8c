package repl

import (
	"slices"
	"strings"

	"github.com/reusee/memsim/interp"
)

// Predictions lists what a word may complete to: builtins with their parentheses and user variables.
func Predictions(i *interp.Interpreter) []string {
	var ret []string
	for _, name := range i.Identifiers() {
		v, _ := i.Lookup(name)
		b, ok := v.Value.(interp.Builtin)
		switch {
		case v.Type != interp.TypeFunction:
			ret = append(ret, name)
		case ok && b.Arity() == 1:
			ret = append(ret, name+"(")
		case ok:
			ret = append(ret, name+"()")
		}
	}
	slices.Sort(ret)
	return ret
}

// lastWord returns the text after the last space or opening parenthesis.
func lastWord(text string) string {
	return text[strings.LastIndexAny(text, " (")+1:]
}

// Complete replaces the last word of text with its first prediction.
func Complete(i *interp.Interpreter, text string) string {
	word := lastWord(text)
	if word == "" {
		return text
	}
	for _, prediction := range Predictions(i) {
		if strings.HasPrefix(prediction, word) {
			return text[:len(text)-len(word)] + prediction
		}
	}
	return text
}

var metaCommands = []string{
	".dump",
	".help",
	".memory",
	".quit",
	".stats",
	".tap",
}

type completer struct {
	interpreter func() *interp.Interpreter
}

// Do implements readline.AutoCompleteInterface.
func (c completer) Do(line []rune, pos int) (suffixes [][]rune, length int) {
	text := string(line[:pos])

	if strings.HasPrefix(text, ".") && !strings.ContainsAny(text, " (") {
		for _, name := range metaCommands {
			if strings.HasPrefix(name, text) {
				suffixes = append(suffixes, []rune(name[len(text):]))
			}
		}
		return suffixes, len([]rune(text))
	}

	word := lastWord(text)
	if word == "" {
		return nil, 0
	}
	for _, prediction := range Predictions(c.interpreter()) {
		if strings.HasPrefix(prediction, word) {
			suffixes = append(suffixes, []rune(prediction[len(word):]))
		}
	}
	return suffixes, len([]rune(word))
}
