// Package substitute replaces placeholder tokens in a materialized template tree.
package substitute

import (
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Binding is an ordered set of variable values supplied by a user.
type Binding []Value

// Value is a value of a single variable.
type Value struct {
	// Name is a variable name.
	Name string
	// Value replaces every placeholder token of the variable verbatim.
	Value string
}

// Token returns a placeholder token of the variable: lower-cased name in
// angle brackets.
func Token(name string) string {
	return "<" + cases.Lower(language.Und).String(name) + ">"
}

// TokenEngine replaces placeholder tokens with variable values.
//
// Bindings are applied one after another against the updated text, so a
// value inserted by an earlier variable is matched by the tokens of the
// following variables.
type TokenEngine struct{}

// NewDefaultEngine creates and returns default substitution engine.
func NewDefaultEngine() TokenEngine {
	return TokenEngine{}
}

// tokenPattern returns case-insensitive literal pattern of the variable token.
func tokenPattern(name string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(Token(name)))
}

// RenderText replaces every case-insensitive occurrence of each binding token.
func (TokenEngine) RenderText(in string, binding Binding) string {
	for _, value := range binding {
		in = tokenPattern(value.Name).ReplaceAllLiteralString(in, value.Value)
	}
	return in
}

// RenderFile renders the file at path in place. The file must be UTF-8 text.
func (engine TokenEngine) RenderFile(path string, binding Binding) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error getting file info %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return fmt.Errorf("error reading %s: file content is not valid UTF-8 text", path)
	}

	rendered := engine.RenderText(string(content), binding)
	if rendered == string(content) {
		return nil
	}

	if err = os.WriteFile(path, []byte(rendered), stat.Mode().Perm()); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
