package parser

import (
	"fmt"
	"strings"

	"github.com/msto63/rubic/foundation/rubic/token"
)

// Code classifies a diagnostic
type Code string

const (
	// CodeUnexpectedToken: the lookahead did not match the production
	CodeUnexpectedToken Code = "unexpected-token"
	// CodeIllegalCharacter: the lexer produced an ILLEGAL token
	CodeIllegalCharacter Code = "illegal-character"
	// CodeNoExpression: a token that cannot start an expression was skipped
	CodeNoExpression Code = "no-expression"
	// CodeIntegerRange: an integer literal does not fit into 64 bits
	CodeIntegerRange Code = "integer-range"
)

// Diagnostic is a recoverable parse error
type Diagnostic struct {
	Code    Code        `json:"code" yaml:"code"`
	Message string      `json:"message" yaml:"message"`
	Token   token.Token `json:"token" yaml:"token"`
	Hint    string      `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// String returns "line:column: message", followed by the hint if any
func (d Diagnostic) String() string {
	s := d.Token.Position() + ": " + d.Message
	if d.Hint != "" {
		s += " (" + d.Hint + ")"
	}
	return s
}

// Messages returns the message of every diagnostic in order
func Messages(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}

// expectedMessage formats "expected next token to be `A`, `B` or `C`, got
// `X` instead"
func expectedMessage(expected []token.Type, got string) string {
	names := make([]string, len(expected))
	for i, typ := range expected {
		names[i] = "`" + typ.String() + "`"
	}

	var list string
	switch len(names) {
	case 0:
		list = "``"
	case 1:
		list = names[0]
	default:
		list = strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
	return fmt.Sprintf("expected next token to be %s, got `%s` instead", list, got)
}

func suggestionHint(tok token.Token) string {
	if tok.Type != token.IDENT {
		return ""
	}
	if kw, ok := token.Suggest(tok.Literal); ok {
		return fmt.Sprintf("did you mean `%s`?", kw)
	}
	return ""
}
