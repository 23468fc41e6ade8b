package ast

import (
	"iter"
	"strings"
)

// Program is the ordered list of top-level expressions of a source text.
// It is only ever appended to.
type Program struct {
	expressions []Expression
}

// NewProgram creates an empty program
func NewProgram() *Program {
	return &Program{expressions: []Expression{}}
}

// Append adds an expression; nil is ignored
func (p *Program) Append(expr Expression) {
	if expr == nil {
		return
	}
	p.expressions = append(p.expressions, expr)
}

// Len returns the number of expressions
func (p *Program) Len() int {
	return len(p.expressions)
}

// At returns the i-th expression, or nil when i is out of range
func (p *Program) At(i int) Expression {
	if i < 0 || i >= len(p.expressions) {
		return nil
	}
	return p.expressions[i]
}

// Expressions returns a copy of the expression list
func (p *Program) Expressions() []Expression {
	out := make([]Expression, len(p.expressions))
	copy(out, p.expressions)
	return out
}

// All iterates over the expressions in source order
func (p *Program) All() iter.Seq2[int, Expression] {
	return func(yield func(int, Expression) bool) {
		for i, expr := range p.expressions {
			if !yield(i, expr) {
				return
			}
		}
	}
}

// Kinds returns the variant of every expression in order
func (p *Program) Kinds() []Kind {
	kinds := make([]Kind, len(p.expressions))
	for i, expr := range p.expressions {
		kinds[i] = KindOf(expr)
	}
	return kinds
}

// String renders the program as source, one expression per line
func (p *Program) String() string {
	lines := make([]string, len(p.expressions))
	for i, expr := range p.expressions {
		lines[i] = expr.String()
	}
	return strings.Join(lines, "\n")
}
