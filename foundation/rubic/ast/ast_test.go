package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/msto63/rubic/foundation/rubic/token"
)

func tok(typ token.Type, lit string, line, col, off int) token.Token {
	return token.Token{Type: typ, Literal: lit, Line: line, Column: col, Offset: off}
}

// sample builds the tree for "x = 5\nreturn y\nreturn\nz"
func sample() *Program {
	p := NewProgram()
	p.Append(&AssignExpression{
		Token: tok(token.ASSIGN, "=", 1, 3, 2),
		Name:  NewIdentifier(tok(token.IDENT, "x", 1, 1, 0)),
		Value: &ValueExpression{Token: tok(token.INT, "5", 1, 5, 4), Value: 5},
	})
	p.Append(&ReturnExpression{
		Token:       tok(token.RETURN, "return", 2, 1, 6),
		ReturnValue: NewIdentifier(tok(token.IDENT, "y", 2, 8, 13)),
	})
	p.Append(&ReturnExpression{Token: tok(token.RETURN, "return", 3, 1, 15)})
	p.Append(NewIdentifier(tok(token.IDENT, "z", 4, 1, 22)))
	return p
}

func TestNodes_Basics(t *testing.T) {
	p := sample()

	tests := []struct {
		name    string
		expr    Expression
		kind    Kind
		literal string
		source  string
		pos     string
	}{
		{"assign", p.At(0), KindAssign, "=", "x = 5", "1:1"},
		{"return with value", p.At(1), KindReturn, "return", "return y", "2:1"},
		{"bare return", p.At(2), KindReturn, "return", "return", "3:1"},
		{"identifier", p.At(3), KindIdentifier, "z", "z", "4:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.expr))
			assert.Equal(t, tt.literal, tt.expr.TokenLiteral())
			assert.Equal(t, tt.source, tt.expr.String())
			assert.Equal(t, tt.pos, tt.expr.Pos().String())
		})
	}

	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestProgram(t *testing.T) {
	p := NewProgram()
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.At(0))
	assert.Empty(t, p.Expressions())

	p.Append(nil)
	assert.Equal(t, 0, p.Len())

	p = sample()
	assert.Equal(t, 4, p.Len())
	assert.Nil(t, p.At(-1))
	assert.Nil(t, p.At(4))
	assert.Equal(t, []Kind{KindAssign, KindReturn, KindReturn, KindIdentifier}, p.Kinds())
	assert.Equal(t, "x = 5\nreturn y\nreturn\nz", p.String())

	exprs := p.Expressions()
	exprs[0] = nil
	assert.NotNil(t, p.At(0))

	var seen []int
	for i := range p.All() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestInspect(t *testing.T) {
	p := sample()

	var kinds []string
	for _, expr := range p.All() {
		Inspect(expr, func(n Node) bool {
			kinds = append(kinds, n.TokenLiteral())
			return true
		})
	}
	assert.Equal(t, []string{"=", "x", "5", "return", "y", "return", "z"}, kinds)

	var top []string
	Inspect(p.At(0), func(n Node) bool {
		top = append(top, n.TokenLiteral())
		return false
	})
	assert.Equal(t, []string{"="}, top)
}

func TestTree(t *testing.T) {
	p := sample()

	expected := "Assign x\n" +
		"  Value 5\n" +
		"Return\n" +
		"  Identifier y\n" +
		"Return\n" +
		"Identifier z\n"
	assert.Equal(t, expected, Tree(p, false))

	withPos := Tree(p, true)
	assert.Contains(t, withPos, "Assign x @1:1\n")
	assert.Contains(t, withPos, "  Identifier y @2:8\n")

	tv := NewTreeVisitor(false)
	p.At(3).Accept(tv)
	assert.Equal(t, "Identifier z\n", tv.String())
	tv.Reset()
	assert.Empty(t, tv.String())
}

func TestSnapshots_JSON(t *testing.T) {
	data, err := json.Marshal(Snapshots(sample()))
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"kind":"assign","token":"=","name":"x","line":1,"column":1,
		 "operand":{"kind":"value","token":"5","int":5,"line":1,"column":5}},
		{"kind":"return","token":"return","line":2,"column":1,
		 "operand":{"kind":"identifier","token":"y","name":"y","line":2,"column":8}},
		{"kind":"return","token":"return","line":3,"column":1},
		{"kind":"identifier","token":"z","name":"z","line":4,"column":1}
	]`, string(data))
}

func TestSnapshots_YAML(t *testing.T) {
	p := NewProgram()
	p.Append(&ValueExpression{Token: tok(token.INT, "0", 1, 1, 0), Value: 0})

	data, err := yaml.Marshal(Snapshots(p))
	require.NoError(t, err)

	var decoded []Snapshot
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	require.NotNil(t, decoded[0].Int)
	assert.Equal(t, int64(0), *decoded[0].Int)
	assert.Equal(t, KindValue, decoded[0].Kind)
}

type countingVisitor struct {
	BaseVisitor
	idents int
}

func (c *countingVisitor) VisitIdentifier(*Identifier) any {
	c.idents++
	return nil
}

func TestBaseVisitor_Embedding(t *testing.T) {
	c := &countingVisitor{}
	for _, expr := range sample().All() {
		expr.Accept(c)
	}
	// Only top-level identifiers are visited; BaseVisitor does not descend
	assert.Equal(t, 1, c.idents)
}
