// File: nodes.go
// Title: rubic AST Node Definitions
// Description: Defines the AST node types produced by the rubic parser:
//              identifiers, assignments, integer values and returns.
//              Every node owns the token it was built from.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"

	"github.com/msto63/rubic/foundation/rubic/token"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// TokenLiteral returns the literal of the token the node was built from
	TokenLiteral() string

	// Pos returns the source position of the node
	Pos() Position

	// Accept implements the visitor pattern
	Accept(visitor Visitor) any

	// String renders the node as source text
	String() string
}

// Expression is a node that can appear at the top level of a program
type Expression interface {
	Node
	expressionNode() // marker method
}

// Position represents a position in the source code
type Position struct {
	Line   int `json:"line" yaml:"line"`     // Line number (1-based)
	Column int `json:"column" yaml:"column"` // Column number (1-based)
	Offset int `json:"offset" yaml:"offset"` // Byte offset (0-based)
}

// PositionOf returns the position of a token
func PositionOf(tok token.Token) Position {
	return Position{Line: tok.Line, Column: tok.Column, Offset: tok.Offset}
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Kind names the variant of an expression
type Kind string

const (
	KindIdentifier Kind = "identifier"
	KindAssign     Kind = "assign"
	KindValue      Kind = "value"
	KindReturn     Kind = "return"
)

// KindOf returns the variant of an expression, or "" for nil
func KindOf(expr Expression) Kind {
	switch expr.(type) {
	case *Identifier:
		return KindIdentifier
	case *AssignExpression:
		return KindAssign
	case *ValueExpression:
		return KindValue
	case *ReturnExpression:
		return KindReturn
	default:
		return ""
	}
}

// Identifier is a bare name such as foo, empty? or save!
type Identifier struct {
	Token token.Token // the IDENT token
	Name  string
}

// NewIdentifier builds an identifier from an IDENT token
func NewIdentifier(tok token.Token) *Identifier {
	return &Identifier{Token: tok, Name: tok.Literal}
}

func (i *Identifier) expressionNode()            {}
func (i *Identifier) TokenLiteral() string       { return i.Token.Literal }
func (i *Identifier) Pos() Position              { return PositionOf(i.Token) }
func (i *Identifier) Accept(visitor Visitor) any { return visitor.VisitIdentifier(i) }
func (i *Identifier) String() string             { return i.Name }

// AssignExpression binds a value to a name: x = 5
type AssignExpression struct {
	Token token.Token // the ASSIGN token
	Name  *Identifier
	Value Expression
}

func (a *AssignExpression) expressionNode()            {}
func (a *AssignExpression) TokenLiteral() string       { return a.Token.Literal }
func (a *AssignExpression) Accept(visitor Visitor) any { return visitor.VisitAssign(a) }

// Pos returns the position of the assignment target, where the source
// expression starts
func (a *AssignExpression) Pos() Position {
	if a.Name != nil {
		return a.Name.Pos()
	}
	return PositionOf(a.Token)
}

func (a *AssignExpression) String() string {
	name, value := "", ""
	if a.Name != nil {
		name = a.Name.String()
	}
	if a.Value != nil {
		value = a.Value.String()
	}
	return name + " = " + value
}

// ValueExpression is an integer literal
type ValueExpression struct {
	Token token.Token // the INT token
	Value int64
}

func (v *ValueExpression) expressionNode()            {}
func (v *ValueExpression) TokenLiteral() string       { return v.Token.Literal }
func (v *ValueExpression) Pos() Position              { return PositionOf(v.Token) }
func (v *ValueExpression) Accept(visitor Visitor) any { return visitor.VisitValue(v) }
func (v *ValueExpression) String() string             { return strconv.FormatInt(v.Value, 10) }

// ReturnExpression returns from the enclosing method. ReturnValue is nil
// for a bare return.
type ReturnExpression struct {
	Token       token.Token // the RETURN token
	ReturnValue Expression
}

func (r *ReturnExpression) expressionNode()            {}
func (r *ReturnExpression) TokenLiteral() string       { return r.Token.Literal }
func (r *ReturnExpression) Pos() Position              { return PositionOf(r.Token) }
func (r *ReturnExpression) Accept(visitor Visitor) any { return visitor.VisitReturn(r) }

func (r *ReturnExpression) String() string {
	if r.ReturnValue == nil {
		return "return"
	}
	return "return " + r.ReturnValue.String()
}
