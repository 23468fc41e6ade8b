// File: visitor.go
// Title: rubic AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing rubic AST nodes.
//              Provides the visitor interface, a pre-order walker, a tree
//              printer and a snapshot visitor that converts nodes into plain
//              values for JSON and YAML output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitIdentifier(ident *Identifier) any
	VisitAssign(expr *AssignExpression) any
	VisitValue(expr *ValueExpression) any
	VisitReturn(expr *ReturnExpression) any
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed it in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitIdentifier(*Identifier) any   { return nil }
func (BaseVisitor) VisitAssign(*AssignExpression) any { return nil }
func (BaseVisitor) VisitValue(*ValueExpression) any   { return nil }
func (BaseVisitor) VisitReturn(*ReturnExpression) any { return nil }

// Children returns the direct child nodes of n in source order
func Children(n Node) []Node {
	switch node := n.(type) {
	case *AssignExpression:
		children := make([]Node, 0, 2)
		if node.Name != nil {
			children = append(children, node.Name)
		}
		if node.Value != nil {
			children = append(children, node.Value)
		}
		return children
	case *ReturnExpression:
		if node.ReturnValue != nil {
			return []Node{node.ReturnValue}
		}
	}
	return nil
}

// Inspect traverses the tree rooted at n in pre-order. If f returns false
// the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, f)
	}
}

// TreeVisitor renders an indented tree of the AST
type TreeVisitor struct {
	BaseVisitor
	buffer        strings.Builder
	indent        int
	withPositions bool
}

// NewTreeVisitor creates a new tree visitor. With positions enabled every
// line carries the line:column of its node.
func NewTreeVisitor(withPositions bool) *TreeVisitor {
	return &TreeVisitor{withPositions: withPositions}
}

// String returns the rendered tree
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) line(n Node, format string, args ...any) {
	tv.buffer.WriteString(strings.Repeat("  ", tv.indent))
	fmt.Fprintf(&tv.buffer, format, args...)
	if tv.withPositions {
		fmt.Fprintf(&tv.buffer, " @%s", n.Pos())
	}
	tv.buffer.WriteString("\n")
}

func (tv *TreeVisitor) VisitIdentifier(ident *Identifier) any {
	tv.line(ident, "Identifier %s", ident.Name)
	return nil
}

func (tv *TreeVisitor) VisitAssign(expr *AssignExpression) any {
	name := ""
	if expr.Name != nil {
		name = expr.Name.Name
	}
	tv.line(expr, "Assign %s", name)
	if expr.Value != nil {
		tv.indent++
		expr.Value.Accept(tv)
		tv.indent--
	}
	return nil
}

func (tv *TreeVisitor) VisitValue(expr *ValueExpression) any {
	tv.line(expr, "Value %d", expr.Value)
	return nil
}

func (tv *TreeVisitor) VisitReturn(expr *ReturnExpression) any {
	tv.line(expr, "Return")
	if expr.ReturnValue != nil {
		tv.indent++
		expr.ReturnValue.Accept(tv)
		tv.indent--
	}
	return nil
}

// Tree renders a program as an indented tree
func Tree(program *Program, withPositions bool) string {
	tv := NewTreeVisitor(withPositions)
	for _, expr := range program.All() {
		expr.Accept(tv)
	}
	return tv.String()
}

// Snapshot is a plain-data view of an expression used for JSON and YAML
// output
type Snapshot struct {
	Kind    Kind      `json:"kind" yaml:"kind"`
	Token   string    `json:"token" yaml:"token"`
	Name    string    `json:"name,omitempty" yaml:"name,omitempty"`
	Int     *int64    `json:"int,omitempty" yaml:"int,omitempty"`
	Operand *Snapshot `json:"operand,omitempty" yaml:"operand,omitempty"`
	Line    int       `json:"line" yaml:"line"`
	Column  int       `json:"column" yaml:"column"`
}

// SnapshotVisitor converts nodes into snapshots
type SnapshotVisitor struct{}

func (sv SnapshotVisitor) snapshot(expr Expression) *Snapshot {
	if expr == nil {
		return nil
	}
	s, _ := expr.Accept(sv).(*Snapshot)
	return s
}

func (sv SnapshotVisitor) base(n Node, kind Kind) *Snapshot {
	pos := n.Pos()
	return &Snapshot{Kind: kind, Token: n.TokenLiteral(), Line: pos.Line, Column: pos.Column}
}

func (sv SnapshotVisitor) VisitIdentifier(ident *Identifier) any {
	s := sv.base(ident, KindIdentifier)
	s.Name = ident.Name
	return s
}

func (sv SnapshotVisitor) VisitAssign(expr *AssignExpression) any {
	s := sv.base(expr, KindAssign)
	if expr.Name != nil {
		s.Name = expr.Name.Name
	}
	s.Operand = sv.snapshot(expr.Value)
	return s
}

func (sv SnapshotVisitor) VisitValue(expr *ValueExpression) any {
	s := sv.base(expr, KindValue)
	value := expr.Value
	s.Int = &value
	return s
}

func (sv SnapshotVisitor) VisitReturn(expr *ReturnExpression) any {
	s := sv.base(expr, KindReturn)
	s.Operand = sv.snapshot(expr.ReturnValue)
	return s
}

// Snapshots converts every expression of a program
func Snapshots(program *Program) []*Snapshot {
	var sv SnapshotVisitor
	out := make([]*Snapshot, 0, program.Len())
	for _, expr := range program.All() {
		out = append(out, sv.snapshot(expr))
	}
	return out
}
