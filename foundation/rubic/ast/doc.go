// File: doc.go
// Title: rubic AST Package Documentation
// Description: Abstract syntax tree for the rubic language front end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST package

/*
Package ast defines the abstract syntax tree produced by the rubic parser.

The expression set is closed and sized to the grammar the parser accepts:

  - Identifier        foo, empty?, save!
  - AssignExpression  x = 5
  - ValueExpression   42
  - ReturnExpression  return x, or a bare return

A Program holds the top-level expressions in source order. Nodes can be
traversed with a Visitor or with Inspect; Tree and Snapshots render a
program for humans and for JSON/YAML encoders.
*/
package ast
