// Package crosscheck compares rubic's reading of a source with the
// tree-sitter Ruby grammar. Both sides are reduced to the kind of each
// top-level expression.
package crosscheck

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
	mdwlog "github.com/msto63/rubic/foundation/core/log"
	"github.com/msto63/rubic/foundation/rubic"
	"github.com/msto63/rubic/foundation/rubic/ast"
)

// tree-sitter node types with a rubic counterpart
var referenceKinds = map[string]ast.Kind{
	"identifier": ast.KindIdentifier,
	"assignment": ast.KindAssign,
	"integer":    ast.KindValue,
	"return":     ast.KindReturn,
}

// Mismatch is a position where the two readings differ. An empty kind
// means that side has no expression at this index.
type Mismatch struct {
	Index     int      `json:"index" yaml:"index"`
	Rubic     ast.Kind `json:"rubic" yaml:"rubic"`
	Reference ast.Kind `json:"reference" yaml:"reference"`
	Line      int      `json:"line,omitempty" yaml:"line,omitempty"` // of the reference node, 1-based
}

// String describes the mismatch
func (m Mismatch) String() string {
	return fmt.Sprintf("#%d: rubic %s, tree-sitter %s", m.Index+1, orNone(m.Rubic), orNone(m.Reference))
}

// Report is the result of a comparison
type Report struct {
	Rubic           []ast.Kind `json:"rubic" yaml:"rubic"`
	Reference       []ast.Kind `json:"reference" yaml:"reference"`
	Mismatches      []Mismatch `json:"mismatches" yaml:"mismatches"`
	Diagnostics     []string   `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	ReferenceErrors bool       `json:"reference_errors" yaml:"reference_errors"`
}

// Agree reports whether both readings produced the same kinds
func (r *Report) Agree() bool {
	return len(r.Mismatches) == 0
}

// Summary returns a one-line verdict
func (r *Report) Summary() string {
	if r.Agree() {
		return fmt.Sprintf("agree on %d expression(s)", len(r.Rubic))
	}
	parts := make([]string, len(r.Mismatches))
	for i, m := range r.Mismatches {
		parts[i] = m.String()
	}
	return fmt.Sprintf("%d mismatch(es): %s", len(r.Mismatches), strings.Join(parts, "; "))
}

// Checker runs comparisons with a given engine
type Checker struct {
	engine *rubic.Engine
	logger *mdwlog.Logger
}

// New creates a checker. A nil engine uses the defaults.
func New(engine *rubic.Engine, logger *mdwlog.Logger) *Checker {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	if engine == nil {
		engine = rubic.New(rubic.Options{Logger: logger})
	}
	return &Checker{engine: engine, logger: logger.WithField("component", "crosscheck")}
}

// Compare parses src with both front ends
func Compare(ctx context.Context, src string) (*Report, error) {
	return New(nil, nil).Compare(ctx, src)
}

// Compare parses src with both front ends
func (c *Checker) Compare(ctx context.Context, src string) (*Report, error) {
	result, err := c.engine.Parse(src)
	if err != nil {
		return nil, err
	}

	reference, lines, hasErrors, err := referenceKindsOf(ctx, src)
	if err != nil {
		return nil, mdwerror.Wrap(err, "tree-sitter parse failed").
			WithCode(mdwerror.CodeInternal).
			WithOperation("crosscheck")
	}

	report := &Report{
		Rubic:           result.Program.Kinds(),
		Reference:       reference,
		Diagnostics:     result.Messages,
		ReferenceErrors: hasErrors,
	}

	n := max(len(report.Rubic), len(report.Reference))
	for i := 0; i < n; i++ {
		var mine, theirs ast.Kind
		if i < len(report.Rubic) {
			mine = report.Rubic[i]
		}
		m := Mismatch{Index: i}
		if i < len(report.Reference) {
			theirs = report.Reference[i]
			m.Line = lines[i]
		}
		if mine != theirs {
			m.Rubic, m.Reference = mine, theirs
			report.Mismatches = append(report.Mismatches, m)
		}
	}

	c.logger.Debug("Cross-check completed", mdwlog.Fields{
		"rubic":      len(report.Rubic),
		"reference":  len(report.Reference),
		"mismatches": len(report.Mismatches),
	})

	return report, nil
}

// referenceKindsOf returns the kind and line of each top-level named node
// of the tree-sitter parse
func referenceKindsOf(ctx context.Context, src string) ([]ast.Kind, []int, bool, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(ruby.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, []byte(src))
	if err != nil {
		return nil, nil, false, err
	}

	root := tree.RootNode()
	count := int(root.NamedChildCount())
	kinds := make([]ast.Kind, 0, count)
	lines := make([]int, 0, count)

	for i := 0; i < count; i++ {
		node := root.NamedChild(i)
		if node.Type() == "comment" {
			continue
		}
		kinds = append(kinds, kindOf(node.Type()))
		lines = append(lines, int(node.StartPoint().Row)+1)
	}

	return kinds, lines, root.HasError(), nil
}

// kindOf maps a tree-sitter node type to a kind. Types without a
// counterpart keep their own name.
func kindOf(nodeType string) ast.Kind {
	if kind, ok := referenceKinds[nodeType]; ok {
		return kind
	}
	return ast.Kind(nodeType)
}

func orNone(k ast.Kind) string {
	if k == "" {
		return "nothing"
	}
	return string(k)
}
