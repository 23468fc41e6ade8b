package cmd

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/msto63/rubic/foundation/rubic"
	"github.com/msto63/rubic/foundation/rubic/ast"
	"github.com/msto63/rubic/foundation/rubic/parser"
	"github.com/msto63/rubic/internal/tui"
)

var (
	parseEval       string
	parseOutput     string
	parsePositions  bool
	parseSilentSkip bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Print the expression tree and diagnostics",
	Long: `Parses the source and prints the expression tree. Diagnostics go to
stderr; the exit code is 1 when there are any.

Output formats:
  text  - indented tree (default)
  json  - expressions and diagnostics as JSON
  yaml  - expressions and diagnostics as YAML
  dump  - Go structure dump of the program

Examples:
  rubic parse program.rb
  rubic parse -e "x = 5; return x" --positions
  rubic parse --output dump program.rb`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "source text instead of a file")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "text", "output format: text, json, yaml or dump")
	parseCmd.Flags().BoolVar(&parsePositions, "positions", false, "show line:column of every node")
	parseCmd.Flags().BoolVar(&parseSilentSkip, "silent-skip", false, "do not report tokens that start no expression")
}

// parseDocument is the structured output of the parse command
type parseDocument struct {
	Program     []*ast.Snapshot     `json:"program" yaml:"program"`
	Diagnostics []parser.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := checkOutput(parseOutput, "text", "json", "yaml", "dump"); err != nil {
		return err
	}

	src, err := readSource(cmd, args, parseEval)
	if err != nil {
		return err
	}

	e := engine
	if parseSilentSkip {
		opts := engine.Options()
		opts.SilentSkip = true
		e = rubic.New(opts)
	}

	result, err := e.Parse(src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch parseOutput {
	case "json", "yaml":
		diags := result.Diagnostics
		if diags == nil {
			diags = []parser.Diagnostic{}
		}
		if err := writeStructured(out, parseOutput, parseDocument{
			Program:     ast.Snapshots(result.Program),
			Diagnostics: diags,
		}); err != nil {
			return err
		}
	case "dump":
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, DisableMethods: true, SortKeys: true}
		cfg.Fdump(out, result.Program.Expressions())
	default:
		fmt.Fprint(out, ast.Tree(result.Program, parsePositions))
	}

	printDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)
	return result.Err()
}

func printDiagnostics(w io.Writer, diags []parser.Diagnostic) {
	for _, d := range diags {
		line := tui.ErrorMessageStyle.Render(d.Token.Position() + ": " + d.Message)
		if d.Hint != "" {
			line += " " + tui.HintStyle.Render("("+d.Hint+")")
		}
		fmt.Fprintln(w, line)
	}
}
