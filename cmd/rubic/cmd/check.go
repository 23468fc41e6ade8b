package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
	"github.com/msto63/rubic/internal/crosscheck"
	"github.com/msto63/rubic/internal/tui"
)

var (
	checkEval   string
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check [file|-]",
	Short: "Compare the parse with the tree-sitter Ruby grammar",
	Long: `Parses the source with rubic and with the tree-sitter Ruby grammar and
compares the kind of every top-level expression. The exit code is 1 when
the two readings differ.

Examples:
  rubic check program.rb
  rubic check -e "foo bar"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkEval, "eval", "e", "", "source text instead of a file")
	checkCmd.Flags().StringVarP(&checkFormat, "output", "o", "table", "output format: table, json or yaml")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := checkOutput(checkFormat, "table", "json", "yaml"); err != nil {
		return err
	}

	src, err := readSource(cmd, args, checkEval)
	if err != nil {
		return err
	}

	report, err := crosscheck.New(engine, appLogger).Compare(cmd.Context(), src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if checkFormat != "table" {
		if err := writeStructured(out, checkFormat, report); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, comparisonTable(report))
		fmt.Fprintln(out, report.Summary())
	}

	if !report.Agree() {
		return mdwerror.New(report.Summary()).
			WithCode(mdwerror.CodeSyntax).
			WithOperation("check")
	}
	return nil
}

func comparisonTable(report *crosscheck.Report) string {
	n := max(len(report.Rubic), len(report.Reference))
	differs := make(map[int]bool, len(report.Mismatches))
	for _, m := range report.Mismatches {
		differs[m.Index] = true
	}

	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{strconv.Itoa(i + 1), "-", "-"}
		if i < len(report.Rubic) {
			rows[i][1] = string(report.Rubic[i])
		}
		if i < len(report.Reference) {
			rows[i][2] = string(report.Reference[i])
		}
	}

	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("#", "RUBIC", "TREE-SITTER").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tui.TableHeaderStyle
			case differs[row]:
				return tui.ErrorMessageStyle.PaddingRight(2)
			default:
				return tui.TableCellStyle
			}
		}).
		String()
}
