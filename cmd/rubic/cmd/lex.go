package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/rubic/foundation/rubic/token"
	"github.com/msto63/rubic/internal/tui"
)

var (
	lexEval   string
	lexOutput string
)

var lexCmd = &cobra.Command{
	Use:   "lex [file|-]",
	Short: "Print the token stream",
	Long: `Tokenizes the source and prints one row per token.

Examples:
  rubic lex program.rb
  rubic lex -e "x = 5"
  echo "return x" | rubic lex --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "source text instead of a file")
	lexCmd.Flags().StringVarP(&lexOutput, "output", "o", "table", "output format: table, json or yaml")
}

func runLex(cmd *cobra.Command, args []string) error {
	if err := checkOutput(lexOutput, "table", "json", "yaml"); err != nil {
		return err
	}

	src, err := readSource(cmd, args, lexEval)
	if err != nil {
		return err
	}

	toks, err := engine.Tokenize(src)
	if err != nil {
		return err
	}

	if lexOutput != "table" {
		return writeStructured(cmd.OutOrStdout(), lexOutput, toks)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tokenTable(toks))
	return nil
}

// tokenTable renders tokens as a table coloured by category
func tokenTable(toks []token.Token) string {
	rows := make([][]string, len(toks))
	for i, tok := range toks {
		literal := tok.Display()
		if tok.Type == token.EOF {
			literal = ""
		}
		rows[i] = []string{tok.Position(), strconv.Itoa(tok.Offset), tok.Type.String(), literal}
	}

	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("POS", "OFFSET", "TYPE", "LITERAL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.TableHeaderStyle
			}
			if col == 2 && row >= 0 && row < len(toks) {
				return tui.TokenStyle(toks[row].Type).PaddingRight(2)
			}
			return tui.TableCellStyle
		}).
		String()
}
