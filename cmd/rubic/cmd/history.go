package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/rubic/internal/history"
	"github.com/msto63/rubic/internal/tui"
)

var (
	historyLimit  int
	historySearch string
	historyPrune  int
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show, search or prune the REPL history",
	Long: `Lists recorded REPL lines, newest first.

Examples:
  rubic history --limit 20
  rubic history --search return
  rubic history --prune 100`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show (0 for all)")
	historyCmd.Flags().StringVarP(&historySearch, "search", "s", "", "only entries containing this text")
	historyCmd.Flags().IntVar(&historyPrune, "prune", -1, "keep only the newest N entries")
	historyCmd.Flags().StringVarP(&historyFormat, "output", "o", "table", "output format: table, json or yaml")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := checkOutput(historyFormat, "table", "json", "yaml"); err != nil {
		return err
	}

	store, err := history.Open(appConfig.REPL.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("prune") {
		removed, err := store.Prune(ctx, historyPrune)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "removed %d entries\n", removed)
		return nil
	}

	var entries []history.Entry
	if historySearch != "" {
		entries, err = store.Search(ctx, historySearch, historyLimit)
	} else {
		entries, err = store.Recent(ctx, historyLimit)
	}
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []history.Entry{}
	}

	if historyFormat != "table" {
		return writeStructured(out, historyFormat, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "no history")
		return nil
	}
	fmt.Fprintln(out, historyTable(entries))
	return nil
}

func historyTable(entries []history.Entry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.CreatedAt.Local().Format(time.DateTime),
			shortSession(e.SessionID),
			strconv.Itoa(e.Expressions),
			strconv.Itoa(e.Diagnostics),
			strings.ReplaceAll(e.Source, "\n", `\n`),
		}
	}

	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("TIME", "SESSION", "EXPR", "ERR", "SOURCE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.TableHeaderStyle
			}
			return tui.TableCellStyle
		}).
		String()
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
