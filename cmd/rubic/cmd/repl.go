package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/rubic/foundation/core/log"
	"github.com/msto63/rubic/internal/history"
	"github.com/msto63/rubic/internal/tui/repl"
)

var (
	replPlain     bool
	replNoHistory bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	Long: `Reads one line at a time, prints its tokens and the parse result.
Type the exit word (default "exit") or press Ctrl+D to leave.

The full-screen shell is used on a terminal; --plain or piped input
switches to line mode.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&replPlain, "plain", false, "line mode without the full-screen interface")
	replCmd.Flags().BoolVar(&replNoHistory, "no-history", false, "do not read or record history")
}

func runREPL(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *history.Store
	if !replNoHistory {
		s, err := history.Open(appConfig.REPL.HistoryPath)
		if err != nil {
			appLogger.Warn("History disabled", mdwlog.Fields{"path": appConfig.REPL.HistoryPath, "error": err.Error()})
		} else {
			store = s
			defer store.Close()
		}
	}

	ev := repl.NewEvaluator(engine, appConfig.REPL, store, appLogger)

	if replPlain || !interactive(cmd) {
		return repl.RunPlain(ctx, ev, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return repl.Run(ctx, ev)
}

// interactive reports whether the command reads from and writes to a terminal
func interactive(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !isatty.IsTerminal(in.Fd()) {
		return false
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	return ok && isatty.IsTerminal(out.Fd())
}
