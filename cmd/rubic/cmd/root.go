package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
	mdwlog "github.com/msto63/rubic/foundation/core/log"
	"github.com/msto63/rubic/foundation/rubic"
	"github.com/msto63/rubic/pkg/core/config"
	"github.com/msto63/rubic/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	appConfig *config.Config
	appLogger *mdwlog.Logger
	engine    *rubic.Engine
)

var rootCmd = &cobra.Command{
	Use:   "rubic",
	Short: "rubic - lexer and parser for a Ruby subset",
	Long: `rubic reads a small subset of Ruby: identifiers, integer literals,
assignments and return, separated by newlines or semicolons.

Commands:
  lex      - print the token stream
  parse    - print the expression tree and diagnostics
  check    - compare the parse with the tree-sitter Ruby grammar
  repl     - interactive shell
  serve    - HTTP and WebSocket playground
  history  - show, search or prune the REPL history`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	// diagnostics have already been printed
	if !mdwerror.HasCode(err, mdwerror.CodeSyntax) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $RUBIC_CONFIG, ./rubic.toml, ~/.rubic/rubic.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console, text or json")
}

// setup loads the configuration and builds the logger and the engine
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if verbose {
		appConfig.General.LogLevel = "debug"
	}
	if logFormat != "" {
		appConfig.General.LogFormat = logFormat
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	logCfg := logging.ConfigFromGeneral("rubic", appConfig.General)
	logCfg.Output = cmd.ErrOrStderr()
	appLogger = logging.NewLogger(logCfg)
	mdwlog.SetDefault(appLogger)

	engine = rubic.New(rubic.Options{
		Logger:          appLogger,
		MaxSourceLength: appConfig.Parser.MaxSourceLength,
		SilentSkip:      appConfig.Parser.SilentSkip,
	})

	appLogger.Debug("Configuration loaded", mdwlog.Fields{"path": appConfig.Path})
	return nil
}

// readSource returns the -e text, the named file, or stdin for "-" or no
// argument
func readSource(cmd *cobra.Command, args []string, eval string) (string, error) {
	if eval != "" {
		if len(args) > 0 {
			return "", mdwerror.New("use either --eval or a file, not both").WithCode(mdwerror.CodeInvalidInput)
		}
		return eval, nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", mdwerror.Wrap(err, "read stdin").WithCode(mdwerror.CodeInvalidInput)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return "", mdwerror.Wrapf(err, "read %s", args[0]).WithCode(code)
	}
	return string(data), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

func checkOutput(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return mdwerror.Newf("unknown output format %q, expected one of %s", format, strings.Join(allowed, ", ")).
		WithCode(mdwerror.CodeInvalidInput)
}
