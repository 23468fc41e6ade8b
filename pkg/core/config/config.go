package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	mdwconfig "github.com/msto63/rubic/foundation/core/config"
	mdwerror "github.com/msto63/rubic/foundation/core/error"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
	Server  ServerConfig  `toml:"server" yaml:"server"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds front end settings
type ParserConfig struct {
	SilentSkip      bool `toml:"silent_skip" yaml:"silent_skip"`
	MaxSourceLength int  `toml:"max_source_length" yaml:"max_source_length"`
}

// REPLConfig holds interactive shell settings
type REPLConfig struct {
	Prompt       string `toml:"prompt" yaml:"prompt"`
	ExitWord     string `toml:"exit_word" yaml:"exit_word"`
	HistoryPath  string `toml:"history_path" yaml:"history_path"`
	HistoryLimit int    `toml:"history_limit" yaml:"history_limit"`
	ShowTokens   *bool  `toml:"show_tokens" yaml:"show_tokens"`
	ShowAST      *bool  `toml:"show_ast" yaml:"show_ast"`
}

// ServerConfig holds playground server settings
type ServerConfig struct {
	Host         string   `toml:"host" yaml:"host"`
	Port         int      `toml:"port" yaml:"port"`
	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
	CORSOrigins  []string `toml:"cors_origins" yaml:"cors_origins"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "RUBIC"

	// EnvConfig names the variable holding an explicit config path
	EnvConfig = "RUBIC_CONFIG"

	maxSourceLimit = 64 << 20
)

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandPaths()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = mdwconfig.ExpandPath(path)

	var cfg Config
	if err := mdwconfig.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	cfg.Path = path

	return cfg.finish(false)
}

// LoadFromEnv loads a .env file from the working directory, locates the
// configuration (RUBIC_CONFIG, then ./rubic.toml, ./rubic.yaml and
// ~/.rubic/rubic.toml) and applies RUBIC_* overrides. Without a file the
// defaults are used.
func LoadFromEnv() (*Config, error) {
	if _, err := mdwconfig.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	path := os.Getenv(EnvConfig)
	if path == "" {
		found, err := mdwconfig.FindConfigFile(mdwconfig.DefaultDiscoveryOptions("rubic"))
		if err != nil && !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			return nil, err
		}
		path = found
	}

	var cfg Config
	if path != "" {
		path = mdwconfig.ExpandPath(path)
		if err := mdwconfig.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
		cfg.Path = path
	}

	return cfg.finish(true)
}

func (c *Config) finish(withEnv bool) (*Config, error) {
	c.applyDefaults()
	if withEnv {
		c.ApplyEnv()
	}
	c.expandPaths()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Parser
	if c.Parser.MaxSourceLength == 0 {
		c.Parser.MaxSourceLength = 1 << 20
	}

	// REPL
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = ">> "
	}
	if c.REPL.ExitWord == "" {
		c.REPL.ExitWord = "exit"
	}
	if c.REPL.HistoryPath == "" {
		c.REPL.HistoryPath = "~/.rubic/history.db"
	}
	if c.REPL.HistoryLimit == 0 {
		c.REPL.HistoryLimit = 500
	}
	if c.REPL.ShowTokens == nil {
		c.REPL.ShowTokens = boolPtr(true)
	}
	if c.REPL.ShowAST == nil {
		c.REPL.ShowAST = boolPtr(false)
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8087
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 10 * time.Second
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
}

// ApplyEnv applies RUBIC_LOG_LEVEL, RUBIC_LOG_FORMAT, RUBIC_SILENT_SKIP,
// RUBIC_SERVER_PORT and RUBIC_HISTORY_PATH
func (c *Config) ApplyEnv() {
	env := mdwconfig.Env{Prefix: EnvPrefix}

	if v, ok := env.String("log_level"); ok {
		c.General.LogLevel = v
	}
	if v, ok := env.String("log_format"); ok {
		c.General.LogFormat = v
	}
	if v, ok := env.Bool("silent_skip"); ok {
		c.Parser.SilentSkip = v
	}
	if v, ok := env.Int("server_port"); ok {
		c.Server.Port = v
	}
	if v, ok := env.String("history_path"); ok {
		c.REPL.HistoryPath = v
	}
}

// expandPaths expands environment variables and ~ in path values
func (c *Config) expandPaths() {
	c.REPL.HistoryPath = mdwconfig.ExpandPath(c.REPL.HistoryPath)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	var r mdwconfig.ValidationResult

	r.OneOf("general.log_level", c.General.LogLevel, "trace", "debug", "info", "warn", "warning", "error", "fatal")
	r.OneOf("general.log_format", c.General.LogFormat, "console", "text", "logfmt", "json")
	r.Range("parser.max_source_length", c.Parser.MaxSourceLength, 1, maxSourceLimit)
	r.Require("repl.prompt", c.REPL.Prompt)
	r.Require("repl.exit_word", c.REPL.ExitWord)
	r.Range("repl.history_limit", c.REPL.HistoryLimit, 1, 1_000_000)
	r.Require("server.host", c.Server.Host)
	r.Range("server.port", c.Server.Port, 1, 65535)
	if c.Server.ReadTimeout.Duration < 0 {
		r.Addf("server.read_timeout", "must not be negative, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout.Duration < 0 {
		r.Addf("server.write_timeout", "must not be negative, got %s", c.Server.WriteTimeout)
	}

	if err := r.Err(); err != nil {
		if c.Path != "" {
			if mdwErr, ok := err.(*mdwerror.Error); ok {
				return mdwErr.WithDetail("path", c.Path)
			}
		}
		return err
	}
	return nil
}

// ServerAddress returns host:port of the playground server
func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Encode renders the configuration in the given format
func (c *Config) Encode(format mdwconfig.Format) ([]byte, error) {
	data, err := mdwconfig.Encode(c, format)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func boolPtr(v bool) *bool {
	return &v
}

// Tokens reports whether the REPL prints the token stream
func (r REPLConfig) Tokens() bool {
	return r.ShowTokens == nil || *r.ShowTokens
}

// AST reports whether the REPL prints the expression tree with positions
func (r REPLConfig) AST() bool {
	return r.ShowAST != nil && *r.ShowAST
}
