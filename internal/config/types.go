// Package config loads coldb settings from defaults, a YAML file,
// COLDB_ environment variables and command-line flags.
package config

// Defaults.
const (
	DefaultDBFile         = "database.db"
	DefaultMaxQueryLength = 256
	DefaultPrompt         = "Enter SQL query: "
	DefaultOutput         = OutputPlain
	DefaultLogLevel       = "warn"
	DefaultErrorOutput    = ErrorOutputStderr
	DefaultConfigFile     = "coldb.yaml"
)

// Output modes for SELECT results.
const (
	OutputPlain = "plain"
	OutputTable = "table"
)

// Streams statement errors can be written to.
const (
	ErrorOutputStderr = "stderr"
	ErrorOutputStdout = "stdout"
)

// Config holds all coldb settings.
type Config struct {
	DBFile         string `koanf:"db_file"`
	MaxQueryLength int    `koanf:"max_query_length"`
	Prompt         string `koanf:"prompt"`
	HistoryFile    string `koanf:"history_file"`
	Output         string `koanf:"output"`
	LogLevel       string `koanf:"log_level"`
	ErrorOutput    string `koanf:"error_output"`
	Banner         bool   `koanf:"banner"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DBFile:         DefaultDBFile,
		MaxQueryLength: DefaultMaxQueryLength,
		Prompt:         DefaultPrompt,
		Output:         DefaultOutput,
		LogLevel:       DefaultLogLevel,
		ErrorOutput:    DefaultErrorOutput,
		Banner:         true,
	}
}
