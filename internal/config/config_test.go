package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("db-file", "", "")
	fs.Int("max-query-length", 0, "")
	fs.String("output", "", "")
	fs.String("log-level", "", "")
	fs.String("error-output", "", "")
	fs.Bool("banner", true, "")
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coldb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileEnvFlagPrecedence(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
db_file: from-file.db
max_query_length: 512
output: table
prompt: "> "
banner: false
`)

	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "from-file.db", cfg.DBFile)
	assert.Equal(t, 512, cfg.MaxQueryLength)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.False(t, cfg.Banner)

	t.Setenv("COLDB_DB_FILE", "from-env.db")
	t.Setenv("COLDB_LOG_LEVEL", "debug")
	cfg, _, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.DBFile)
	assert.Equal(t, "debug", cfg.LogLevel)

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--db-file", "from-flag.db", "--max-query-length", "64"}))
	cfg, _, err = Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.db", cfg.DBFile)
	assert.Equal(t, 64, cfg.MaxQueryLength)
	assert.Equal(t, OutputTable, cfg.Output, "unset flags do not override the file")
	assert.Equal(t, ErrorOutputStderr, cfg.ErrorOutput)
}

func TestLoad_ErrorOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("COLDB_ERROR_OUTPUT", ErrorOutputStdout)
	cfg, _, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ErrorOutputStdout, cfg.ErrorOutput)

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--error-output", ErrorOutputStderr}))
	cfg, _, err = Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, ErrorOutputStderr, cfg.ErrorOutput)
}

func TestLoad_PicksUpFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("db_file: local.db\n"), 0o644))

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigFile, used)
	assert.Equal(t, "local.db", cfg.DBFile)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("COLDB_OUTPUT", "json")
	_, _, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		errSubstr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "table output", mutate: func(c *Config) { c.Output = OutputTable }},
		{name: "empty db file", mutate: func(c *Config) { c.DBFile = " " }, errSubstr: "db_file is required"},
		{name: "zero max length", mutate: func(c *Config) { c.MaxQueryLength = 0 }, errSubstr: "max_query_length"},
		{name: "bad output", mutate: func(c *Config) { c.Output = "csv" }, errSubstr: "unknown output"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, errSubstr: "unknown log_level"},
		{name: "errors to stdout", mutate: func(c *Config) { c.ErrorOutput = ErrorOutputStdout }},
		{name: "bad error output", mutate: func(c *Config) { c.ErrorOutput = "file" }, errSubstr: "unknown error_output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("INFO")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	lvl, err = ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestLoggerContext(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
