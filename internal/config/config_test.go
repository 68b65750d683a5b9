package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) (*viper.Viper, *pflag.FlagSet) {
	t.Helper()
	flags := pflag.NewFlagSet("wordle", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	v := viper.New()
	require.NoError(t, Bind(v, flags))
	return v, flags
}

func TestLoad_Defaults(t *testing.T) {
	v, _ := newFlags(t)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultWordsFile, cfg.WordsFile)
	assert.Equal(t, DefaultWordsURL, cfg.WordsURL)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.Wait)
	assert.False(t, cfg.Forms)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.BigQuery.Enabled())
	assert.Equal(t, "word", cfg.BigQuery.Column)
}

func TestLoad_Flags(t *testing.T) {
	v, _ := newFlags(t, "--words", "lists/five.txt", "--url", "", "-v", "--wait=false", "--interactive-forms")
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "lists/five.txt", cfg.WordsFile)
	assert.Equal(t, "", cfg.WordsURL)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Wait)
	assert.True(t, cfg.Forms)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("WORDLE_WORDS_FILE", "/tmp/env-words.txt")
	t.Setenv("WORDLE_BIGQUERY_PROJECT", "xword-x")
	t.Setenv("WORDLE_BIGQUERY_TABLE", "lexicon.words")

	v, _ := newFlags(t)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env-words.txt", cfg.WordsFile)
	assert.True(t, cfg.BigQuery.Enabled())
	assert.Equal(t, "lexicon.words", cfg.BigQuery.Table)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  file: from-file.txt\ncolor: false\n"), 0o644))

	v, _ := newFlags(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "from-file.txt", cfg.WordsFile)
	assert.False(t, cfg.Color)
}

func TestLoad_FlagBeatsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  file: from-file.txt\n"), 0o644))

	v, _ := newFlags(t, "--words", "from-flag.txt")
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.txt", cfg.WordsFile)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"file", Config{WordsFile: "words.txt"}, ""},
		{"no source", Config{}, "no word list"},
		{"bigquery without table", Config{BigQuery: BigQuery{Project: "p"}}, "--bigquery-table is required"},
		{"bigquery", Config{BigQuery: BigQuery{Project: "p", Table: "d.t"}}, ""},
		{"negative timeout", Config{WordsFile: "w", FetchTimeout: -time.Second}, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
