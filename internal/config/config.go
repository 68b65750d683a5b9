// Package config resolves run settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultWordsFile = "words.txt"
	DefaultWordsURL  = "https://raw.githubusercontent.com/tabatkins/wordle-list/main/words"
	EnvPrefix        = "WORDLE"
)

// Config is passed explicitly to every component that needs it.
type Config struct {
	WordsFile    string
	WordsURL     string
	FetchTimeout time.Duration

	Verbose bool
	Color   bool
	// Forms switches letter entry to interactive forms.
	Forms bool
	// Wait asks for a final key press before exiting.
	Wait bool

	BigQuery BigQuery
}

type BigQuery struct {
	Project  string
	Table    string
	Column   string
	Location string
}

// Enabled reports whether words come from BigQuery instead of the file.
func (b BigQuery) Enabled() bool {
	return b.Project != ""
}

var envReplacer = strings.NewReplacer(".", "_", "-", "_")

// keys maps each setting to its flag name.
var keys = map[string]string{
	"words.file":        "words",
	"words.url":         "url",
	"words.timeout":     "timeout",
	"verbose":           "verbose",
	"color":             "color",
	"forms":             "interactive-forms",
	"wait":              "wait",
	"bigquery.project":  "bigquery-project",
	"bigquery.table":    "bigquery-table",
	"bigquery.column":   "bigquery-column",
	"bigquery.location": "bigquery-location",
}

// RegisterFlags adds a flag for every setting.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("words", DefaultWordsFile, "path of the word list")
	flags.String("url", DefaultWordsURL, "where to download the word list from when it is missing (empty disables)")
	flags.Duration("timeout", 30*time.Second, "timeout for downloading the word list")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.Bool("color", true, "highlight warnings")
	flags.Bool("interactive-forms", false, "use interactive forms for letter entry")
	flags.Bool("wait", true, "wait for a key press before exiting")
	flags.String("bigquery-project", "", "read words from BigQuery in this project instead of the file")
	flags.String("bigquery-table", "", "BigQuery table as dataset.table")
	flags.String("bigquery-column", "word", "BigQuery column holding the words")
	flags.String("bigquery-location", "US", "BigQuery job location")
}

// Bind wires flags and WORDLE_* environment variables into v.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, flag := range keys {
		f := flags.Lookup(flag)
		if f == nil {
			return fmt.Errorf("flag %q is not registered", flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("v.BindPFlag(%s): %w", key, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
	return nil
}

// Load reads the resolved settings out of v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		WordsFile:    v.GetString("words.file"),
		WordsURL:     v.GetString("words.url"),
		FetchTimeout: v.GetDuration("words.timeout"),
		Verbose:      v.GetBool("verbose"),
		Color:        v.GetBool("color"),
		Forms:        v.GetBool("forms"),
		Wait:         v.GetBool("wait"),
		BigQuery: BigQuery{
			Project:  v.GetString("bigquery.project"),
			Table:    v.GetString("bigquery.table"),
			Column:   v.GetString("bigquery.column"),
			Location: v.GetString("bigquery.location"),
		},
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if !c.BigQuery.Enabled() && c.WordsFile == "" {
		return fmt.Errorf("no word list: set --words or --bigquery-project")
	}
	if c.BigQuery.Enabled() && c.BigQuery.Table == "" {
		return fmt.Errorf("--bigquery-table is required with --bigquery-project")
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.FetchTimeout)
	}
	return nil
}
