package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"crosswarped.com/wordle/internal/bootstrap"
	"crosswarped.com/wordle/internal/config"
	"crosswarped.com/wordle/internal/logging"
	"crosswarped.com/wordle/internal/prompt"
	"crosswarped.com/wordle/internal/solver"
	"crosswarped.com/wordle/internal/source"
)

const version = "0.1.0-dev"

// app holds the streams and settings of one invocation.
type app struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	cfgFile string
	v       *viper.Viper
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, v: viper.New()}

	cmd := &cobra.Command{
		Use:   "wordle",
		Short: "Narrow a five-letter word list with Wordle feedback",
		Long: `wordle asks for the letters you already know: the ones in the right
place, the ones in the word but misplaced and, if more than one word is left,
the ones not in the word at all. It then lists the words that still fit.

When input is piped, each position takes one line: a letter, or an empty
line to leave it open. The letter lines that follow are read one per line.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.wordle.yaml)")
	config.RegisterFlags(cmd.Flags())
	if err := config.Bind(a.v, cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

// initConfig loads the config file, if any.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".wordle")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func (a *app) provider(cfg config.Config, log zerolog.Logger) source.Provider {
	if cfg.BigQuery.Enabled() {
		return &source.BigQuery{
			Project:  cfg.BigQuery.Project,
			Table:    cfg.BigQuery.Table,
			Column:   cfg.BigQuery.Column,
			Location: cfg.BigQuery.Location,
			Log:      log,
		}
	}
	fetcher := bootstrap.NewFetcher(log, a.errOut, cfg.Color)
	fetcher.Client.Timeout = cfg.FetchTimeout
	return &source.File{Path: cfg.WordsFile, URL: cfg.WordsURL, Fetcher: fetcher, Log: log}
}

// console picks raw single-key input on a terminal and plain stream input
// otherwise.
func (a *app) console(cfg config.Config) (prompt.KeyReader, prompt.LineReader, bool) {
	stream := prompt.NewStreamConsole(a.in, a.out)
	f, ok := a.in.(*os.File)
	if !ok || !prompt.IsTerminal(f) {
		return stream, stream, false
	}
	var lines prompt.LineReader = stream
	if cfg.Forms {
		lines = prompt.FormLines{}
	}
	return prompt.NewTerminalKeys(f), lines, true
}

func (a *app) run(ctx context.Context) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log := logging.New(a.errOut, cfg.Verbose)
	if used := a.v.ConfigFileUsed(); used != "" {
		log.Debug().Str("file", used).Msg("using config file")
	}

	words, err := a.provider(cfg, log).Words(ctx)
	if err != nil {
		return fmt.Errorf("loading word list: %w", err)
	}
	log.Debug().Int("words", len(words)).Msg("word list loaded")

	keys, lines, interactive := a.console(cfg)
	_, err = solver.Run(ctx, solver.Options{
		Words:     words,
		Collector: prompt.NewCollector(keys, lines, a.out, log),
		Out:       a.out,
		Wait:      cfg.Wait && interactive,
		Log:       log,
	})
	return err
}
