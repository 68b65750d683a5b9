// Package bootstrap makes sure the word list exists on disk before a run,
// downloading it once when it is missing.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// ErrUnexpectedStatus is returned when the word list server answers with a
// non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status")

const DefaultTimeout = 30 * time.Second

type Fetcher struct {
	Client *http.Client
	// Warn receives the notice shown before a download. Nil disables it.
	Warn io.Writer
	// Color highlights the notice.
	Color bool
	Log   zerolog.Logger
}

func NewFetcher(log zerolog.Logger, warn io.Writer, useColor bool) *Fetcher {
	return &Fetcher{
		Client: &http.Client{Timeout: DefaultTimeout},
		Warn:   warn,
		Color:  useColor,
		Log:    log,
	}
}

// Ensure downloads url to path unless path already exists. The file appears
// atomically: a partial download never leaves a truncated list behind.
func (f *Fetcher) Ensure(ctx context.Context, path, url string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Stat: %w", err)
	}

	f.warn("Word list %s not found, downloading it from %s\n", path, url)
	f.Log.Info().Str("path", path).Str("url", url).Msg("fetching word list")

	start := time.Now()
	n, err := f.download(ctx, path, url)
	if err != nil {
		return fmt.Errorf("fetching word list from %s: %w", url, err)
	}
	f.Log.Info().Int64("bytes", n).Dur("took", time.Since(start)).Msg("word list saved")
	return nil
}

func (f *Fetcher) warn(format string, args ...any) {
	if f.Warn == nil {
		return
	}
	c := color.New(color.FgYellow, color.Bold)
	if !f.Color {
		c.DisableColor()
	}
	c.Fprintf(f.Warn, format, args...)
}

func (f *Fetcher) download(ctx context.Context, path, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("http.NewRequest: %w", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("os.MkdirAll: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".words-*")
	if err != nil {
		return 0, fmt.Errorf("os.CreateTemp: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("io.Copy: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("tmp.Close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("os.Rename: %w", err)
	}
	return n, nil
}
