// Package source provides the word lists a run filters.
package source

import (
	"context"

	"github.com/rs/zerolog"

	"crosswarped.com/wordle"
	"crosswarped.com/wordle/internal/bootstrap"
)

// Provider loads the candidate word list.
type Provider interface {
	Words(ctx context.Context) (wordle.WordList, error)
}

// File loads a line-delimited list from Path, downloading it from URL first if
// the file does not exist. An empty URL disables the download.
type File struct {
	Path    string
	URL     string
	Fetcher *bootstrap.Fetcher
	Log     zerolog.Logger
}

func (f *File) Words(ctx context.Context) (wordle.WordList, error) {
	if f.URL != "" && f.Fetcher != nil {
		if err := f.Fetcher.Ensure(ctx, f.Path, f.URL); err != nil {
			return nil, err
		}
	}
	return wordle.LoadFromFile(ctx, f.Path, f.Log)
}

// Static serves a fixed list.
type Static wordle.WordList

func (s Static) Words(context.Context) (wordle.WordList, error) {
	return wordle.WordList(s), nil
}
