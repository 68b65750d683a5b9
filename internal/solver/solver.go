// Package solver runs one interactive filtering session.
package solver

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"crosswarped.com/wordle"
	"crosswarped.com/wordle/pkg/primitives"
)

const exitPrompt = "\nPress any key to exit..."

// Collector gathers constraints from an operator.
type Collector interface {
	Positions(ctx context.Context) (wordle.Pattern, error)
	Present(ctx context.Context) (primitives.CharSet, error)
	Absent(ctx context.Context) (primitives.CharSet, error)
	WaitForKey(ctx context.Context, msg string) error
}

type Options struct {
	Words     wordle.WordList
	Collector Collector
	Out       io.Writer
	// Wait asks for a final key press before returning.
	Wait bool
	Log  zerolog.Logger
}

// Run asks for positions and present letters, filters, and only asks for absent
// letters when more than one candidate is left. It returns the final candidates.
func Run(ctx context.Context, opts Options) (wordle.WordList, error) {
	var c wordle.Constraints
	var err error

	if c.Positions, err = opts.Collector.Positions(ctx); err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}
	fmt.Fprintln(opts.Out)

	if c.Present, err = opts.Collector.Present(ctx); err != nil {
		return nil, fmt.Errorf("reading present letters: %w", err)
	}
	fmt.Fprintln(opts.Out)

	words := wordle.Filter(opts.Words, c)
	opts.Log.Debug().Stringer("constraints", &c).Int("candidates", len(words)).Msg("first pass")

	if len(words) > 1 {
		if c.Absent, err = opts.Collector.Absent(ctx); err != nil {
			return nil, fmt.Errorf("reading absent letters: %w", err)
		}
		fmt.Fprintln(opts.Out)

		if bad := c.Contradictions(); !bad.IsEmpty() {
			opts.Log.Debug().Str("letters", bad.String()).Msg("letters are both required and absent")
		}
		words = wordle.Filter(opts.Words, c)
		opts.Log.Debug().Stringer("constraints", &c).Int("candidates", len(words)).Msg("second pass")
	}

	if err := wordle.Report(opts.Out, words); err != nil {
		return nil, err
	}

	if opts.Wait {
		if err := opts.Collector.WaitForKey(ctx, exitPrompt); err != nil {
			return words, err
		}
	}
	return words, nil
}
