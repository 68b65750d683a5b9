package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"crosswarped.com/wordle"
	"crosswarped.com/wordle/pkg/primitives"
)

const (
	positionsTitle = "Input letters right in place: (empty if there is no right letter in that place)"
	presentTitle   = "Input letters right but not already in place: (directly next to each other) (empty if there are none)"
	absentTitle    = "Input letters that are not in the word: (directly next to each other) (empty if there are none)"
	wrongInput     = "Wrong Input! Try again..."
)

// Collector gathers constraints from an operator.
type Collector struct {
	keys  KeyReader
	lines LineReader
	out   io.Writer
	log   zerolog.Logger
}

func NewCollector(keys KeyReader, lines LineReader, out io.Writer, log zerolog.Logger) *Collector {
	return &Collector{keys: keys, lines: lines, out: out, log: log}
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

// Positions asks for the letter at each position in turn. A letter key fills
// the slot and moves on; Enter leaves it unconstrained. Other keys are ignored.
func (c *Collector) Positions(ctx context.Context) (wordle.Pattern, error) {
	var p wordle.Pattern
	fmt.Fprintln(c.out, positionsTitle)

	for i := range wordle.WordLength {
		fmt.Fprintf(c.out, "%s place: ", ordinal(i+1))
		r, err := c.readSlot(ctx)
		if err != nil {
			return p, err
		}
		if r == wordle.Unconstrained {
			fmt.Fprintln(c.out)
			continue
		}
		p[i] = r
		fmt.Fprintf(c.out, "%c\n", r)
	}
	c.log.Debug().Stringer("pattern", p).Msg("collected positions")
	return p, nil
}

// readSlot blocks until a letter or Enter is pressed.
func (c *Collector) readSlot(ctx context.Context) (rune, error) {
	for {
		key, err := c.keys.ReadKey(ctx)
		if err != nil {
			return wordle.Unconstrained, err
		}
		switch key.Code {
		case KeyEnter:
			return wordle.Unconstrained, nil
		case KeyInterrupt:
			return wordle.Unconstrained, ErrInterrupted
		case KeyRune:
			if r, ok := primitives.Fold(key.Rune); ok {
				return r, nil
			}
		}
		c.log.Debug().Int("code", int(key.Code)).Str("rune", string(key.Rune)).Msg("ignoring key")
	}
}

// Letters reads one line of letters, asking again until it is valid.
func (c *Collector) Letters(ctx context.Context, p LinePrompt) (primitives.CharSet, error) {
	for {
		line, err := c.lines.ReadLine(ctx, p)
		if err != nil {
			return primitives.CharSet{}, err
		}
		if err := ValidateLetters(line, p.Max); err != nil {
			c.log.Debug().Err(err).Str("input", line).Msg("rejected letters")
			fmt.Fprintln(c.out, wrongInput)
			continue
		}
		cs, err := primitives.ParseCharSet(line)
		if err != nil {
			return primitives.CharSet{}, err
		}
		return *cs, nil
	}
}

// Present asks for the letters in the word but out of place, at most one per
// position.
func (c *Collector) Present(ctx context.Context) (primitives.CharSet, error) {
	return c.Letters(ctx, LinePrompt{Title: presentTitle, Max: wordle.WordLength})
}

// Absent asks for the letters known not to be in the word.
func (c *Collector) Absent(ctx context.Context) (primitives.CharSet, error) {
	return c.Letters(ctx, LinePrompt{Title: absentTitle})
}

// WaitForKey shows msg and blocks until any key is pressed. End of input counts
// as a key press.
func (c *Collector) WaitForKey(ctx context.Context, msg string) error {
	fmt.Fprintln(c.out, msg)
	_, err := c.keys.ReadKey(ctx)
	if errors.Is(err, ErrInterrupted) {
		return nil
	}
	return err
}
