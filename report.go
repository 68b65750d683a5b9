package wordle

import (
	"fmt"
	"io"
	"strings"
)

// Outcome classifies the size of a filter result.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeUnique
	OutcomeMany
)

// OutcomeOf classifies words.
func OutcomeOf(words WordList) Outcome {
	switch len(words) {
	case 0:
		return OutcomeNone
	case 1:
		return OutcomeUnique
	default:
		return OutcomeMany
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeUnique:
		return "unique"
	case OutcomeMany:
		return "many"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Report writes the result of a filter pass to w.
func Report(w io.Writer, words WordList) error {
	var err error
	switch OutcomeOf(words) {
	case OutcomeNone:
		_, err = fmt.Fprintln(w, "Oh no! No words found with your filters!")
	case OutcomeUnique:
		_, err = fmt.Fprintf(w, "Your word is: %s\n", strings.ToUpper(words[0]))
	case OutcomeMany:
		var sb strings.Builder
		sb.WriteString("Possible words are:\n\n")
		for _, word := range words {
			sb.WriteString(strings.ToUpper(word))
			sb.WriteByte('\n')
		}
		_, err = io.WriteString(w, sb.String())
	}
	return err
}
