package prompt

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
)

// FormLines reads letter input through an interactive form that enforces the
// character cap while typing and shows validation errors inline.
type FormLines struct {
	// Accessible swaps the full-screen form for plain prompts, for screen readers.
	Accessible bool
}

func (f FormLines) ReadLine(ctx context.Context, p LinePrompt) (string, error) {
	var value string
	input := huh.NewInput().
		Title(p.Title).
		Value(&value).
		Validate(func(s string) error {
			return ValidateLetters(s, p.Max)
		})
	if p.Max > 0 {
		input = input.CharLimit(p.Max)
	}

	err := huh.NewForm(huh.NewGroup(input)).
		WithAccessible(f.Accessible).
		RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return "", ErrInterrupted
	}
	return value, err
}
