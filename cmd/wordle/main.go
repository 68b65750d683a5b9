package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"crosswarped.com/wordle/internal/logging"
	"crosswarped.com/wordle/internal/prompt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if code := exitCode(os.Stderr, err); code != 0 {
		os.Exit(code)
	}
}

// exitCode maps the command's error to a process exit status: 130 when the
// operator interrupted input, 1 for anything else, which is logged to errOut.
func exitCode(errOut io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrInterrupted), errors.Is(err, context.Canceled):
		return 130
	}
	log := logging.New(errOut, false)
	log.Error().Err(err).Msg("command failed")
	return 1
}
