package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the operator aborts input with Ctrl-C or
// Ctrl-D, or when the input stream ends.
var ErrInterrupted = errors.New("input interrupted")

// KeyCode classifies a single key press.
type KeyCode int

const (
	// KeyRune is a printable character, carried in Key.Rune.
	KeyRune KeyCode = iota
	// KeyEnter submits without a character.
	KeyEnter
	// KeyInterrupt is Ctrl-C or Ctrl-D.
	KeyInterrupt
	// KeyOther is anything else: control characters, escape sequences.
	KeyOther
)

type Key struct {
	Code KeyCode
	Rune rune
}

// KeyReader reads one key press at a time.
type KeyReader interface {
	ReadKey(ctx context.Context) (Key, error)
}

// LinePrompt describes one line of letter input.
type LinePrompt struct {
	Title string
	// Max caps the number of characters. Zero means no cap.
	Max int
}

// LineReader shows a prompt and reads one line of input.
type LineReader interface {
	ReadLine(ctx context.Context, p LinePrompt) (string, error)
}

func keyFromRune(r rune) Key {
	switch r {
	case '\r', '\n':
		return Key{Code: KeyEnter}
	case 0x03, 0x04:
		return Key{Code: KeyInterrupt}
	}
	if r == utf8.RuneError || r < ' ' || r == 0x7f {
		return Key{Code: KeyOther, Rune: r}
	}
	return Key{Code: KeyRune, Rune: r}
}

// decodeKey turns the bytes of one raw terminal read into a key. Multi-byte
// escape sequences (arrows, function keys) arrive in a single read.
func decodeKey(b []byte) Key {
	if len(b) == 0 {
		return Key{Code: KeyOther}
	}
	if b[0] == 0x1b {
		return Key{Code: KeyOther, Rune: 0x1b}
	}
	r, _ := utf8.DecodeRune(b)
	return keyFromRune(r)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalKeys reads single key presses from a terminal in raw mode, so no
// Enter is needed after a letter.
type TerminalKeys struct {
	in *os.File
}

func NewTerminalKeys(in *os.File) *TerminalKeys {
	return &TerminalKeys{in: in}
}

func (k *TerminalKeys) ReadKey(ctx context.Context) (Key, error) {
	if err := ctx.Err(); err != nil {
		return Key{}, err
	}
	fd := int(k.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return Key{}, fmt.Errorf("term.MakeRaw: %w", err)
	}
	defer term.Restore(fd, state)

	var buf [8]byte
	n, err := k.in.Read(buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Key{}, ErrInterrupted
		}
		return Key{}, err
	}
	return decodeKey(buf[:n]), nil
}

// StreamConsole reads keys and lines from a plain stream such as a pipe. Every
// rune of the stream is one key press and a newline is Enter, except that a
// newline right after a printable key only ends that key's line. So both
// "c\n\na\n" and "c\na" pin the first and third slots when read key by key.
// Keys and lines share one buffer, so every phase can be fed from the same
// input.
//
// Reads block on a background goroutine and give up as soon as ctx is done. A
// read abandoned that way is picked up by the next call, so no input is lost.
type StreamConsole struct {
	in  *bufio.Reader
	out io.Writer

	pending chan readResult
	err     error
	// afterKey is set after a printable key, afterCR after a carriage return.
	// Either makes the next newline a separator rather than Enter.
	afterKey bool
	afterCR  bool
}

type readResult struct {
	r   rune
	err error
}

func NewStreamConsole(in io.Reader, out io.Writer) *StreamConsole {
	return &StreamConsole{in: bufio.NewReader(in), out: out}
}

func (s *StreamConsole) readRune(ctx context.Context) (rune, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			r, _, err := s.in.ReadRune()
			ch <- readResult{r: r, err: err}
		}()
		s.pending = ch
	}
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-s.pending:
		s.pending = nil
		if res.err != nil {
			s.err = res.err
		}
		return res.r, res.err
	}
}

// next returns the next rune, dropping a line separator left by the previous
// key.
func (s *StreamConsole) next(ctx context.Context) (rune, error) {
	for {
		r, err := s.readRune(ctx)
		if err != nil {
			return 0, err
		}
		switch {
		case r == '\n' && (s.afterKey || s.afterCR):
			s.afterKey, s.afterCR = false, false
			continue
		case r == '\r' && s.afterKey:
			s.afterKey, s.afterCR = false, true
			continue
		}
		s.afterKey, s.afterCR = false, false
		return r, nil
	}
}

func (s *StreamConsole) ReadKey(ctx context.Context) (Key, error) {
	if err := ctx.Err(); err != nil {
		return Key{}, err
	}
	r, err := s.next(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Key{}, ErrInterrupted
		}
		return Key{}, err
	}
	key := keyFromRune(r)
	s.afterCR = r == '\r'
	s.afterKey = key.Code == KeyRune
	return key, nil
}

func (s *StreamConsole) ReadLine(ctx context.Context, p LinePrompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.Title != "" {
		fmt.Fprintln(s.out, p.Title)
	}

	var sb strings.Builder
	r, err := s.next(ctx)
	for err == nil && r != '\n' {
		sb.WriteRune(r)
		r, err = s.readRune(ctx)
	}
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if sb.Len() == 0 {
			return "", ErrInterrupted
		}
	}
	return strings.TrimRight(sb.String(), "\r"), nil
}
