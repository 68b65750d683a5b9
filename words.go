package wordle

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LoadWords reads a line-delimited word list. Lines are trimmed; blank lines and
// lines starting with '#' are skipped, as is anything that is not a five-letter
// word. Original casing is kept.
func LoadWords(ctx context.Context, r io.Reader, log zerolog.Logger) (WordList, error) {
	var words WordList
	skipped := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if !IsWord(word) {
			skipped++
			log.Debug().Str("line", word).Msg("skipping malformed word")
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug().Int("words", len(words)).Int("skipped", skipped).Msg("loaded word list")
	return words, nil
}

// LoadFromFile reads the word list at path. The file is closed before returning.
func LoadFromFile(ctx context.Context, path string, log zerolog.Logger) (WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadWords(ctx, f, log.With().Str("path", path).Logger())
}
