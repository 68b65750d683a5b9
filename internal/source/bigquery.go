package source

import (
	"context"
	"fmt"
	"regexp"

	"cloud.google.com/go/bigquery"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"

	"crosswarped.com/wordle"
)

var identifier = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// BigQuery reads five-letter words from one column of a BigQuery table.
type BigQuery struct {
	Project string
	// Table is "dataset.table", optionally prefixed with another project.
	Table string
	// Column defaults to "word".
	Column string
	// Location defaults to "US".
	Location string
	Log      zerolog.Logger
}

func (b *BigQuery) query() (string, error) {
	column := b.Column
	if column == "" {
		column = "word"
	}
	if !identifier.MatchString(b.Table) {
		return "", fmt.Errorf("invalid table name %q", b.Table)
	}
	if !identifier.MatchString(column) {
		return "", fmt.Errorf("invalid column name %q", column)
	}
	return fmt.Sprintf("SELECT %s FROM `%s` WHERE LENGTH(%s) = @length", column, b.Table, column), nil
}

func (b *BigQuery) Words(ctx context.Context) (wordle.WordList, error) {
	sql, err := b.query()
	if err != nil {
		return nil, err
	}

	client, err := bigquery.NewClient(ctx, b.Project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(sql)
	q.Parameters = []bigquery.QueryParameter{{Name: "length", Value: wordle.WordLength}}
	q.Location = b.Location
	if q.Location == "" {
		q.Location = "US"
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words wordle.WordList
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		word, ok := rowWord(row)
		if !ok {
			b.Log.Debug().Interface("row", row).Msg("skipping malformed row")
			continue
		}
		words = append(words, word)
	}
	b.Log.Info().Str("table", b.Table).Int("words", len(words)).Msg("loaded words from bigquery")
	return words, nil
}

func rowWord(row []bigquery.Value) (string, bool) {
	if len(row) == 0 {
		return "", false
	}
	word, ok := row[0].(string)
	if !ok || !wordle.IsWord(word) {
		return "", false
	}
	return word, true
}
