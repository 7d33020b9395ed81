package imdb

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// ============================================================================
// CLIENT — Downloads and parses the public IMDb datasets
// ============================================================================
// The datasets are gzip-compressed tab-separated tables with a header row,
// refreshed daily at datasets.imdbws.com. Any network or decompression
// failure is returned to the caller as-is — there is no retry layer.
// ============================================================================

// Fixed dataset locations.
const (
	BasicsURL  = "https://datasets.imdbws.com/title.basics.tsv.gz"
	RatingsURL = "https://datasets.imdbws.com/title.ratings.tsv.gz"
)

// Column names shared by the two datasets.
const (
	ColID        = "tconst"
	ColTitleType = "titleType"
	ColTitle     = "primaryTitle"
	ColYear      = "startYear"
	ColRuntime   = "runtimeMinutes"
	ColGenres    = "genres"
	ColRating    = "averageRating"
	ColVotes     = "numVotes"
)

// TitleTypeMovie marks feature films in title.basics, as opposed to shorts,
// episodes and series entries.
const TitleTypeMovie = "movie"

// Client fetches IMDb dataset tables.
type Client struct {
	hc  *http.Client
	log *zap.Logger
}

// NewClient creates a Client. A nil http.Client falls back to the default
// transport (no timeout beyond transport defaults); a nil logger is muted.
func NewClient(hc *http.Client, log *zap.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{hc: hc, log: log}
}

// FetchTable downloads a gzip-compressed TSV dataset and parses it.
func (c *Client) FetchTable(ctx context.Context, url string) (*Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", url, err)
	}
	defer gz.Close()

	table, err := ParseTSV(gz)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	c.log.Info("dataset fetched",
		zap.String("url", url),
		zap.Int("rows", table.Len()),
	)
	return table, nil
}

// ParseTSV reads a tab-separated table with a header row.
func ParseTSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	// IMDb values may contain stray double quotes; they are data, not quoting.
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	table := NewTable(header)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		table.Append(row)
	}
	return table, nil
}
