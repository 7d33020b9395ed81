package movies

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ============================================================================
// EXPORT — Ranked result set → flat CSV file
// ============================================================================

// CSVHeader is the public column vocabulary of the exported file.
var CSVHeader = []string{"Rank", "Title", "Year", "Rating", "Votes", "Runtime (min)", "Genres"}

// WriteCSV writes the ranked movies to path, overwriting any existing file.
// Absent year/runtime values become empty fields.
func WriteCSV(list []Movie, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, m := range list {
		row := []string{
			strconv.Itoa(m.Rank),
			m.Title,
			optionalIntField(m.Year),
			strconv.FormatFloat(m.Rating, 'f', 1, 64),
			strconv.Itoa(m.Votes),
			optionalIntField(m.Runtime),
			m.Genres,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", m.Rank, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func optionalIntField(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
