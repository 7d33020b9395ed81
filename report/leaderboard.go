package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/engine"
)

// ============================================================================
// GENRE LEADERBOARDS — Top movies per genre, by rating and by votes
// ============================================================================
// The view is exploded along the genre field, so a movie tagged
// "Action,Drama" competes in both the Action and Drama pools, nowhere else.
// Candidate pools are the top 10 per ordering; the report shows the top 3.
// ============================================================================

const (
	leaderboardGenres = 3
	candidatePool     = 10
	displayCount      = 3
)

// GenreLeaderboards prints, for each of the most frequent genres, the top
// movies by rating and by votes. Ties keep their rank order from the
// surrounding result set (stable).
func GenreLeaderboards(w io.Writer, view engine.RecordView) {
	fmt.Fprintln(w, "\n===== Top Movies by Genre =====")
	if view.Len() == 0 {
		return
	}

	exploded := engine.Explode(view, "genres")

	for _, g := range engine.TopValues(view, "genres", leaderboardGenres) {
		pool := engine.ApplyFilters(exploded, engine.Filters{
			Dimensions: map[string][]string{"genres": {g.Key}},
		})

		byRating := engine.TopN(pool, "rating", candidatePool)
		fmt.Fprintf(w, "\nTop %d '%s' Movies by Rating:\n", displayCount, g.Label)
		writeBoard(w, byRating, "Rating", func(v engine.RecordView, i int) string {
			r, _ := v.Measure(i, "rating")
			return fmt.Sprintf("%.1f", r)
		})

		byVotes := engine.TopN(pool, "votes", candidatePool)
		fmt.Fprintf(w, "\nTop %d '%s' Movies by Popularity (Votes):\n", displayCount, g.Label)
		writeBoard(w, byVotes, "Votes", func(v engine.RecordView, i int) string {
			votes, _ := v.Measure(i, "votes")
			return engine.FormatInt(int(votes))
		})
	}
}

// writeBoard renders the first displayCount rows of a ranked pool as a
// right-aligned three-column table (Title, <metric>, Year).
func writeBoard(w io.Writer, pool engine.RecordView, metric string, metricCell func(engine.RecordView, int) string) {
	n := pool.Len()
	if n > displayCount {
		n = displayCount
	}

	rows := make([][3]string, n)
	for i := 0; i < n; i++ {
		year := ""
		if y, ok := pool.Measure(i, "year"); ok {
			year = fmt.Sprintf("%d", int(y))
		}
		rows[i] = [3]string{pool.Dimension(i, "title"), metricCell(pool, i), year}
	}

	header := [3]string{"Title", metric, "Year"}
	widths := [3]int{len(header[0]), len(header[1]), len(header[2])}
	for _, r := range rows {
		for c := 0; c < 3; c++ {
			if len(r[c]) > widths[c] {
				widths[c] = len(r[c])
			}
		}
	}

	writeRow(w, header, widths)
	for _, r := range rows {
		writeRow(w, r, widths)
	}
}

func writeRow(w io.Writer, cells [3]string, widths [3]int) {
	parts := make([]string, 3)
	for c := 0; c < 3; c++ {
		parts[c] = fmt.Sprintf("%*s", widths[c], cells[c])
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}
