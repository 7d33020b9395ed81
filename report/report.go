package report

import (
	"fmt"
	"io"

	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/engine"
)

// ============================================================================
// INSIGHTS — Summary statistics for the ranked result set
// ============================================================================
// Read-only: everything is computed through the view, nothing is mutated.
// ============================================================================

// TopGenreCount is how many genres the text report lists.
const TopGenreCount = 3

// Insights prints descriptive statistics for the ranked movies.
// With an empty view only the count line is printed — there is no oldest or
// newest movie to name.
func Insights(w io.Writer, view engine.RecordView) {
	fmt.Fprintln(w, "\n===== Data Insights =====")
	fmt.Fprintf(w, "Total movies analyzed: %d\n", view.Len())
	if view.Len() == 0 {
		return
	}

	fmt.Fprintf(w, "Average rating: %.1f\n", engine.AvgMeasure(view, "rating"))
	fmt.Fprintf(w, "Average runtime: %.1f minutes\n", engine.AvgMeasure(view, "runtime"))
	fmt.Fprintf(w, "Total votes: %s\n", engine.FormatInt(int(engine.SumMeasure(view, "votes"))))

	// Year analysis — first matching row in view order names the title.
	if i := engine.MinIndex(view, "year"); i >= 0 {
		year, _ := view.Measure(i, "year")
		fmt.Fprintf(w, "Oldest movie: %d (%s)\n", int(year), view.Dimension(i, "title"))
	}
	if i := engine.MaxIndex(view, "year"); i >= 0 {
		year, _ := view.Measure(i, "year")
		fmt.Fprintf(w, "Newest movie: %d (%s)\n", int(year), view.Dimension(i, "title"))
	}

	// Genre analysis — a movie counts once per genre label it carries.
	fmt.Fprintf(w, "\nTop %d Genres:\n", TopGenreCount)
	for _, g := range engine.TopValues(view, "genres", TopGenreCount) {
		fmt.Fprintf(w, "- %s: %d movies\n", g.Label, g.Count)
	}
}
