package movies

import (
	"strconv"
	"strings"

	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/engine"
)

// ============================================================================
// MOVIE — One ranked feature film
// ============================================================================
// Year and Runtime are nullable: IMDb marks them \N for plenty of titles,
// and absent is not zero. Genres stays comma-joined as IMDb ships it;
// GenreList splits it on demand.
// ============================================================================

// Movie is one row of the ranked result set.
type Movie struct {
	ID      string
	Rank    int
	Title   string
	Year    *int
	Rating  float64
	Votes   int
	Runtime *int
	Genres  string
}

// GenreList splits the comma-joined genre field into individual labels.
func (m Movie) GenreList() []string {
	if m.Genres == "" {
		return nil
	}
	return strings.Split(m.Genres, ",")
}

// Decade returns the movie's release decade ("1990") or "" when the year
// is absent.
func (m Movie) Decade() string {
	if m.Year == nil {
		return ""
	}
	return strconv.Itoa(*m.Year / 10 * 10)
}

// ============================================================================
// ENGINE BINDING
// ============================================================================

// adapter is declared once; View binds it to any movie slice.
var adapter = engine.NewDomainAdapter[Movie]().
	Dimension("title", func(m Movie) string { return m.Title }).
	Dimension("decade", func(m Movie) string { return m.Decade() }).
	List("genres", func(m Movie) []string { return m.GenreList() }).
	Measure("rank", func(m Movie) (float64, bool) { return float64(m.Rank), true }).
	Measure("rating", func(m Movie) (float64, bool) { return m.Rating, true }).
	Measure("votes", func(m Movie) (float64, bool) { return float64(m.Votes), true }).
	Measure("year", func(m Movie) (float64, bool) {
		if m.Year == nil {
			return 0, false
		}
		return float64(*m.Year), true
	}).
	Measure("runtime", func(m Movie) (float64, bool) {
		if m.Runtime == nil {
			return 0, false
		}
		return float64(*m.Runtime), true
	})

// View exposes a movie slice to the engine. Zero-copy — the view reads the
// slice through the package adapter.
func View(list []Movie) engine.RecordView {
	return adapter.Bind(list)
}
