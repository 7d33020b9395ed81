package movies

import (
	"sort"
	"strconv"

	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/imdb"
)

// ============================================================================
// TRANSFORM — basics ⋈ ratings → ranked top 100
// ============================================================================
// Pipeline: inner join on tconst → keep feature films → coerce year/runtime
// (absent stays absent) → stable sort by votes desc → head 100 → rank 1..N.
//
// Rows without a rating or vote count never survive: the inner join drops
// them. Ties in vote count keep the basics table's row order, including at
// the 100th position — inclusion there follows the input ordering.
// ============================================================================

// TopCount is the size of the ranked result set.
const TopCount = 100

// TopMovies joins the basics and ratings tables and returns the TopCount
// most-voted feature films, ranked. Fewer qualifying rows than TopCount is
// not an error; the survivors are returned. Zero survivors yields an empty
// slice.
func TopMovies(basics, ratings *imdb.Table) []Movie {
	type scored struct {
		rating float64
		votes  int
	}

	// Index the ratings side of the join.
	scores := make(map[string]scored, ratings.Len())
	for i := 0; i < ratings.Len(); i++ {
		id, ok := ratings.Value(i, imdb.ColID)
		if !ok {
			continue
		}
		ratingStr, ok := ratings.Value(i, imdb.ColRating)
		if !ok {
			continue
		}
		votesStr, ok := ratings.Value(i, imdb.ColVotes)
		if !ok {
			continue
		}
		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			continue
		}
		votes, err := strconv.Atoi(votesStr)
		if err != nil {
			continue
		}
		scores[id] = scored{rating: rating, votes: votes}
	}

	// Walk basics in file order so the later stable sort inherits it.
	var list []Movie
	for i := 0; i < basics.Len(); i++ {
		titleType, _ := basics.Value(i, imdb.ColTitleType)
		if titleType != imdb.TitleTypeMovie {
			continue
		}
		id, ok := basics.Value(i, imdb.ColID)
		if !ok {
			continue
		}
		score, ok := scores[id]
		if !ok {
			continue // inner join: unrated titles drop out
		}
		title, _ := basics.Value(i, imdb.ColTitle)
		genres, _ := basics.Value(i, imdb.ColGenres)

		list = append(list, Movie{
			ID:      id,
			Title:   title,
			Year:    parseOptionalInt(basics, i, imdb.ColYear),
			Rating:  score.rating,
			Votes:   score.votes,
			Runtime: parseOptionalInt(basics, i, imdb.ColRuntime),
			Genres:  genres,
		})
	}

	sort.SliceStable(list, func(a, b int) bool {
		return list[a].Votes > list[b].Votes
	})

	if len(list) > TopCount {
		list = list[:TopCount]
	}
	for i := range list {
		list[i].Rank = i + 1
	}
	return list
}

// parseOptionalInt coerces a nullable integer column. Absent or
// non-numeric values become nil, never zero.
func parseOptionalInt(t *imdb.Table, row int, column string) *int {
	s, ok := t.Value(row, column)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
