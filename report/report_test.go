package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/movies"
)

// ============================================================================
// REPORT TESTS
// ============================================================================

func intp(v int) *int { return &v }

func rankedSample() []movies.Movie {
	return []movies.Movie{
		{Rank: 1, Title: "Crowd Favorite", Year: intp(2008), Rating: 9.0, Votes: 3000, Runtime: intp(152), Genres: "Action,Crime,Drama"},
		{Rank: 2, Title: "The Classic", Year: intp(1994), Rating: 8.0, Votes: 2000, Runtime: intp(142), Genres: "Drama"},
		{Rank: 3, Title: "Lost Reel", Year: nil, Rating: 7.0, Votes: 1000, Runtime: nil, Genres: "Comedy,Romance"},
	}
}

func TestInsightsOutput(t *testing.T) {
	var buf bytes.Buffer
	Insights(&buf, movies.View(rankedSample()))
	out := buf.String()

	wantLines := []string{
		"===== Data Insights =====",
		"Total movies analyzed: 3",
		"Average rating: 8.0",    // (9+8+7)/3, exact
		"Average runtime: 147.0", // absent runtime skipped: (152+142)/2
		"Total votes: 6,000",
		"Oldest movie: 1994 (The Classic)",
		"Newest movie: 2008 (Crowd Favorite)",
		"Top 3 Genres:",
		"- Drama: 2 movies",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n--- got ---\n%s", want, out)
		}
	}
}

func TestInsightsSharedRowCountsOncePerGenre(t *testing.T) {
	list := []movies.Movie{
		{Rank: 1, Title: "Double Bill", Rating: 8.0, Votes: 300, Genres: "Comedy,Romance"},
		{Rank: 2, Title: "Solo A", Rating: 7.5, Votes: 200, Genres: "Drama"},
		{Rank: 3, Title: "Solo B", Rating: 7.0, Votes: 100, Genres: "Action"},
	}

	var buf bytes.Buffer
	Insights(&buf, movies.View(list))
	out := buf.String()

	// "Comedy,Romance" comes from one movie: each label counts once, the
	// row itself is never double-counted.
	if !strings.Contains(out, "- Comedy: 1 movies") {
		t.Errorf("expected Comedy counted once\n%s", out)
	}
	if !strings.Contains(out, "- Romance: 1 movies") {
		t.Errorf("expected Romance counted once\n%s", out)
	}
}

func TestInsightsEmpty(t *testing.T) {
	var buf bytes.Buffer
	Insights(&buf, movies.View(nil))
	out := buf.String()

	if !strings.Contains(out, "Total movies analyzed: 0") {
		t.Errorf("empty view should still report a count\n%s", out)
	}
	if strings.Contains(out, "Oldest movie") {
		t.Errorf("empty view must not name an oldest movie\n%s", out)
	}
}

func TestGenreLeaderboards(t *testing.T) {
	var buf bytes.Buffer
	GenreLeaderboards(&buf, movies.View(rankedSample()))
	out := buf.String()

	if !strings.Contains(out, "===== Top Movies by Genre =====") {
		t.Fatalf("missing section header\n%s", out)
	}
	if !strings.Contains(out, "Top 3 'Drama' Movies by Rating:") {
		t.Errorf("missing Drama rating board\n%s", out)
	}
	if !strings.Contains(out, "Top 3 'Drama' Movies by Popularity (Votes):") {
		t.Errorf("missing Drama votes board\n%s", out)
	}

	// A movie with "Action,Crime,Drama" competes in each of those pools.
	if !strings.Contains(out, "Top 3 'Action' Movies by Rating:") {
		t.Errorf("Action board missing despite tagged movie\n%s", out)
	}
	drama := out[strings.Index(out, "Top 3 'Drama' Movies by Rating:"):]
	if !strings.Contains(drama, "Crowd Favorite") {
		t.Errorf("multi-genre movie missing from Drama pool\n%s", out)
	}
}

func TestGenreLeaderboardsVotesFormatting(t *testing.T) {
	var buf bytes.Buffer
	GenreLeaderboards(&buf, movies.View(rankedSample()))
	out := buf.String()

	if !strings.Contains(out, "3,000") {
		t.Errorf("votes should be comma formatted\n%s", out)
	}
}

func TestGenreLeaderboardsEmpty(t *testing.T) {
	var buf bytes.Buffer
	GenreLeaderboards(&buf, movies.View(nil))
	out := buf.String()

	if !strings.Contains(out, "===== Top Movies by Genre =====") {
		t.Errorf("header should print even with no data\n%s", out)
	}
	if strings.Contains(out, "Top 3 '") {
		t.Errorf("no boards expected for empty view\n%s", out)
	}
}
