package engine

import (
	"reflect"
	"testing"
)

// ============================================================================
// VIEW TESTS
// ============================================================================

func sampleRecords() []Record {
	return []Record{
		{
			Dimensions: map[string]string{"title": "Alpha"},
			Lists:      map[string][]string{"genres": {"Comedy", "Romance"}},
			Measures:   map[string]float64{"rating": 8.0, "votes": 100},
		},
		{
			Dimensions: map[string]string{"title": "Beta"},
			Lists:      map[string][]string{"genres": {"Action"}},
			Measures:   map[string]float64{"rating": 7.0, "votes": 300},
		},
		{
			Dimensions: map[string]string{"title": "Gamma"},
			Lists:      map[string][]string{"genres": {"Drama"}},
			Measures:   map[string]float64{"rating": 9.0}, // votes absent
		},
	}
}

func TestSliceViewBasics(t *testing.T) {
	view := NewSliceView(sampleRecords())

	if view.Len() != 3 {
		t.Fatalf("Len = %d, want 3", view.Len())
	}
	if got := view.Dimension(0, "title"); got != "Alpha" {
		t.Errorf("Dimension(0, title) = %q, want Alpha", got)
	}
	if got := view.List(0, "genres"); !reflect.DeepEqual(got, []string{"Comedy", "Romance"}) {
		t.Errorf("List(0, genres) = %v", got)
	}
	if v, ok := view.Measure(1, "votes"); !ok || v != 300 {
		t.Errorf("Measure(1, votes) = %v, %v", v, ok)
	}
	if _, ok := view.Measure(2, "votes"); ok {
		t.Error("Measure(2, votes) should be absent")
	}
	if _, ok := view.Measure(5, "votes"); ok {
		t.Error("out-of-range Measure should be absent")
	}
}

func TestExplodeView(t *testing.T) {
	view := NewSliceView(sampleRecords())
	exploded := Explode(view, "genres")

	// Alpha carries two genres → 2 virtual rows; 4 rows total.
	if exploded.Len() != 4 {
		t.Fatalf("exploded Len = %d, want 4", exploded.Len())
	}

	var gotLabels []string
	var gotTitles []string
	for i := 0; i < exploded.Len(); i++ {
		gotLabels = append(gotLabels, exploded.Dimension(i, "genres"))
		gotTitles = append(gotTitles, exploded.Dimension(i, "title"))
	}
	wantLabels := []string{"Comedy", "Romance", "Action", "Drama"}
	wantTitles := []string{"Alpha", "Alpha", "Beta", "Gamma"}
	if !reflect.DeepEqual(gotLabels, wantLabels) {
		t.Errorf("labels = %v, want %v", gotLabels, wantLabels)
	}
	if !reflect.DeepEqual(gotTitles, wantTitles) {
		t.Errorf("titles = %v, want %v", gotTitles, wantTitles)
	}

	// Measures ride along with the parent row.
	if v, ok := exploded.Measure(1, "rating"); !ok || v != 8.0 {
		t.Errorf("exploded Measure(1, rating) = %v, %v", v, ok)
	}
}

func TestApplyFiltersListMembership(t *testing.T) {
	view := NewSliceView(sampleRecords())

	tests := []struct {
		genre string
		want  []string
	}{
		{"Comedy", []string{"Alpha"}},
		{"Romance", []string{"Alpha"}},
		{"Action", []string{"Beta"}},
		{"Western", nil},
	}

	for _, tt := range tests {
		filtered := ApplyFilters(view, Filters{
			Dimensions: map[string][]string{"genres": {tt.genre}},
		})
		var got []string
		for i := 0; i < filtered.Len(); i++ {
			got = append(got, filtered.Dimension(i, "title"))
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("filter %q: titles = %v, want %v", tt.genre, got, tt.want)
		}
	}
}

func TestApplyFiltersEmpty(t *testing.T) {
	view := NewSliceView(sampleRecords())
	filtered := ApplyFilters(view, Filters{})
	if filtered.Len() != view.Len() {
		t.Errorf("empty filter should pass everything, got %d rows", filtered.Len())
	}
}

func TestFiltersHasFilter(t *testing.T) {
	f := Filters{Dimensions: map[string][]string{
		"genres": {"Comedy"},
		"decade": {},
	}}

	if !f.HasFilter("genres") {
		t.Error("HasFilter(genres) = false, want true")
	}
	if f.HasFilter("decade") {
		t.Error("HasFilter(decade) = true for empty value list")
	}
	if f.HasFilter("title") {
		t.Error("HasFilter(title) = true for unset dimension")
	}
	if (Filters{}).HasFilter("genres") {
		t.Error("HasFilter on zero Filters = true")
	}
}

type testMovie struct {
	Title   string
	Genres  []string
	Rating  float64
	Runtime *int
}

func TestDomainAdapter(t *testing.T) {
	rt := 120
	data := []testMovie{
		{Title: "One", Genres: []string{"Drama"}, Rating: 8.5, Runtime: &rt},
		{Title: "Two", Genres: []string{"Action", "Drama"}, Rating: 7.5, Runtime: nil},
	}

	adapter := NewDomainAdapter[testMovie]().
		Dimension("title", func(m testMovie) string { return m.Title }).
		List("genres", func(m testMovie) []string { return m.Genres }).
		Measure("rating", func(m testMovie) (float64, bool) { return m.Rating, true }).
		Measure("runtime", func(m testMovie) (float64, bool) {
			if m.Runtime == nil {
				return 0, false
			}
			return float64(*m.Runtime), true
		})

	view := adapter.Bind(data)

	if view.Len() != 2 {
		t.Fatalf("Len = %d, want 2", view.Len())
	}
	if v, ok := view.Measure(0, "runtime"); !ok || v != 120 {
		t.Errorf("Measure(0, runtime) = %v, %v", v, ok)
	}
	if _, ok := view.Measure(1, "runtime"); ok {
		t.Error("nil runtime must read as absent, not zero")
	}
	// Scalar read of a list dimension yields its first element.
	if got := view.Dimension(1, "genres"); got != "Action" {
		t.Errorf("Dimension(1, genres) = %q, want Action", got)
	}
	if !reflect.DeepEqual(view.DimensionKeys(), []string{"title", "genres"}) {
		t.Errorf("DimensionKeys = %v", view.DimensionKeys())
	}
	if !reflect.DeepEqual(view.MeasureKeys(), []string{"rating", "runtime"}) {
		t.Errorf("MeasureKeys = %v", view.MeasureKeys())
	}
}
