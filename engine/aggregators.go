package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ============================================================================
// AGGREGATORS — Grouping, Ranking, and Summary Statistics via RecordView
// ============================================================================
// All functions operate on RecordView — zero-copy access to any data source.
// Grouping produces SubViews (index lists into parent view).
// Absent measures are skipped, never counted as zero.
// ============================================================================

// SumMeasure sums a named measure across a view, skipping absent values.
func SumMeasure(view RecordView, measure string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		if v, ok := view.Measure(i, measure); ok {
			total += v
		}
	}
	return total
}

// AvgMeasure computes the mean of a named measure over the rows where it is
// present. Rows with an absent value do not enter the denominator.
func AvgMeasure(view RecordView, measure string) float64 {
	var total float64
	var n int
	for i := 0; i < view.Len(); i++ {
		if v, ok := view.Measure(i, measure); ok {
			total += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// MinIndex returns the index of the first row holding the smallest present
// value of a measure, or -1 when no row has the measure.
func MinIndex(view RecordView, measure string) int {
	best := -1
	var bestVal float64
	for i := 0; i < view.Len(); i++ {
		v, ok := view.Measure(i, measure)
		if !ok {
			continue
		}
		if best == -1 || v < bestVal {
			best = i
			bestVal = v
		}
	}
	return best
}

// MaxIndex returns the index of the first row holding the largest present
// value of a measure, or -1 when no row has the measure.
func MaxIndex(view RecordView, measure string) int {
	best := -1
	var bestVal float64
	for i := 0; i < view.Len(); i++ {
		v, ok := view.Measure(i, measure)
		if !ok {
			continue
		}
		if best == -1 || v > bestVal {
			best = i
			bestVal = v
		}
	}
	return best
}

// MeasureValues collects the present values of a measure, in view order.
func MeasureValues(view RecordView, measure string) []float64 {
	vals := make([]float64, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		if v, ok := view.Measure(i, measure); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// ============================================================================
// RANKING
// ============================================================================

// TopN returns a view of the n rows with the largest values of a measure,
// in descending order. The sort is stable: rows tied on the measure keep
// their relative order in the parent view, which also decides inclusion at
// the cut-off. Rows with an absent measure rank below all present values.
func TopN(view RecordView, measure string, n int) RecordView {
	indices := make([]int, view.Len())
	for i := range indices {
		indices[i] = i
	}

	sort.SliceStable(indices, func(a, b int) bool {
		va, oka := view.Measure(indices[a], measure)
		vb, okb := view.Measure(indices[b], measure)
		if oka != okb {
			return oka
		}
		return va > vb
	})

	if n > 0 && len(indices) > n {
		indices = indices[:n]
	}
	return newSubView(view, indices)
}

// ============================================================================
// GROUPING
// ============================================================================

// GroupBy buckets rows by a scalar dimension, preserving first-seen order.
// Each group's Count is filled; Value is left to the caller's aggregation.
func GroupBy(view RecordView, dimension string) []Group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		key := view.Dimension(i, dimension)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Key:   key,
			Label: key,
			Count: len(grouped[key]),
			View:  newSubView(view, grouped[key]),
		})
	}
	return groups
}

// CountValues counts how often each element of a list dimension occurs
// across the view. A row with N distinct elements contributes one count to
// each of the N labels — the row itself is never double-counted per label.
// Groups come back sorted by count descending, ties by first occurrence.
func CountValues(view RecordView, dimension string) []Group {
	exploded := Explode(view, dimension)
	groups := GroupBy(exploded, dimension)
	for i := range groups {
		groups[i].Value = float64(groups[i].Count)
	}
	SortGroups(groups, "count_desc")
	return groups
}

// TopValues returns the n most frequent elements of a list dimension.
func TopValues(view RecordView, dimension string, n int) []Group {
	groups := CountValues(view, dimension)
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// ============================================================================
// SORTING
// ============================================================================

// SortGroups sorts aggregate groups by the specified sort mode.
// All modes are stable, so grouping order breaks ties.
func SortGroups(groups []Group, sortBy string) {
	switch sortBy {
	case "value_desc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	case "value_asc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value < groups[j].Value })
	case "count_desc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })
	case "label_asc":
		sort.SliceStable(groups, func(i, j int) bool { return strings.ToLower(groups[i].Key) < strings.ToLower(groups[j].Key) })
	case "label_num_asc":
		sort.SliceStable(groups, func(i, j int) bool { return numericKey(groups[i].Key) < numericKey(groups[j].Key) })
	default:
		// preserve grouping order
	}
}

// numericKey parses a group key as a number for numeric label sorts
// (e.g. decades "1970", "2000"). Unparseable keys sort first.
func numericKey(key string) float64 {
	v, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return -1 << 30
	}
	return v
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}
