package engine

import (
	"strings"
)

// ============================================================================
// FILTERS — Generic Dimension-Based Filtering via RecordView
// ============================================================================
// Single-pass filter: checks ALL dimension constraints per record in one loop.
// Returns a SubView (index list into parent) — zero data copy.
// ============================================================================

// ApplyFilters returns a view of records matching all dimension filters.
// Dimensions are AND-combined; values within a dimension are OR-combined.
// A record matches a dimension when either its scalar value or any element
// of its list value is in the allowed set. Empty filter = no restriction.
func ApplyFilters(view RecordView, filters Filters) RecordView {
	if filters.IsEmpty() {
		return view
	}

	// Pre-build lowercase lookup sets for each dimension filter
	sets := make(map[string]map[string]bool)
	for dim, allowed := range filters.Dimensions {
		if filters.HasFilter(dim) {
			sets[dim] = toLowerSet(allowed)
		}
	}

	if len(sets) == 0 {
		return view
	}

	// Single pass — record passes if it matches ALL dimension filters
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pass := true
		for dim, set := range sets {
			if !matchDimension(view, i, dim, set) {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}

	return newSubView(view, indices)
}

func matchDimension(view RecordView, i int, dim string, set map[string]bool) bool {
	if vals := view.List(i, dim); len(vals) > 0 {
		for _, v := range vals {
			if set[strings.ToLower(v)] {
				return true
			}
		}
		return false
	}
	return set[strings.ToLower(view.Dimension(i, dim))]
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
