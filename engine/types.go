package engine

// ============================================================================
// ENGINE TYPES — Tabular Analysis Primitives
// ============================================================================
// The engine is domain-agnostic: rows expose string dimensions, multi-valued
// list dimensions (e.g. a comma-joined genre field) and numeric measures.
// Measures can be absent — absent is not zero, and aggregates must skip it.
// ============================================================================

// Record is a single data row with string dimensions, list dimensions and
// numeric measures. A measure missing from the map is treated as absent.
type Record struct {
	Dimensions map[string]string   `json:"dimensions"`
	Lists      map[string][]string `json:"lists"`
	Measures   map[string]float64  `json:"measures"`
}

// Filters define which records to include.
// Keys are dimension names. Values are allowed values.
// OR within a dimension, AND across dimensions. Empty = all.
// A filter on a list dimension matches when any element matches.
type Filters struct {
	Dimensions map[string][]string `json:"dimensions"`
}

// HasFilter returns true if a specific dimension filter is set.
func (f Filters) HasFilter(dimension string) bool {
	if f.Dimensions == nil {
		return false
	}
	vals, ok := f.Dimensions[dimension]
	return ok && len(vals) > 0
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	if f.Dimensions == nil {
		return true
	}
	for _, vals := range f.Dimensions {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ============================================================================
// GROUP — Intermediate computation result
// ============================================================================

// Group represents one bucket of a grouped view.
// Aggregators fill Value; View gives zero-copy access to the bucket's rows.
type Group struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Value float64    `json:"value"`
	Count int        `json:"count"`
	View  RecordView `json:"-"`
}
