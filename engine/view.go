package engine

// ============================================================================
// RECORD VIEW — Zero-Copy Data Access Interface
// ============================================================================
// The engine never owns consumer data. It reads through this interface.
//
// Implementations:
//   SliceView      — wraps []Record (CSV, ad-hoc, tests)
//   DomainView[T]  — reads typed structs via accessor functions (zero-copy)
//   SubView        — filtered subset (indices into parent, zero-copy)
//   ExplodeView    — one virtual row per element of a list dimension
//
// Consumers register accessors once at init; engine reads in tight loops.
// ============================================================================

// RecordView provides indexed access to a dataset.
//
// Measure returns the value and whether it is present. Absent measures are
// skipped by aggregators — a missing runtime must not drag an average to 0.
type RecordView interface {
	Len() int
	Dimension(index int, key string) string
	List(index int, key string) []string
	Measure(index int, key string) (float64, bool)
	DimensionKeys() []string
	MeasureKeys() []string
}

// ============================================================================
// SLICE VIEW — wraps []Record
// ============================================================================

// SliceView wraps a []Record slice as a RecordView.
type SliceView struct {
	records []Record
	dimKeys []string
	mesKeys []string
}

// NewSliceView creates a RecordView from a []Record slice.
func NewSliceView(records []Record) RecordView {
	v := &SliceView{records: records}
	v.cacheKeys()
	return v
}

func (v *SliceView) cacheKeys() {
	if len(v.records) == 0 {
		return
	}
	dimSeen := make(map[string]bool)
	mesSeen := make(map[string]bool)
	for _, r := range v.records {
		for k := range r.Dimensions {
			if !dimSeen[k] {
				dimSeen[k] = true
				v.dimKeys = append(v.dimKeys, k)
			}
		}
		for k := range r.Lists {
			if !dimSeen[k] {
				dimSeen[k] = true
				v.dimKeys = append(v.dimKeys, k)
			}
		}
		for k := range r.Measures {
			if !mesSeen[k] {
				mesSeen[k] = true
				v.mesKeys = append(v.mesKeys, k)
			}
		}
	}
}

func (v *SliceView) Len() int { return len(v.records) }

func (v *SliceView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.records) {
		return ""
	}
	return v.records[i].Dimensions[key]
}

func (v *SliceView) List(i int, key string) []string {
	if i < 0 || i >= len(v.records) {
		return nil
	}
	return v.records[i].Lists[key]
}

func (v *SliceView) Measure(i int, key string) (float64, bool) {
	if i < 0 || i >= len(v.records) {
		return 0, false
	}
	val, ok := v.records[i].Measures[key]
	return val, ok
}

func (v *SliceView) DimensionKeys() []string { return v.dimKeys }
func (v *SliceView) MeasureKeys() []string   { return v.mesKeys }

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent RecordView.
// Holds indices into the parent — no data copy.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Dimension(v.indices[i], key)
}

func (v *SubView) List(i int, key string) []string {
	if i < 0 || i >= len(v.indices) {
		return nil
	}
	return v.parent.List(v.indices[i], key)
}

func (v *SubView) Measure(i int, key string) (float64, bool) {
	if i < 0 || i >= len(v.indices) {
		return 0, false
	}
	return v.parent.Measure(v.indices[i], key)
}

func (v *SubView) DimensionKeys() []string { return v.parent.DimensionKeys() }
func (v *SubView) MeasureKeys() []string   { return v.parent.MeasureKeys() }

// ============================================================================
// EXPLODE VIEW — one virtual row per list element (zero-copy)
// ============================================================================

// ExplodeView expands a parent view along a list dimension: a row whose list
// holds N elements appears N times, each time with Dimension(i, key)
// returning a single element. Rows with an empty list are dropped.
//
// Used for genre leaderboards: a movie tagged "Action,Drama" appears once in
// the Action bucket and once in the Drama bucket, nowhere else.
type ExplodeView struct {
	parent RecordView
	key    string
	rows   []int
	labels []string
}

// Explode creates an ExplodeView over the given list dimension.
func Explode(parent RecordView, key string) RecordView {
	v := &ExplodeView{parent: parent, key: key}
	for i := 0; i < parent.Len(); i++ {
		for _, label := range parent.List(i, key) {
			v.rows = append(v.rows, i)
			v.labels = append(v.labels, label)
		}
	}
	return v
}

func (v *ExplodeView) Len() int { return len(v.rows) }

func (v *ExplodeView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.rows) {
		return ""
	}
	if key == v.key {
		return v.labels[i]
	}
	return v.parent.Dimension(v.rows[i], key)
}

func (v *ExplodeView) List(i int, key string) []string {
	if i < 0 || i >= len(v.rows) {
		return nil
	}
	if key == v.key {
		return []string{v.labels[i]}
	}
	return v.parent.List(v.rows[i], key)
}

func (v *ExplodeView) Measure(i int, key string) (float64, bool) {
	if i < 0 || i >= len(v.rows) {
		return 0, false
	}
	return v.parent.Measure(v.rows[i], key)
}

func (v *ExplodeView) DimensionKeys() []string { return v.parent.DimensionKeys() }
func (v *ExplodeView) MeasureKeys() []string   { return v.parent.MeasureKeys() }

// ============================================================================
// DOMAIN ADAPTER — Zero-copy typed struct access
// ============================================================================
//
// Usage:
//
//	adapter := engine.NewDomainAdapter[Movie]().
//	    Dimension("title", func(m Movie) string { return m.Title }).
//	    List("genres", func(m Movie) []string { return m.GenreList() }).
//	    Measure("votes", func(m Movie) (float64, bool) { return float64(m.Votes), true })
//
//	view := adapter.Bind(movies)
//
// ============================================================================

// DomainAdapter builds a RecordView from typed structs.
// Declare once, bind many times.
type DomainAdapter[T any] struct {
	dimOrder []string
	mesOrder []string
	dims     map[string]func(T) string
	lists    map[string]func(T) []string
	meas     map[string]func(T) (float64, bool)
}

// NewDomainAdapter creates a new adapter for type T.
func NewDomainAdapter[T any]() *DomainAdapter[T] {
	return &DomainAdapter[T]{
		dims:  make(map[string]func(T) string),
		lists: make(map[string]func(T) []string),
		meas:  make(map[string]func(T) (float64, bool)),
	}
}

// Dimension registers a dimension accessor.
func (a *DomainAdapter[T]) Dimension(key string, fn func(T) string) *DomainAdapter[T] {
	if _, exists := a.dims[key]; !exists {
		a.dimOrder = append(a.dimOrder, key)
	}
	a.dims[key] = fn
	return a
}

// List registers a multi-valued dimension accessor.
func (a *DomainAdapter[T]) List(key string, fn func(T) []string) *DomainAdapter[T] {
	if _, exists := a.lists[key]; !exists {
		a.dimOrder = append(a.dimOrder, key)
	}
	a.lists[key] = fn
	return a
}

// Measure registers a measure accessor. The accessor reports presence —
// return false for nullable fields that are absent on this row.
func (a *DomainAdapter[T]) Measure(key string, fn func(T) (float64, bool)) *DomainAdapter[T] {
	if _, exists := a.meas[key]; !exists {
		a.mesOrder = append(a.mesOrder, key)
	}
	a.meas[key] = fn
	return a
}

// Bind creates a RecordView from a data slice. Zero-copy — holds reference.
func (a *DomainAdapter[T]) Bind(data []T) RecordView {
	return &DomainView[T]{
		data:     data,
		dims:     a.dims,
		lists:    a.lists,
		meas:     a.meas,
		dimKeys:  a.dimOrder,
		measKeys: a.mesOrder,
	}
}

// DomainView reads typed struct fields via registered accessor functions.
type DomainView[T any] struct {
	data     []T
	dims     map[string]func(T) string
	lists    map[string]func(T) []string
	meas     map[string]func(T) (float64, bool)
	dimKeys  []string
	measKeys []string
}

func (v *DomainView[T]) Len() int { return len(v.data) }

func (v *DomainView[T]) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.data) {
		return ""
	}
	if fn, ok := v.dims[key]; ok {
		return fn(v.data[i])
	}
	// A list dimension read as a scalar yields its first element.
	if fn, ok := v.lists[key]; ok {
		if vals := fn(v.data[i]); len(vals) > 0 {
			return vals[0]
		}
	}
	return ""
}

func (v *DomainView[T]) List(i int, key string) []string {
	if i < 0 || i >= len(v.data) {
		return nil
	}
	if fn, ok := v.lists[key]; ok {
		return fn(v.data[i])
	}
	return nil
}

func (v *DomainView[T]) Measure(i int, key string) (float64, bool) {
	if i < 0 || i >= len(v.data) {
		return 0, false
	}
	if fn, ok := v.meas[key]; ok {
		return fn(v.data[i])
	}
	return 0, false
}

func (v *DomainView[T]) DimensionKeys() []string { return v.dimKeys }
func (v *DomainView[T]) MeasureKeys() []string   { return v.measKeys }
