package imdb

// ============================================================================
// TABLE — Parsed TSV dataset with columns addressable by name
// ============================================================================

// Missing is the literal sentinel IMDb uses for absent values in every
// column of every dataset.
const Missing = `\N`

// Table holds the rows of one parsed dataset.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewTable creates a table from a header row.
func NewTable(columns []string) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	return &Table{columns: columns, index: index}
}

// Append adds one data row. Short rows are allowed; missing cells read as
// absent.
func (t *Table) Append(row []string) {
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the header in file order.
func (t *Table) Columns() []string { return t.columns }

// Value returns the cell at (row, column) and whether it is present.
// The \N sentinel, unknown columns and short rows all read as absent.
func (t *Table) Value(row int, column string) (string, bool) {
	if row < 0 || row >= len(t.rows) {
		return "", false
	}
	col, ok := t.index[column]
	if !ok || col >= len(t.rows[row]) {
		return "", false
	}
	v := t.rows[row][col]
	if v == Missing || v == "" {
		return "", false
	}
	return v, true
}
