package table

// Slot names a logical column role.
type Slot string

const (
	SlotHeader   Slot = "header"
	SlotSequence Slot = "sequence"
	SlotGermline Slot = "germline"
	SlotClone    Slot = "clone"
)

// ColumnRef selects a column by name, by 1-based position, or not at all.
// When both are set the name wins, provided the input has a header row.
// The zero value selects nothing.
type ColumnRef struct {
	Name string
	Col  int // 1-based; < 1 = unset
}

// ByName selects a column through the header row.
func ByName(name string) ColumnRef { return ColumnRef{Name: name} }

// ByIndex selects the 1-based column col.
func ByIndex(col int) ColumnRef { return ColumnRef{Col: col} }

// Ref combines a name and a 1-based fallback position. An empty name
// falls back to col.
func Ref(name string, col int) ColumnRef { return ColumnRef{Name: name, Col: col} }

// IsNone reports whether r selects no column.
func (r ColumnRef) IsNone() bool { return r.Name == "" && r.Col < 1 }

// headerIndex maps header names to 0-based positions; first match wins.
// A nil index means the input has no header row.
type headerIndex map[string]int

func newHeaderIndex(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, h := range header {
		if _, dup := idx[h]; dup {
			continue
		}
		idx[h] = i
	}
	return idx
}

// resolve returns the 0-based position for r, or -1 when r selects nothing.
func (r ColumnRef) resolve(slot Slot, idx headerIndex) (int, error) {
	if idx != nil && r.Name != "" {
		pos, ok := idx[r.Name]
		if !ok {
			return -1, &ColumnNotFoundError{Slot: slot, Name: r.Name}
		}
		return pos, nil
	}
	if r.Col >= 1 {
		return r.Col - 1, nil
	}
	return -1, nil
}

// resolveHeader resolves the header-column list. Names are used when a
// header row exists; otherwise the positions >= 1 are used in order.
func resolveHeader(names []string, cols []int, idx headerIndex) ([]int, error) {
	if idx != nil && len(names) > 0 {
		out := make([]int, 0, len(names))
		for _, n := range names {
			pos, err := ByName(n).resolve(SlotHeader, idx)
			if err != nil {
				return nil, err
			}
			out = append(out, pos)
		}
		return out, nil
	}
	var out []int
	for _, c := range cols {
		if c >= 1 {
			out = append(out, c-1)
		}
	}
	return out, nil
}
