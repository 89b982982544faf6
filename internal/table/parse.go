// Package table turns delimited text into FASTA entries.
//
// Columns are chosen per slot (header columns, sequence, germline, clone)
// by name through the header row or by 1-based position. Each slot is
// resolved once; rows are then split and assembled in input order.
// Short rows are rejected, never truncated.
package table

import (
	"strings"

	"csv2fasta/internal/fasta"
)

// Options configures Parse.
type Options struct {
	HasHeaderRow    bool
	IncludeGermline bool
	IncludeClone    bool

	HeaderNames []string
	HeaderCols  []int // 1-based; values < 1 are ignored

	Sequence ColumnRef
	Germline ColumnRef
	Clone    ColumnRef

	Delimiter string
}

// layout is Options resolved against a header row: 0-based positions,
// -1 for unused slots.
type layout struct {
	header   []int
	seq      int
	germline int
	clone    int
	delim    string
}

func (o Options) resolve(idx headerIndex) (layout, error) {
	l := layout{seq: -1, germline: -1, clone: -1, delim: o.Delimiter}
	var err error
	if l.header, err = resolveHeader(o.HeaderNames, o.HeaderCols, idx); err != nil {
		return l, err
	}
	if l.seq, err = o.Sequence.resolve(SlotSequence, idx); err != nil {
		return l, err
	}
	if l.seq < 0 {
		return l, configErrorf("no sequence column selected")
	}
	if o.IncludeGermline {
		if l.germline, err = o.Germline.resolve(SlotGermline, idx); err != nil {
			return l, err
		}
		if l.germline < 0 {
			return l, configErrorf("germline requested but no germline column selected")
		}
	}
	if o.IncludeClone {
		if l.clone, err = o.Clone.resolve(SlotClone, idx); err != nil {
			return l, err
		}
		if l.clone < 0 {
			return l, configErrorf("clone requested but no clone column selected")
		}
	}
	return l, nil
}

// selectable reports whether r can name a column at all. Whether a name
// exists in the header row is left to resolve.
func (o Options) selectable(r ColumnRef) bool {
	return (o.HasHeaderRow && r.Name != "") || r.Col >= 1
}

// check rejects slot settings that no header row could satisfy, so empty
// input fails the same way as input with rows.
func (o Options) check() error {
	if !o.selectable(o.Sequence) {
		return configErrorf("no sequence column selected")
	}
	if o.IncludeGermline && !o.selectable(o.Germline) {
		return configErrorf("germline requested but no germline column selected")
	}
	if o.IncludeClone && !o.selectable(o.Clone) {
		return configErrorf("clone requested but no clone column selected")
	}
	return nil
}

func field(fields []string, pos int, slot Slot, line int) (string, error) {
	if pos >= len(fields) {
		return "", &RowTooShortError{Line: line, Slot: slot, Column: pos + 1, Fields: len(fields)}
	}
	return fields[pos], nil
}

func (l layout) entry(line int, fields []string) (fasta.Entry, error) {
	var e fasta.Entry
	segments := make([]string, 0, 3)

	if len(l.header) > 0 {
		vals := make([]string, 0, len(l.header))
		for _, pos := range l.header {
			v, err := field(fields, pos, SlotHeader, line)
			if err != nil {
				return e, err
			}
			vals = append(vals, v)
		}
		segments = append(segments, strings.Join(vals, l.delim))
	}
	if l.germline >= 0 {
		v, err := field(fields, l.germline, SlotGermline, line)
		if err != nil {
			return e, err
		}
		e.Germline = v
		segments = append(segments, v)
	}
	if l.clone >= 0 {
		v, err := field(fields, l.clone, SlotClone, line)
		if err != nil {
			return e, err
		}
		e.Clone = v
		segments = append(segments, v)
	}
	seq, err := field(fields, l.seq, SlotSequence, line)
	if err != nil {
		return e, err
	}
	e.Sequence = seq
	e.Header = strings.Join(segments, l.delim)
	return e, nil
}

type numberedLine struct {
	num  int
	text string
}

// splitLines splits on '\n' and skips empty lines, keeping 1-based
// line numbers for error reporting.
func splitLines(text string) []numberedLine {
	raw := strings.Split(text, "\n")
	out := make([]numberedLine, 0, len(raw))
	for i, s := range raw {
		if s == "" {
			continue
		}
		out = append(out, numberedLine{num: i + 1, text: s})
	}
	return out
}

// Parse converts delimited text into one entry per data row, in input
// order. With HasHeaderRow the first non-empty line names the columns.
func Parse(opt Options, text string) ([]fasta.Entry, error) {
	if opt.Delimiter == "" {
		return nil, configErrorf("empty delimiter")
	}
	if err := opt.check(); err != nil {
		return nil, err
	}
	lines := splitLines(text)

	var idx headerIndex
	if opt.HasHeaderRow {
		if len(lines) == 0 {
			return nil, nil
		}
		idx = newHeaderIndex(strings.Split(lines[0].text, opt.Delimiter))
		lines = lines[1:]
	}

	l, err := opt.resolve(idx)
	if err != nil {
		return nil, err
	}

	out := make([]fasta.Entry, 0, len(lines))
	for _, ln := range lines {
		e, err := l.entry(ln.num, strings.Split(ln.text, opt.Delimiter))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
