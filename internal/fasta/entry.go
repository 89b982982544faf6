// internal/fasta/entry.go
package fasta

import (
	"io"
	"strings"
)

// Entry is one FASTA record built from a table row.
type Entry struct {
	Header   string
	Sequence string

	// Germline and Clone hold the raw germline/clone column values when
	// they were requested; the same values also appear as header segments.
	Germline string
	Clone    string
}

// String renders the entry as ">header\nsequence\n". Long sequences are
// not wrapped.
func (e Entry) String() string {
	var b strings.Builder
	b.Grow(len(e.Header) + len(e.Sequence) + 3)
	e.writeTo(&b)
	return b.String()
}

func (e Entry) writeTo(b *strings.Builder) {
	b.WriteByte('>')
	b.WriteString(e.Header)
	b.WriteByte('\n')
	b.WriteString(e.Sequence)
	b.WriteByte('\n')
}

// Render concatenates the entries in order.
func Render(list []Entry) string {
	n := 0
	for _, e := range list {
		n += len(e.Header) + len(e.Sequence) + 3
	}
	var b strings.Builder
	b.Grow(n)
	for _, e := range list {
		e.writeTo(&b)
	}
	return b.String()
}

// Write renders the entries to w.
func Write(w io.Writer, list []Entry) error {
	_, err := io.WriteString(w, Render(list))
	return err
}

// DropEmpty removes entries without a sequence, preserving order.
// It returns the kept entries and the number dropped.
func DropEmpty(list []Entry) ([]Entry, int) {
	out := list[:0:0]
	for _, e := range list {
		if e.Sequence == "" {
			continue
		}
		out = append(out, e)
	}
	return out, len(list) - len(out)
}

// Label prefixes every header with "label|". An empty label is a no-op.
func Label(list []Entry, label string) {
	if label == "" {
		return
	}
	for i := range list {
		list[i].Header = label + "|" + list[i].Header
	}
}
