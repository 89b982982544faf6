package output

import (
	"io"

	"csv2fasta/internal/fasta"
)

// Groups returns the clone groups for list, sorted or adjacent-merged.
func Groups(sortBeforeClone bool, list []fasta.Entry) []CloneGroup {
	if sortBeforeClone {
		return GroupSorted(list)
	}
	return GroupAdjacent(list)
}

// Order returns the entries in output order. Without clone grouping that is
// the input order.
func Order(includeClone, sortBeforeClone bool, list []fasta.Entry) []fasta.Entry {
	if !includeClone {
		return list
	}
	return Flatten(Groups(sortBeforeClone, list))
}

// Flatten concatenates the groups' entries, germline first in each.
func Flatten(groups []CloneGroup) []fasta.Entry {
	n := 0
	for _, g := range groups {
		n += 1 + len(g.Members)
	}
	out := make([]fasta.Entry, 0, n)
	for _, g := range groups {
		out = append(out, g.Entries()...)
	}
	return out
}

// Format renders list as FASTA text.
func Format(includeClone, sortBeforeClone bool, list []fasta.Entry) string {
	return fasta.Render(Order(includeClone, sortBeforeClone, list))
}

// WriteFASTA writes the formatted entries to w.
func WriteFASTA(w io.Writer, includeClone, sortBeforeClone bool, list []fasta.Entry) error {
	return fasta.Write(w, Order(includeClone, sortBeforeClone, list))
}
