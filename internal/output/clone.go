package output

import (
	"sort"

	"csv2fasta/internal/fasta"
)

// CloneGroup is a run of entries sharing a clone identifier. Germline is
// emitted first, then Members in order.
type CloneGroup struct {
	Clone    string
	Germline fasta.Entry
	Members  []fasta.Entry
}

// Entries returns the group in output order.
func (g CloneGroup) Entries() []fasta.Entry {
	out := make([]fasta.Entry, 0, len(g.Members)+1)
	out = append(out, g.Germline)
	return append(out, g.Members...)
}

// newGroup anchors a run on its first entry, the one whose clone value
// opened the group. The rest follow in run order.
func newGroup(run []fasta.Entry) CloneGroup {
	return CloneGroup{
		Clone:    run[0].Clone,
		Germline: run[0],
		Members:  append([]fasta.Entry(nil), run[1:]...),
	}
}

// GroupAdjacent merges only neighbouring entries with the same clone
// identifier. Non-adjacent runs of one clone stay separate groups.
func GroupAdjacent(list []fasta.Entry) []CloneGroup {
	var groups []CloneGroup
	for start := 0; start < len(list); {
		end := start + 1
		for end < len(list) && list[end].Clone == list[start].Clone {
			end++
		}
		groups = append(groups, newGroup(list[start:end]))
		start = end
	}
	return groups
}

// SortByClone stable-sorts a copy of list by clone identifier.
func SortByClone(list []fasta.Entry) []fasta.Entry {
	out := append([]fasta.Entry(nil), list...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Clone < out[j].Clone })
	return out
}

// GroupSorted sorts by clone identifier, then groups, so every clone forms
// exactly one group. Order within a clone is preserved.
func GroupSorted(list []fasta.Entry) []CloneGroup {
	return GroupAdjacent(SortByClone(list))
}
