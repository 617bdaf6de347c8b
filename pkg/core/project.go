package core

import (
	"sort"
	"strings"
)

// Project derives the display view of a collection: records sorted with
// pinned entries first (ties broken by ascending primary text), then
// filtered by term.
//
// An empty term passes every record. Otherwise a record passes if the
// lowercased term is a substring of the lowercased primary or secondary
// text, or a substring of at least one tag. Tags are stored lowercase, so
// they are matched as-is; imported tags keep whatever casing they came in
// with.
//
// The input slice is never modified. Identical inputs yield identical
// output order and membership.
func Project[R Record[R]](records []R, term string) []R {
	sorted := make([]R, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].IsPinned(), sorted[j].IsPinned()
		if pi != pj {
			return pi
		}
		return sorted[i].Primary() < sorted[j].Primary()
	})

	if term == "" {
		return sorted
	}

	lower := strings.ToLower(term)
	out := make([]R, 0, len(sorted))
	for _, r := range sorted {
		if matches(r, lower) {
			out = append(out, r)
		}
	}
	return out
}

func matches[R Record[R]](r R, lower string) bool {
	if strings.Contains(strings.ToLower(r.Primary()), lower) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Secondary()), lower) {
		return true
	}
	for _, tag := range r.TagList() {
		if strings.Contains(tag, lower) {
			return true
		}
	}
	return false
}
