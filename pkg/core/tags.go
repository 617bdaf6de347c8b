package core

import "strings"

// NormalizeTags trims, lowercases and deduplicates tags, preserving the
// order of first appearance. Entries that are empty after trimming are
// dropped silently.
//
// Normalization happens at the point of addition (create/update); records
// arriving through import are left untouched.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
