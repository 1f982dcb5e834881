package domain

import (
	"sort"
	"strings"
)

// NormalizeTags returns a sorted copy of tags with duplicates and empty
// entries removed. Never returns nil so the result is stable to compare.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// SplitTags splits a space-separated tag string as used on the wire.
func SplitTags(s string) []string {
	return NormalizeTags(strings.Fields(s))
}

// JoinTags renders a tag set in wire format: space-separated, sorted.
func JoinTags(tags []string) string {
	return strings.Join(NormalizeTags(tags), " ")
}

// TagSet converts a tag slice to a set for membership tests.
func TagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}
