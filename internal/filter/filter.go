// Package filter selects checks matching operator-supplied criteria. All
// matching happens locally on the full check list so ls and bulk-update share
// identical semantics.
package filter

import (
	"regexp"

	"hc-bulk/internal/domain"
)

// Filter is a compiled FilterCriteria. Compilation fails fast on invalid
// regexes, before any network call is made.
type Filter struct {
	tags     map[string]struct{}
	nameRE   *regexp.Regexp
	slugRE   *regexp.Regexp
	statuses map[domain.Status]struct{}
}

// New compiles criteria into a Filter.
func New(criteria domain.FilterCriteria) (*Filter, error) {
	f := &Filter{
		tags:     domain.TagSet(domain.NormalizeTags(criteria.Tags)),
		statuses: make(map[domain.Status]struct{}, len(criteria.Statuses)),
	}

	if criteria.NamePattern != "" {
		re, err := regexp.Compile(criteria.NamePattern)
		if err != nil {
			return nil, domain.WrapConfigError("invalid --name-re pattern", err)
		}
		f.nameRE = re
	}

	if criteria.SlugPattern != "" {
		re, err := regexp.Compile(criteria.SlugPattern)
		if err != nil {
			return nil, domain.WrapConfigError("invalid --slug-re pattern", err)
		}
		f.slugRE = re
	}

	for _, s := range criteria.Statuses {
		status, err := domain.ParseStatus(string(s))
		if err != nil {
			return nil, err
		}
		f.statuses[status] = struct{}{}
	}

	return f, nil
}

// Select returns the checks matching every compiled criterion, preserving the
// input order. The input slice is never mutated.
func (f *Filter) Select(checks []domain.Check) []domain.Check {
	selected := make([]domain.Check, 0, len(checks))
	for _, c := range checks {
		if f.Matches(c) {
			selected = append(selected, c)
		}
	}
	return selected
}

// Matches reports whether a single check satisfies all criteria. Absent
// criteria impose no constraint, so an empty filter matches everything.
func (f *Filter) Matches(c domain.Check) bool {
	if !f.matchTags(c.Tags) {
		return false
	}
	if f.nameRE != nil && !f.nameRE.MatchString(c.Name) {
		return false
	}
	if f.slugRE != nil && !f.slugRE.MatchString(c.Slug) {
		return false
	}
	if len(f.statuses) > 0 {
		if _, ok := f.statuses[c.Status]; !ok {
			return false
		}
	}
	return true
}

// matchTags implements match-any: the check passes when its tag set
// intersects the criteria tags. An empty criterion means no tag filtering.
func (f *Filter) matchTags(tags []string) bool {
	if len(f.tags) == 0 {
		return true
	}
	for _, t := range tags {
		if _, ok := f.tags[t]; ok {
			return true
		}
	}
	return false
}
