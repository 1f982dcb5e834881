// Package planner turns an UpdateSpec into per-check change requests. It is
// pure: planning never touches the network and requests are independent of
// each other.
package planner

import (
	"hc-bulk/internal/domain"
)

// Plan builds one ChangeRequest per input check, in input order. Only fields
// the spec actually sets appear in the request patch; a check whose resolved
// state already matches the spec yields a recognized no-op request.
func Plan(checks []domain.Check, spec domain.UpdateSpec) []domain.ChangeRequest {
	requests := make([]domain.ChangeRequest, 0, len(checks))
	for _, c := range checks {
		requests = append(requests, planOne(c, spec))
	}
	return requests
}

func planOne(check domain.Check, spec domain.UpdateSpec) domain.ChangeRequest {
	req := domain.ChangeRequest{
		CheckID:   check.ID,
		CheckName: check.Name,
		Pause:     spec.Pause,
	}

	if tags, changed := resolveTags(check.Tags, spec); changed {
		req.Patch.Tags = &tags
	}

	req.Patch.Name = spec.Name
	req.Patch.Desc = spec.Description
	req.Patch.Schedule = spec.Schedule
	req.Patch.Timezone = spec.Timezone
	req.Patch.Methods = spec.Methods
	req.Patch.Channels = spec.Channels
	req.Patch.ManualResume = spec.ManualResume

	if spec.Timeout != nil {
		secs := int64(spec.Timeout.Seconds())
		req.Patch.Timeout = &secs
	}
	if spec.Grace != nil {
		secs := int64(spec.Grace.Seconds())
		req.Patch.Grace = &secs
	}

	return req
}

// resolveTags computes the wire tag string for one check. ReplaceTags wins
// outright when set; otherwise the result is (current ∪ add) − remove, with
// remove applied last so a tag listed on both sides ends up removed. When the
// resolved set equals the current one the tags field is omitted entirely.
func resolveTags(current []string, spec domain.UpdateSpec) (string, bool) {
	var resolved []string

	switch {
	case spec.ReplaceTags != nil:
		resolved = domain.NormalizeTags(*spec.ReplaceTags)
	case len(spec.AddTags) > 0 || len(spec.RemoveTags) > 0:
		set := domain.TagSet(current)
		for _, t := range domain.NormalizeTags(spec.AddTags) {
			set[t] = struct{}{}
		}
		for _, t := range domain.NormalizeTags(spec.RemoveTags) {
			delete(set, t)
		}
		resolved = make([]string, 0, len(set))
		for t := range set {
			resolved = append(resolved, t)
		}
		resolved = domain.NormalizeTags(resolved)
	default:
		return "", false
	}

	wire := domain.JoinTags(resolved)
	if wire == domain.JoinTags(current) {
		return "", false
	}
	return wire, true
}
