package domain

import (
	"time"
)

// UpdateSpec describes the batch of field updates to apply to every matched
// check. Nil pointer fields are left untouched on the remote check.
type UpdateSpec struct {
	Name         *string
	Description  *string
	Timeout      *time.Duration
	Grace        *time.Duration
	Schedule     *string
	Timezone     *string
	Methods      *string
	Channels     *string
	ManualResume *bool

	// AddTags and RemoveTags adjust the current tag set; RemoveTags is
	// applied after AddTags so a tag present in both ends up removed.
	AddTags    []string
	RemoveTags []string
	// ReplaceTags, when non-nil, replaces the tag set entirely. A pointer to
	// an empty slice clears all tags.
	ReplaceTags *[]string

	// Pause pauses (true) or resumes (false) the check. Nil leaves the
	// paused state alone.
	Pause *bool
}

// Validate enforces the mutual exclusions the CLI promises: replacing tags
// cannot be combined with add/remove.
func (s UpdateSpec) Validate() error {
	if s.ReplaceTags != nil && (len(s.AddTags) > 0 || len(s.RemoveTags) > 0) {
		return ConfigErrorf("--replace-tags cannot be combined with --add-tags or --remove-tags")
	}
	return nil
}

// IsZero reports whether the spec requests no change at all.
func (s UpdateSpec) IsZero() bool {
	return s.Name == nil && s.Description == nil && s.Timeout == nil && s.Grace == nil &&
		s.Schedule == nil && s.Timezone == nil && s.Methods == nil && s.Channels == nil &&
		s.ManualResume == nil && len(s.AddTags) == 0 && len(s.RemoveTags) == 0 &&
		s.ReplaceTags == nil && s.Pause == nil
}

// CheckPatch is the partial-update payload sent to the service. Only non-nil
// fields appear on the wire; omitted fields stay unchanged remotely. Tags are
// a single space-separated string and timeout/grace are integer seconds,
// matching the management API.
type CheckPatch struct {
	Name         *string `json:"name,omitempty"`
	Desc         *string `json:"desc,omitempty"`
	Tags         *string `json:"tags,omitempty"`
	Timeout      *int64  `json:"timeout,omitempty"`
	Grace        *int64  `json:"grace,omitempty"`
	Schedule     *string `json:"schedule,omitempty"`
	Timezone     *string `json:"tz,omitempty"`
	Methods      *string `json:"methods,omitempty"`
	Channels     *string `json:"channels,omitempty"`
	ManualResume *bool   `json:"manual_resume,omitempty"`
}

// IsZero reports whether the patch carries no field at all.
func (p CheckPatch) IsZero() bool {
	return p.Name == nil && p.Desc == nil && p.Tags == nil && p.Timeout == nil &&
		p.Grace == nil && p.Schedule == nil && p.Timezone == nil && p.Methods == nil &&
		p.Channels == nil && p.ManualResume == nil
}

// Fields returns the wire fields the patch would send, keyed by API field
// name. Used for reporting what was (or would be) applied.
func (p CheckPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Desc != nil {
		fields["desc"] = *p.Desc
	}
	if p.Tags != nil {
		fields["tags"] = *p.Tags
	}
	if p.Timeout != nil {
		fields["timeout"] = *p.Timeout
	}
	if p.Grace != nil {
		fields["grace"] = *p.Grace
	}
	if p.Schedule != nil {
		fields["schedule"] = *p.Schedule
	}
	if p.Timezone != nil {
		fields["tz"] = *p.Timezone
	}
	if p.Methods != nil {
		fields["methods"] = *p.Methods
	}
	if p.Channels != nil {
		fields["channels"] = *p.Channels
	}
	if p.ManualResume != nil {
		fields["manual_resume"] = *p.ManualResume
	}
	return fields
}

// ChangeRequest is one planned change for one check. Requests are independent
// of each other; a zero patch with no pause action is a recognized no-op.
type ChangeRequest struct {
	CheckID   string
	CheckName string
	Patch     CheckPatch
	// Pause pauses (true) or resumes (false) the check after the field
	// update, nil for neither.
	Pause *bool
}

// IsNoOp reports whether executing the request would change nothing.
func (r ChangeRequest) IsNoOp() bool {
	return r.Patch.IsZero() && r.Pause == nil
}

// ChangeResult records the outcome of executing one ChangeRequest.
type ChangeResult struct {
	CheckID   string
	CheckName string
	// Applied holds the wire fields that were sent (or would have been sent
	// under dry-run), keyed by API field name.
	Applied map[string]any
	Paused  bool
	Resumed bool
	NoOp    bool
	DryRun  bool
	Err     error
}

// Failed reports whether the change was rejected or could not be delivered.
func (r ChangeResult) Failed() bool {
	return r.Err != nil
}
