package domain

import (
	"fmt"
	"time"
)

// Status is the remote state of a check as reported by the service.
type Status string

const (
	StatusNew    Status = "new"
	StatusUp     Status = "up"
	StatusGrace  Status = "grace"
	StatusDown   Status = "down"
	StatusPaused Status = "paused"
)

// KnownStatuses lists every valid status value, in display order.
func KnownStatuses() []string {
	return []string{string(StatusNew), string(StatusUp), string(StatusGrace), string(StatusDown), string(StatusPaused)}
}

// ParseStatus validates a status string from user input.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNew, StatusUp, StatusGrace, StatusDown, StatusPaused:
		return Status(s), nil
	}
	return "", ConfigErrorf("unknown status %q, expected one of %v", s, KnownStatuses())
}

// Check is a monitored heartbeat task owned by the remote service. The tool
// only ever reads and patches checks, it never creates or deletes them.
type Check struct {
	// ID is the check UUID. Empty when the check was listed through a
	// read-only API key, in which case only UniqueKey is available and the
	// check cannot be updated.
	ID           string
	UniqueKey    string
	Name         string
	Slug         string
	Description  string
	Tags         []string
	Timeout      time.Duration
	Grace        time.Duration
	Schedule     string
	Timezone     string
	Methods      string
	Channels     string
	ManualResume bool
	Status       Status
	LastPing     time.Time
}

// DisplayID returns the best available identifier for human output.
func (c Check) DisplayID() string {
	if c.ID != "" {
		return c.ID
	}
	return c.UniqueKey
}

// DisplayName returns the check name, or a placeholder for unnamed checks.
func (c Check) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return "(no-name)"
}

// FilterCriteria selects a subset of checks. Absent fields impose no
// constraint; all present fields are combined with logical AND.
type FilterCriteria struct {
	// Tags matches checks whose tag set intersects this set (match-any).
	Tags []string
	// NamePattern and SlugPattern are regex sources, searched (not anchored)
	// against the respective field.
	NamePattern string
	SlugPattern string
	// Statuses matches checks whose status equals any listed value.
	Statuses []Status
}

// IsZero reports whether no criterion is set at all.
func (f FilterCriteria) IsZero() bool {
	return len(f.Tags) == 0 && f.NamePattern == "" && f.SlugPattern == "" && len(f.Statuses) == 0
}

func (f FilterCriteria) String() string {
	return fmt.Sprintf("tags=%v name-re=%q slug-re=%q statuses=%v", f.Tags, f.NamePattern, f.SlugPattern, f.Statuses)
}
