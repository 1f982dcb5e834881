package commands

import (
	"hc-bulk/internal/domain"
)

// Command names as registered on the CLI.
const (
	CommandLS         = "ls"
	CommandBulkUpdate = "bulk-update"
)

// Invocation is the fully parsed CLI request: which command to run, the
// selection criteria, the updates to apply, and the safety switches.
type Invocation struct {
	Command string

	// APIKey and APIURL override the environment when set via flags.
	APIKey string
	APIURL string

	Criteria domain.FilterCriteria
	Updates  domain.UpdateSpec

	DryRun    bool
	AssumeYes bool
	Progress  bool
}
