package interfaces

import (
	"context"
	"hc-bulk/internal/domain"
)

// CheckClient defines the capabilities the tool needs from the remote
// service. The real HTTP client and in-memory test fakes both implement it.
type CheckClient interface {
	ListChecks(ctx context.Context) ([]domain.Check, error)
	UpdateCheck(ctx context.Context, id string, patch domain.CheckPatch) (*domain.Check, error)
	PauseCheck(ctx context.Context, id string) error
	ResumeCheck(ctx context.Context, id string) error
}
