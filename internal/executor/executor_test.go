package executor

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hc-bulk/internal/domain"
	"hc-bulk/internal/hcapi"
)

// fakeClient is an in-memory CheckClient recording every call.
type fakeClient struct {
	updateErrs  map[string]error
	pauseErrs   map[string]error
	updateCalls []string
	pauseCalls  []string
	resumeCalls []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		updateErrs: map[string]error{},
		pauseErrs:  map[string]error{},
	}
}

func (f *fakeClient) ListChecks(ctx context.Context) ([]domain.Check, error) {
	return nil, nil
}

func (f *fakeClient) UpdateCheck(ctx context.Context, id string, patch domain.CheckPatch) (*domain.Check, error) {
	f.updateCalls = append(f.updateCalls, id)
	if err := f.updateErrs[id]; err != nil {
		return nil, err
	}
	return &domain.Check{ID: id}, nil
}

func (f *fakeClient) PauseCheck(ctx context.Context, id string) error {
	f.pauseCalls = append(f.pauseCalls, id)
	return f.pauseErrs[id]
}

func (f *fakeClient) ResumeCheck(ctx context.Context, id string) error {
	f.resumeCalls = append(f.resumeCalls, id)
	return nil
}

func namedRequest(id string) domain.ChangeRequest {
	name := "renamed"
	return domain.ChangeRequest{
		CheckID:   id,
		CheckName: "check-" + id,
		Patch:     domain.CheckPatch{Name: &name},
	}
}

func TestExecutePartialFailureContinues(t *testing.T) {
	fake := newFakeClient()
	fake.updateErrs["c2"] = &hcapi.APIError{StatusCode: http.StatusBadRequest, Message: "bad schedule"}

	requests := []domain.ChangeRequest{namedRequest("c1"), namedRequest("c2"), namedRequest("c3")}
	results, err := New(fake, zap.NewNop()).Execute(context.Background(), requests, Options{})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.False(t, results[0].Failed())
	assert.True(t, results[1].Failed())
	assert.False(t, results[2].Failed())
	assert.Equal(t, []string{"c1", "c2", "c3"}, fake.updateCalls)
}

func TestExecuteDryRunNeverTouchesNetwork(t *testing.T) {
	fake := newFakeClient()
	pause := true
	requests := []domain.ChangeRequest{
		namedRequest("c1"),
		{CheckID: "c2", Pause: &pause},
	}

	results, err := New(fake, zap.NewNop()).Execute(context.Background(), requests, Options{DryRun: true})

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.True(t, res.DryRun)
		assert.False(t, res.Failed())
	}
	assert.Empty(t, fake.updateCalls)
	assert.Empty(t, fake.pauseCalls)
	assert.Empty(t, fake.resumeCalls)

	// Dry-run still reports what would have been sent.
	assert.Equal(t, map[string]any{"name": "renamed"}, results[0].Applied)
	assert.True(t, results[1].Paused)
}

func TestExecuteSkipsNoOpRequests(t *testing.T) {
	fake := newFakeClient()
	requests := []domain.ChangeRequest{
		{CheckID: "c1", CheckName: "unchanged"},
		namedRequest("c2"),
	}

	results, err := New(fake, zap.NewNop()).Execute(context.Background(), requests, Options{})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].NoOp)
	assert.False(t, results[0].Failed())
	assert.Empty(t, results[0].Applied)
	assert.Equal(t, []string{"c2"}, fake.updateCalls)
}

func TestExecuteAbortsOnFatalError(t *testing.T) {
	fake := newFakeClient()
	fake.updateErrs["c1"] = &hcapi.APIError{StatusCode: http.StatusUnauthorized, Message: "wrong api key"}

	requests := []domain.ChangeRequest{namedRequest("c1"), namedRequest("c2"), namedRequest("c3")}
	results, err := New(fake, zap.NewNop()).Execute(context.Background(), requests, Options{})

	require.Error(t, err)
	assert.Len(t, results, 1)
	assert.True(t, results[0].Failed())
	// The remaining requests were never attempted.
	assert.Equal(t, []string{"c1"}, fake.updateCalls)
}

func TestExecutePauseAndResume(t *testing.T) {
	fake := newFakeClient()
	pause := true
	resume := false
	requests := []domain.ChangeRequest{
		{CheckID: "c1", Pause: &pause},
		{CheckID: "c2", Pause: &resume},
	}

	results, err := New(fake, zap.NewNop()).Execute(context.Background(), requests, Options{})

	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, fake.pauseCalls)
	assert.Equal(t, []string{"c2"}, fake.resumeCalls)
	assert.Empty(t, fake.updateCalls)
	assert.True(t, results[0].Paused)
	assert.True(t, results[1].Resumed)
}

func TestExecuteObserverSeesEveryResult(t *testing.T) {
	fake := newFakeClient()
	fake.updateErrs["c2"] = &hcapi.APIError{StatusCode: http.StatusNotFound}

	var observed []string
	opts := Options{OnResult: func(res domain.ChangeResult) {
		observed = append(observed, res.CheckID)
	}}

	requests := []domain.ChangeRequest{namedRequest("c1"), namedRequest("c2")}
	_, err := New(fake, zap.NewNop()).Execute(context.Background(), requests, opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, observed)
}

func TestExecuteStopsOnCancelledContext(t *testing.T) {
	fake := newFakeClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := New(fake, zap.NewNop()).Execute(ctx, []domain.ChangeRequest{namedRequest("c1")}, Options{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, results)
	assert.Empty(t, fake.updateCalls)
}
