package hcapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"hc-bulk/internal/domain"
)

// apiCheck is the wire representation of a check. Tags come as one
// space-separated string and timeout/grace as integer seconds.
type apiCheck struct {
	UUID         string `json:"uuid"`
	UniqueKey    string `json:"unique_key"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Desc         string `json:"desc"`
	Tags         string `json:"tags"`
	Timeout      int64  `json:"timeout"`
	Grace        int64  `json:"grace"`
	Schedule     string `json:"schedule"`
	Timezone     string `json:"tz"`
	Methods      string `json:"methods"`
	Channels     string `json:"channels"`
	ManualResume bool   `json:"manual_resume"`
	Status       string `json:"status"`
	LastPing     string `json:"last_ping"`
	NPings       int    `json:"n_pings"`
	PingURL      string `json:"ping_url"`
}

func (a apiCheck) toDomain() domain.Check {
	check := domain.Check{
		ID:           a.UUID,
		UniqueKey:    a.UniqueKey,
		Name:         a.Name,
		Slug:         a.Slug,
		Description:  a.Desc,
		Tags:         domain.SplitTags(a.Tags),
		Timeout:      time.Duration(a.Timeout) * time.Second,
		Grace:        time.Duration(a.Grace) * time.Second,
		Schedule:     a.Schedule,
		Timezone:     a.Timezone,
		Methods:      a.Methods,
		Channels:     a.Channels,
		ManualResume: a.ManualResume,
		Status:       domain.Status(a.Status),
	}

	if a.LastPing != "" {
		if ts, err := time.Parse(time.RFC3339, a.LastPing); err == nil {
			check.LastPing = ts
		}
	}

	return check
}

// ListChecks fetches every check in the project the API key belongs to.
func (c *Client) ListChecks(ctx context.Context) ([]domain.Check, error) {
	var resp struct {
		Checks []apiCheck `json:"checks"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/v3/checks/", nil, &resp); err != nil {
		return nil, err
	}

	checks := make([]domain.Check, 0, len(resp.Checks))
	for _, a := range resp.Checks {
		checks = append(checks, a.toDomain())
	}
	return checks, nil
}

// UpdateCheck applies a partial update to one check and returns the updated
// remote state. Fields absent from the patch are left unchanged remotely.
func (c *Client) UpdateCheck(ctx context.Context, id string, patch domain.CheckPatch) (*domain.Check, error) {
	var updated apiCheck
	if err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/v3/checks/%s", id), patch, &updated); err != nil {
		return nil, err
	}

	check := updated.toDomain()
	return &check, nil
}

// PauseCheck pauses monitoring for one check.
func (c *Client) PauseCheck(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/v3/checks/%s/pause", id), struct{}{}, nil)
}

// ResumeCheck resumes monitoring for a paused check.
func (c *Client) ResumeCheck(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/v3/checks/%s/resume", id), struct{}{}, nil)
}
