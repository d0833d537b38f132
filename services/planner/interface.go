package planner

import (
	"context"

	"weddingplanner/models"
)

// PlannerService drives a stepwise planning run: one session per run, category
// browsing with live-or-fallback vendor options, selection tracking, and
// derived budget summaries.
type PlannerService interface {
	StartSession(ctx context.Context, guestCount int, budget float64, location, style string) (*models.SessionSnapshot, error)
	GetSession(ctx context.Context, sessionID string) (*models.SessionSnapshot, error)
	EndSession(ctx context.Context, sessionID string) error

	// BrowseCategory seeks the session to cat and returns its options. An
	// empty query is built from the session's location and style; query
	// overrides it verbatim. maxResults <= 0 uses the category default.
	BrowseCategory(ctx context.Context, sessionID string, cat models.Category, query string, maxResults int) (*models.BrowsePayload, error)

	// FullPlanner resolves options for every category concurrently.
	FullPlanner(ctx context.Context, sessionID string) (*models.FullPlannerPayload, error)

	SelectOption(ctx context.Context, sessionID string, sel models.Selection) (*models.SessionSnapshot, error)
	Advance(ctx context.Context, sessionID string) (*models.SessionSnapshot, error)
	Retreat(ctx context.Context, sessionID string) (*models.SessionSnapshot, error)
	JumpTo(ctx context.Context, sessionID string, step int) (*models.SessionSnapshot, error)

	PlanView(ctx context.Context, sessionID string) (*models.PlanViewPayload, error)
}
