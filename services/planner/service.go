package planner

import (
	"context"
	"fmt"

	"weddingplanner/models"
	"weddingplanner/services/catalog"
	"weddingplanner/services/pricing"
	"weddingplanner/services/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPlannerService implements PlannerService.
type DefaultPlannerService struct {
	Search search.VendorSearcher
	Store  SessionStore
	Pricer *pricing.Synthesizer
	Logger *zap.Logger
}

// StartSession creates a session at the first category with no selections and
// stores it under a fresh id.
func (s *DefaultPlannerService) StartSession(ctx context.Context, guestCount int, budget float64, location, style string) (*models.SessionSnapshot, error) {
	session := models.NewPlanSession(uuid.New().String(), guestCount, budget, location, style)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("planning session started",
		zap.String("sessionID", session.SessionID),
		zap.Int("guestCount", session.GuestCount),
		zap.Float64("budget", session.Budget))
	snap := session.Snapshot()
	return &snap, nil
}

func (s *DefaultPlannerService) GetSession(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	snap := session.Snapshot()
	return &snap, nil
}

func (s *DefaultPlannerService) EndSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// BrowseCategory seeks the session pointer to cat, resolves its options
// live-or-fallback, synthesizes prices for live results when a budget is
// known, and assembles the browse payload.
func (s *DefaultPlannerService) BrowseCategory(ctx context.Context, sessionID string, cat models.Category, query string, maxResults int) (*models.BrowsePayload, error) {
	spec, ok := models.SpecFor(cat)
	if !ok {
		return nil, fmt.Errorf("%w: %q", search.ErrUnknownCategory, cat)
	}

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	index := models.CategoryIndex(cat)
	if err := session.JumpTo(index); err != nil {
		return nil, err
	}

	if query == "" {
		query = search.BuildQuery(cat, session.Location, session.Style)
	}
	options, source, err := s.Search.Search(ctx, cat, query, maxResults)
	if err != nil {
		return nil, err
	}
	if source == models.SourceLive {
		s.Pricer.Apply(options, cat, session.Budget, session.GuestCount)
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	payload := &models.BrowsePayload{
		Category:      cat,
		CategoryLabel: spec.Label,
		Step:          index + 1,
		TotalSteps:    len(models.CategoryOrder),
		IsPerPerson:   spec.PerPerson,
		Intro:         spec.Intro,
		DataSource:    source,
		Options:       options,
		Images:        optionImages(options),
	}
	if index < len(models.CategoryOrder)-1 {
		next := models.CategoryOrder[index+1]
		payload.NextCategory = next
		payload.NextCategoryLabel = models.CategoryLabel(next)
	}
	return payload, nil
}

// FullPlanner resolves every category concurrently and joins the results, so
// the presentation layer never observes partial category data.
func (s *DefaultPlannerService) FullPlanner(ctx context.Context, sessionID string) (*models.FullPlannerPayload, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	results := s.Search.SearchAll(ctx, session.Location, session.Style)

	categories := make([]models.PlannerCategory, 0, len(models.CategoryOrder))
	for _, cat := range models.CategoryOrder {
		spec, _ := models.SpecFor(cat)
		result, ok := results[cat]
		if !ok {
			result = search.CategoryResult{Options: catalog.Options(cat), Source: models.SourceCatalog}
		}
		if result.Source == models.SourceLive {
			s.Pricer.Apply(result.Options, cat, session.Budget, session.GuestCount)
		}
		categories = append(categories, models.PlannerCategory{
			Key:         cat,
			Label:       spec.Label,
			Intro:       spec.Intro,
			IsPerPerson: spec.PerPerson,
			Options:     result.Options,
		})
	}

	return &models.FullPlannerPayload{
		Categories: categories,
		GuestCount: session.GuestCount,
	}, nil
}

// SelectOption records sel for the category currently being browsed,
// replacing any prior selection for it.
func (s *DefaultPlannerService) SelectOption(ctx context.Context, sessionID string, sel models.Selection) (*models.SessionSnapshot, error) {
	return s.mutate(ctx, sessionID, func(session *models.PlanSession) error {
		return session.Select(sel)
	})
}

func (s *DefaultPlannerService) Advance(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	return s.mutate(ctx, sessionID, func(session *models.PlanSession) error {
		session.Advance()
		return nil
	})
}

func (s *DefaultPlannerService) Retreat(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	return s.mutate(ctx, sessionID, func(session *models.PlanSession) error {
		session.Retreat()
		return nil
	})
}

func (s *DefaultPlannerService) JumpTo(ctx context.Context, sessionID string, step int) (*models.SessionSnapshot, error) {
	return s.mutate(ctx, sessionID, func(session *models.PlanSession) error {
		return session.JumpTo(step)
	})
}

// mutate loads the session, applies fn, and saves the result.
func (s *DefaultPlannerService) mutate(ctx context.Context, sessionID string, fn func(*models.PlanSession) error) (*models.SessionSnapshot, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	snap := session.Snapshot()
	return &snap, nil
}

// PlanView derives the plan summary: one item per selected category, with
// per-person scaling and images resolved from the curated catalog by id.
func (s *DefaultPlannerService) PlanView(ctx context.Context, sessionID string) (*models.PlanViewPayload, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]models.PlanItem, 0, len(session.Selections))
	for _, cat := range models.CategoryOrder {
		sel, ok := session.Selections[cat]
		if !ok {
			continue
		}
		spec, _ := models.SpecFor(cat)
		imageURL := ""
		if opt, found := catalog.Lookup(sel.ID); found {
			imageURL = opt.ImageURL
		}
		items = append(items, models.PlanItem{
			Category:      cat,
			CategoryLabel: spec.Label,
			Name:          sel.Name,
			Price:         sel.Price,
			TotalPrice:    session.TotalForCategory(cat),
			IsPerPerson:   spec.PerPerson,
			ImageURL:      imageURL,
		})
	}

	return &models.PlanViewPayload{
		PlanItems:           items,
		GuestCount:          session.GuestCount,
		TotalBudget:         session.TotalBudget(),
		CategoriesCompleted: session.CompletedCount(),
		TotalCategories:     len(models.CategoryOrder),
	}, nil
}

func optionImages(options []models.VendorOption) []string {
	images := make([]string, len(options))
	for i, opt := range options {
		images[i] = opt.ImageURL
	}
	return images
}
