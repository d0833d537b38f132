package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weddingplanner/models"
	"weddingplanner/services/planner"
	"weddingplanner/services/search"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubPlanner backs the handler with canned responses so the tests exercise
// only routing, binding, and status mapping.
type stubPlanner struct {
	snapshot *models.SessionSnapshot
	browse   *models.BrowsePayload
	planView *models.PlanViewPayload
	full     *models.FullPlannerPayload
	err      error

	gotSelection models.Selection
	gotStep      int
	gotQuery     string
	gotMax       int
}

func (s *stubPlanner) StartSession(_ context.Context, guestCount int, budget float64, location, style string) (*models.SessionSnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubPlanner) GetSession(_ context.Context, sessionID string) (*models.SessionSnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubPlanner) EndSession(_ context.Context, sessionID string) error {
	return s.err
}

func (s *stubPlanner) BrowseCategory(_ context.Context, sessionID string, cat models.Category, query string, maxResults int) (*models.BrowsePayload, error) {
	s.gotQuery = query
	s.gotMax = maxResults
	return s.browse, s.err
}

func (s *stubPlanner) FullPlanner(_ context.Context, sessionID string) (*models.FullPlannerPayload, error) {
	return s.full, s.err
}

func (s *stubPlanner) SelectOption(_ context.Context, sessionID string, sel models.Selection) (*models.SessionSnapshot, error) {
	s.gotSelection = sel
	return s.snapshot, s.err
}

func (s *stubPlanner) Advance(_ context.Context, sessionID string) (*models.SessionSnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubPlanner) Retreat(_ context.Context, sessionID string) (*models.SessionSnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubPlanner) JumpTo(_ context.Context, sessionID string, step int) (*models.SessionSnapshot, error) {
	s.gotStep = step
	return s.snapshot, s.err
}

func (s *stubPlanner) PlanView(_ context.Context, sessionID string) (*models.PlanViewPayload, error) {
	return s.planView, s.err
}

func newTestRouter(stub *stubPlanner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPlannerHandler(stub, zap.NewNop())

	r := gin.New()
	api := r.Group("/api/planner")
	api.POST("/session", h.StartSession)
	api.GET("/session/:sessionID", h.GetSession)
	api.DELETE("/session/:sessionID", h.EndSession)
	api.GET("/session/:sessionID/browse/:category", h.BrowseCategory)
	api.GET("/session/:sessionID/full", h.FullPlanner)
	api.POST("/session/:sessionID/select", h.SelectOption)
	api.POST("/session/:sessionID/advance", h.Advance)
	api.POST("/session/:sessionID/retreat", h.Retreat)
	api.POST("/session/:sessionID/jump", h.JumpTo)
	api.GET("/session/:sessionID/plan", h.PlanView)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStartSessionReturnsCreated(t *testing.T) {
	stub := &stubPlanner{snapshot: &models.SessionSnapshot{SessionID: "s1", TotalSteps: 5, GuestCount: 100}}
	r := newTestRouter(stub)

	w := doRequest(t, r, http.MethodPost, "/api/planner/session", `{"guestCount":100,"budget":30000,"location":"Lyon"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.SessionSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, 100, got.GuestCount)
}

func TestStartSessionRejectsMalformedBody(t *testing.T) {
	r := newTestRouter(&stubPlanner{})
	w := doRequest(t, r, http.MethodPost, "/api/planner/session", `{"guestCount":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	stub := &stubPlanner{err: planner.ErrSessionNotFound}
	r := newTestRouter(stub)

	w := doRequest(t, r, http.MethodGet, "/api/planner/session/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Planning session not found")
}

func TestBrowseCategoryPassesQueryParams(t *testing.T) {
	stub := &stubPlanner{browse: &models.BrowsePayload{Category: models.CategoryVenues}}
	r := newTestRouter(stub)

	w := doRequest(t, r, http.MethodGet, "/api/planner/session/s1/browse/venues?query=rustic+barn&maxResults=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rustic barn", stub.gotQuery)
	assert.Equal(t, 2, stub.gotMax)
}

func TestBrowseCategoryUnknownCategory(t *testing.T) {
	stub := &stubPlanner{err: fmt.Errorf("%w: %q", search.ErrUnknownCategory, "attire")}
	r := newTestRouter(stub)

	w := doRequest(t, r, http.MethodGet, "/api/planner/session/s1/browse/attire", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown planning category")
}

func TestBrowseCategoryRejectsBadMaxResults(t *testing.T) {
	r := newTestRouter(&stubPlanner{})
	w := doRequest(t, r, http.MethodGet, "/api/planner/session/s1/browse/venues?maxResults=lots", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectOptionBindsSelection(t *testing.T) {
	stub := &stubPlanner{snapshot: &models.SessionSnapshot{SessionID: "s1"}}
	r := newTestRouter(stub)

	w := doRequest(t, r, http.MethodPost, "/api/planner/session/s1/select",
		`{"option":{"id":"venue-2","name":"The Rustic Barn","price":4200}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.Selection{ID: "venue-2", Name: "The Rustic Barn", Price: 4200}, stub.gotSelection)
}

func TestSelectOptionRequiresID(t *testing.T) {
	r := newTestRouter(&stubPlanner{})
	w := doRequest(t, r, http.MethodPost, "/api/planner/session/s1/select", `{"option":{"name":"No ID"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "option.id is required")
}

func TestJumpToInvalidStep(t *testing.T) {
	stub := &stubPlanner{err: errors.New("step 99 out of range")}
	r := newTestRouter(stub)

	w := doRequest(t, r, http.MethodPost, "/api/planner/session/s1/jump", `{"step":99}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid step")
}

func TestJumpToMissingSessionStays404(t *testing.T) {
	stub := &stubPlanner{err: planner.ErrSessionNotFound}
	r := newTestRouter(stub)

	w := doRequest(t, r, http.MethodPost, "/api/planner/session/gone/jump", `{"step":2}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlanViewReturnsTotals(t *testing.T) {
	stub := &stubPlanner{planView: &models.PlanViewPayload{
		PlanItems:   []models.PlanItem{{Category: models.CategoryVenues, TotalPrice: 4200}},
		GuestCount:  100,
		TotalBudget: 11700,
	}}
	r := newTestRouter(stub)

	w := doRequest(t, r, http.MethodGet, "/api/planner/session/s1/plan", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.PlanViewPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 11700.0, got.TotalBudget)
	require.Len(t, got.PlanItems, 1)
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	stub := &stubPlanner{err: errors.New("redis connection refused")}
	r := newTestRouter(stub)

	w := doRequest(t, r, http.MethodGet, "/api/planner/session/s1/plan", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "redis", "internal details never leak")
}

func TestEndSession(t *testing.T) {
	r := newTestRouter(&stubPlanner{})
	w := doRequest(t, r, http.MethodDelete, "/api/planner/session/s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ended":true`)
}
