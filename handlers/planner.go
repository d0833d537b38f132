package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"weddingplanner/models"
	"weddingplanner/services/planner"
	"weddingplanner/services/search"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler exposes the planning session lifecycle over HTTP.
type PlannerHandler struct {
	Service planner.PlannerService
	Logger  *zap.Logger
}

// NewPlannerHandler returns a handler backed by svc.
func NewPlannerHandler(svc planner.PlannerService, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{Service: svc, Logger: logger}
}

// respondError maps service errors onto HTTP statuses. Unknown categories are
// caller bugs (400); missing sessions are 404; everything else is internal.
func (h *PlannerHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Planning session not found", err.Error())
	case errors.Is(err, search.ErrUnknownCategory):
		utils.JSONError(c, http.StatusBadRequest, "Unknown planning category", err.Error())
	default:
		h.Logger.Error("planner request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Planning request failed", "Please try again later.")
	}
}

// StartSession creates a new planning session.
func (h *PlannerHandler) StartSession(c *gin.Context) {
	var input struct {
		GuestCount int     `json:"guestCount"`
		Budget     float64 `json:"budget"`
		Location   string  `json:"location"`
		Style      string  `json:"style"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	snapshot, err := h.Service.StartSession(c.Request.Context(), input.GuestCount, input.Budget, input.Location, input.Style)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// GetSession returns the session state and its derived totals.
func (h *PlannerHandler) GetSession(c *gin.Context) {
	snapshot, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// EndSession discards the planning run.
func (h *PlannerHandler) EndSession(c *gin.Context) {
	if err := h.Service.EndSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ended": true})
}

// BrowseCategory returns vendor options for one category, live-or-fallback.
func (h *PlannerHandler) BrowseCategory(c *gin.Context) {
	cat := models.Category(c.Param("category"))
	query := c.Query("query")

	maxResults := 0
	if raw := c.Query("maxResults"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", "maxResults must be an integer")
			return
		}
		maxResults = parsed
	}

	payload, err := h.Service.BrowseCategory(c.Request.Context(), c.Param("sessionID"), cat, query, maxResults)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// FullPlanner returns options for every category at once.
func (h *PlannerHandler) FullPlanner(c *gin.Context) {
	payload, err := h.Service.FullPlanner(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// SelectOption records a selection for the category currently being browsed.
func (h *PlannerHandler) SelectOption(c *gin.Context) {
	var input struct {
		Option models.Selection `json:"option"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if input.Option.ID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "option.id is required")
		return
	}

	snapshot, err := h.Service.SelectOption(c.Request.Context(), c.Param("sessionID"), input.Option)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Advance moves the session one step forward.
func (h *PlannerHandler) Advance(c *gin.Context) {
	snapshot, err := h.Service.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Retreat moves the session one step back.
func (h *PlannerHandler) Retreat(c *gin.Context) {
	snapshot, err := h.Service.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// JumpTo seeks the session directly to a step.
func (h *PlannerHandler) JumpTo(c *gin.Context) {
	var input struct {
		Step int `json:"step"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	snapshot, err := h.Service.JumpTo(c.Request.Context(), c.Param("sessionID"), input.Step)
	if err != nil {
		if errors.Is(err, planner.ErrSessionNotFound) {
			h.respondError(c, err)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Invalid step", err.Error())
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// PlanView returns the plan summary with per-category totals.
func (h *PlannerHandler) PlanView(c *gin.Context) {
	payload, err := h.Service.PlanView(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
