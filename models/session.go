package models

import (
	"fmt"
	"time"
)

// DefaultGuestCount is assumed when a session starts without a guest count.
const DefaultGuestCount = 100

// PlanSession is the stepwise planning state machine. CurrentStep indexes
// CategoryOrder; the value len(CategoryOrder) denotes the summary state.
// Totals are derived from Selections and GuestCount on every read and are
// never stored, so they cannot drift.
type PlanSession struct {
	SessionID   string                 `json:"sessionId"`
	CurrentStep int                    `json:"currentStep"`
	Selections  map[Category]Selection `json:"selections"`
	GuestCount  int                    `json:"guestCount"`
	// Budget is the user's total budget; 0 means unknown, which disables
	// price synthesis.
	Budget    float64   `json:"budget"`
	Location  string    `json:"location,omitempty"`
	Style     string    `json:"style,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewPlanSession creates a session at the first category with no selections.
func NewPlanSession(sessionID string, guestCount int, budget float64, location, style string) *PlanSession {
	if guestCount <= 0 {
		guestCount = DefaultGuestCount
	}
	if budget < 0 {
		budget = 0
	}
	return &PlanSession{
		SessionID:  sessionID,
		Selections: make(map[Category]Selection),
		GuestCount: guestCount,
		Budget:     budget,
		Location:   location,
		Style:      style,
		CreatedAt:  time.Now(),
	}
}

// TotalSteps is the number of browsable categories; step TotalSteps is summary.
func (s *PlanSession) TotalSteps() int {
	return len(CategoryOrder)
}

// IsSummary reports whether the session is at the summary step.
func (s *PlanSession) IsSummary() bool {
	return s.CurrentStep >= s.TotalSteps()
}

// CurrentCategory returns the category being browsed, or false at summary.
func (s *PlanSession) CurrentCategory() (Category, bool) {
	if s.IsSummary() {
		return "", false
	}
	return CategoryOrder[s.CurrentStep], true
}

// Select records sel for the category currently being browsed, replacing any
// prior selection. It does not move the step pointer.
func (s *PlanSession) Select(sel Selection) error {
	cat, ok := s.CurrentCategory()
	if !ok {
		return fmt.Errorf("cannot select at the summary step")
	}
	if s.Selections == nil {
		s.Selections = make(map[Category]Selection)
	}
	s.Selections[cat] = sel
	return nil
}

// Advance moves one step forward, stopping at summary.
func (s *PlanSession) Advance() {
	if s.CurrentStep < s.TotalSteps() {
		s.CurrentStep++
	}
}

// Retreat moves one step back, stopping at the first category.
func (s *PlanSession) Retreat() {
	if s.CurrentStep > 0 {
		s.CurrentStep--
	}
}

// JumpTo seeks directly to any step in [0, TotalSteps]. Selections are
// unaffected.
func (s *PlanSession) JumpTo(step int) error {
	if step < 0 || step > s.TotalSteps() {
		return fmt.Errorf("step %d out of range [0, %d]", step, s.TotalSteps())
	}
	s.CurrentStep = step
	return nil
}

// TotalForCategory returns the selection's contribution to the budget: the
// unit price, multiplied by guest count for per-person categories. Zero when
// nothing is selected.
func (s *PlanSession) TotalForCategory(cat Category) float64 {
	sel, ok := s.Selections[cat]
	if !ok {
		return 0
	}
	if spec, ok := SpecFor(cat); ok && spec.PerPerson {
		return sel.Price * float64(s.GuestCount)
	}
	return sel.Price
}

// TotalBudget is the sum of every category's contribution.
func (s *PlanSession) TotalBudget() float64 {
	total := 0.0
	for _, cat := range CategoryOrder {
		total += s.TotalForCategory(cat)
	}
	return total
}

// CompletedCount is the number of categories with a selection.
func (s *PlanSession) CompletedCount() int {
	count := 0
	for _, cat := range CategoryOrder {
		if _, ok := s.Selections[cat]; ok {
			count++
		}
	}
	return count
}

// IsComplete reports whether every category has a selection.
func (s *PlanSession) IsComplete() bool {
	return s.CompletedCount() == s.TotalSteps()
}
