package models

// OptionSource says where a category's options came from.
type OptionSource string

const (
	SourceLive    OptionSource = "google-places"
	SourceCatalog OptionSource = "catalog"
)

// BrowsePayload is the presentation shape for browsing one category.
type BrowsePayload struct {
	Category          Category       `json:"category"`
	CategoryLabel     string         `json:"categoryLabel"`
	Step              int            `json:"step"`
	TotalSteps        int            `json:"totalSteps"`
	NextCategory      Category       `json:"nextCategory,omitempty"`
	NextCategoryLabel string         `json:"nextCategoryLabel,omitempty"`
	IsPerPerson       bool           `json:"isPerPerson"`
	Intro             string         `json:"intro"`
	DataSource        OptionSource   `json:"dataSource"`
	Options           []VendorOption `json:"options"`
	// Images holds one URL per option, in option order, so a renderer can
	// display them without re-fetching.
	Images []string `json:"images"`
}

// PlannerCategory is one category block of the full planner payload.
type PlannerCategory struct {
	Key         Category       `json:"key"`
	Label       string         `json:"label"`
	Intro       string         `json:"intro"`
	IsPerPerson bool           `json:"isPerPerson"`
	Options     []VendorOption `json:"options"`
}

// FullPlannerPayload is the presentation shape for the all-categories planner.
type FullPlannerPayload struct {
	Categories []PlannerCategory `json:"categories"`
	GuestCount int               `json:"guestCount"`
}

// PlanItem is one selected category in the plan summary.
type PlanItem struct {
	Category      Category `json:"category"`
	CategoryLabel string   `json:"categoryLabel"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	TotalPrice    float64  `json:"totalPrice"`
	IsPerPerson   bool     `json:"isPerPerson"`
	ImageURL      string   `json:"imageUrl"`
}

// PlanViewPayload is the presentation shape for the plan summary.
type PlanViewPayload struct {
	PlanItems           []PlanItem `json:"planItems"`
	GuestCount          int        `json:"guestCount"`
	TotalBudget         float64    `json:"totalBudget"`
	CategoriesCompleted int        `json:"categoriesCompleted"`
	TotalCategories     int        `json:"totalCategories"`
}

// SessionSnapshot is the session state plus its derived values.
type SessionSnapshot struct {
	SessionID       string                 `json:"sessionId"`
	CurrentStep     int                    `json:"currentStep"`
	TotalSteps      int                    `json:"totalSteps"`
	CurrentCategory Category               `json:"currentCategory,omitempty"`
	IsSummary       bool                   `json:"isSummary"`
	Selections      map[Category]Selection `json:"selections"`
	GuestCount      int                    `json:"guestCount"`
	Budget          float64                `json:"budget"`
	TotalBudget     float64                `json:"totalBudget"`
	CompletedCount  int                    `json:"completedCount"`
	IsComplete      bool                   `json:"isComplete"`
}

// Snapshot derives the presentation snapshot from a session.
func (s *PlanSession) Snapshot() SessionSnapshot {
	snap := SessionSnapshot{
		SessionID:      s.SessionID,
		CurrentStep:    s.CurrentStep,
		TotalSteps:     s.TotalSteps(),
		IsSummary:      s.IsSummary(),
		Selections:     s.Selections,
		GuestCount:     s.GuestCount,
		Budget:         s.Budget,
		TotalBudget:    s.TotalBudget(),
		CompletedCount: s.CompletedCount(),
		IsComplete:     s.IsComplete(),
	}
	if cat, ok := s.CurrentCategory(); ok {
		snap.CurrentCategory = cat
	}
	return snap
}
