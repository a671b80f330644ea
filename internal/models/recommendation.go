package models

import "time"

type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
)

// Recommendation rows are regenerated on every assessment recompute:
// incomplete ones are dropped and reinserted, completed ones survive.
// Callers must not hold recommendation IDs across a recompute.
type Recommendation struct {
	ID          int64                  `json:"id"`
	PatientID   int64                  `json:"patient_id"`
	Category    string                 `json:"category"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Priority    RecommendationPriority `json:"priority"`
	Completed   bool                   `json:"completed"`
	CreatedAt   time.Time              `json:"created_at"`
}
