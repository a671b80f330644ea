package models

import "time"

// LifestyleEntry — one day's self-reported lifestyle factors.
// Unique per (user_id, entry_date).
type LifestyleEntry struct {
	ID               int64     `json:"id"`
	UserID           int       `json:"user_id"`
	EntryDate        time.Time `json:"entry_date"`
	PhysicalActivity int       `json:"physical_activity"`
	HealthyDiet      int       `json:"healthy_diet"`
	SocialEngagement int       `json:"social_engagement"`
	GoodSleep        int       `json:"good_sleep"`
	Smoking          int       `json:"smoking"`
	Alcohol          int       `json:"alcohol"`
	Stress           int       `json:"stress"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}
