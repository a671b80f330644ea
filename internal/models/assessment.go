package models

import "time"

// BrainHealthAssessment — единственная «живая» строка на пациента (upsert).
type BrainHealthAssessment struct {
	ID                 int64     `json:"id"`
	PatientID          int64     `json:"patient_id"`
	Score              float64   `json:"score"` // composite 0..100
	LastCognitiveScore float64   `json:"last_cognitive_score"`
	LifestyleEntryID   int64     `json:"lifestyle_entry_id"`
	AssessedAt         time.Time `json:"assessed_at"`
}
