package models

import (
	"encoding/json"
	"time"
)

// CognitiveTestQuestion is what the client sees: no correct answer inside.
type CognitiveTestQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// SubmittedAnswer — один ответ пациента на вопрос теста.
type SubmittedAnswer struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"`
}

// CognitiveTestResult is append-only: a row per submission, never updated.
type CognitiveTestResult struct {
	ID           int64           `json:"id"`
	PatientID    int64           `json:"patient_id"`
	Score        float64         `json:"score"` // 0..10, one decimal
	CorrectCount int             `json:"correct_count"`
	TotalCount   int             `json:"total_count"`
	Details      json.RawMessage `json:"details"` // raw submitted answers
	CreatedAt    time.Time       `json:"created_at"`
}
