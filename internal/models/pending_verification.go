package models

import "time"

// PendingVerification — заявка опекуна на доступ к пациенту.
// Одна строка на пару (caregiver, patient); повторный запрос перезаписывает код.
type PendingVerification struct {
	ID               int64     `json:"id"`
	CaregiverID      int64     `json:"caregiver_id"`
	PatientID        int64     `json:"patient_id"`
	VerificationCode string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}
