package models

import "time"

// Caregiver is the role profile for users who watch over linked patients.
type Caregiver struct {
	ID            int64  `json:"id"`
	UserID        int    `json:"user_id"`
	LicenseNumber string `json:"license_number"`
}

// CaregiverAccessLog — каждая выборка данных пациента опекуном пишется сюда.
type CaregiverAccessLog struct {
	ID          int64     `json:"id"`
	CaregiverID int64     `json:"caregiver_id"`
	PatientID   int64     `json:"patient_id"`
	Action      string    `json:"action"`
	AccessTime  time.Time `json:"access_time"`
}
