package models

// Patient is the role profile for users whose health data is tracked.
type Patient struct {
	ID         int64  `json:"id"`
	UserID     int    `json:"user_id"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Conditions string `json:"conditions"`
}
