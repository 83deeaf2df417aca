package models

import (
	"time"
)

type User struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Phone     string     `json:"phone" db:"phone"`
	Aadhaar   *string    `json:"aadhaar" db:"aadhaar"`
	Email     *string    `json:"email" db:"email"`
	Address   *string    `json:"address" db:"address"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

type Document struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	DocType    string    `json:"doc_type" db:"doc_type"`
	DocURL     string    `json:"doc_url" db:"doc_url"`
	Status     string    `json:"status" db:"status"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}

type Face struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	FaceURL       string    `json:"face_url" db:"face_url"`
	LivenessScore *float64  `json:"liveness_score" db:"liveness_score"`
	MatchScore    *float64  `json:"match_score" db:"match_score"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
