package models

import "time"

// Alert is an admin-authored broadcast message shown to all roles
type Alert struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Title     string    `json:"title" db:"title" example:"Placement drive"`
	Message   string    `json:"message" db:"message"`
	CreatedBy int64     `json:"createdBy" db:"created_by"` // Admin user ID
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
