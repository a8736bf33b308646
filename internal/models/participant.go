package models

import "time"

// Participant is a contest entrant. Score stays nil until the first
// accepted grip test; after that it only ever increases (best attempt
// wins).
type Participant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Company   string    `gorm:"size:255" json:"company"`
	Score     *float64  `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
