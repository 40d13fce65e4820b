package models

import "time"

// ResetToken is a single-use password recovery artifact. Consuming it
// deletes the row, so a token can never authorize two password updates.
type ResetToken struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Token     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
