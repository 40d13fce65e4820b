package models

import "time"

// ClubMembership is one interval of a user's affiliation timeline. A null
// EndDate marks the active membership; a user has at most one such row.
type ClubMembership struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	UserID    uint64     `gorm:"not null;index" json:"user_id"`
	ClubID    uint64     `gorm:"not null" json:"club_id"`
	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
	Club Club `gorm:"foreignKey:ClubID" json:"club,omitempty"`
}
