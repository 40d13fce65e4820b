package models

import "time"

type Club struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Seasons []Season `gorm:"foreignKey:ClubID" json:"seasons,omitempty"`
}

type Season struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ClubID    uint64    `gorm:"not null;index" json:"club_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Club    Club    `gorm:"foreignKey:ClubID" json:"club,omitempty"`
	Matches []Match `gorm:"foreignKey:SeasonID" json:"matches,omitempty"`
}
