package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	BattingStats []BattingStat    `gorm:"foreignKey:UserID" json:"-"`
	BowlingStats []BowlingStat    `gorm:"foreignKey:UserID" json:"-"`
	Memberships  []ClubMembership `gorm:"foreignKey:UserID" json:"-"`
}
