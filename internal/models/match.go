package models

import "time"

// Match is one recorded fixture. Rows are immutable once written; the
// batting and bowling stats below never exist without their match.
type Match struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	SeasonID    uint64    `gorm:"not null;index" json:"season_id"`
	Date        time.Time `gorm:"not null" json:"date"`
	Opponent    string    `gorm:"type:varchar(255);not null" json:"opponent"`
	Venue       string    `gorm:"type:varchar(255);not null" json:"venue"`
	WinningTeam string    `gorm:"type:varchar(255);not null" json:"winning_team"`
	TeamScores  string    `gorm:"type:text;not null" json:"team_scores"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Season       Season        `gorm:"foreignKey:SeasonID" json:"season,omitempty"`
	BattingStats []BattingStat `gorm:"foreignKey:MatchID" json:"batting_stats,omitempty"`
	BowlingStats []BowlingStat `gorm:"foreignKey:MatchID" json:"bowling_stats,omitempty"`
}
