package models

// BattingStat holds one player's batting figures for one match. StrikeRate
// is derived from Runs and Balls by the stats validator, never caller-supplied.
type BattingStat struct {
	ID         uint64  `gorm:"primarykey" json:"id"`
	MatchID    uint64  `gorm:"not null;uniqueIndex:idx_batting_match_user" json:"match_id"`
	UserID     uint64  `gorm:"not null;uniqueIndex:idx_batting_match_user" json:"user_id"`
	Runs       int     `gorm:"not null" json:"runs"`
	Balls      int     `gorm:"not null" json:"balls"`
	StrikeRate float64 `gorm:"not null" json:"strike_rate"`
	Fours      int     `gorm:"not null" json:"fours"`
	Sixes      int     `gorm:"not null" json:"sixes"`
	NotOut     bool    `gorm:"not null;default:false" json:"not_out"`

	// Relations
	Match Match `gorm:"foreignKey:MatchID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
