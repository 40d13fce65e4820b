package models

// BowlingStat holds one player's bowling figures for one match. Overs is a
// decimal count as bowled (7.3 overs bowls into 7.3); EconomyRate is derived
// from RunsConceded and Overs by the stats validator.
type BowlingStat struct {
	ID           uint64  `gorm:"primarykey" json:"id"`
	MatchID      uint64  `gorm:"not null;index" json:"match_id"`
	UserID       uint64  `gorm:"not null;index" json:"user_id"`
	Overs        float64 `gorm:"not null" json:"overs"`
	RunsConceded int     `gorm:"not null" json:"runs_conceded"`
	Wickets      int     `gorm:"not null" json:"wickets"`
	Maidens      int     `gorm:"not null" json:"maidens"`
	EconomyRate  float64 `gorm:"not null" json:"economy_rate"`

	// Relations
	Match     Match      `gorm:"foreignKey:MatchID" json:"-"`
	User      User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OverStats []OverStat `gorm:"foreignKey:BowlingStatID" json:"over_stats,omitempty"`
}

// OverStat is an optional per-over breakdown attached to a BowlingStat
// after the parent row exists.
type OverStat struct {
	ID            uint64 `gorm:"primarykey" json:"id"`
	BowlingStatID uint64 `gorm:"not null;uniqueIndex:idx_over_stat_number" json:"bowling_stat_id"`
	OverNumber    int    `gorm:"not null;uniqueIndex:idx_over_stat_number" json:"over_number"`
	DotBalls      int    `gorm:"not null" json:"dot_balls"`
	Extras        int    `gorm:"not null" json:"extras"`
	Wickets       int    `gorm:"not null" json:"wickets"`

	// Relations
	BowlingStat BowlingStat `gorm:"foreignKey:BowlingStatID" json:"-"`
}
