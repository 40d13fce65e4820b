package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds secondary indexes that AutoMigrate's tag-level indexes do
// not cover. Idempotent via IF NOT EXISTS.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		name    string
		table   string
		columns string
		unique  bool
		where   string
	}{
		// Active-membership lookup: join/switch/current-club all filter on
		// user_id with a null end_date.
		{name: "idx_club_memberships_user_open", table: "club_memberships", columns: "user_id, end_date"},

		// Store-level backstop for the one-open-interval-per-user
		// invariant: a second open row fails the insert even if a writer
		// bypasses the membership transactions.
		{name: "idx_club_memberships_single_open", table: "club_memberships", columns: "user_id", unique: true, where: "end_date IS NULL"},

		// Reset-token consumption looks up by opaque token value; the
		// uniqueIndex tag already covers it, email lookup does not.
		{name: "idx_reset_tokens_email", table: "reset_tokens", columns: "email"},

		// Per-season match listings.
		{name: "idx_matches_season_date", table: "matches", columns: "season_id, date"},
	}

	for _, idx := range indexes {
		create := "CREATE INDEX"
		if idx.unique {
			create = "CREATE UNIQUE INDEX"
		}
		sql := fmt.Sprintf("%s IF NOT EXISTS %s ON %s (%s)", create, idx.name, idx.table, idx.columns)
		if idx.where != "" {
			sql += " WHERE " + idx.where
		}
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
