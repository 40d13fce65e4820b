package repository

import (
	"time"

	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// ClubRepository defines the interface for club and season data access
type ClubRepository interface {
	// CreateClub creates a new club
	CreateClub(club *models.Club) error

	// CreateSeason creates a new season scoped to a club
	CreateSeason(season *models.Season) error

	// FindClubByID finds a club by ID
	FindClubByID(id uint64) (*models.Club, error)

	// FindSeasonByID finds a season by ID
	FindSeasonByID(id uint64) (*models.Season, error)

	// ListClubs lists all clubs
	ListClubs() ([]models.Club, error)

	// ListSeasons lists the seasons owned by a club
	ListSeasons(clubID uint64) ([]models.Season, error)
}

// MatchRepository defines the interface for match and statistic data access
type MatchRepository interface {
	// CreateWithStats persists a match and all of its batting and bowling
	// rows as one transaction. Either every row exists afterward or none do.
	CreateWithStats(match *models.Match, batting []models.BattingStat, bowling []models.BowlingStat) error

	// FindBowlingStat finds a bowling stat row by ID
	FindBowlingStat(id uint64) (*models.BowlingStat, error)

	// AddOverStats attaches a per-over breakdown to an existing bowling
	// stat atomically.
	AddOverStats(bowlingStatID uint64, overs []models.OverStat) error

	// ListBySeason lists the matches recorded for a season
	ListBySeason(seasonID uint64) ([]models.Match, error)
}

// MembershipRepository defines the interface for club-affiliation timelines
type MembershipRepository interface {
	// OpenIfNone opens a membership interval for the user unless an open
	// one already exists, as one transaction. Two concurrent joins can
	// never both leave an open interval.
	OpenIfNone(userID, clubID uint64, now time.Time) error

	// FindActive finds the user's open-ended membership row
	FindActive(userID uint64) (*models.ClubMembership, error)

	// CloseAndOpen closes the user's active membership (if any) and opens a
	// new one for clubID, as one transaction. No reader serialized through
	// the same store observes a gap.
	CloseAndOpen(userID, clubID uint64, now time.Time) error

	// ListByUser lists the user's membership intervals, newest first
	ListByUser(userID uint64) ([]models.ClubMembership, error)
}

// TokenRepository defines the interface for reset-token data access
type TokenRepository interface {
	// Create persists a freshly issued token
	Create(token *models.ResetToken) error

	// ConsumeAndUpdatePassword validates the token, updates the password
	// digest of the associated account and deletes the token, all in one
	// transaction. Two callers can never both succeed with the same token.
	ConsumeAndUpdatePassword(token, newPasswordHash string) error
}

// ReportRepository defines read-only retrieval for reporting
type ReportRepository interface {
	// DumpTable returns the full contents of one table as generic rows.
	// Callers must pass a table name from the fixed entity enumeration;
	// nothing caller-controlled reaches the store.
	DumpTable(table string) ([]map[string]interface{}, error)
}
