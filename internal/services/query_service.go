package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/adamhaque27/Cricket-Performance-Tracker/internal/errors"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/repository"
)

// Entity names a retrievable table. The set is closed: dump requests resolve
// through this enumeration and a caller-supplied string never reaches the
// store as a table name.
type Entity string

const (
	EntityUsers           Entity = "users"
	EntityClubs           Entity = "clubs"
	EntitySeasons         Entity = "seasons"
	EntityMatches         Entity = "matches"
	EntityBattingStats    Entity = "batting_stats"
	EntityBowlingStats    Entity = "bowling_stats"
	EntityOverStats       Entity = "over_stats"
	EntityClubMemberships Entity = "club_memberships"
	EntityResetTokens     Entity = "reset_tokens"
)

var entityTables = map[Entity]string{
	EntityUsers:           "users",
	EntityClubs:           "clubs",
	EntitySeasons:         "seasons",
	EntityMatches:         "matches",
	EntityBattingStats:    "batting_stats",
	EntityBowlingStats:    "bowling_stats",
	EntityOverStats:       "over_stats",
	EntityClubMemberships: "club_memberships",
	EntityResetTokens:     "reset_tokens",
}

// QueryService is the read-only reporting surface. It never mutates state.
type QueryService struct {
	clubRepo   repository.ClubRepository
	matchRepo  repository.MatchRepository
	reportRepo repository.ReportRepository
}

// NewQueryService creates a new QueryService.
func NewQueryService(clubRepo repository.ClubRepository, matchRepo repository.MatchRepository, reportRepo repository.ReportRepository) *QueryService {
	return &QueryService{
		clubRepo:   clubRepo,
		matchRepo:  matchRepo,
		reportRepo: reportRepo,
	}
}

// ListClubs lists all clubs.
func (s *QueryService) ListClubs() ([]models.Club, error) {
	clubs, err := s.clubRepo.ListClubs()
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return clubs, nil
}

// ListSeasons lists the seasons owned by a club.
func (s *QueryService) ListSeasons(clubID uint64) ([]models.Season, error) {
	if _, err := s.clubRepo.FindClubByID(clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to find club: %w", err)
	}

	seasons, err := s.clubRepo.ListSeasons(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	return seasons, nil
}

// ListMatches lists the matches recorded for a season.
func (s *QueryService) ListMatches(seasonID uint64) ([]models.Match, error) {
	if _, err := s.clubRepo.FindSeasonByID(seasonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to find season: %w", err)
	}

	matches, err := s.matchRepo.ListBySeason(seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// Dump returns the full contents of one entity table for diagnostics.
func (s *QueryService) Dump(entity Entity) ([]map[string]interface{}, error) {
	table, ok := entityTables[entity]
	if !ok {
		return nil, apperrors.ErrUnknownEntity
	}

	rows, err := s.reportRepo.DumpTable(table)
	if err != nil {
		return nil, fmt.Errorf("failed to dump %s: %w", table, err)
	}
	return rows, nil
}

// Entities returns the fixed set of retrievable entities, in dump order.
func Entities() []Entity {
	return []Entity{
		EntityUsers,
		EntityClubs,
		EntitySeasons,
		EntityMatches,
		EntityBattingStats,
		EntityBowlingStats,
		EntityOverStats,
		EntityClubMemberships,
		EntityResetTokens,
	}
}
