package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/adamhaque27/Cricket-Performance-Tracker/internal/errors"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/repository"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/stats"
)

// MatchService orchestrates atomic persistence of a match together with its
// statistics. Every entry validates before anything is written; the write
// itself is one repository transaction.
type MatchService struct {
	matchRepo repository.MatchRepository
	clubRepo  repository.ClubRepository
}

// NewMatchService creates a new MatchService.
func NewMatchService(matchRepo repository.MatchRepository, clubRepo repository.ClubRepository) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		clubRepo:  clubRepo,
	}
}

// RecordMatchInput represents a full match submission.
type RecordMatchInput struct {
	SeasonID    uint64
	Date        time.Time
	Opponent    string
	Venue       string
	WinningTeam string
	TeamScores  string
	Batting     []stats.BattingEntry
	Bowling     []stats.BowlingEntry
}

// RecordMatch persists the match and all of its batting and bowling rows as
// one unit. The first invalid entry aborts the submission with nothing
// written.
func (s *MatchService) RecordMatch(input RecordMatchInput) (*models.Match, error) {
	if _, err := s.clubRepo.FindSeasonByID(input.SeasonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidSeason
		}
		return nil, fmt.Errorf("failed to find season: %w", err)
	}

	battingRows := make([]models.BattingStat, 0, len(input.Batting))
	seenBatters := make(map[uint64]bool, len(input.Batting))
	for _, entry := range input.Batting {
		if seenBatters[entry.UserID] {
			return nil, apperrors.ErrInvalidInput.WithDetails(map[string]string{
				"user_id": "player appears twice in the batting card",
			})
		}
		seenBatters[entry.UserID] = true

		row, err := stats.ValidateBatting(entry)
		if err != nil {
			return nil, wrapValidation(err)
		}
		battingRows = append(battingRows, *row)
	}

	bowlingRows := make([]models.BowlingStat, 0, len(input.Bowling))
	for _, entry := range input.Bowling {
		row, err := stats.ValidateBowling(entry)
		if err != nil {
			return nil, wrapValidation(err)
		}
		bowlingRows = append(bowlingRows, *row)
	}

	match := &models.Match{
		SeasonID:    input.SeasonID,
		Date:        input.Date,
		Opponent:    input.Opponent,
		Venue:       input.Venue,
		WinningTeam: input.WinningTeam,
		TeamScores:  input.TeamScores,
	}

	if err := s.matchRepo.CreateWithStats(match, battingRows, bowlingRows); err != nil {
		return nil, fmt.Errorf("failed to record match: %w", err)
	}

	return match, nil
}

// AddOverBreakdown attaches a validated per-over breakdown to an existing
// bowling stat. All overs land atomically.
func (s *MatchService) AddOverBreakdown(bowlingStatID uint64, entries []stats.OverEntry) error {
	if _, err := s.matchRepo.FindBowlingStat(bowlingStatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBowlingStatNotFound
		}
		return fmt.Errorf("failed to find bowling stat: %w", err)
	}

	rows, err := stats.ValidateOvers(entries)
	if err != nil {
		return wrapValidation(err)
	}

	if err := s.matchRepo.AddOverStats(bowlingStatID, rows); err != nil {
		return fmt.Errorf("failed to add over breakdown: %w", err)
	}

	return nil
}

// wrapValidation lifts a stats validation failure into the domain error
// taxonomy, keeping the offending field in the details.
func wrapValidation(err error) error {
	var ve *stats.ValidationError
	if errors.As(err, &ve) {
		return apperrors.ErrInvalidInput.WithDetails(map[string]string{ve.Field: ve.Reason})
	}
	return err
}
