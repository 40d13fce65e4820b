package repository

import (
	"errors"
	"fmt"

	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateMatch is returned when inserting the match row fails inside the recording transaction.
	ErrCreateMatch = errors.New("match repository: create match failed")
	// ErrCreateBattingStat is returned when inserting a batting row fails inside the recording transaction.
	ErrCreateBattingStat = errors.New("match repository: create batting stat failed")
	// ErrCreateBowlingStat is returned when inserting a bowling row fails inside the recording transaction.
	ErrCreateBowlingStat = errors.New("match repository: create bowling stat failed")
)

// GormMatchRepository is a GORM implementation of MatchRepository
type GormMatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &GormMatchRepository{db: db}
}

// CreateWithStats persists the match and every stat row atomically. A
// failure on any row rolls back the whole submission, so no partial match is
// ever observable.
func (r *GormMatchRepository) CreateWithStats(match *models.Match, batting []models.BattingStat, bowling []models.BowlingStat) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(match).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateMatch, err)
		}

		for i := range batting {
			batting[i].MatchID = match.ID
			if err := tx.Create(&batting[i]).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateBattingStat, err)
			}
		}

		for i := range bowling {
			bowling[i].MatchID = match.ID
			if err := tx.Create(&bowling[i]).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateBowlingStat, err)
			}
		}

		return nil
	})
}

// FindBowlingStat finds a bowling stat row by ID
func (r *GormMatchRepository) FindBowlingStat(id uint64) (*models.BowlingStat, error) {
	var stat models.BowlingStat
	if err := r.db.First(&stat, id).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

// AddOverStats attaches a per-over breakdown to an existing bowling stat
func (r *GormMatchRepository) AddOverStats(bowlingStatID uint64, overs []models.OverStat) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range overs {
			overs[i].BowlingStatID = bowlingStatID
			if err := tx.Create(&overs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListBySeason lists the matches recorded for a season
func (r *GormMatchRepository) ListBySeason(seasonID uint64) ([]models.Match, error) {
	var matches []models.Match
	if err := r.db.Where("season_id = ?", seasonID).Order("date ASC").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}
