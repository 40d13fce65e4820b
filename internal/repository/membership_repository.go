package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrCloseMembership is returned when closing the active interval fails inside the switch transaction.
	ErrCloseMembership = errors.New("membership repository: close active membership failed")
	// ErrOpenMembership is returned when opening the new interval fails inside the switch transaction.
	ErrOpenMembership = errors.New("membership repository: open membership failed")
	// ErrActiveMembershipExists is returned when a join finds an open interval already in place.
	ErrActiveMembershipExists = errors.New("membership repository: active membership already exists")
)

// GormMembershipRepository is a GORM implementation of MembershipRepository
type GormMembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &GormMembershipRepository{db: db}
}

// OpenIfNone opens a membership interval only if the user has no open one.
// Check and insert run in one transaction with the open row locked, so two
// concurrent joins for the same user serialize and exactly one succeeds.
func (r *GormMembershipRepository) OpenIfNone(userID, clubID uint64, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current models.ClubMembership
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND end_date IS NULL", userID).
			First(&current).Error
		switch {
		case err == nil:
			return ErrActiveMembershipExists
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		membership := models.ClubMembership{
			UserID:    userID,
			ClubID:    clubID,
			StartDate: now,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrOpenMembership, err)
		}

		return nil
	})
}

// FindActive finds the user's open-ended membership row
func (r *GormMembershipRepository) FindActive(userID uint64) (*models.ClubMembership, error) {
	var membership models.ClubMembership
	if err := r.db.Where("user_id = ? AND end_date IS NULL", userID).First(&membership).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}

// CloseAndOpen closes the active membership and opens a new one atomically.
// The active row is locked for the duration of the transaction so two
// concurrent switches for the same user serialize instead of both leaving an
// open interval.
func (r *GormMembershipRepository) CloseAndOpen(userID, clubID uint64, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current models.ClubMembership
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND end_date IS NULL", userID).
			First(&current).Error
		switch {
		case err == nil:
			current.EndDate = &now
			if err := tx.Save(&current).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCloseMembership, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Nothing to close; switching with no prior membership just
			// opens one.
		default:
			return err
		}

		next := models.ClubMembership{
			UserID:    userID,
			ClubID:    clubID,
			StartDate: now,
		}
		if err := tx.Create(&next).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrOpenMembership, err)
		}

		return nil
	})
}

// ListByUser lists the user's membership intervals, newest first
func (r *GormMembershipRepository) ListByUser(userID uint64) ([]models.ClubMembership, error) {
	var memberships []models.ClubMembership
	if err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
