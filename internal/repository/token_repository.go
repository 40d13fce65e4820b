package repository

import (
	"errors"
	"fmt"

	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrTokenNotFound is returned when the token row does not exist or was already consumed.
	ErrTokenNotFound = errors.New("token repository: token not found")
	// ErrUpdatePassword is returned when updating the account digest fails inside the consume transaction.
	ErrUpdatePassword = errors.New("token repository: update password failed")
	// ErrDeleteToken is returned when invalidating the token fails inside the consume transaction.
	ErrDeleteToken = errors.New("token repository: delete token failed")
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// Create persists a freshly issued token
func (r *GormTokenRepository) Create(token *models.ResetToken) error {
	return r.db.Create(token).Error
}

// ConsumeAndUpdatePassword validates and consumes the token in one
// transaction. The token row is locked while held, so a second caller racing
// on the same token blocks until this transaction commits and then fails the
// lookup.
func (r *GormTokenRepository) ConsumeAndUpdatePassword(token, newPasswordHash string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var rt models.ResetToken
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("token = ?", token).
			First(&rt).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTokenNotFound
			}
			return err
		}

		result := tx.Model(&models.User{}).
			Where("email = ?", rt.Email).
			Update("password_hash", newPasswordHash)
		if result.Error != nil {
			return fmt.Errorf("%w: %v", ErrUpdatePassword, result.Error)
		}
		if result.RowsAffected == 0 {
			// The account the token was issued for no longer matches any
			// user; treat the token as dead.
			return ErrTokenNotFound
		}

		if err := tx.Delete(&models.ResetToken{}, rt.ID).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrDeleteToken, err)
		}

		return nil
	})
}
