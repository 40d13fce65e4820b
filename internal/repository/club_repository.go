package repository

import (
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"gorm.io/gorm"
)

// GormClubRepository is a GORM implementation of ClubRepository
type GormClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &GormClubRepository{db: db}
}

// CreateClub creates a new club
func (r *GormClubRepository) CreateClub(club *models.Club) error {
	return r.db.Create(club).Error
}

// CreateSeason creates a new season scoped to a club
func (r *GormClubRepository) CreateSeason(season *models.Season) error {
	return r.db.Create(season).Error
}

// FindClubByID finds a club by ID
func (r *GormClubRepository) FindClubByID(id uint64) (*models.Club, error) {
	var club models.Club
	if err := r.db.First(&club, id).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

// FindSeasonByID finds a season by ID
func (r *GormClubRepository) FindSeasonByID(id uint64) (*models.Season, error) {
	var season models.Season
	if err := r.db.First(&season, id).Error; err != nil {
		return nil, err
	}
	return &season, nil
}

// ListClubs lists all clubs
func (r *GormClubRepository) ListClubs() ([]models.Club, error) {
	var clubs []models.Club
	if err := r.db.Order("name ASC").Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

// ListSeasons lists the seasons owned by a club
func (r *GormClubRepository) ListSeasons(clubID uint64) ([]models.Season, error) {
	var seasons []models.Season
	if err := r.db.Where("club_id = ?", clubID).Order("created_at ASC").Find(&seasons).Error; err != nil {
		return nil, err
	}
	return seasons, nil
}
