package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/adamhaque27/Cricket-Performance-Tracker/internal/errors"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/repository"
)

var (
	ErrClubNameRequired   = errors.New("club name cannot be empty")
	ErrSeasonNameRequired = errors.New("season name cannot be empty")
)

// ClubService owns the admin-only catalogue operations. The admin check
// lives here in the core, not behind a screen.
type ClubService struct {
	clubRepo repository.ClubRepository
	userRepo repository.UserRepository
}

// NewClubService creates a new ClubService.
func NewClubService(clubRepo repository.ClubRepository, userRepo repository.UserRepository) *ClubService {
	return &ClubService{
		clubRepo: clubRepo,
		userRepo: userRepo,
	}
}

// requireAdmin verifies the acting user carries the admin flag.
func (s *ClubService) requireAdmin(actorID uint64) error {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAdminRequired
		}
		return fmt.Errorf("failed to find acting user: %w", err)
	}
	if !actor.IsAdmin {
		return apperrors.ErrAdminRequired
	}
	return nil
}

// CreateClub creates a club. Admin only.
func (s *ClubService) CreateClub(actorID uint64, name string) (*models.Club, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrClubNameRequired
	}

	club := &models.Club{Name: name}
	if err := s.clubRepo.CreateClub(club); err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	return club, nil
}

// CreateSeason creates a season owned by an existing club. Admin only.
func (s *ClubService) CreateSeason(actorID, clubID uint64, name string) (*models.Season, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrSeasonNameRequired
	}

	if _, err := s.clubRepo.FindClubByID(clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to find club: %w", err)
	}

	season := &models.Season{ClubID: clubID, Name: name}
	if err := s.clubRepo.CreateSeason(season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	return season, nil
}
