package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/adamhaque27/Cricket-Performance-Tracker/internal/errors"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/repository"
)

// MembershipService maintains each user's club-affiliation timeline as
// non-overlapping intervals with at most one open interval.
type MembershipService struct {
	membershipRepo repository.MembershipRepository
	clubRepo       repository.ClubRepository
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(membershipRepo repository.MembershipRepository, clubRepo repository.ClubRepository) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		clubRepo:       clubRepo,
	}
}

// Join opens a membership for a user with no current affiliation.
func (s *MembershipService) Join(userID, clubID uint64) error {
	if _, err := s.clubRepo.FindClubByID(clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClubNotFound
		}
		return fmt.Errorf("failed to find club: %w", err)
	}

	if err := s.membershipRepo.OpenIfNone(userID, clubID, time.Now()); err != nil {
		if errors.Is(err, repository.ErrActiveMembershipExists) {
			return apperrors.ErrAlreadyMember
		}
		return fmt.Errorf("failed to open membership: %w", err)
	}

	return nil
}

// SwitchTo closes the user's current membership and opens one for the new
// club in a single transaction. A user with no current membership simply
// joins the new club.
func (s *MembershipService) SwitchTo(userID, newClubID uint64) error {
	if _, err := s.clubRepo.FindClubByID(newClubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClubNotFound
		}
		return fmt.Errorf("failed to find club: %w", err)
	}

	if err := s.membershipRepo.CloseAndOpen(userID, newClubID, time.Now()); err != nil {
		return fmt.Errorf("failed to switch club: %w", err)
	}

	return nil
}

// CurrentClub returns the club of the user's open membership interval.
func (s *MembershipService) CurrentClub(userID uint64) (*models.Club, error) {
	membership, err := s.membershipRepo.FindActive(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveMembership
		}
		return nil, fmt.Errorf("failed to find active membership: %w", err)
	}

	club, err := s.clubRepo.FindClubByID(membership.ClubID)
	if err != nil {
		return nil, fmt.Errorf("failed to find club: %w", err)
	}

	return club, nil
}

// History returns the user's affiliation intervals, newest first.
func (s *MembershipService) History(userID uint64) ([]models.ClubMembership, error) {
	memberships, err := s.membershipRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}
