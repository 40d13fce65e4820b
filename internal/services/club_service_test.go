package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/adamhaque27/Cricket-Performance-Tracker/internal/errors"
)

func TestClubService_CreateClubRequiresAdmin(t *testing.T) {
	env := setupServiceTestEnv(t)
	member := mustRegister(t, env, "adam")

	_, err := env.clubService.CreateClub(member.ID, "Oldfield CC")
	require.ErrorIs(t, err, apperrors.ErrAdminRequired)

	// The refusal is a violated permission rule, not a missing entity.
	var domainErr *apperrors.Error
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, apperrors.KindIntegrity, domainErr.Kind)

	_, err = env.clubService.CreateClub(999, "Oldfield CC")
	require.ErrorIs(t, err, apperrors.ErrAdminRequired)
}

func TestClubService_CreateClubAndSeason(t *testing.T) {
	env := setupServiceTestEnv(t)
	admin := mustAdmin(t, env, "secretary")

	club, err := env.clubService.CreateClub(admin.ID, "Oldfield CC")
	require.NoError(t, err)
	require.NotZero(t, club.ID)

	season, err := env.clubService.CreateSeason(admin.ID, club.ID, "2024")
	require.NoError(t, err)
	require.Equal(t, club.ID, season.ClubID)
}

func TestClubService_CreateSeasonUnknownClub(t *testing.T) {
	env := setupServiceTestEnv(t)
	admin := mustAdmin(t, env, "secretary")

	_, err := env.clubService.CreateSeason(admin.ID, 999, "2024")
	require.ErrorIs(t, err, apperrors.ErrClubNotFound)
}

func TestClubService_CreateClubEmptyName(t *testing.T) {
	env := setupServiceTestEnv(t)
	admin := mustAdmin(t, env, "secretary")

	_, err := env.clubService.CreateClub(admin.ID, "   ")
	require.ErrorIs(t, err, ErrClubNameRequired)
}
