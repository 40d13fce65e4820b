package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/adamhaque27/Cricket-Performance-Tracker/internal/errors"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
)

func TestMembershipService_JoinAndCurrentClub(t *testing.T) {
	env := setupServiceTestEnv(t)
	user := mustRegister(t, env, "adam")
	club, _ := mustSeason(t, env, "Oldfield CC", "2024")

	_, err := env.membershipService.CurrentClub(user.ID)
	require.ErrorIs(t, err, apperrors.ErrNoActiveMembership)

	require.NoError(t, env.membershipService.Join(user.ID, club.ID))

	current, err := env.membershipService.CurrentClub(user.ID)
	require.NoError(t, err)
	require.Equal(t, club.ID, current.ID)
}

func TestMembershipService_JoinTwiceFails(t *testing.T) {
	env := setupServiceTestEnv(t)
	user := mustRegister(t, env, "adam")
	club, _ := mustSeason(t, env, "Oldfield CC", "2024")

	require.NoError(t, env.membershipService.Join(user.ID, club.ID))
	require.ErrorIs(t, env.membershipService.Join(user.ID, club.ID), apperrors.ErrAlreadyMember)
}

func TestMembershipService_JoinUnknownClub(t *testing.T) {
	env := setupServiceTestEnv(t)
	user := mustRegister(t, env, "adam")

	require.ErrorIs(t, env.membershipService.Join(user.ID, 999), apperrors.ErrClubNotFound)
}

func TestMembershipService_SwitchClosesAndOpens(t *testing.T) {
	env := setupServiceTestEnv(t)
	user := mustRegister(t, env, "adam")
	oldClub, _ := mustSeason(t, env, "Oldfield CC", "2024")
	newClub, _ := mustSeason(t, env, "Riverside CC", "2024")

	require.NoError(t, env.membershipService.Join(user.ID, oldClub.ID))
	require.NoError(t, env.membershipService.SwitchTo(user.ID, newClub.ID))

	current, err := env.membershipService.CurrentClub(user.ID)
	require.NoError(t, err)
	require.Equal(t, newClub.ID, current.ID)

	// Exactly one open interval; the prior one is closed with a sensible end.
	var open int64
	require.NoError(t, env.db.Model(&models.ClubMembership{}).
		Where("user_id = ? AND end_date IS NULL", user.ID).
		Count(&open).Error)
	require.EqualValues(t, 1, open)

	history, err := env.membershipService.History(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	var closed *models.ClubMembership
	for i := range history {
		if history[i].EndDate != nil {
			closed = &history[i]
		}
	}
	require.NotNil(t, closed)
	require.Equal(t, oldClub.ID, closed.ClubID)
	require.False(t, closed.EndDate.After(time.Now()))
	require.False(t, closed.EndDate.Before(closed.StartDate))
}

func TestMembershipService_ConcurrentJoinsLeaveOneActive(t *testing.T) {
	env := setupServiceTestEnv(t)
	user := mustRegister(t, env, "adam")
	club, _ := mustSeason(t, env, "Oldfield CC", "2024")

	const callers = 8
	results := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- env.membershipService.Join(user.ID, club.ID)
		}()
	}
	wg.Wait()
	close(results)

	// Exactly one join wins; the rest observe the winner's open interval.
	var succeeded int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, apperrors.ErrAlreadyMember)
	}
	require.Equal(t, 1, succeeded)

	var open int64
	require.NoError(t, env.db.Model(&models.ClubMembership{}).
		Where("user_id = ? AND end_date IS NULL", user.ID).
		Count(&open).Error)
	require.EqualValues(t, 1, open)
}

func TestMembershipService_SwitchWithoutMembershipJoins(t *testing.T) {
	env := setupServiceTestEnv(t)
	user := mustRegister(t, env, "adam")
	club, _ := mustSeason(t, env, "Riverside CC", "2024")

	require.NoError(t, env.membershipService.SwitchTo(user.ID, club.ID))

	current, err := env.membershipService.CurrentClub(user.ID)
	require.NoError(t, err)
	require.Equal(t, club.ID, current.ID)

	history, err := env.membershipService.History(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
}
