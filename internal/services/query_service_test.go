package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/adamhaque27/Cricket-Performance-Tracker/internal/errors"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
)

func TestQueryService_Listings(t *testing.T) {
	env := setupServiceTestEnv(t)
	club, season := mustSeason(t, env, "Oldfield CC", "2024")
	match := &models.Match{
		SeasonID:    season.ID,
		Date:        time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Opponent:    "Riverside CC",
		Venue:       "The Oval Lane",
		WinningTeam: "Oldfield CC",
		TeamScores:  "182/7 v 178 all out",
	}
	require.NoError(t, env.db.Create(match).Error)

	clubs, err := env.queryService.ListClubs()
	require.NoError(t, err)
	require.Len(t, clubs, 1)

	seasons, err := env.queryService.ListSeasons(club.ID)
	require.NoError(t, err)
	require.Len(t, seasons, 1)

	matches, err := env.queryService.ListMatches(season.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "Riverside CC", matches[0].Opponent)
}

func TestQueryService_ListingsUnknownParents(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.queryService.ListSeasons(999)
	require.ErrorIs(t, err, apperrors.ErrClubNotFound)

	_, err = env.queryService.ListMatches(999)
	require.ErrorIs(t, err, apperrors.ErrSeasonNotFound)
}

func TestQueryService_Dump(t *testing.T) {
	env := setupServiceTestEnv(t)
	mustRegister(t, env, "adam")

	rows, err := env.queryService.Dump(EntityUsers)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "adam", rows[0]["username"])
}

func TestQueryService_DumpRejectsUnknownEntity(t *testing.T) {
	env := setupServiceTestEnv(t)

	// A raw table name from a caller is not an entity.
	_, err := env.queryService.Dump(Entity("sqlite_master"))
	require.ErrorIs(t, err, apperrors.ErrUnknownEntity)

	_, err = env.queryService.Dump(Entity("users; DROP TABLE users"))
	require.ErrorIs(t, err, apperrors.ErrUnknownEntity)
}

func TestQueryService_EntitiesCoversAllTables(t *testing.T) {
	env := setupServiceTestEnv(t)

	entities := Entities()
	require.Len(t, entities, 9)
	for _, entity := range entities {
		_, err := env.queryService.Dump(entity)
		require.NoError(t, err, "dump of %s", entity)
	}
}
