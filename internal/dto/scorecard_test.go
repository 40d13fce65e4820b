package dto

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/adamhaque27/Cricket-Performance-Tracker/internal/errors"
)

const validScorecard = `{
	"season_id": 1,
	"date": "2024-06-15T13:00:00Z",
	"opponent": "Riverside CC",
	"venue": "The Oval Lane",
	"winning_team": "Oldfield CC",
	"team_scores": "182/7 v 178 all out",
	"batting": [
		{"user_id": 3, "runs": 45, "balls": 30, "fours": 4, "sixes": 2, "not_out": true}
	],
	"bowling": [
		{"user_id": 4, "overs": 8, "runs_conceded": 32, "wickets": 3, "maidens": 1}
	]
}`

func TestParseScorecard(t *testing.T) {
	card, err := ParseScorecard([]byte(validScorecard))
	require.NoError(t, err)
	require.EqualValues(t, 1, card.SeasonID)
	require.Len(t, card.Batting, 1)
	require.Len(t, card.Bowling, 1)

	batting := card.BattingEntries()
	require.EqualValues(t, 3, batting[0].UserID)
	require.True(t, batting[0].NotOut)

	bowling := card.BowlingEntries()
	require.Equal(t, 8.0, bowling[0].Overs)
}

func TestParseScorecardRejectsUnknownFields(t *testing.T) {
	payload := `{
		"season_id": 1,
		"date": "2024-06-15T13:00:00Z",
		"opponent": "Riverside CC",
		"venue": "The Oval Lane",
		"winning_team": "Oldfield CC",
		"team_scores": "182/7",
		"surprise": "__import__('os')"
	}`
	_, err := ParseScorecard([]byte(payload))
	require.Error(t, err)
	require.Contains(t, err.Error(), "malformed scorecard")
}

func TestParseScorecardRejectsNonJSON(t *testing.T) {
	// The shape a caller used to feed to eval: a Python literal, not JSON.
	payload := `[{'user_id': 3, 'runs': 45, 'balls': 30}]`
	_, err := ParseScorecard([]byte(payload))
	require.Error(t, err)
}

func TestParseScorecardRejectsTrailingContent(t *testing.T) {
	_, err := ParseScorecard([]byte(validScorecard + `{"second": "document"}`))
	require.Error(t, err)
}

func TestParseScorecardRejectsMissingRequiredFields(t *testing.T) {
	payload := `{"season_id": 1, "date": "2024-06-15T13:00:00Z"}`
	_, err := ParseScorecard([]byte(payload))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid scorecard")
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	// The failure names every offending field.
	var domainErr *apperrors.Error
	require.ErrorAs(t, err, &domainErr)
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	require.Contains(t, details, "Opponent")
	require.Contains(t, details, "Venue")
	require.Contains(t, details, "WinningTeam")
	require.Contains(t, details, "TeamScores")
}

func TestParseScorecardRejectsMissingEntryPlayer(t *testing.T) {
	payload := `{
		"season_id": 1,
		"date": "2024-06-15T13:00:00Z",
		"opponent": "Riverside CC",
		"venue": "The Oval Lane",
		"winning_team": "Oldfield CC",
		"team_scores": "182/7",
		"batting": [{"runs": 45, "balls": 30}]
	}`
	_, err := ParseScorecard([]byte(payload))
	require.Error(t, err)
}
