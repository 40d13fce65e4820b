// Package dto holds the structured input shapes the presentation layer
// submits. The scorecard parser is deliberately strict: unknown fields and
// anything that does not match the declared shape are rejected before any
// business logic runs.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/adamhaque27/Cricket-Performance-Tracker/internal/errors"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/stats"
)

var validate = validator.New()

// BattingEntryDTO is one batting line of a submitted scorecard.
type BattingEntryDTO struct {
	UserID uint64 `json:"user_id" validate:"required"`
	Runs   int    `json:"runs" validate:"gte=0"`
	Balls  int    `json:"balls" validate:"gte=0"`
	Fours  int    `json:"fours" validate:"gte=0"`
	Sixes  int    `json:"sixes" validate:"gte=0"`
	NotOut bool   `json:"not_out"`
}

// BowlingEntryDTO is one bowling line of a submitted scorecard.
type BowlingEntryDTO struct {
	UserID       uint64  `json:"user_id" validate:"required"`
	Overs        float64 `json:"overs" validate:"gte=0"`
	RunsConceded int     `json:"runs_conceded" validate:"gte=0"`
	Wickets      int     `json:"wickets" validate:"gte=0"`
	Maidens      int     `json:"maidens" validate:"gte=0"`
}

// Scorecard is a full match submission.
type Scorecard struct {
	SeasonID    uint64            `json:"season_id" validate:"required"`
	Date        time.Time         `json:"date" validate:"required"`
	Opponent    string            `json:"opponent" validate:"required"`
	Venue       string            `json:"venue" validate:"required"`
	WinningTeam string            `json:"winning_team" validate:"required"`
	TeamScores  string            `json:"team_scores" validate:"required"`
	Batting     []BattingEntryDTO `json:"batting" validate:"dive"`
	Bowling     []BowlingEntryDTO `json:"bowling" validate:"dive"`
}

// ParseScorecard decodes a raw scorecard submission. The decoder rejects
// unknown fields and trailing content, then the validator enforces the
// declared shape.
func ParseScorecard(data []byte) (*Scorecard, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var card Scorecard
	if err := decoder.Decode(&card); err != nil {
		return nil, fmt.Errorf("malformed scorecard: %w", err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("malformed scorecard: trailing content")
	}

	if err := validate.Struct(&card); err != nil {
		return nil, fmt.Errorf("invalid scorecard: %w", apperrors.ErrInvalidInput.WithDetails(ParseErrors(err)))
	}

	return &card, nil
}

// ParseErrors flattens validator failures into a field-to-reason map for
// error reporting.
func ParseErrors(err error) map[string]string {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			errors[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
	} else if err != nil {
		errors["error"] = err.Error()
	}
	return errors
}

// BattingEntries converts the scorecard's batting lines into validator input.
func (c *Scorecard) BattingEntries() []stats.BattingEntry {
	entries := make([]stats.BattingEntry, len(c.Batting))
	for i, b := range c.Batting {
		entries[i] = stats.BattingEntry{
			UserID: b.UserID,
			Runs:   b.Runs,
			Balls:  b.Balls,
			Fours:  b.Fours,
			Sixes:  b.Sixes,
			NotOut: b.NotOut,
		}
	}
	return entries
}

// BowlingEntries converts the scorecard's bowling lines into validator input.
func (c *Scorecard) BowlingEntries() []stats.BowlingEntry {
	entries := make([]stats.BowlingEntry, len(c.Bowling))
	for i, b := range c.Bowling {
		entries[i] = stats.BowlingEntry{
			UserID:       b.UserID,
			Overs:        b.Overs,
			RunsConceded: b.RunsConceded,
			Wickets:      b.Wickets,
			Maidens:      b.Maidens,
		}
	}
	return entries
}
