// Package stats validates submitted batting and bowling figures and computes
// the derived rates. Everything here is pure; persistence happens upstream
// only after a full scorecard validates.
package stats

import (
	"fmt"
	"math"

	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/constants"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
)

// ValidationError identifies the offending field of a rejected entry.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// BattingEntry is one player's raw batting figures as submitted.
type BattingEntry struct {
	UserID uint64
	Runs   int
	Balls  int
	Fours  int
	Sixes  int
	NotOut bool
}

// BowlingEntry is one player's raw bowling figures as submitted.
type BowlingEntry struct {
	UserID       uint64
	Overs        float64
	RunsConceded int
	Wickets      int
	Maidens      int
}

// OverEntry is one over of a per-over breakdown.
type OverEntry struct {
	OverNumber int
	DotBalls   int
	Extras     int
	Wickets    int
}

// ValidateBatting checks a batting entry and returns the stat row with its
// strike rate computed from the raw counts. The caller never supplies the
// rate, so the stored value is always consistent.
func ValidateBatting(e BattingEntry) (*models.BattingStat, error) {
	if e.UserID == 0 {
		return nil, invalid("user_id", "must reference a player")
	}
	if e.Runs < 0 {
		return nil, invalid("runs", "must not be negative")
	}
	if e.Balls < 0 {
		return nil, invalid("balls", "must not be negative")
	}
	if e.Fours < 0 {
		return nil, invalid("fours", "must not be negative")
	}
	if e.Sixes < 0 {
		return nil, invalid("sixes", "must not be negative")
	}
	if e.Balls == 0 && e.Runs > 0 {
		return nil, invalid("balls", "cannot score runs off zero balls")
	}
	if boundaryRuns := e.Fours*4 + e.Sixes*6; boundaryRuns > e.Runs {
		return nil, invalid("fours", "boundary runs exceed total runs")
	}

	var strikeRate float64
	if e.Balls > 0 {
		strikeRate = 100 * float64(e.Runs) / float64(e.Balls)
	}

	return &models.BattingStat{
		UserID:     e.UserID,
		Runs:       e.Runs,
		Balls:      e.Balls,
		StrikeRate: strikeRate,
		Fours:      e.Fours,
		Sixes:      e.Sixes,
		NotOut:     e.NotOut,
	}, nil
}

// ValidateBowling checks a bowling entry and returns the stat row with its
// economy rate computed from the raw counts.
func ValidateBowling(e BowlingEntry) (*models.BowlingStat, error) {
	if e.UserID == 0 {
		return nil, invalid("user_id", "must reference a player")
	}
	if e.Overs < 0 {
		return nil, invalid("overs", "must not be negative")
	}
	if e.RunsConceded < 0 {
		return nil, invalid("runs_conceded", "must not be negative")
	}
	if e.Wickets < 0 {
		return nil, invalid("wickets", "must not be negative")
	}
	if e.Maidens < 0 {
		return nil, invalid("maidens", "must not be negative")
	}

	wholeOvers := int(math.Ceil(e.Overs))
	if e.Wickets > 10*wholeOvers {
		return nil, invalid("wickets", "exceeds the maximum possible for the overs bowled")
	}
	if e.Maidens > wholeOvers {
		return nil, invalid("maidens", "exceeds the overs bowled")
	}

	var economy float64
	if e.Overs > 0 {
		economy = float64(e.RunsConceded) / e.Overs
	}

	return &models.BowlingStat{
		UserID:       e.UserID,
		Overs:        e.Overs,
		RunsConceded: e.RunsConceded,
		Wickets:      e.Wickets,
		Maidens:      e.Maidens,
		EconomyRate:  economy,
	}, nil
}

// ValidateOvers checks a per-over breakdown. Over numbers must be positive
// and pairwise distinct; dot balls and wickets are bounded by the six legal
// deliveries of an over, extras ignored.
func ValidateOvers(entries []OverEntry) ([]models.OverStat, error) {
	seen := make(map[int]bool, len(entries))
	rows := make([]models.OverStat, 0, len(entries))

	for _, e := range entries {
		if e.OverNumber < 1 {
			return nil, invalid("over_number", "must be positive")
		}
		if seen[e.OverNumber] {
			return nil, invalid("over_number", "duplicate over in breakdown")
		}
		seen[e.OverNumber] = true

		if e.DotBalls < 0 || e.DotBalls > constants.BallsPerOver {
			return nil, invalid("dot_balls", "must be between 0 and 6")
		}
		if e.Extras < 0 {
			return nil, invalid("extras", "must not be negative")
		}
		if e.Wickets < 0 || e.Wickets > constants.MaxWicketsPerOver {
			return nil, invalid("wickets", "must be between 0 and 6")
		}

		rows = append(rows, models.OverStat{
			OverNumber: e.OverNumber,
			DotBalls:   e.DotBalls,
			Extras:     e.Extras,
			Wickets:    e.Wickets,
		})
	}

	return rows, nil
}
