// Package mastery implements the level staircase that drives form review.
//
// A form starts at LevelNew (no stored record). Its first result moves it
// from DefaultLevel, so one grading already yields a useful spacing. Each
// easy result climbs one level, each hard result drops one, and the eleventh
// level retires the form for good.
package mastery

import (
	"fmt"
	"time"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
)

// Level is a position on the mastery staircase.
type Level int

const (
	LevelNew Level = iota
	Level1
	Level2
	Level3
	Level4
	Level5
	Level6
	Level7
	Level8
	Level9
	Level10
	LevelRetired
)

// DefaultLevel is where a form's first graded result is applied from.
const DefaultLevel = Level4

const day = 24 * time.Hour

// String renders the level for logs.
func (l Level) String() string {
	switch l {
	case LevelNew:
		return "NEW"
	case LevelRetired:
		return "RETIRED"
	default:
		if l.IsActive() {
			return fmt.Sprintf("L%d", int(l))
		}
		return fmt.Sprintf("INVALID(%d)", int(l))
	}
}

// IsValid reports whether l is on the staircase.
func (l Level) IsValid() bool {
	return l >= LevelNew && l <= LevelRetired
}

// IsActive reports whether l is one of the ten reviewable levels.
func (l Level) IsActive() bool {
	return l >= Level1 && l <= Level10
}

// Cooldown returns the minimum time that must pass after practice before a
// form at this level is due again. ok is false for new, retired and invalid
// levels, which never become due.
func (l Level) Cooldown() (d time.Duration, ok bool) {
	switch l {
	case Level1:
		return time.Hour, true
	case Level2:
		return 4 * time.Hour, true
	case Level3:
		return 12 * time.Hour, true
	case Level4:
		return day, true
	case Level5:
		return 2 * day, true
	case Level6:
		return 4 * day, true
	case Level7:
		return 8 * day, true
	case Level8:
		return 16 * day, true
	case Level9:
		return 35 * day, true
	case Level10:
		return 90 * day, true
	case LevelNew, LevelRetired:
		return 0, false
	}
	return 0, false
}

// AdjustLevel moves one step along the staircase. LevelNew is treated as
// DefaultLevel. Easy results climb and retire after Level10; hard results
// drop but never below Level1. Retired is terminal.
func AdjustLevel(old Level, wasEasy bool) Level {
	switch old {
	case LevelRetired:
		return LevelRetired
	case LevelNew:
		return AdjustLevel(DefaultLevel, wasEasy)
	case Level1:
		if wasEasy {
			return Level2
		}
		return Level1
	case Level2, Level3, Level4, Level5, Level6, Level7, Level8, Level9, Level10:
		if wasEasy {
			return old + 1
		}
		return old - 1
	}
	// Out-of-range values come only from corrupt rows. Restart them.
	return AdjustLevel(DefaultLevel, wasEasy)
}

// DueAt returns when a form practiced at lastPracticedAt becomes due.
// It is nil for levels that never become due.
func DueAt(l Level, lastPracticedAt time.Time) *time.Time {
	cd, ok := l.Cooldown()
	if !ok {
		return nil
	}
	due := lastPracticedAt.Add(cd)
	return &due
}

// IsDue reports whether a stored record is ready for review at now.
// A nil record is a new form and is never due.
func IsDue(rec *domain.MasteryRecord, now time.Time) bool {
	if rec == nil {
		return false
	}
	cd, ok := Level(rec.Level).Cooldown()
	if !ok {
		return false
	}
	return now.Sub(rec.LastPracticedAt) >= cd
}
