package domain

import (
	"time"

	"github.com/google/uuid"
)

// FormID is the integer encoding of a grammatical coordinate.
// See package formid for the codec.
type FormID int64

// Lemma is a dictionary headword taken from the training database.
// Lemmas are immutable reference data shared by every user.
type Lemma struct {
	ID        int
	Headword  string
	Kind      PracticeKind
	Rank      int // 1 = most frequent within its kind
	Frequency int
	Pattern   string // inflection pattern, e.g. "a masc"
	Gender    Gender // declension only
	Reflexive bool   // conjugation only: has attested reflexive forms
}

// MasteryRecord holds the spaced-repetition state of one canonical form for a user.
// A missing record means the form is new (level 0).
type MasteryRecord struct {
	UserID          uuid.UUID
	FormID          FormID
	Level           int
	LastPracticedAt time.Time
	DueAt           *time.Time // nil once retired
	UpdatedAt       time.Time
}

// MasteryHistoryEntry is an immutable log row appended on every practice result.
type MasteryHistoryEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FormID      FormID
	OldLevel    int
	NewLevel    int
	WasEasy     bool
	PracticedAt time.Time
}

// PracticeItem is a single entry of a built practice queue.
type PracticeItem struct {
	FormID       FormID         `json:"form_id"`
	LemmaID      int            `json:"lemma_id"`
	Source       PracticeSource `json:"source"`
	MasteryLevel int            `json:"mastery_level"` // 0 for new forms
}

// MasteryLevelCount holds the number of practiced forms at a given level.
type MasteryLevelCount struct {
	Level int
	Count int
}

// PracticeSession is a queue handed out to a client and consumed item by item.
// PoolSize is the number of practicable forms seen by the last build. When
// the loaded items run out and PoolSize exceeds len(Items), more forms remain
// and the session is refilled; Served keeps refills from repeating forms.
type PracticeSession struct {
	UserID    uuid.UUID      `json:"user_id"`
	Kind      PracticeKind   `json:"kind"`
	Items     []PracticeItem `json:"items"`
	Position  int            `json:"position"`
	Served    []FormID       `json:"served"`
	PoolSize  int            `json:"pool_size"`
	SeedDate  time.Time      `json:"seed_date"`
	StartedAt time.Time      `json:"started_at"`
}

// Remaining returns the number of loaded items not yet served.
func (s *PracticeSession) Remaining() int {
	return max(len(s.Items)-s.Position, 0)
}
