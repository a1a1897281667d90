package practice

import (
	"fmt"
	"time"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
)

// MaxQueueCount bounds explicit queue requests.
const MaxQueueCount = 500

// BuildQueueInput holds the parameters for a one-off queue build.
type BuildQueueInput struct {
	Kind     domain.PracticeKind
	Count    int       // 0 = session size derived from the daily goal
	SeedDate time.Time // zero = today
}

// Validate checks all fields and collects all errors.
func (i *BuildQueueInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.InvalidKind)
	}
	if i.Count < 0 || i.Count > MaxQueueCount {
		errs = append(errs, domain.FieldError{Field: "count", Message: fmt.Sprintf("must be between 0 and %d", MaxQueueCount)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordResultInput holds a graded practice result.
type RecordResultInput struct {
	FormID  domain.FormID
	WasEasy bool
}

// Validate checks all fields and collects all errors.
func (i *RecordResultInput) Validate() error {
	var errs []domain.FieldError

	if _, ok := formid.KindOf(i.FormID); !ok {
		errs = append(errs, domain.FieldError{Field: "form_id", Message: "not a known form id"})
	} else if formid.Variant(i.FormID) != 0 {
		errs = append(errs, domain.FieldError{Field: "form_id", Message: "must be a canonical form id (ending variant 0)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSettingsInput replaces the settings of one practice kind.
type UpdateSettingsInput struct {
	Kind      domain.PracticeKind
	Axes      domain.AxisSelections
	Ranks     domain.RankWindow
	DailyGoal int
}

// Validate checks all fields and collects all errors. Axis lists must be
// non-empty for the kind and absent for the other kind.
func (i *UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	switch i.Kind {
	case domain.PracticeKindDeclension:
		errs = appendAxisErrors(errs, "cases", i.Axes.Cases, domain.Case.IsValid)
		errs = appendAxisErrors(errs, "genders", i.Axes.Genders, domain.Gender.IsValid)
		errs = appendAxisErrors(errs, "numbers", i.Axes.Numbers, domain.Number.IsValid)
		if len(i.Axes.Tenses)+len(i.Axes.Persons)+len(i.Axes.Voices) > 0 {
			errs = append(errs, domain.FieldError{Field: "axes", Message: "tenses, persons and voices apply to conjugation only"})
		}
	case domain.PracticeKindConjugation:
		errs = appendAxisErrors(errs, "tenses", i.Axes.Tenses, domain.Tense.IsValid)
		errs = appendAxisErrors(errs, "persons", i.Axes.Persons, domain.Person.IsValid)
		errs = appendAxisErrors(errs, "numbers", i.Axes.Numbers, domain.Number.IsValid)
		errs = appendAxisErrors(errs, "voices", i.Axes.Voices, domain.Voice.IsValid)
		if len(i.Axes.Cases)+len(i.Axes.Genders) > 0 {
			errs = append(errs, domain.FieldError{Field: "axes", Message: "cases and genders apply to declension only"})
		}
	default:
		errs = append(errs, domain.InvalidKind)
	}

	if !i.Ranks.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "rank_window",
			Message: fmt.Sprintf("min must be at least 1, max at least min, and the window under %d", domain.MaxRankWindow),
		})
	}
	if i.DailyGoal < 1 || i.DailyGoal > domain.MaxDailyGoal {
		errs = append(errs, domain.FieldError{Field: "daily_goal", Message: fmt.Sprintf("must be between 1 and %d", domain.MaxDailyGoal)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendAxisErrors[T any](errs []domain.FieldError, field string, values []T, valid func(T) bool) []domain.FieldError {
	if len(values) == 0 {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	for _, v := range values {
		if !valid(v) {
			return append(errs, domain.FieldError{Field: field, Message: "contains an invalid value"})
		}
	}
	return errs
}
