package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice"
	"github.com/heartmarshall/palipractice-backend/pkg/ctxutil"
)

//go:generate moq -out practice_service_mock_test.go -pkg rest . practiceService
//go:generate moq -out session_provider_mock_test.go -pkg rest . sessionProvider

var testUserID = uuid.MustParse("5a0a1d7e-8f5c-4c41-9d1b-3f1e0c2b7a11")

func newTestMux(svc *practiceServiceMock, provider *sessionProviderMock) http.Handler {
	if svc == nil {
		svc = &practiceServiceMock{}
	}
	if provider == nil {
		provider = &sessionProviderMock{}
	}
	mux := http.NewServeMux()
	NewPracticeHandler(svc, provider, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(mux)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), testUserID)))
	})
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, rd))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

// ---------------------------------------------------------------------------
// Queue
// ---------------------------------------------------------------------------

func TestPracticeHandler_Queue(t *testing.T) {
	t.Parallel()

	nounForm := formid.EncodeDeclension(10001, domain.CaseGenitive, domain.GenderMasculine, domain.NumberPlural, 0)
	verbForm := formid.EncodeConjugation(70001, domain.TenseAorist, domain.PersonThird, domain.NumberSingular, domain.VoiceActive, 0)

	svc := &practiceServiceMock{
		BuildQueueFunc: func(_ context.Context, input practice.BuildQueueInput) (*practice.Queue, error) {
			return &practice.Queue{
				Kind:     input.Kind,
				PoolSize: 120,
				SeedDate: input.SeedDate,
				Items: []practice.QueueItem{
					{PracticeItem: domain.PracticeItem{FormID: nounForm, LemmaID: 10001, Source: domain.PracticeSourceNew}},
					{
						PracticeItem:   domain.PracticeItem{FormID: verbForm, LemmaID: 70001, Source: domain.PracticeSourceReview, MasteryLevel: 3},
						IrregularForms: []string{"ahosi"},
					},
				},
			}, nil
		},
	}
	h := newTestMux(svc, nil)

	rec := do(t, h, http.MethodGet, "/api/practice/declension/queue?count=20&seed=2026-03-01", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	calls := svc.BuildQueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.PracticeKindDeclension, calls[0].Input.Kind)
	assert.Equal(t, 20, calls[0].Input.Count)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), calls[0].Input.SeedDate)
	uid, ok := ctxutil.UserIDFromCtx(calls[0].Ctx)
	assert.True(t, ok)
	assert.Equal(t, testUserID, uid)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "2026-03-01", raw["seed_date"])
	assert.Equal(t, float64(120), raw["pool_size"])

	items := raw["items"].([]any)
	require.Len(t, items, 2)
	noun := items[0].(map[string]any)
	assert.Equal(t, "genitive", noun["case"])
	assert.Equal(t, "masculine", noun["gender"])
	assert.Equal(t, "plural", noun["number"])
	assert.Equal(t, "NEW_FORM", noun["source"])
	assert.NotContains(t, noun, "tense")
	assert.NotContains(t, noun, "irregular_forms")

	verb := items[1].(map[string]any)
	assert.Equal(t, "aorist", verb["tense"])
	assert.Equal(t, "third", verb["person"])
	assert.Equal(t, "active", verb["voice"])
	assert.NotContains(t, verb, "case")
	assert.Equal(t, []any{"ahosi"}, verb["irregular_forms"])
}

func TestPracticeHandler_Queue_BadQuery(t *testing.T) {
	t.Parallel()

	h := newTestMux(nil, nil)

	rec := do(t, h, http.MethodGet, "/api/practice/DECLENSION/queue?count=ten&seed=01-03-2026", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[errorResponse](t, rec)
	fields := make([]string, len(resp.Fields))
	for i, f := range resp.Fields {
		fields[i] = f.Field
	}
	assert.ElementsMatch(t, []string{"count", "seed"}, fields)
}

func TestPracticeHandler_UnknownKind(t *testing.T) {
	t.Parallel()

	h := newTestMux(nil, nil)

	for _, target := range []string{
		"/api/practice/nouns/queue",
		"/api/practice/verbs/stats",
		"/api/practice/x/settings",
	} {
		rec := do(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		resp := decode[errorResponse](t, rec)
		require.Len(t, resp.Fields, 1, target)
		assert.Equal(t, "kind", resp.Fields[0].Field)
	}
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

func TestPracticeHandler_StartSession(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	provider := &sessionProviderMock{
		StartSessionFunc: func(_ context.Context, kind domain.PracticeKind) (*practice.SessionInfo, error) {
			return &practice.SessionInfo{Kind: kind, Size: 60, PoolSize: 400, StartedAt: started}, nil
		},
	}
	h := newTestMux(nil, provider)

	rec := do(t, h, http.MethodPost, "/api/practice/conjugation/session", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[SessionResponse](t, rec)
	assert.Equal(t, SessionResponse{Kind: domain.PracticeKindConjugation, Size: 60, PoolSize: 400, StartedAt: started}, resp)
}

func TestPracticeHandler_Next(t *testing.T) {
	t.Parallel()

	form := formid.EncodeDeclension(10002, domain.CaseLocative, domain.GenderNeuter, domain.NumberSingular, 0)
	provider := &sessionProviderMock{
		NextFunc: func(context.Context, domain.PracticeKind) (*practice.QueueItem, error) {
			return &practice.QueueItem{PracticeItem: domain.PracticeItem{FormID: form, LemmaID: 10002, Source: domain.PracticeSourceNew}}, nil
		},
	}
	h := newTestMux(nil, provider)

	rec := do(t, h, http.MethodPost, "/api/practice/DECLENSION/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	item := decode[ItemResponse](t, rec)
	assert.Equal(t, form, item.FormID)
	assert.Equal(t, domain.CaseLocative, item.Case)
	assert.Equal(t, domain.GenderNeuter, item.Gender)
}

func TestPracticeHandler_Next_Exhausted(t *testing.T) {
	t.Parallel()

	provider := &sessionProviderMock{
		NextFunc: func(context.Context, domain.PracticeKind) (*practice.QueueItem, error) {
			return nil, domain.ErrSessionExhausted
		},
	}
	h := newTestMux(nil, provider)

	rec := do(t, h, http.MethodPost, "/api/practice/DECLENSION/next", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// ---------------------------------------------------------------------------
// Results
// ---------------------------------------------------------------------------

func TestPracticeHandler_RecordResult(t *testing.T) {
	t.Parallel()

	form := domain.FormID(107893120)
	practiced := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	due := practiced.Add(7 * 24 * time.Hour)

	svc := &practiceServiceMock{
		RecordResultFunc: func(_ context.Context, input practice.RecordResultInput) (*domain.MasteryRecord, error) {
			return &domain.MasteryRecord{
				UserID:          testUserID,
				FormID:          input.FormID,
				Level:           5,
				LastPracticedAt: practiced,
				DueAt:           &due,
			}, nil
		},
	}
	h := newTestMux(svc, nil)

	rec := do(t, h, http.MethodPost, "/api/practice/results", ResultRequest{FormID: form, WasEasy: true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	calls := svc.RecordResultCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, practice.RecordResultInput{FormID: form, WasEasy: true}, calls[0].Input)

	resp := decode[MasteryResponse](t, rec)
	assert.Equal(t, 5, resp.Level)
	assert.Equal(t, "L5", resp.LevelName)
	require.NotNil(t, resp.DueAt)
	assert.True(t, resp.DueAt.Equal(due))
}

func TestPracticeHandler_RecordResult_BadBody(t *testing.T) {
	t.Parallel()

	h := newTestMux(nil, nil)

	tests := map[string]string{
		"not json":      "form_id=1",
		"unknown field": `{"form_id": 107893120, "grade": 3}`,
		"wrong type":    `{"form_id": "abc"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/practice/results", bytes.NewBufferString(body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPracticeHandler_RecordResult_ValidationFields(t *testing.T) {
	t.Parallel()

	svc := &practiceServiceMock{
		RecordResultFunc: func(context.Context, practice.RecordResultInput) (*domain.MasteryRecord, error) {
			return nil, domain.NewValidationError("form_id", "not a known form id")
		},
	}
	h := newTestMux(svc, nil)

	rec := do(t, h, http.MethodPost, "/api/practice/results", ResultRequest{FormID: 42})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[errorResponse](t, rec)
	assert.Equal(t, "validation error", resp.Error)
	assert.Equal(t, []fieldErrorResponse{{Field: "form_id", Message: "not a known form id"}}, resp.Fields)
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

func TestPracticeHandler_GetSettings(t *testing.T) {
	t.Parallel()

	svc := &practiceServiceMock{
		GetSettingsFunc: func(_ context.Context, kind domain.PracticeKind) (*domain.PracticeSettings, error) {
			s := domain.DefaultPracticeSettings(testUserID, kind)
			return &s, nil
		},
	}
	h := newTestMux(svc, nil)

	rec := do(t, h, http.MethodGet, "/api/practice/conjugation/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[SettingsResponse](t, rec)
	def := domain.DefaultPracticeSettings(testUserID, domain.PracticeKindConjugation)
	assert.Equal(t, domain.PracticeKindConjugation, resp.Kind)
	assert.Equal(t, def.Axes, resp.Axes)
	assert.Equal(t, def.Ranks, resp.RankWindow)
	assert.Equal(t, def.DailyGoal, resp.DailyGoal)
	assert.Nil(t, resp.UpdatedAt)
}

func TestPracticeHandler_UpdateSettings(t *testing.T) {
	t.Parallel()

	svc := &practiceServiceMock{
		UpdateSettingsFunc: func(_ context.Context, input practice.UpdateSettingsInput) (*domain.PracticeSettings, error) {
			return &domain.PracticeSettings{
				UserID:    testUserID,
				Kind:      input.Kind,
				Axes:      input.Axes,
				Ranks:     input.Ranks,
				DailyGoal: input.DailyGoal,
				UpdatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := newTestMux(svc, nil)

	body := `{
		"axes": {"cases": ["nominative", "dative"], "genders": ["feminine"], "numbers": ["singular"]},
		"rank_window": {"min": 1, "max": 200},
		"daily_goal": 30
	}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/practice/declension/settings", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	calls := svc.UpdateSettingsCalls()
	require.Len(t, calls, 1)
	in := calls[0].Input
	assert.Equal(t, domain.PracticeKindDeclension, in.Kind)
	assert.Equal(t, []domain.Case{domain.CaseNominative, domain.CaseDative}, in.Axes.Cases)
	assert.Equal(t, []domain.Gender{domain.GenderFeminine}, in.Axes.Genders)
	assert.Equal(t, domain.RankWindow{Min: 1, Max: 200}, in.Ranks)
	assert.Equal(t, 30, in.DailyGoal)

	resp := decode[SettingsResponse](t, rec)
	require.NotNil(t, resp.UpdatedAt)
}

func TestPracticeHandler_UpdateSettings_UnknownAxisValue(t *testing.T) {
	t.Parallel()

	h := newTestMux(nil, nil)

	body := `{"axes": {"cases": ["ergative"]}, "rank_window": {"min": 1, "max": 10}, "daily_goal": 5}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/practice/declension/settings", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---------------------------------------------------------------------------
// Due and stats
// ---------------------------------------------------------------------------

func TestPracticeHandler_Due(t *testing.T) {
	t.Parallel()

	svc := &practiceServiceMock{
		DueFormsFunc: func(_ context.Context, _ domain.PracticeKind, limit int) ([]domain.MasteryRecord, error) {
			return []domain.MasteryRecord{{FormID: 107893120, Level: 2}}, nil
		},
	}
	h := newTestMux(svc, nil)

	rec := do(t, h, http.MethodGet, "/api/practice/declension/due", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultDueLimit, svc.DueFormsCalls()[0].Limit)

	rec = do(t, h, http.MethodGet, "/api/practice/declension/due?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, svc.DueFormsCalls()[1].Limit)

	resp := decode[[]MasteryResponse](t, rec)
	require.Len(t, resp, 1)
	assert.Equal(t, "L2", resp[0].LevelName)

	rec = do(t, h, http.MethodGet, "/api/practice/declension/due?limit=all", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, svc.DueFormsCalls(), 2)
}

func TestPracticeHandler_Stats(t *testing.T) {
	t.Parallel()

	svc := &practiceServiceMock{
		LevelStatsFunc: func(context.Context, domain.PracticeKind) ([]domain.MasteryLevelCount, error) {
			return []domain.MasteryLevelCount{{Level: 1, Count: 4}, {Level: 4, Count: 10}, {Level: 11, Count: 2}}, nil
		},
	}
	h := newTestMux(svc, nil)

	rec := do(t, h, http.MethodGet, "/api/practice/conjugation/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[StatsResponse](t, rec)
	assert.Equal(t, 16, resp.Total)
	assert.Equal(t, []LevelCount{
		{Level: 1, Name: "L1", Count: 4},
		{Level: 4, Name: "L4", Count: 10},
		{Level: 11, Name: "RETIRED", Count: 2},
	}, resp.Levels)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func TestPracticeHandler_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"conflict", errors.Join(domain.ErrConflict, errors.New("serialization failure")), http.StatusConflict},
		{"wrapped validation", domain.ErrValidation, http.StatusBadRequest},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &practiceServiceMock{
				LevelStatsFunc: func(context.Context, domain.PracticeKind) ([]domain.MasteryLevelCount, error) {
					return nil, tt.err
				},
			}
			rec := do(t, newTestMux(svc, nil), http.MethodGet, "/api/practice/declension/stats", nil)
			assert.Equal(t, tt.want, rec.Code)

			resp := decode[errorResponse](t, rec)
			assert.NotEmpty(t, resp.Error)
			if tt.want == http.StatusInternalServerError {
				assert.NotContains(t, resp.Error, "connection reset")
			}
		})
	}
}
