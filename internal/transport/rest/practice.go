package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice/mastery"
	"github.com/heartmarshall/palipractice-backend/pkg/ctxutil"
)

const (
	seedLayout      = "2006-01-02"
	defaultDueLimit = 50
	maxBodyBytes    = 64 << 10
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type practiceService interface {
	BuildQueue(ctx context.Context, input practice.BuildQueueInput) (*practice.Queue, error)
	RecordResult(ctx context.Context, input practice.RecordResultInput) (*domain.MasteryRecord, error)
	GetSettings(ctx context.Context, kind domain.PracticeKind) (*domain.PracticeSettings, error)
	UpdateSettings(ctx context.Context, input practice.UpdateSettingsInput) (*domain.PracticeSettings, error)
	DueForms(ctx context.Context, kind domain.PracticeKind, limit int) ([]domain.MasteryRecord, error)
	LevelStats(ctx context.Context, kind domain.PracticeKind) ([]domain.MasteryLevelCount, error)
}

type sessionProvider interface {
	StartSession(ctx context.Context, kind domain.PracticeKind) (*practice.SessionInfo, error)
	Next(ctx context.Context, kind domain.PracticeKind) (*practice.QueueItem, error)
}

// ---------------------------------------------------------------------------
// Handler
// ---------------------------------------------------------------------------

// PracticeHandler serves the practice API. Every route expects an
// authenticated user in the request context.
type PracticeHandler struct {
	svc      practiceService
	provider sessionProvider
	log      *slog.Logger
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(svc practiceService, provider sessionProvider, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{
		svc:      svc,
		provider: provider,
		log:      logger.With("handler", "practice"),
	}
}

// Register mounts the practice routes on mux.
func (h *PracticeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/practice/{kind}/queue", h.Queue)
	mux.HandleFunc("POST /api/practice/{kind}/session", h.StartSession)
	mux.HandleFunc("POST /api/practice/{kind}/next", h.Next)
	mux.HandleFunc("GET /api/practice/{kind}/settings", h.GetSettings)
	mux.HandleFunc("PUT /api/practice/{kind}/settings", h.UpdateSettings)
	mux.HandleFunc("GET /api/practice/{kind}/due", h.Due)
	mux.HandleFunc("GET /api/practice/{kind}/stats", h.Stats)
	mux.HandleFunc("POST /api/practice/results", h.RecordResult)
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// ItemResponse is one practice item with its decoded grammatical coordinate.
type ItemResponse struct {
	FormID         domain.FormID         `json:"form_id"`
	LemmaID        int                   `json:"lemma_id"`
	Source         domain.PracticeSource `json:"source"`
	MasteryLevel   int                   `json:"mastery_level"`
	Case           domain.Case           `json:"case,omitempty"`
	Gender         domain.Gender         `json:"gender,omitempty"`
	Tense          domain.Tense          `json:"tense,omitempty"`
	Person         domain.Person         `json:"person,omitempty"`
	Number         domain.Number         `json:"number,omitempty"`
	Voice          domain.Voice          `json:"voice,omitempty"`
	IrregularForms []string              `json:"irregular_forms,omitempty"`
}

// QueueResponse is the body of GET /queue.
type QueueResponse struct {
	Kind     domain.PracticeKind `json:"kind"`
	SeedDate string              `json:"seed_date"`
	PoolSize int                 `json:"pool_size"`
	Items    []ItemResponse      `json:"items"`
}

// SessionResponse is the body of POST /session.
type SessionResponse struct {
	Kind      domain.PracticeKind `json:"kind"`
	Size      int                 `json:"size"`
	PoolSize  int                 `json:"pool_size"`
	StartedAt time.Time           `json:"started_at"`
}

// SettingsRequest is the body of PUT /settings.
type SettingsRequest struct {
	Axes       domain.AxisSelections `json:"axes"`
	RankWindow domain.RankWindow     `json:"rank_window"`
	DailyGoal  int                   `json:"daily_goal"`
}

// SettingsResponse mirrors the stored settings of one kind.
type SettingsResponse struct {
	Kind       domain.PracticeKind   `json:"kind"`
	Axes       domain.AxisSelections `json:"axes"`
	RankWindow domain.RankWindow     `json:"rank_window"`
	DailyGoal  int                   `json:"daily_goal"`
	UpdatedAt  *time.Time            `json:"updated_at,omitempty"`
}

// ResultRequest is the body of POST /results.
type ResultRequest struct {
	FormID  domain.FormID `json:"form_id"`
	WasEasy bool          `json:"was_easy"`
}

// MasteryResponse is one form's mastery state.
type MasteryResponse struct {
	FormID          domain.FormID `json:"form_id"`
	Level           int           `json:"level"`
	LevelName       string        `json:"level_name"`
	LastPracticedAt time.Time     `json:"last_practiced_at"`
	DueAt           *time.Time    `json:"due_at"` // null once retired
}

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	Kind   domain.PracticeKind `json:"kind"`
	Total  int                 `json:"total"`
	Levels []LevelCount        `json:"levels"`
}

// LevelCount is the number of forms at one mastery level.
type LevelCount struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

// ---------------------------------------------------------------------------
// Routes
// ---------------------------------------------------------------------------

// Queue builds a queue without starting a session. Query parameters:
// count (0 or absent = sized from the daily goal) and seed (YYYY-MM-DD).
func (h *PracticeHandler) Queue(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	input := practice.BuildQueueInput{Kind: kind}
	var errs []domain.FieldError
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "count", Message: "must be an integer"})
		}
		input.Count = n
	}
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := time.Parse(seedLayout, v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "seed", Message: "must be a date in YYYY-MM-DD form"})
		}
		input.SeedDate = seed
	}
	if len(errs) > 0 {
		h.handleError(w, r, domain.NewValidationErrors(errs))
		return
	}

	q, err := h.svc.BuildQueue(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]ItemResponse, len(q.Items))
	for i, it := range q.Items {
		items[i] = toItemResponse(it)
	}
	writeJSON(w, http.StatusOK, QueueResponse{
		Kind:     q.Kind,
		SeedDate: q.SeedDate.Format(seedLayout),
		PoolSize: q.PoolSize,
		Items:    items,
	})
}

// StartSession replaces the caller's session of this kind with a fresh one.
func (h *PracticeHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	info, err := h.provider.StartSession(r.Context(), kind)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, SessionResponse{
		Kind:      info.Kind,
		Size:      info.Size,
		PoolSize:  info.PoolSize,
		StartedAt: info.StartedAt,
	})
}

// Next serves the next item of the session, or 204 once the scope is used up.
func (h *PracticeHandler) Next(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	item, err := h.provider.Next(r.Context(), kind)
	if errors.Is(err, domain.ErrSessionExhausted) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(*item))
}

// RecordResult applies a graded answer.
func (h *PracticeHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	var req ResultRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := h.svc.RecordResult(r.Context(), practice.RecordResultInput{
		FormID:  req.FormID,
		WasEasy: req.WasEasy,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMasteryResponse(*rec))
}

// GetSettings returns the settings of this kind, creating defaults on first use.
func (h *PracticeHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	s, err := h.svc.GetSettings(r.Context(), kind)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(*s))
}

// UpdateSettings replaces the settings of this kind.
func (h *PracticeHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	var req SettingsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s, err := h.svc.UpdateSettings(r.Context(), practice.UpdateSettingsInput{
		Kind:      kind,
		Axes:      req.Axes,
		Ranks:     req.RankWindow,
		DailyGoal: req.DailyGoal,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(*s))
}

// Due lists forms whose cooldown has elapsed, most overdue first.
func (h *PracticeHandler) Due(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	limit := defaultDueLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.handleError(w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	recs, err := h.svc.DueForms(r.Context(), kind, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]MasteryResponse, len(recs))
	for i, rec := range recs {
		out[i] = toMasteryResponse(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

// Stats reports how many forms sit at each mastery level.
func (h *PracticeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	counts, err := h.svc.LevelStats(r.Context(), kind)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := StatsResponse{Kind: kind, Levels: make([]LevelCount, len(counts))}
	for i, c := range counts {
		resp.Levels[i] = LevelCount{Level: c.Level, Name: mastery.Level(c.Level).String(), Count: c.Count}
		resp.Total += c.Count
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *PracticeHandler) kind(w http.ResponseWriter, r *http.Request) (domain.PracticeKind, bool) {
	kind, ok := domain.ParsePracticeKind(r.PathValue("kind"))
	if !ok {
		h.handleError(w, r, domain.InvalidKind.Err())
	}
	return kind, ok
}

func (h *PracticeHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation error", Fields: make([]fieldErrorResponse, len(verr.Errors))}
		for i, fe := range verr.Errors {
			resp.Fields[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict, retry the request")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
	default:
		attrs := append(ctxutil.LogAttrs(r.Context()),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		h.log.LogAttrs(r.Context(), slog.LevelError, "internal error", attrs...)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func toItemResponse(it practice.QueueItem) ItemResponse {
	out := ItemResponse{
		FormID:         it.FormID,
		LemmaID:        it.LemmaID,
		Source:         it.Source,
		MasteryLevel:   it.MasteryLevel,
		IrregularForms: it.IrregularForms,
	}
	switch kind, _ := formid.KindOf(it.FormID); kind {
	case domain.PracticeKindDeclension:
		d := formid.DecodeDeclension(it.FormID)
		out.Case, out.Gender, out.Number = d.Case, d.Gender, d.Number
	case domain.PracticeKindConjugation:
		c := formid.DecodeConjugation(it.FormID)
		out.Tense, out.Person, out.Number, out.Voice = c.Tense, c.Person, c.Number, c.Voice
	}
	return out
}

func toMasteryResponse(rec domain.MasteryRecord) MasteryResponse {
	return MasteryResponse{
		FormID:          rec.FormID,
		Level:           rec.Level,
		LevelName:       mastery.Level(rec.Level).String(),
		LastPracticedAt: rec.LastPracticedAt,
		DueAt:           rec.DueAt,
	}
}

func toSettingsResponse(s domain.PracticeSettings) SettingsResponse {
	out := SettingsResponse{
		Kind:       s.Kind,
		Axes:       s.Axes,
		RankWindow: s.Ranks,
		DailyGoal:  s.DailyGoal,
	}
	if !s.UpdatedAt.IsZero() {
		out.UpdatedAt = &s.UpdatedAt
	}
	return out
}
