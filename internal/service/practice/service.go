package practice

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice/queue"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type masteryRepo interface {
	GetForUpdate(ctx context.Context, userID uuid.UUID, formID domain.FormID) (*domain.MasteryRecord, error)
	GetByFormIDs(ctx context.Context, userID uuid.UUID, formIDs []domain.FormID) ([]domain.MasteryRecord, error)
	Upsert(ctx context.Context, rec *domain.MasteryRecord) (*domain.MasteryRecord, error)
	AppendHistory(ctx context.Context, entry *domain.MasteryHistoryEntry) error
	GetDue(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind, now time.Time, limit int) ([]domain.MasteryRecord, error)
	CountByLevel(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind) ([]domain.MasteryLevelCount, error)
}

type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind) (*domain.PracticeSettings, error)
	Upsert(ctx context.Context, settings *domain.PracticeSettings) (*domain.PracticeSettings, error)
}

type sessionStore interface {
	Get(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind) (*domain.PracticeSession, error)
	Save(ctx context.Context, session *domain.PracticeSession) error
	Delete(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind) error
}

type formCatalog interface {
	queue.Catalog
	IrregularForms(id domain.FormID) []string
	Count(kind domain.PracticeKind) int
}

type metricsRecorder interface {
	QueueBuilt(kind domain.PracticeKind, took time.Duration, items []domain.PracticeItem)
	ResultRecorded(kind domain.PracticeKind, wasEasy, retired bool)
	SettingsRepaired(kind domain.PracticeKind)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the tunables of the practice service.
type Config struct {
	Queue          queue.Options
	GoalMultiplier float64 // session size relative to the daily goal
}

// Service implements practice scheduling: queue building, result recording
// and per-kind settings.
type Service struct {
	masteries masteryRepo
	settings  settingsRepo
	sessions  sessionStore
	catalog   formCatalog
	metrics   metricsRecorder
	tx        txManager
	log       *slog.Logger
	cfg       Config
	now       func() time.Time
}

// NewService creates a new practice Service.
func NewService(
	log *slog.Logger,
	masteries masteryRepo,
	settings settingsRepo,
	sessions sessionStore,
	catalog formCatalog,
	metrics metricsRecorder,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.GoalMultiplier <= 0 {
		cfg.GoalMultiplier = 1.2
	}
	return &Service{
		masteries: masteries,
		settings:  settings,
		sessions:  sessions,
		catalog:   catalog,
		metrics:   metrics,
		tx:        tx,
		log:       log.With("service", "practice"),
		cfg:       cfg,
		now:       time.Now,
	}
}
