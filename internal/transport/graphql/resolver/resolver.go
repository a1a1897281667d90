package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice"
)

// defaultDueLimit matches the REST default for dueForms without a limit.
const defaultDueLimit = 50

// practiceService defines what the resolvers need from the practice Service.
type practiceService interface {
	BuildQueue(ctx context.Context, input practice.BuildQueueInput) (*practice.Queue, error)
	RecordResult(ctx context.Context, input practice.RecordResultInput) (*domain.MasteryRecord, error)
	GetSettings(ctx context.Context, kind domain.PracticeKind) (*domain.PracticeSettings, error)
	UpdateSettings(ctx context.Context, input practice.UpdateSettingsInput) (*domain.PracticeSettings, error)
	DueForms(ctx context.Context, kind domain.PracticeKind, limit int) ([]domain.MasteryRecord, error)
	LevelStats(ctx context.Context, kind domain.PracticeKind) ([]domain.MasteryLevelCount, error)
}

// sessionProvider defines what the resolvers need from the session Provider.
type sessionProvider interface {
	StartSession(ctx context.Context, kind domain.PracticeKind) (*practice.SessionInfo, error)
	Next(ctx context.Context, kind domain.PracticeKind) (*practice.QueueItem, error)
}

type lemmaCatalog interface {
	Lemma(id int) (domain.Lemma, bool)
}

// Resolver is the root resolver.
type Resolver struct {
	practice practiceService
	sessions sessionProvider
	lemmas   lemmaCatalog
	log      *slog.Logger
}

// NewResolver creates a Resolver over the practice service, the session
// provider and the training catalog.
func NewResolver(log *slog.Logger, svc practiceService, sessions sessionProvider, lemmas lemmaCatalog) *Resolver {
	return &Resolver{
		practice: svc,
		sessions: sessions,
		lemmas:   lemmas,
		log:      log.With("component", "graphql"),
	}
}
