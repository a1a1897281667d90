package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice"
	"github.com/heartmarshall/palipractice-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/palipractice-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/palipractice-backend/internal/transport/graphql/model"
)

// StartPracticeSession is the resolver for the startPracticeSession field.
func (r *mutationResolver) StartPracticeSession(ctx context.Context, kind domain.PracticeKind) (*practice.SessionInfo, error) {
	return r.sessions.StartSession(ctx, kind)
}

// NextPracticeItem is the resolver for the nextPracticeItem field.
func (r *mutationResolver) NextPracticeItem(ctx context.Context, kind domain.PracticeKind) (*practice.QueueItem, error) {
	item, err := r.sessions.Next(ctx, kind)
	if errors.Is(err, domain.ErrSessionExhausted) {
		return nil, nil
	}
	return item, err
}

// RecordPracticeResult is the resolver for the recordPracticeResult field.
func (r *mutationResolver) RecordPracticeResult(ctx context.Context, input practice.RecordResultInput) (*domain.MasteryRecord, error) {
	rec, err := r.practice.RecordResult(ctx, input)
	if err != nil {
		return nil, err
	}
	r.log.DebugContext(ctx, "practice result recorded",
		slog.Int64("form_id", int64(rec.FormID)),
		slog.Int("level", rec.Level),
	)
	return rec, nil
}

// UpdatePracticeSettings is the resolver for the updatePracticeSettings field.
func (r *mutationResolver) UpdatePracticeSettings(ctx context.Context, input practice.UpdateSettingsInput) (*domain.PracticeSettings, error) {
	return r.practice.UpdateSettings(ctx, input)
}

// PracticeQueue is the resolver for the practiceQueue field.
func (r *queryResolver) PracticeQueue(ctx context.Context, kind domain.PracticeKind, count *int, seedDate *time.Time) (*practice.Queue, error) {
	input := practice.BuildQueueInput{Kind: kind}
	if count != nil {
		input.Count = *count
	}
	if seedDate != nil {
		input.SeedDate = *seedDate
	}
	return r.practice.BuildQueue(ctx, input)
}

// PracticeSettings is the resolver for the practiceSettings field.
func (r *queryResolver) PracticeSettings(ctx context.Context, kind domain.PracticeKind) (*domain.PracticeSettings, error) {
	return r.practice.GetSettings(ctx, kind)
}

// DueForms is the resolver for the dueForms field.
func (r *queryResolver) DueForms(ctx context.Context, kind domain.PracticeKind, limit *int) ([]domain.MasteryRecord, error) {
	n := defaultDueLimit
	if limit != nil {
		n = *limit
	}
	return r.practice.DueForms(ctx, kind, n)
}

// MasteryStats is the resolver for the masteryStats field.
func (r *queryResolver) MasteryStats(ctx context.Context, kind domain.PracticeKind) ([]domain.MasteryLevelCount, error) {
	return r.practice.LevelStats(ctx, kind)
}

// Coordinate is the resolver for the coordinate field.
func (r *queueItemResolver) Coordinate(_ context.Context, obj *practice.QueueItem) (*model.Coordinate, error) {
	c, ok := model.NewCoordinate(obj.FormID)
	if !ok {
		return nil, fmt.Errorf("decode form %d: id outside both kinds", obj.FormID)
	}
	return c, nil
}

// Lemma is the resolver for the lemma field.
func (r *queueItemResolver) Lemma(_ context.Context, obj *practice.QueueItem) (*domain.Lemma, error) {
	l, ok := r.lemmas.Lemma(obj.LemmaID)
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// Mastery is the resolver for the mastery field.
func (r *queueItemResolver) Mastery(ctx context.Context, obj *practice.QueueItem) (*domain.MasteryRecord, error) {
	return dataloader.FromContext(ctx).MasteryByFormID.Load(ctx, obj.FormID)()
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// QueueItem returns generated.QueueItemResolver implementation.
func (r *Resolver) QueueItem() generated.QueueItemResolver { return &queueItemResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type queueItemResolver struct{ *Resolver }
