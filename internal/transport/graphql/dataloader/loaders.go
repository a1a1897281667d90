package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/pkg/ctxutil"
)

func newMasteryBatchFn(repo masteryRepo) dataloader.BatchFunc[domain.FormID, *domain.MasteryRecord] {
	return func(ctx context.Context, keys []domain.FormID) []*dataloader.Result[*domain.MasteryRecord] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.MasteryRecord](len(keys), domain.ErrUnauthorized)
		}

		rows, err := repo.GetByFormIDs(ctx, userID, keys)
		if err != nil {
			return errorResults[*domain.MasteryRecord](len(keys), err)
		}

		byForm := make(map[domain.FormID]*domain.MasteryRecord, len(rows))
		for i := range rows {
			byForm[rows[i].FormID] = &rows[i]
		}

		results := make([]*dataloader.Result[*domain.MasteryRecord], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.MasteryRecord]{Data: byForm[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
