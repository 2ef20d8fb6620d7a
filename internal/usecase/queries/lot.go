package queries

import (
	"context"

	"github.com/google/uuid"

	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
)

type LotReadStore interface {
	FindAll(ctx context.Context) ([]*LotView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*LotView, error)
}

type LotQueries interface {
	ListLots(ctx context.Context) ([]*LotView, error)
	GetLot(ctx context.Context, id uuid.UUID) (*LotView, error)
}

type lotQueriesImpl struct {
	store LotReadStore
}

func NewLotQueries(store LotReadStore) LotQueries {
	return &lotQueriesImpl{store: store}
}

func (q *lotQueriesImpl) ListLots(ctx context.Context) ([]*LotView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *lotQueriesImpl) GetLot(ctx context.Context, id uuid.UUID) (*LotView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLotNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
