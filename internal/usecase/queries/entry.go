package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"parkhub/internal/domain/entry"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
)

type EntryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EntryView, error)
	FindAll(ctx context.Context) ([]*EntryView, error)
	FindEnteredBetween(ctx context.Context, from, to time.Time) ([]*EntryView, error)
	FindExitedBetween(ctx context.Context, from, to time.Time) ([]*EntryView, error)
	FindTicketByEntryID(ctx context.Context, entryID uuid.UUID) (*TicketView, error)
	FindTicketByPlate(ctx context.Context, plate string) (*TicketView, error)
}

type EntryQueries interface {
	GetEntry(ctx context.Context, id uuid.UUID) (*EntryView, error)
	ListAllEntries(ctx context.Context) ([]*EntryView, error)
	ListEnteredInRange(ctx context.Context, from, to time.Time) ([]*EntryView, error)
	ListExitedInRange(ctx context.Context, from, to time.Time) ([]*EntryView, error)
	GetTicket(ctx context.Context, entryID uuid.UUID) (*TicketView, error)
	GetTicketByPlate(ctx context.Context, rawPlate string) (*TicketView, error)
}

type entryQueriesImpl struct {
	store EntryReadStore
}

func NewEntryQueries(store EntryReadStore) EntryQueries {
	return &entryQueriesImpl{store: store}
}

func (q *entryQueriesImpl) GetEntry(ctx context.Context, id uuid.UUID) (*EntryView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEntryNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *entryQueriesImpl) ListAllEntries(ctx context.Context) ([]*EntryView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *entryQueriesImpl) ListEnteredInRange(ctx context.Context, from, to time.Time) ([]*EntryView, error) {
	if to.Before(from) {
		return nil, errs.Mark(errs.New("from must not be after to"), errs.ErrInvalidDateRange)
	}
	views, err := q.store.FindEnteredBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *entryQueriesImpl) ListExitedInRange(ctx context.Context, from, to time.Time) ([]*EntryView, error) {
	if to.Before(from) {
		return nil, errs.Mark(errs.New("from must not be after to"), errs.ErrInvalidDateRange)
	}
	views, err := q.store.FindExitedBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// GetTicket resolves a ticket by entry id. Closed entries no longer have a
// ticket, so the read store treats them as absent.
func (q *entryQueriesImpl) GetTicket(ctx context.Context, entryID uuid.UUID) (*TicketView, error) {
	view, err := q.store.FindTicketByEntryID(ctx, entryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTicketNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *entryQueriesImpl) GetTicketByPlate(ctx context.Context, rawPlate string) (*TicketView, error) {
	plate, err := entry.NewPlate(rawPlate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPlate)
	}
	view, err := q.store.FindTicketByPlate(ctx, plate.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTicketNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
