package commands

import (
	"context"

	"github.com/google/uuid"

	"parkhub/internal/domain/entry"
	"parkhub/internal/domain/lot"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"
)

type EntryCommands interface {
	OpenEntry(ctx context.Context, rawPlate, lotCode string) (*queries.EntryView, error)
	CloseEntry(ctx context.Context, entryID uuid.UUID) (*queries.EntryView, error)
}

type entryUseCaseImpl struct {
	uow        shared.UnitOfWork
	entryReads queries.EntryReadStore
	clock      clock.Clock
}

func NewEntryUseCase(uow shared.UnitOfWork, entryReads queries.EntryReadStore, clk clock.Clock) EntryCommands {
	return &entryUseCaseImpl{
		uow:        uow,
		entryReads: entryReads,
		clock:      clk,
	}
}

// OpenEntry admits a vehicle into a lot. The space reservation and ledger
// insert commit together; if the insert fails the reserved space is rolled
// back with the transaction.
func (uc *entryUseCaseImpl) OpenEntry(ctx context.Context, rawPlate, lotCode string) (*queries.EntryView, error) {
	plate, err := entry.NewPlate(rawPlate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPlate)
	}
	code, err := lot.NewCode(lotCode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var entryID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Lots().FindByCodeForUpdate(ctx, tx.DB(), code.Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrLotNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		parked, err := tx.Entries().HasOpenEntry(ctx, tx.DB(), plate)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if parked {
			return errs.Mark(errs.New("plate already has an open entry"), errs.ErrVehicleAlreadyParked)
		}

		if err := l.Reserve(); err != nil {
			return errs.Mark(err, errs.ErrLotFull)
		}
		if err := tx.Lots().UpdateSpaces(ctx, tx.DB(), l); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		e := entry.NewCarEntry(plate, l.ID(), uc.clock.Now().UTC())
		id, err := tx.Entries().Create(ctx, tx.DB(), e)
		if err != nil {
			// Partial unique index backstop for a concurrent open on the same plate.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrVehicleAlreadyParked)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		entryID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.findEntryView(ctx, entryID)
}

// CloseEntry records the exit, computes the charge from the lot's current
// hourly rate, and releases the space in the same transaction.
func (uc *entryUseCaseImpl) CloseEntry(ctx context.Context, entryID uuid.UUID) (*queries.EntryView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Entries().FindByIDForUpdate(ctx, tx.DB(), entryID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrEntryNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if e.IsClosed() {
			return errs.Mark(errs.New("entry was already closed"), errs.ErrEntryAlreadyClosed)
		}

		l, err := tx.Lots().FindByIDForUpdate(ctx, tx.DB(), e.LotID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrLotNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		exitedAt := uc.clock.Now().UTC()
		charge, err := entry.ComputeCharge(e.EnteredAt(), exitedAt, l.HourlyRate().Value())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := e.Close(exitedAt, charge); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Entries().Close(ctx, tx.DB(), e); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrEntryAlreadyClosed)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		l.Release()
		if err := tx.Lots().UpdateSpaces(ctx, tx.DB(), l); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.findEntryView(ctx, entryID)
}

func (uc *entryUseCaseImpl) findEntryView(ctx context.Context, id uuid.UUID) (*queries.EntryView, error) {
	view, err := uc.entryReads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEntryNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
