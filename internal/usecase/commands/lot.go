package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"parkhub/internal/domain/lot"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"
)

type CreateLotInput struct {
	Name          string
	Code          string
	TotalCapacity int
	HourlyRate    decimal.Decimal
}

type UpdateLotInput struct {
	Name          string
	TotalCapacity int
	HourlyRate    decimal.Decimal
}

type LotCommands interface {
	CreateLot(ctx context.Context, input CreateLotInput) (*queries.LotView, error)
	UpdateLot(ctx context.Context, id uuid.UUID, input UpdateLotInput) (*queries.LotView, error)
	DeleteLot(ctx context.Context, id uuid.UUID) error
}

type lotUseCaseImpl struct {
	uow      shared.UnitOfWork
	lotReads queries.LotReadStore
}

func NewLotUseCase(uow shared.UnitOfWork, lotReads queries.LotReadStore) LotCommands {
	return &lotUseCaseImpl{
		uow:      uow,
		lotReads: lotReads,
	}
}

func (uc *lotUseCaseImpl) CreateLot(ctx context.Context, input CreateLotInput) (*queries.LotView, error) {
	name, err := lot.NewName(input.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	code, err := lot.NewCode(input.Code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	rate, err := lot.NewHourlyRate(input.HourlyRate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	l, err := lot.NewParkingLot(name, code, input.TotalCapacity, rate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var lotID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Lots().Create(ctx, tx.DB(), l)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateLotCode)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		lotID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.findLotView(ctx, lotID)
}

// UpdateLot edits administrative fields under the row lock so a resize is
// checked against live occupancy, not a stale snapshot.
func (uc *lotUseCaseImpl) UpdateLot(ctx context.Context, id uuid.UUID, input UpdateLotInput) (*queries.LotView, error) {
	name, err := lot.NewName(input.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	rate, err := lot.NewHourlyRate(input.HourlyRate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Lots().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrLotNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		l.Rename(name)
		l.ChangeRate(rate)
		if err := l.Resize(input.TotalCapacity); err != nil {
			if err == lot.ErrCapacityBelowOccupancy {
				return errs.Mark(err, errs.ErrCapacityBelowOccupancy)
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Lots().Update(ctx, tx.DB(), l); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.findLotView(ctx, id)
}

func (uc *lotUseCaseImpl) DeleteLot(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lots().Delete(ctx, tx.DB(), id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, errs.ErrLotNotFound)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, errs.ErrDomainValidation)
			default:
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

func (uc *lotUseCaseImpl) findLotView(ctx context.Context, id uuid.UUID) (*queries.LotView, error) {
	view, err := uc.lotReads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLotNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
