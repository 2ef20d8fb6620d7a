package repository

import (
	"errors"
	"time"

	"parkhub/internal/domain/lot"
	"parkhub/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation
}

// Rows come from columns already constrained by the schema; a value the
// domain constructors reject indicates data corruption, not caller error.
func reconstructLot(
	id uuid.UUID,
	name, code string,
	capacity, available int,
	rate string,
	createdAt, updatedAt time.Time,
) (*lot.ParkingLot, error) {
	lotName, err := lot.NewName(name)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt lot name", err)
	}
	lotCode, err := lot.NewCode(code)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt lot code", err)
	}
	rateDec, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt hourly rate", err)
	}
	hourlyRate, err := lot.NewHourlyRate(rateDec)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt hourly rate", err)
	}

	return lot.ReconstructParkingLot(id, lotName, lotCode, capacity, available, hourlyRate, createdAt, updatedAt), nil
}
