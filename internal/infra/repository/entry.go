package repository

import (
	"context"
	"errors"
	"time"

	"parkhub/internal/domain/entry"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type EntryRepository struct{}

func NewEntryRepository() *EntryRepository {
	return &EntryRepository{}
}

func (r *EntryRepository) Create(ctx context.Context, tx db.DBTX, e *entry.CarEntry) (uuid.UUID, error) {
	const query = `
		INSERT INTO car_entries (id, plate_number, lot_id, entered_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, e.ID(), e.Plate().Value(), e.LotID(), e.EnteredAt()).Scan(&id)
	if err != nil {
		// The partial unique index on open plates backstops the
		// read-then-insert race between concurrent entries.
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("open entry already exists for plate", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create car entry", err)
	}

	return id, nil
}

func (r *EntryRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*entry.CarEntry, error) {
	const query = `
		SELECT id, plate_number, lot_id, entered_at, exited_at, charged_amount::text, created_at, updated_at
		FROM car_entries
		WHERE id = $1
		FOR UPDATE`

	var (
		entryID              uuid.UUID
		plateStr             string
		lotID                uuid.UUID
		enteredAt            time.Time
		exitedAt             *time.Time
		chargeStr            *string
		createdAt, updatedAt time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&entryID, &plateStr, &lotID, &enteredAt, &exitedAt, &chargeStr, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("car entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car entry by ID", err)
	}

	plate, err := entry.NewPlate(plateStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt plate number", err)
	}

	var charge *decimal.Decimal
	if chargeStr != nil {
		c, convErr := decimal.NewFromString(*chargeStr)
		if convErr != nil {
			return nil, infra.WrapRepoErr("corrupt charged amount", convErr)
		}
		charge = &c
	}

	return entry.ReconstructCarEntry(entryID, plate, lotID, enteredAt, exitedAt, charge, createdAt, updatedAt), nil
}

func (r *EntryRepository) HasOpenEntry(ctx context.Context, tx db.DBTX, plate entry.Plate) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM car_entries WHERE plate_number = $1 AND exited_at IS NULL)`

	var exists bool
	if err := tx.QueryRow(ctx, query, plate.Value()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check open entry for plate", err)
	}
	return exists, nil
}

func (r *EntryRepository) Close(ctx context.Context, tx db.DBTX, e *entry.CarEntry) error {
	const query = `
		UPDATE car_entries
		SET exited_at = $2, charged_amount = $3, updated_at = now()
		WHERE id = $1 AND exited_at IS NULL`

	tag, err := tx.Exec(ctx, query, e.ID(), e.ExitedAt(), e.Charge().String())
	if err != nil {
		return infra.WrapRepoErr("failed to close car entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car entry already closed", nil, infra.KindConflict)
	}
	return nil
}
