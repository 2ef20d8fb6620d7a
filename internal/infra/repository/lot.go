package repository

import (
	"context"
	"errors"
	"time"

	"parkhub/internal/domain/lot"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LotRepository struct{}

func NewLotRepository() *LotRepository {
	return &LotRepository{}
}

func (r *LotRepository) Create(ctx context.Context, tx db.DBTX, l *lot.ParkingLot) (uuid.UUID, error) {
	const query = `
		INSERT INTO parking_lots (id, name, code, total_capacity, available_spaces, hourly_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		l.ID(), l.Name().Value(), l.Code().Value(),
		l.TotalCapacity(), l.AvailableSpaces(), l.HourlyRate().Value().String(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("lot code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create parking lot", err)
	}

	return id, nil
}

const lotColumns = `id, name, code, total_capacity, available_spaces, hourly_rate::text, created_at, updated_at`

func (r *LotRepository) FindByCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*lot.ParkingLot, error) {
	query := `SELECT ` + lotColumns + ` FROM parking_lots WHERE code = $1 FOR UPDATE`
	return r.scanLot(tx.QueryRow(ctx, query, code))
}

func (r *LotRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*lot.ParkingLot, error) {
	query := `SELECT ` + lotColumns + ` FROM parking_lots WHERE id = $1 FOR UPDATE`
	return r.scanLot(tx.QueryRow(ctx, query, id))
}

func (r *LotRepository) UpdateSpaces(ctx context.Context, tx db.DBTX, l *lot.ParkingLot) error {
	const query = `
		UPDATE parking_lots
		SET available_spaces = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, l.ID(), l.AvailableSpaces())
	if err != nil {
		return infra.WrapRepoErr("failed to update lot spaces", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) Update(ctx context.Context, tx db.DBTX, l *lot.ParkingLot) error {
	const query = `
		UPDATE parking_lots
		SET name = $2, hourly_rate = $3, total_capacity = $4, available_spaces = $5, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		l.ID(), l.Name().Value(), l.HourlyRate().Value().String(),
		l.TotalCapacity(), l.AvailableSpaces(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update parking lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM parking_lots WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("lot still has car entries", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete parking lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) scanLot(row pgx.Row) (*lot.ParkingLot, error) {
	var (
		id                   uuid.UUID
		name, code, rate     string
		capacity, available  int
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &name, &code, &capacity, &available, &rate, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("parking lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan parking lot", err)
	}

	return reconstructLot(id, name, code, capacity, available, rate, createdAt, updatedAt)
}
