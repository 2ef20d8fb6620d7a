package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"parkhub/internal/infra"
	"parkhub/internal/usecase/queries"
)

type EntryReadStore struct {
	pool *pgxpool.Pool
}

func NewEntryReadStore(pool *pgxpool.Pool) queries.EntryReadStore {
	return &EntryReadStore{pool: pool}
}

const entryViewColumns = `
	e.id,
	e.plate_number,
	e.lot_id,
	l.code,
	l.name,
	e.entered_at,
	e.exited_at,
	e.charged_amount::text,
	e.created_at,
	e.updated_at
`

func (s *EntryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EntryView, error) {
	query := `
		SELECT ` + entryViewColumns + `
		FROM car_entries e
		JOIN parking_lots l ON l.id = e.lot_id
		WHERE e.id = $1`

	view, err := scanEntryView(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *EntryReadStore) FindAll(ctx context.Context) ([]*queries.EntryView, error) {
	query := `
		SELECT ` + entryViewColumns + `
		FROM car_entries e
		JOIN parking_lots l ON l.id = e.lot_id
		ORDER BY e.entered_at DESC, e.id DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list car entries", err)
	}
	defer rows.Close()

	return collectEntryViews(rows)
}

func (s *EntryReadStore) FindEnteredBetween(ctx context.Context, from, to time.Time) ([]*queries.EntryView, error) {
	query := `
		SELECT ` + entryViewColumns + `
		FROM car_entries e
		JOIN parking_lots l ON l.id = e.lot_id
		WHERE e.entered_at >= $1 AND e.entered_at <= $2
		ORDER BY e.entered_at DESC, e.id DESC`

	rows, err := s.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list entries by entry time", err)
	}
	defer rows.Close()

	return collectEntryViews(rows)
}

func (s *EntryReadStore) FindExitedBetween(ctx context.Context, from, to time.Time) ([]*queries.EntryView, error) {
	query := `
		SELECT ` + entryViewColumns + `
		FROM car_entries e
		JOIN parking_lots l ON l.id = e.lot_id
		WHERE e.exited_at IS NOT NULL AND e.exited_at >= $1 AND e.exited_at <= $2
		ORDER BY e.exited_at DESC, e.id DESC`

	rows, err := s.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list entries by exit time", err)
	}
	defer rows.Close()

	return collectEntryViews(rows)
}

func (s *EntryReadStore) FindTicketByEntryID(ctx context.Context, entryID uuid.UUID) (*queries.TicketView, error) {
	query := `
		SELECT e.id, e.plate_number, l.name, e.entered_at
		FROM car_entries e
		JOIN parking_lots l ON l.id = e.lot_id
		WHERE e.id = $1 AND e.exited_at IS NULL`

	return scanTicketView(s.pool.QueryRow(ctx, query, entryID))
}

func (s *EntryReadStore) FindTicketByPlate(ctx context.Context, plate string) (*queries.TicketView, error) {
	query := `
		SELECT e.id, e.plate_number, l.name, e.entered_at
		FROM car_entries e
		JOIN parking_lots l ON l.id = e.lot_id
		WHERE e.plate_number = $1 AND e.exited_at IS NULL`

	return scanTicketView(s.pool.QueryRow(ctx, query, plate))
}

func scanEntryView(row pgx.Row) (*queries.EntryView, error) {
	var (
		view      queries.EntryView
		exitedAt  *time.Time
		chargeStr *string
	)
	err := row.Scan(
		&view.ID,
		&view.PlateNumber,
		&view.LotID,
		&view.LotCode,
		&view.LotName,
		&view.EnteredAt,
		&exitedAt,
		&chargeStr,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("car entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan car entry", err)
	}
	view.ExitedAt = exitedAt
	if chargeStr != nil {
		charge, err := decimal.NewFromString(*chargeStr)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt charged amount", err)
		}
		view.ChargedAmount = &charge
	}
	view.Status = entryStatus(exitedAt)
	return &view, nil
}

func collectEntryViews(rows pgx.Rows) ([]*queries.EntryView, error) {
	views := make([]*queries.EntryView, 0)
	for rows.Next() {
		view, err := scanEntryView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate car entries", err)
	}
	return views, nil
}

func scanTicketView(row pgx.Row) (*queries.TicketView, error) {
	var view queries.TicketView
	err := row.Scan(&view.EntryID, &view.PlateNumber, &view.LotName, &view.EnteredAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan ticket", err)
	}
	return &view, nil
}

func entryStatus(exitedAt *time.Time) string {
	if exitedAt == nil {
		return "open"
	}
	return "closed"
}
