package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"parkhub/internal/infra"
	"parkhub/internal/usecase/queries"
)

type LotReadStore struct {
	pool *pgxpool.Pool
}

func NewLotReadStore(pool *pgxpool.Pool) queries.LotReadStore {
	return &LotReadStore{pool: pool}
}

const lotViewColumns = `
	id,
	name,
	code,
	total_capacity,
	available_spaces,
	hourly_rate::text,
	created_at,
	updated_at
`

func (s *LotReadStore) FindAll(ctx context.Context) ([]*queries.LotView, error) {
	query := `
		SELECT ` + lotViewColumns + `
		FROM parking_lots
		ORDER BY code`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking lots", err)
	}
	defer rows.Close()

	views := make([]*queries.LotView, 0)
	for rows.Next() {
		view, err := scanLotView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate parking lots", err)
	}
	return views, nil
}

func (s *LotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LotView, error) {
	query := `
		SELECT ` + lotViewColumns + `
		FROM parking_lots
		WHERE id = $1`

	return scanLotView(s.pool.QueryRow(ctx, query, id))
}

func scanLotView(row pgx.Row) (*queries.LotView, error) {
	var (
		view    queries.LotView
		rateStr string
	)
	err := row.Scan(
		&view.ID,
		&view.Name,
		&view.Code,
		&view.TotalCapacity,
		&view.AvailableSpaces,
		&rateStr,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("parking lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan parking lot", err)
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt hourly rate", err)
	}
	view.HourlyRate = rate
	return &view, nil
}
