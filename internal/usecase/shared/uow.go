package shared

import (
	"context"

	"parkhub/internal/domain/entry"
	"parkhub/internal/domain/lot"
	"parkhub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Lots() LotRepository
	Entries() EntryRepository
	Users() UserRepository
	DB() db.DBTX
}

type LotRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *lot.ParkingLot) (uuid.UUID, error)
	// FindByCodeForUpdate row-locks the lot so concurrent reservations on the
	// same lot serialize; the lock is held until the transaction ends.
	FindByCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*lot.ParkingLot, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*lot.ParkingLot, error)
	// UpdateSpaces persists only the occupancy counter and updated_at.
	UpdateSpaces(ctx context.Context, tx db.DBTX, l *lot.ParkingLot) error
	// Update persists administrative fields (name, rate, capacity) plus the
	// capacity-shifted availability computed by the entity.
	Update(ctx context.Context, tx db.DBTX, l *lot.ParkingLot) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type EntryRepository interface {
	Create(ctx context.Context, tx db.DBTX, e *entry.CarEntry) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*entry.CarEntry, error)
	HasOpenEntry(ctx context.Context, tx db.DBTX, plate entry.Plate) (bool, error)
	// Close persists the exit timestamp and charge; guarded by
	// `WHERE exited_at IS NULL` so a replayed exit affects zero rows.
	Close(ctx context.Context, tx db.DBTX, e *entry.CarEntry) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
