package entry

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyClosed  = errors.New("entry is already closed")
	ErrNegativeCharge = errors.New("charge cannot be negative")
)

// CarEntry is the ledger record for one parked vehicle. The record opens
// when the vehicle enters and transitions exactly once to closed; exitedAt
// and charge are set together in Close so a closed entry can never exist
// with only one of the pair.
type CarEntry struct {
	id        uuid.UUID
	plate     Plate
	lotID     uuid.UUID
	enteredAt time.Time
	exitedAt  *time.Time
	charge    *decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

func NewCarEntry(plate Plate, lotID uuid.UUID, enteredAt time.Time) *CarEntry {
	return &CarEntry{
		id:        uuid.New(),
		plate:     plate,
		lotID:     lotID,
		enteredAt: enteredAt,
	}
}

func ReconstructCarEntry(
	id uuid.UUID,
	plate Plate,
	lotID uuid.UUID,
	enteredAt time.Time,
	exitedAt *time.Time,
	charge *decimal.Decimal,
	createdAt, updatedAt time.Time,
) *CarEntry {
	return &CarEntry{
		id:        id,
		plate:     plate,
		lotID:     lotID,
		enteredAt: enteredAt,
		exitedAt:  exitedAt,
		charge:    charge,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Close records the exit. The transition is terminal: a second call fails
// with ErrAlreadyClosed and leaves the first charge untouched.
func (e *CarEntry) Close(exitedAt time.Time, charge decimal.Decimal) error {
	if e.IsClosed() {
		return ErrAlreadyClosed
	}
	if exitedAt.Before(e.enteredAt) {
		return ErrExitBeforeEntry
	}
	if charge.IsNegative() {
		return ErrNegativeCharge
	}
	e.exitedAt = &exitedAt
	e.charge = &charge
	return nil
}

func (e *CarEntry) IsOpen() bool {
	return e.exitedAt == nil
}

func (e *CarEntry) IsClosed() bool {
	return e.exitedAt != nil
}

func (e *CarEntry) Status() Status {
	if e.IsClosed() {
		return StatusClosed
	}
	return StatusOpen
}

func (e *CarEntry) ID() uuid.UUID            { return e.id }
func (e *CarEntry) Plate() Plate             { return e.plate }
func (e *CarEntry) LotID() uuid.UUID         { return e.lotID }
func (e *CarEntry) EnteredAt() time.Time     { return e.enteredAt }
func (e *CarEntry) ExitedAt() *time.Time     { return e.exitedAt }
func (e *CarEntry) Charge() *decimal.Decimal { return e.charge }
func (e *CarEntry) CreatedAt() time.Time     { return e.createdAt }
func (e *CarEntry) UpdatedAt() time.Time     { return e.updatedAt }
