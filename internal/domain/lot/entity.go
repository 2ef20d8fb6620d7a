package lot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeCapacity       = errors.New("capacity cannot be negative")
	ErrNoSpaceAvailable       = errors.New("no available spaces")
	ErrCapacityBelowOccupancy = errors.New("capacity cannot drop below current occupancy")
)

// ParkingLot keeps the available-space counter between 0 and totalCapacity.
// availableSpaces is mutated only through Reserve/Release; administrative
// edits go through Rename/ChangeRate/Resize and never touch occupancy.
type ParkingLot struct {
	id              uuid.UUID
	name            Name
	code            Code
	totalCapacity   int
	availableSpaces int
	hourlyRate      HourlyRate
	createdAt       time.Time
	updatedAt       time.Time
}

func NewParkingLot(name Name, code Code, totalCapacity int, hourlyRate HourlyRate) (*ParkingLot, error) {
	if totalCapacity < 0 {
		return nil, ErrNegativeCapacity
	}

	return &ParkingLot{
		id:              uuid.New(),
		name:            name,
		code:            code,
		totalCapacity:   totalCapacity,
		availableSpaces: totalCapacity,
		hourlyRate:      hourlyRate,
	}, nil
}

func ReconstructParkingLot(
	id uuid.UUID,
	name Name,
	code Code,
	totalCapacity, availableSpaces int,
	hourlyRate HourlyRate,
	createdAt, updatedAt time.Time,
) *ParkingLot {
	return &ParkingLot{
		id:              id,
		name:            name,
		code:            code,
		totalCapacity:   totalCapacity,
		availableSpaces: availableSpaces,
		hourlyRate:      hourlyRate,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Reserve takes one space for an entering vehicle.
func (l *ParkingLot) Reserve() error {
	if l.availableSpaces <= 0 {
		return ErrNoSpaceAvailable
	}
	l.availableSpaces--
	return nil
}

// Release returns one space, clamped at totalCapacity so a duplicate
// release can never push availability past capacity.
func (l *ParkingLot) Release() {
	if l.availableSpaces < l.totalCapacity {
		l.availableSpaces++
	}
}

func (l *ParkingLot) Rename(name Name) {
	l.name = name
}

func (l *ParkingLot) ChangeRate(rate HourlyRate) {
	l.hourlyRate = rate
}

// Resize changes totalCapacity without resetting live occupancy: the
// available counter shifts by the capacity delta and a shrink below the
// number of currently parked vehicles is rejected.
func (l *ParkingLot) Resize(totalCapacity int) error {
	if totalCapacity < 0 {
		return ErrNegativeCapacity
	}
	occupied := l.Occupied()
	if totalCapacity < occupied {
		return ErrCapacityBelowOccupancy
	}
	l.totalCapacity = totalCapacity
	l.availableSpaces = totalCapacity - occupied
	return nil
}

func (l *ParkingLot) IsFull() bool {
	return l.availableSpaces <= 0
}

func (l *ParkingLot) Occupied() int {
	return l.totalCapacity - l.availableSpaces
}

func (l *ParkingLot) ID() uuid.UUID          { return l.id }
func (l *ParkingLot) Name() Name             { return l.name }
func (l *ParkingLot) Code() Code             { return l.code }
func (l *ParkingLot) TotalCapacity() int     { return l.totalCapacity }
func (l *ParkingLot) AvailableSpaces() int   { return l.availableSpaces }
func (l *ParkingLot) HourlyRate() HourlyRate { return l.hourlyRate }
func (l *ParkingLot) CreatedAt() time.Time   { return l.createdAt }
func (l *ParkingLot) UpdatedAt() time.Time   { return l.updatedAt }
