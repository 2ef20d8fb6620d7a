package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type LotView struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	TotalCapacity   int32           `json:"total_capacity"`
	AvailableSpaces int32           `json:"available_spaces"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type EntryView struct {
	ID            uuid.UUID        `json:"id"`
	PlateNumber   string           `json:"plate_number"`
	LotID         uuid.UUID        `json:"lot_id"`
	LotCode       string           `json:"lot_code"`
	LotName       string           `json:"lot_name"`
	Status        string           `json:"status"`
	EnteredAt     time.Time        `json:"entered_at"`
	ExitedAt      *time.Time       `json:"exited_at,omitempty"`
	ChargedAmount *decimal.Decimal `json:"charged_amount,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// TicketView identifies a currently parked vehicle; it exists only while
// the underlying entry is open.
type TicketView struct {
	EntryID     uuid.UUID `json:"entry_id"`
	PlateNumber string    `json:"plate_number"`
	LotName     string    `json:"lot_name"`
	EnteredAt   time.Time `json:"entered_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
