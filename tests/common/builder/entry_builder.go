//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"parkhub/internal/domain/entry"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/usecase/queries"
)

type EntryBuilder struct {
	PlateNumber string
	LotID       uuid.UUID
	LotCode     string
	LotName     string
	EnteredAt   time.Time
	ExitedAt    *time.Time
	Charge      *string
}

func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		PlateNumber: "ABC-123",
		LotID:       uuid.New(),
		LotCode:     "DT-01",
		LotName:     "Downtown Garage",
		EnteredAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func (b *EntryBuilder) With(mutate func(*EntryBuilder)) *EntryBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EntryBuilder) BuildDomain() (*entry.CarEntry, error) {
	plate, err := entry.NewPlate(b.PlateNumber)
	if err != nil {
		return nil, err
	}
	return entry.NewCarEntry(plate, b.LotID, b.EnteredAt), nil
}

func (b *EntryBuilder) BuildView() *queries.EntryView {
	view := &queries.EntryView{
		ID:          uuid.New(),
		PlateNumber: b.PlateNumber,
		LotID:       b.LotID,
		LotCode:     b.LotCode,
		LotName:     b.LotName,
		Status:      "open",
		EnteredAt:   b.EnteredAt,
		CreatedAt:   b.EnteredAt,
		UpdatedAt:   b.EnteredAt,
	}
	if b.ExitedAt != nil {
		view.Status = "closed"
		view.ExitedAt = b.ExitedAt
		if b.Charge != nil {
			charge, _ := decimal.NewFromString(*b.Charge)
			view.ChargedAmount = &charge
		}
	}
	return view
}

func (b *EntryBuilder) BuildTicketView() *queries.TicketView {
	return &queries.TicketView{
		EntryID:     uuid.New(),
		PlateNumber: b.PlateNumber,
		LotName:     b.LotName,
		EnteredAt:   b.EnteredAt,
	}
}

func (b *EntryBuilder) BuildOpenRequestDTO() reqdto.OpenEntryRequest {
	return reqdto.OpenEntryRequest{
		PlateNumber: b.PlateNumber,
		LotCode:     b.LotCode,
	}
}

// Fluent builder methods
func (b *EntryBuilder) WithPlateNumber(plate string) *EntryBuilder {
	b.PlateNumber = plate
	return b
}

func (b *EntryBuilder) WithLotID(lotID uuid.UUID) *EntryBuilder {
	b.LotID = lotID
	return b
}

func (b *EntryBuilder) WithLotCode(code string) *EntryBuilder {
	b.LotCode = code
	return b
}

func (b *EntryBuilder) WithEnteredAt(enteredAt time.Time) *EntryBuilder {
	b.EnteredAt = enteredAt
	return b
}

func (b *EntryBuilder) AsClosed(exitedAt time.Time, charge string) *EntryBuilder {
	b.ExitedAt = &exitedAt
	b.Charge = &charge
	return b
}
