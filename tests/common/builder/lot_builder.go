//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"parkhub/internal/domain/lot"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/usecase/queries"
)

type LotBuilder struct {
	Name            string
	Code            string
	TotalCapacity   int
	AvailableSpaces int
	HourlyRate      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewLotBuilder() *LotBuilder {
	now := time.Now()
	return &LotBuilder{
		Name:            "Downtown Garage",
		Code:            "DT-01",
		TotalCapacity:   50,
		AvailableSpaces: 50,
		HourlyRate:      "2.50",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *LotBuilder) BuildDomain() (*lot.ParkingLot, error) {
	name, err := lot.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	code, err := lot.NewCode(b.Code)
	if err != nil {
		return nil, err
	}
	rateDec, err := decimal.NewFromString(b.HourlyRate)
	if err != nil {
		return nil, err
	}
	rate, err := lot.NewHourlyRate(rateDec)
	if err != nil {
		return nil, err
	}
	return lot.NewParkingLot(name, code, b.TotalCapacity, rate)
}

func (b *LotBuilder) BuildView() *queries.LotView {
	rate, _ := decimal.NewFromString(b.HourlyRate)
	return &queries.LotView{
		ID:              uuid.New(),
		Name:            b.Name,
		Code:            b.Code,
		TotalCapacity:   int32(b.TotalCapacity),
		AvailableSpaces: int32(b.AvailableSpaces),
		HourlyRate:      rate,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *LotBuilder) BuildCreateRequestDTO() reqdto.CreateLotRequest {
	return reqdto.CreateLotRequest{
		Name:          b.Name,
		Code:          b.Code,
		TotalCapacity: b.TotalCapacity,
		HourlyRate:    b.HourlyRate,
	}
}

func (b *LotBuilder) BuildUpdateRequestDTO() reqdto.UpdateLotRequest {
	return reqdto.UpdateLotRequest{
		Name:          b.Name,
		TotalCapacity: b.TotalCapacity,
		HourlyRate:    b.HourlyRate,
	}
}

// Fluent builder methods
func (b *LotBuilder) WithName(name string) *LotBuilder {
	b.Name = name
	return b
}

func (b *LotBuilder) WithCode(code string) *LotBuilder {
	b.Code = code
	return b
}

func (b *LotBuilder) WithTotalCapacity(capacity int) *LotBuilder {
	b.TotalCapacity = capacity
	return b
}

func (b *LotBuilder) WithAvailableSpaces(available int) *LotBuilder {
	b.AvailableSpaces = available
	return b
}

func (b *LotBuilder) WithHourlyRate(rate string) *LotBuilder {
	b.HourlyRate = rate
	return b
}

func (b *LotBuilder) AsFull() *LotBuilder {
	b.AvailableSpaces = 0
	return b
}

func (b *LotBuilder) AsSingleSpace() *LotBuilder {
	b.TotalCapacity = 1
	b.AvailableSpaces = 1
	return b
}
