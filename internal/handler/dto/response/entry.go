package response

import (
	"time"

	"github.com/google/uuid"

	"parkhub/internal/usecase/queries"
)

type EntryResponse struct {
	ID            uuid.UUID  `json:"id"`
	PlateNumber   string     `json:"plate_number"`
	LotID         uuid.UUID  `json:"lot_id"`
	LotCode       string     `json:"lot_code"`
	LotName       string     `json:"lot_name"`
	Status        string     `json:"status"`
	EnteredAt     time.Time  `json:"entered_at"`
	ExitedAt      *time.Time `json:"exited_at,omitempty"`
	ChargedAmount *string    `json:"charged_amount,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromEntryView(v *queries.EntryView) *EntryResponse {
	resp := &EntryResponse{
		ID:          v.ID,
		PlateNumber: v.PlateNumber,
		LotID:       v.LotID,
		LotCode:     v.LotCode,
		LotName:     v.LotName,
		Status:      v.Status,
		EnteredAt:   v.EnteredAt,
		ExitedAt:    v.ExitedAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if v.ChargedAmount != nil {
		amount := v.ChargedAmount.StringFixed(2)
		resp.ChargedAmount = &amount
	}
	return resp
}

func FromEntryViews(views []*queries.EntryView) []*EntryResponse {
	resp := make([]*EntryResponse, len(views))
	for i, v := range views {
		resp[i] = FromEntryView(v)
	}
	return resp
}

type TicketResponse struct {
	EntryID     uuid.UUID `json:"entry_id"`
	PlateNumber string    `json:"plate_number"`
	LotName     string    `json:"lot_name"`
	EnteredAt   time.Time `json:"entered_at"`
}

func FromTicketView(v *queries.TicketView) *TicketResponse {
	return &TicketResponse{
		EntryID:     v.EntryID,
		PlateNumber: v.PlateNumber,
		LotName:     v.LotName,
		EnteredAt:   v.EnteredAt,
	}
}
