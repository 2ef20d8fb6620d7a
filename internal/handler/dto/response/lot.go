package response

import (
	"time"

	"github.com/google/uuid"

	"parkhub/internal/usecase/queries"
)

type LotResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Code            string    `json:"code"`
	TotalCapacity   int32     `json:"total_capacity"`
	AvailableSpaces int32     `json:"available_spaces"`
	HourlyRate      string    `json:"hourly_rate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromLotView(v *queries.LotView) *LotResponse {
	return &LotResponse{
		ID:              v.ID,
		Name:            v.Name,
		Code:            v.Code,
		TotalCapacity:   v.TotalCapacity,
		AvailableSpaces: v.AvailableSpaces,
		HourlyRate:      v.HourlyRate.StringFixed(2),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromLotViews(views []*queries.LotView) []*LotResponse {
	resp := make([]*LotResponse, len(views))
	for i, v := range views {
		resp[i] = FromLotView(v)
	}
	return resp
}
