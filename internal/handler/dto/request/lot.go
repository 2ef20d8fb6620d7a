package request

type CreateLotRequest struct {
	Name          string `json:"name" binding:"required"`
	Code          string `json:"code" binding:"required"`
	TotalCapacity int    `json:"total_capacity" binding:"min=0"`
	HourlyRate    string `json:"hourly_rate" binding:"required"`
}

type UpdateLotRequest struct {
	Name          string `json:"name" binding:"required"`
	TotalCapacity int    `json:"total_capacity" binding:"min=0"`
	HourlyRate    string `json:"hourly_rate" binding:"required"`
}
