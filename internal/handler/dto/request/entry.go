package request

type OpenEntryRequest struct {
	PlateNumber string `json:"plate_number" binding:"required"`
	LotCode     string `json:"lot_code" binding:"required"`
}
