package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/httperr"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
)

type LotHandler struct {
	cmds commands.LotCommands
	q    queries.LotQueries
}

func NewLotHandler(cmds commands.LotCommands, q queries.LotQueries) *LotHandler {
	return &LotHandler{cmds: cmds, q: q}
}

// @Summary List parking lots
// @Description List all parking lots with live availability
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LotResponse
// @Failure 401 {object} map[string]string
// @Router /lots [get]
func (h *LotHandler) List(c *gin.Context) {
	views, err := h.q.ListLots(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLotViews(views))
}

// @Summary Get parking lot
// @Description Get a parking lot by ID
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lots/{id} [get]
func (h *LotHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot ID format", nil)
		return
	}

	view, err := h.q.GetLot(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrLotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Parking lot not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLotView(view))
}

// @Summary Create parking lot
// @Description Create a new parking lot (admin only)
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLotRequest true "Create lot request"
// @Success 201 {object} resdto.LotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lots [post]
func (h *LotHandler) Create(c *gin.Context) {
	var req reqdto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rate, err := decimal.NewFromString(req.HourlyRate)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hourly rate", nil)
		return
	}

	view, err := h.cmds.CreateLot(c.Request.Context(), commands.CreateLotInput{
		Name:          req.Name,
		Code:          req.Code,
		TotalCapacity: req.TotalCapacity,
		HourlyRate:    rate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateLotCode):
			httperr.AbortWithError(c, http.StatusConflict, err, "Lot code already exists", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLotView(view))
}

// @Summary Update parking lot
// @Description Update lot name, capacity and hourly rate (admin only)
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.UpdateLotRequest true "Update lot request"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lots/{id} [put]
func (h *LotHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot ID format", nil)
		return
	}

	var req reqdto.UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rate, err := decimal.NewFromString(req.HourlyRate)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hourly rate", nil)
		return
	}

	view, err := h.cmds.UpdateLot(c.Request.Context(), id, commands.UpdateLotInput{
		Name:          req.Name,
		TotalCapacity: req.TotalCapacity,
		HourlyRate:    rate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrLotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Parking lot not found", nil)
		case errors.Is(err, errs.ErrCapacityBelowOccupancy):
			httperr.AbortWithError(c, http.StatusConflict, err, "Capacity below current occupancy", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLotView(view))
}

// @Summary Delete parking lot
// @Description Delete a parking lot (admin only)
// @Tags lots
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lots/{id} [delete]
func (h *LotHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot ID format", nil)
		return
	}

	if err := h.cmds.DeleteLot(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrLotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Parking lot not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusConflict, err, "Lot has car entries and cannot be deleted", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
