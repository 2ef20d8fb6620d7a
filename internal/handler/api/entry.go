package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/httperr"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
)

type EntryHandler struct {
	cmds commands.EntryCommands
	q    queries.EntryQueries
}

func NewEntryHandler(cmds commands.EntryCommands, q queries.EntryQueries) *EntryHandler {
	return &EntryHandler{cmds: cmds, q: q}
}

// @Summary Register vehicle entry
// @Description Admit a vehicle into a lot and open a ledger entry
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenEntryRequest true "Entry request"
// @Success 201 {object} resdto.EntryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /entries [post]
func (h *EntryHandler) Open(c *gin.Context) {
	var req reqdto.OpenEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.OpenEntry(c.Request.Context(), req.PlateNumber, req.LotCode)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPlate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plate number", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot code", nil)
		case errors.Is(err, errs.ErrLotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Parking lot not found", nil)
		case errors.Is(err, errs.ErrLotFull):
			httperr.AbortWithError(c, http.StatusConflict, err, "No available spaces in lot", nil)
		case errors.Is(err, errs.ErrVehicleAlreadyParked):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle already has an open entry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEntryView(view))
}

// @Summary Register vehicle exit
// @Description Close an open entry, compute the charge and free the space
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} resdto.EntryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /entries/{id}/exit [post]
func (h *EntryHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid entry ID format", nil)
		return
	}

	view, err := h.cmds.CloseEntry(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEntryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car entry not found", nil)
		case errors.Is(err, errs.ErrEntryAlreadyClosed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Car entry already closed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEntryView(view))
}

// @Summary List entries
// @Description List all car entries, newest first
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EntryResponse
// @Failure 401 {object} map[string]string
// @Router /entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	views, err := h.q.ListAllEntries(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntryViews(views))
}

// @Summary List entries by entry time
// @Description List entries whose entry time falls inside the given range
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (RFC3339)"
// @Param to query string true "Range end (RFC3339)"
// @Success 200 {array} resdto.EntryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /entries/entered [get]
func (h *EntryHandler) ListEntered(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
		return
	}

	views, err := h.q.ListEnteredInRange(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidDateRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntryViews(views))
}

// @Summary List entries by exit time
// @Description List closed entries whose exit time falls inside the given range
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (RFC3339)"
// @Param to query string true "Range end (RFC3339)"
// @Success 200 {array} resdto.EntryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /entries/exited [get]
func (h *EntryHandler) ListExited(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
		return
	}

	views, err := h.q.ListExitedInRange(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidDateRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntryViews(views))
}

// @Summary Get ticket
// @Description Get the ticket for an open entry by entry ID
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param entryId path string true "Entry ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets/{entryId} [get]
func (h *EntryHandler) GetTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid entry ID format", nil)
		return
	}

	view, err := h.q.GetTicket(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrTicketNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Find ticket by plate
// @Description Get the ticket for the currently parked vehicle with the given plate
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param plate query string true "Plate number"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets [get]
func (h *EntryHandler) FindTicketByPlate(c *gin.Context) {
	plate := c.Query("plate")
	if plate == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("plate query parameter required"), "Plate required", nil)
		return
	}

	view, err := h.q.GetTicketByPlate(c.Request.Context(), plate)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPlate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plate number", nil)
		case errors.Is(err, errs.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

func parseTimeRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "invalid from parameter")
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "invalid to parameter")
	}
	return from, to, nil
}
