//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"parkhub/internal/domain/user"
	"parkhub/internal/handler/api"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/queries"
	"parkhub/tests/common/builder"
	"parkhub/tests/common/httptest"
	"parkhub/tests/common/testutil"
	commandsmock "parkhub/tests/mock/commands"
	queriesmock "parkhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EntryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEntryCommands
	mockQueries  *queriesmock.MockEntryQueries
	handler      *api.EntryHandler
}

func (s *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEntryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEntryQueries(s.mockCtrl)
	s.handler = api.NewEntryHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleOperator)
		c.Next()
	}

	s.router.POST("/entries", authMiddleware, s.handler.Open)
	s.router.GET("/entries", authMiddleware, s.handler.List)
	s.router.GET("/entries/entered", authMiddleware, s.handler.ListEntered)
	s.router.GET("/entries/exited", authMiddleware, s.handler.ListExited)
	s.router.POST("/entries/:id/exit", authMiddleware, s.handler.Close)
	s.router.GET("/tickets", authMiddleware, s.handler.FindTicketByPlate)
	s.router.GET("/tickets/:entryId", authMiddleware, s.handler.GetTicket)
}

func (s *EntryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEntryHandlerSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *EntryHandlerTestSuite) TestOpen() {
	url := "/entries"

	reqBody := builder.NewEntryBuilder().BuildOpenRequestDTO()
	returnView := builder.NewEntryBuilder().BuildView()

	s.Run("success: returns 201 Created with open entry", func() {
		s.mockCommands.EXPECT().OpenEntry(gomock.Any(), reqBody.PlateNumber, reqBody.LotCode).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.PlateNumber, response.PlateNumber)
		s.Equal("open", response.Status)
		s.Nil(response.ChargedAmount)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: plate_number (required)", mutate: testutil.Field("plate_number", nil)},
			{name: "missing field: lot_code (required)", mutate: testutil.Field("lot_code", nil)},
			{name: "empty plate_number", mutate: testutil.Field("plate_number", "")},
			{name: "empty lot_code", mutate: testutil.Field("lot_code", "")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid plate",
				commandsError:  errs.ErrInvalidPlate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid plate number",
			},
			{
				name:           "invalid lot code",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid lot code",
			},
			{
				name:           "lot not found",
				commandsError:  errs.ErrLotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Parking lot not found",
			},
			{
				name:           "lot full",
				commandsError:  errs.ErrLotFull,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No available spaces in lot",
			},
			{
				name:           "vehicle already parked",
				commandsError:  errs.ErrVehicleAlreadyParked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Vehicle already has an open entry",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().OpenEntry(gomock.Any(), reqBody.PlateNumber, reqBody.LotCode).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestClose
// ================================================================================

func (s *EntryHandlerTestSuite) TestClose() {
	entryID := uuid.New()
	url := "/entries/" + entryID.String() + "/exit"

	exitedAt := time.Now().UTC().Truncate(time.Second)
	returnView := builder.NewEntryBuilder().AsClosed(exitedAt, "7.50").BuildView()
	returnView.ID = entryID

	s.Run("success: returns 200 OK with charge", func() {
		s.mockCommands.EXPECT().CloseEntry(gomock.Any(), entryID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(entryID, response.ID)
		s.Equal("closed", response.Status)
		s.NotNil(response.ExitedAt)
		if s.NotNil(response.ChargedAmount) {
			s.Equal("7.50", *response.ChargedAmount)
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/entries/invalid-uuid/exit"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid entry ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "entry not found",
				commandsError:  errs.ErrEntryNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car entry not found",
			},
			{
				name:           "entry already closed",
				commandsError:  errs.ErrEntryAlreadyClosed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Car entry already closed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CloseEntry(gomock.Any(), entryID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *EntryHandlerTestSuite) TestList() {
	url := "/entries"

	views := []*queries.EntryView{
		builder.NewEntryBuilder().WithPlateNumber("AAA-111").BuildView(),
		builder.NewEntryBuilder().WithPlateNumber("BBB-222").BuildView(),
	}

	s.Run("success: returns entry list", func() {
		s.mockQueries.EXPECT().ListAllEntries(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("AAA-111", response[0].PlateNumber)
	})

	s.Run("success: returns empty list when no entries", func() {
		s.mockQueries.EXPECT().ListAllEntries(gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListAllEntries(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListEntered / TestListExited
// ================================================================================

func (s *EntryHandlerTestSuite) TestListEntered() {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	url := "/entries/entered?from=" + from.Format(time.RFC3339) + "&to=" + to.Format(time.RFC3339)

	views := []*queries.EntryView{builder.NewEntryBuilder().BuildView()}

	s.Run("success: returns entries in range", func() {
		s.mockQueries.EXPECT().ListEnteredInRange(gomock.Any(), from, to).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 Bad Request on missing range params", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/entries/entered", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time range")
	})

	s.Run("error: 400 Bad Request on malformed timestamps", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/entries/entered?from=yesterday&to=today", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time range")
	})

	s.Run("error: 400 Bad Request on inverted range", func() {
		s.mockQueries.EXPECT().ListEnteredInRange(gomock.Any(), from, to).
			Return(nil, errs.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time range")
	})

	s.Run("error: 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListEnteredInRange(gomock.Any(), from, to).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *EntryHandlerTestSuite) TestListExited() {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	url := "/entries/exited?from=" + from.Format(time.RFC3339) + "&to=" + to.Format(time.RFC3339)

	exitedAt := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	views := []*queries.EntryView{
		builder.NewEntryBuilder().AsClosed(exitedAt, "12.00").BuildView(),
	}

	s.Run("success: returns closed entries in range", func() {
		s.mockQueries.EXPECT().ListExitedInRange(gomock.Any(), from, to).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("closed", response[0].Status)
		if s.NotNil(response[0].ChargedAmount) {
			s.Equal("12.00", *response[0].ChargedAmount)
		}
	})

	s.Run("error: 400 Bad Request on inverted range", func() {
		s.mockQueries.EXPECT().ListExitedInRange(gomock.Any(), from, to).
			Return(nil, errs.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time range")
	})
}

// ================================================================================
// TestGetTicket
// ================================================================================

func (s *EntryHandlerTestSuite) TestGetTicket() {
	entryID := uuid.New()
	url := "/tickets/" + entryID.String()

	returnView := builder.NewEntryBuilder().BuildTicketView()
	returnView.EntryID = entryID

	s.Run("success: returns 200 OK with TicketResponse", func() {
		s.mockQueries.EXPECT().GetTicket(gomock.Any(), entryID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(entryID, response.EntryID)
		s.Equal(returnView.PlateNumber, response.PlateNumber)
		s.Equal(returnView.LotName, response.LotName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid entry ID format")
	})

	s.Run("error: 404 Not Found for closed or missing entry", func() {
		s.mockQueries.EXPECT().GetTicket(gomock.Any(), entryID).
			Return(nil, errs.ErrTicketNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ticket not found")
	})
}

// ================================================================================
// TestFindTicketByPlate
// ================================================================================

func (s *EntryHandlerTestSuite) TestFindTicketByPlate() {
	returnView := builder.NewEntryBuilder().BuildTicketView()
	url := "/tickets?plate=" + returnView.PlateNumber

	s.Run("success: returns 200 OK with TicketResponse", func() {
		s.mockQueries.EXPECT().GetTicketByPlate(gomock.Any(), returnView.PlateNumber).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.PlateNumber, response.PlateNumber)
	})

	s.Run("error: 400 Bad Request when plate is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Plate required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid plate",
				queriesError:   errs.ErrInvalidPlate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid plate number",
			},
			{
				name:           "ticket not found",
				queriesError:   errs.ErrTicketNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Ticket not found",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetTicketByPlate(gomock.Any(), returnView.PlateNumber).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
