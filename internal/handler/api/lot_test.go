//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

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

type LotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLotCommands
	mockQueries  *queriesmock.MockLotQueries
	handler      *api.LotHandler
}

func (s *LotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLotQueries(s.mockCtrl)
	s.handler = api.NewLotHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/lots", authMiddleware, s.handler.List)
	s.router.GET("/lots/:id", authMiddleware, s.handler.Get)
	s.router.POST("/lots", authMiddleware, s.handler.Create)
	s.router.PUT("/lots/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/lots/:id", authMiddleware, s.handler.Delete)
}

func (s *LotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLotHandlerSuite(t *testing.T) {
	suite.Run(t, new(LotHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *LotHandlerTestSuite) TestList() {
	url := "/lots"

	views := []*queries.LotView{
		builder.NewLotBuilder().WithCode("DT-01").BuildView(),
		builder.NewLotBuilder().WithCode("DT-02").WithName("Riverside Lot").BuildView(),
	}

	s.Run("success: returns lot list ordered by code", func() {
		s.mockQueries.EXPECT().ListLots(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.LotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("DT-01", response[0].Code)
		s.Equal("2.50", response[0].HourlyRate)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListLots(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *LotHandlerTestSuite) TestGet() {
	lotID := uuid.New()
	url := "/lots/" + lotID.String()

	returnView := builder.NewLotBuilder().BuildView()
	returnView.ID = lotID

	s.Run("success: returns 200 OK with LotResponse", func() {
		s.mockQueries.EXPECT().GetLot(gomock.Any(), lotID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.LotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(lotID, response.ID)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.TotalCapacity, response.TotalCapacity)
		s.Equal(returnView.AvailableSpaces, response.AvailableSpaces)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lot ID format")
	})

	s.Run("error: 404 Not Found for missing lot", func() {
		s.mockQueries.EXPECT().GetLot(gomock.Any(), lotID).
			Return(nil, errs.ErrLotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Parking lot not found")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *LotHandlerTestSuite) TestCreate() {
	url := "/lots"

	reqBody := builder.NewLotBuilder().BuildCreateRequestDTO()
	returnView := builder.NewLotBuilder().BuildView()

	s.Run("success: returns 201 Created with LotResponse", func() {
		s.mockCommands.EXPECT().CreateLot(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.LotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.Code, response.Code)
		s.Equal(returnView.TotalCapacity, response.AvailableSpaces)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: code (required)", mutate: testutil.Field("code", nil)},
			{name: "missing field: hourly_rate (required)", mutate: testutil.Field("hourly_rate", nil)},
			{name: "negative total_capacity", mutate: testutil.Field("total_capacity", -1)},
			{name: "non-numeric hourly_rate", mutate: testutil.Field("hourly_rate", "abc")},
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
				name:           "duplicate lot code",
				commandsError:  errs.ErrDuplicateLotCode,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Lot code already exists",
			},
			{
				name:           "domain validation failed",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
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
				s.mockCommands.EXPECT().CreateLot(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *LotHandlerTestSuite) TestUpdate() {
	lotID := uuid.New()
	url := "/lots/" + lotID.String()

	reqBody := builder.NewLotBuilder().BuildUpdateRequestDTO()
	returnView := builder.NewLotBuilder().BuildView()
	returnView.ID = lotID

	s.Run("success: returns 200 OK with updated lot", func() {
		s.mockCommands.EXPECT().UpdateLot(gomock.Any(), lotID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.LotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(lotID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/lots/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lot ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
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
				name:           "lot not found",
				commandsError:  errs.ErrLotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Parking lot not found",
			},
			{
				name:           "capacity below occupancy",
				commandsError:  errs.ErrCapacityBelowOccupancy,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Capacity below current occupancy",
			},
			{
				name:           "domain validation failed",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
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
				s.mockCommands.EXPECT().UpdateLot(gomock.Any(), lotID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *LotHandlerTestSuite) TestDelete() {
	lotID := uuid.New()
	url := "/lots/" + lotID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteLot(gomock.Any(), lotID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/lots/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lot ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
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
				name:           "lot not found",
				commandsError:  errs.ErrLotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Parking lot not found",
			},
			{
				name:           "lot has entries",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Lot has car entries and cannot be deleted",
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
				s.mockCommands.EXPECT().DeleteLot(gomock.Any(), lotID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
