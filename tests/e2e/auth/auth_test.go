//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"parkhub/internal/handler/dto/request"
	"parkhub/internal/handler/dto/response"
	"parkhub/tests/common/dbtest"
	"parkhub/tests/common/httptest"
	"parkhub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// An inactive account for the login table
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "operator")
	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid credentials",
			email:          "operator@example.com",
			password:       dbtest.SeedUserPassword,
			expectedStatus: http.StatusOK,
			description:    "seeded operator should log in",
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       dbtest.SeedUserPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "unknown accounts are rejected",
		},
		{
			name:           "wrong password",
			email:          "operator@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "bad password is rejected",
		},
		{
			name:           "inactive account",
			email:          "inactive@example.com",
			password:       dbtest.SeedUserPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "deactivated accounts cannot log in",
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.SeedUserPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "empty email fails validation",
		},
		{
			name:           "empty password",
			email:          "operator@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "empty password fails validation",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &res)
				require.NoError(t, err)
				require.NotEmpty(t, res.AccessToken)
				require.NotNil(t, res.User)
				require.Equal(t, tt.email, res.User.Email)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie)
				refreshCookie := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(t, refreshCookie)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: returns the logged-in user", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.com", Password: dbtest.SeedUserPassword}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		accessCookie := httptest.ExtractCookie(lw, "access_token")
		require.NotNil(t, accessCookie)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, accessCookie.Value)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me map[string]any
		err := httptest.DecodeResponseBody(t, w.Body, &me)
		require.NoError(t, err)
		require.Equal(t, "admin@example.com", me["email"])
		require.Equal(t, "admin", me["role"])
	})

	s.Run("Auth test - Unauthorized without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Auth test - Unauthorized with a garbage token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("Normal case: refresh token yields a new access token", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "operator@example.com", Password: dbtest.SeedUserPassword}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		refreshCookie := httptest.ExtractCookie(lw, "refresh_token")
		require.NotNil(t, refreshCookie)

		body := map[string]any{"refresh_token": refreshCookie.Value}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, body, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.RefreshResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.NotEmpty(t, res.AccessToken)

		// The fresh access token works against a protected route
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, res.AccessToken)
		require.Equal(t, http.StatusOK, mw.Code)
	})

	s.Run("Error case: access token is not accepted as a refresh token", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "operator@example.com", Password: dbtest.SeedUserPassword}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		accessCookie := httptest.ExtractCookie(lw, "access_token")
		require.NotNil(t, accessCookie)

		body := map[string]any{"refresh_token": accessCookie.Value}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, body, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: missing token returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("Normal case: logout clears the token cookies", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "operator@example.com", Password: dbtest.SeedUserPassword}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		cookies := httptest.ExtractCookies(lw)
		accessCookie := httptest.ExtractCookie(lw, "access_token")
		require.NotNil(t, accessCookie)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, cookies, accessCookie.Value)
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value, "Access token cookie should be cleared")
	})
}
