package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// Test CreateUserHandler
func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/users", handler.CreateUserHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success_valid_user",
			requestBody: helpers.CreateUserRequest{
				Username: "ssmith",
				Email:    "ssmith@example.com",
				Password: "secret",
				City:     "London",
			},
			mockSetup: func() {
				mockService.EXPECT().
					RegisterUser("ssmith", "ssmith@example.com", "secret", "London").
					Return(model.User{ID: 1, Username: "ssmith", Email: "ssmith@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "user created successfully",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_password",
			requestBody: helpers.CreateUserRequest{
				Username: "ssmith",
				Email:    "ssmith@example.com",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "malformed_email",
			requestBody: helpers.CreateUserRequest{
				Username: "ssmith",
				Email:    "not-an-email",
				Password: "secret",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "duplicate_username",
			requestBody: helpers.CreateUserRequest{
				Username: "taken",
				Email:    "taken@example.com",
				Password: "secret",
			},
			mockSetup: func() {
				mockService.EXPECT().
					RegisterUser("taken", "taken@example.com", "secret", "").
					Return(model.User{}, auctionerrors.ErrDuplicateUsername)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "username already taken",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			resp, w := performRequest(t, router, http.MethodPost, "/users", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			require.EqualValues(t, tc.expectedStatus, resp["status"], "embedded status must match HTTP status")

			if w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, 1.0, data["user_id"])
				require.Equal(t, "Inserted users ssmith", data["detail"])
			}
		})
	}
}

// Test GetUserHandler
func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/:username", handler.GetUserHandler)

	tests := []struct {
		name           string
		username       string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:     "existing_user",
			username: "ssmith",
			mockSetup: func() {
				mockService.EXPECT().GetUser("ssmith").
					Return(model.User{ID: 1, Username: "ssmith", Email: "ssmith@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "missing_user_is_structured_404",
			username: "ghost",
			mockSetup: func() {
				mockService.EXPECT().GetUser("ghost").
					Return(model.User{}, fmt.Errorf("service: %w", auctionerrors.ErrUserNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:     "database_failure",
			username: "ssmith",
			mockSetup: func() {
				mockService.EXPECT().GetUser("ssmith").
					Return(model.User{}, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			resp, w := performRequest(t, router, http.MethodGet, "/users/"+tc.username, nil)
			require.Equal(t, tc.expectedStatus, w.Code)

			if w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, "ssmith", data["username"])
				require.Equal(t, "ssmith@example.com", data["email"])
			}
		})
	}
}

// Test ListUsersHandler
func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users", handler.ListUsersHandler)

	mockService.EXPECT().ListUsers().Return([]model.User{
		{Username: "a", Email: "a@example.com", PasswordHash: "secret-hash"},
		{Username: "b", Email: "b@example.com", PasswordHash: "secret-hash"},
	}, nil)

	resp, w := performRequest(t, router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	require.Equal(t, "a", first["username"])
	require.NotContains(t, first, "password_hash", "credentials must not leak")
}

// Test UpdateUserHandler
func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/users/:username", handler.UpdateUserHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedCount  float64
	}{
		{
			name:        "city_updated",
			requestBody: helpers.UpdateUserRequest{City: "Raleigh"},
			mockSetup: func() {
				mockService.EXPECT().UpdateUserCity("ssmith", "Raleigh").Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:        "unknown_user_reports_zero_rows",
			requestBody: helpers.UpdateUserRequest{City: "Raleigh"},
			mockSetup: func() {
				mockService.EXPECT().UpdateUserCity("ssmith", "Raleigh").Return(int64(0), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "missing_city",
			requestBody:    map[string]any{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			resp, w := performRequest(t, router, http.MethodPut, "/users/ssmith", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			if w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, tc.expectedCount, data["updated"])
			}
		})
	}
}

// Test LoginHandler
func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", handler.LoginHandler)

	t.Run("valid_credentials_return_token", func(t *testing.T) {
		issued := model.Token{
			Token:     uuid.NewString(),
			UserID:    42,
			ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
		}
		mockService.EXPECT().Login("ssmith", "secret").Return(issued, nil)

		resp, w := performRequest(t, router, http.MethodPost, "/login",
			helpers.LoginRequest{Username: "ssmith", Password: "secret"})
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, issued.Token, data["token"])
		_, err := time.Parse(time.RFC3339, data["expires_at"].(string))
		require.NoError(t, err)
	})

	t.Run("bad_credentials_structured_401", func(t *testing.T) {
		mockService.EXPECT().Login("ssmith", "wrong").
			Return(model.Token{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials))

		resp, w := performRequest(t, router, http.MethodPost, "/login",
			helpers.LoginRequest{Username: "ssmith", Password: "wrong"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, resp["message"], "could not verify")
		require.NotContains(t, resp, "data", "no token on failed login")
	})

	t.Run("missing_credentials", func(t *testing.T) {
		_, w := performRequest(t, router, http.MethodPost, "/login", map[string]any{"username": "ssmith"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
