package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestRouter initializes the full stack over a fresh in-memory database
// for integration testing.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	repo := repository.NewGormRepo(db)
	service := auction.NewAuctionService(repo, 24*time.Hour)
	return server.SetupRouter(service)
}

// ExecuteRequest executes an HTTP request with an optional access token and
// parses the response envelope.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("access-token", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// RegisterUser creates a user through the API
func RegisterUser(t *testing.T, router *gin.Engine, username, password string) {
	t.Helper()

	_, w := ExecuteRequest(t, router, "POST", "/users", "", helpers.CreateUserRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
	})
	require.Equal(t, 201, w.Code)
}

// LoginUser logs a user in and returns their access token
func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	resp, w := ExecuteRequest(t, router, "POST", "/login", "", helpers.LoginRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, 200, w.Code)

	data := resp["data"].(map[string]any)
	token := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// CreateAuction creates an auction through the API and returns its id
func CreateAuction(t *testing.T, router *gin.Engine, token string, minPrice float64, endTime time.Time) uint {
	t.Helper()

	resp, w := ExecuteRequest(t, router, "POST", "/auctions", token, helpers.CreateAuctionRequest{
		ItemID:      "101",
		MinPrice:    minPrice,
		Title:       "test item",
		Description: "integration test item",
		EndTime:     endTime,
	})
	require.Equal(t, 201, w.Code)

	data := resp["data"].(map[string]any)
	return uint(data["auction_id"].(float64))
}
