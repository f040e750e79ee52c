package handler

import (
	"fmt"
	"net/http"
	"time"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type UserServiceInterface interface {
	ListUsers() ([]model.User, error)
	GetUser(username string) (model.User, error)
	RegisterUser(username, email, password, city string) (model.User, error)
	UpdateUserCity(username, city string) (int64, error)
	Login(username, password string) (model.Token, error)
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsersHandler handles GET /users
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListUsersHandler: failed to list users", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponses(users), "users retrieved successfully")
	helpers.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{
		"count": len(users),
	})
}

// GetUserHandler handles GET /users/:username
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	username := c.Param("username")
	user, err := h.service.GetUser(username)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserHandler: failed to get user", map[string]any{"username": username, "error": err.Error()})
		return
	}

	resp := helpers.UserResponse{Username: user.Username, Email: user.Email}
	utils.JSONResponse(c, http.StatusOK, resp, "user retrieved successfully")
	helpers.LogSuccess("GetUserHandler", "user retrieved successfully", map[string]any{
		"username": user.Username,
	})
}

// CreateUserHandler handles POST /users
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}

	user, err := h.service.RegisterUser(req.Username, req.Email, req.Password, req.City)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateUserHandler: failed to create user", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	resp := helpers.CreateUserResponse{
		UserID: user.ID,
		Detail: fmt.Sprintf("Inserted users %s", user.Username),
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "user created successfully")
	helpers.LogSuccess("CreateUserHandler", "user created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
}

// UpdateUserHandler handles PUT /users/:username
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	username := c.Param("username")

	var req helpers.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateUserHandler", err)
		return
	}

	count, err := h.service.UpdateUserCity(username, req.City)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateUserHandler: failed to update user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.UpdateCountResponse{Updated: count}, "user updated successfully")
	helpers.LogSuccess("UpdateUserHandler", "user updated successfully", map[string]any{
		"username": username,
		"updated":  count,
	})
}

// LoginHandler handles POST /login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{"username": req.Username, "error": err.Error()})
		return
	}

	resp := helpers.TokenResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.UTC().Format(time.RFC3339),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"username": req.Username,
		"user_id":  token.UserID,
	})
}
