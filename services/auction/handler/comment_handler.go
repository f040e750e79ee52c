package handler

import (
	"fmt"
	"net/http"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type CommentServiceInterface interface {
	AddComment(auctionID, userID uint, content string) (model.Comment, error)
}

type CommentHandler struct {
	service CommentServiceInterface
}

func NewCommentHandler(service CommentServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// AddCommentHandler handles POST /comments
func (h *CommentHandler) AddCommentHandler(c *gin.Context) {
	var req helpers.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddCommentHandler", err)
		return
	}

	userID := helpers.CurrentUserID(c)
	comment, err := h.service.AddComment(req.AuctionID, userID, req.Content)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AddCommentHandler: failed to add comment", map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, comment, "comment added successfully")
	helpers.LogSuccess("AddCommentHandler", "comment added successfully", map[string]any{
		"comment_id": comment.ID,
		"auction_id": comment.AuctionID,
		"user_id":    userID,
	})
}
