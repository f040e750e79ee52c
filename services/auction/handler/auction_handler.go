package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(ownerID uint, itemID, title, description string, minPrice float64, endTime time.Time) (model.Auction, error)
	ListActiveAuctions() ([]model.Auction, error)
	GetAuctionDetail(id uint) (model.Auction, []model.Bid, []model.Comment, error)
	UpdateAuctionDescription(id uint, description string) (int64, error)
	SearchAuctions(keyword string) ([]model.Auction, error)
	UserActivity(userID uint) ([]model.Auction, []model.Auction, error)
	PlaceBid(auctionID, userID uint, amount float64) (model.Bid, error)
	CloseAuction(id uint) (model.Auction, error)
	CancelAuction(id uint) (model.Auction, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// parseAuctionID reads the :auction_id path parameter, replying 400 on junk
func parseAuctionID(c *gin.Context) (uint, bool) {
	raw := c.Param("auction_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid auction id %q: %w", raw, err), "invalid auction id")
		return 0, false
	}
	return uint(id), true
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	ownerID := helpers.CurrentUserID(c)
	auction, err := h.service.CreateAuction(ownerID, req.ItemID, req.Title, req.Description, req.MinPrice, req.EndTime)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"item_id":  req.ItemID,
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.CreateAuctionResponse{AuctionID: auction.ID}, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.ID,
		"item_id":    auction.ItemID,
		"owner_id":   ownerID,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListActiveAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListAuctionsHandler: failed to list auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	auction, bids, comments, err := h.service.GetAuctionDetail(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: failed to get auction", map[string]any{"auction_id": id, "error": err.Error()})
		return
	}

	amounts := make([]float64, 0, len(bids))
	for _, b := range bids {
		amounts = append(amounts, b.Amount)
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	resp := helpers.AuctionDetailResponse{Auction: auction, Bids: amounts, Comments: comments}
	utils.JSONResponse(c, http.StatusOK, resp, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": id,
		"bid_count":  len(amounts),
	})
}

// EditAuctionHandler handles PUT /auctions/:auction_id
func (h *AuctionHandler) EditAuctionHandler(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	var req helpers.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EditAuctionHandler", err)
		return
	}

	count, err := h.service.UpdateAuctionDescription(id, req.Description)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("EditAuctionHandler: failed to update auction", map[string]any{"auction_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.UpdateCountResponse{Updated: count}, "auction updated successfully")
	helpers.LogSuccess("EditAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id": id,
		"updated":    count,
	})
}

// SearchAuctionsHandler handles GET /items/:keyword
func (h *AuctionHandler) SearchAuctionsHandler(c *gin.Context) {
	keyword := c.Param("keyword")
	auctions, err := h.service.SearchAuctions(keyword)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SearchAuctionsHandler: search failed", map[string]any{"keyword": keyword, "error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("SearchAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"keyword": keyword,
		"count":   len(auctions),
	})
}

// UserActivityHandler handles GET /user/activity
func (h *AuctionHandler) UserActivityHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)
	created, bidOn, err := h.service.UserActivity(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UserActivityHandler: failed to get activity", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if created == nil {
		created = []model.Auction{}
	}
	if bidOn == nil {
		bidOn = []model.Auction{}
	}

	resp := helpers.ActivityResponse{Created: created, BidOn: bidOn}
	utils.JSONResponse(c, http.StatusOK, resp, "activity retrieved successfully")
	helpers.LogSuccess("UserActivityHandler", "activity retrieved successfully", map[string]any{
		"user_id":       userID,
		"created_count": len(created),
		"bid_on_count":  len(bidOn),
	})
}

// PlaceBidHandler handles GET /dbproj/bid/:auction_id/:bid_amount
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	rawAmount := c.Param("bid_amount")
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid bid amount %q: %w", rawAmount, err), "invalid bid amount")
		return
	}

	userID := helpers.CurrentUserID(c)
	bid, err := h.service.PlaceBid(id, userID, amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": id,
			"user_id":    userID,
			"amount":     amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionID,
		"user_id":    userID,
		"amount":     bid.Amount,
	})
}

// CloseAuctionHandler handles POST /auctions/:auction_id/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	auction, err := h.service.CloseAuction(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseAuctionHandler: failed to close auction", map[string]any{"auction_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction closed successfully")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{
		"auction_id":  auction.ID,
		"winner_id":   auction.WinnerID,
		"winning_bid": auction.WinningBid,
	})
}

// CancelAuctionHandler handles POST /auctions/:auction_id/cancel
func (h *AuctionHandler) CancelAuctionHandler(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	auction, err := h.service.CancelAuction(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelAuctionHandler: failed to cancel auction", map[string]any{"auction_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{
		"auction_id": auction.ID,
	})
}
