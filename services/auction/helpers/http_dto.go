package helpers

import (
	"time"

	model "auction-house/internal/models"
)

// Request DTOs
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	City     string `json:"city"`
}

type UpdateUserRequest struct {
	City string `json:"city" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateAuctionRequest struct {
	ItemID      string    `json:"item_id" binding:"required"`
	MinPrice    float64   `json:"min_price" binding:"required,gt=0"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"item_desc" binding:"required"`
	EndTime     time.Time `json:"end_date_time" binding:"required"`
}

type UpdateAuctionRequest struct {
	Description string `json:"item_desc" binding:"required"`
}

type AddCommentRequest struct {
	AuctionID uint   `json:"auction_id" binding:"required"`
	Content   string `json:"comm_content" binding:"required"`
}

// Response DTOs
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CreateUserResponse struct {
	UserID uint   `json:"user_id"`
	Detail string `json:"detail"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type UpdateCountResponse struct {
	Updated int64 `json:"updated"`
}

type CreateAuctionResponse struct {
	AuctionID uint `json:"auction_id"`
}

type AuctionDetailResponse struct {
	Auction  model.Auction   `json:"auction"`
	Bids     []float64       `json:"bids"`
	Comments []model.Comment `json:"comments"`
}

type ActivityResponse struct {
	Created []model.Auction `json:"created"`
	BidOn   []model.Auction `json:"bid_on"`
}

type BidResponse struct {
	BidID     uint    `json:"bid_id"`
	AuctionID uint    `json:"auction_id"`
	UserID    uint    `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

// NewUserResponses projects users into their public username+email shape
func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{Username: u.Username, Email: u.Email})
	}
	return out
}

// NewBidResponse converts a bid row into its wire shape
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.ID,
		AuctionID: bid.AuctionID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
