package models

import "time"

// User represents a registered participant in the auction house
type User struct {
	ID           uint      `gorm:"primaryKey" json:"user_id"`
	Username     string    `gorm:"uniqueIndex;size:191;not null" json:"username"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	City         string    `gorm:"size:128" json:"city,omitempty"`
	CreatedAt    time.Time `json:"-"`
}

// Token is an opaque access token issued at login, swept lazily after expiry
type Token struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Token     string    `gorm:"uniqueIndex;size:191;not null" json:"token"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"-"`
}

// Auction represents an item listed for bidding.
// Ended covers both outcomes: closed with a winner and cancelled; only a
// close records WinnerID and WinningBid.
type Auction struct {
	ID          uint      `gorm:"primaryKey" json:"auction_id"`
	ItemID      string    `gorm:"index;size:64;not null" json:"item_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:1024" json:"item_desc"`
	MinPrice    float64   `gorm:"not null" json:"min_price"`
	EndTime     time.Time `gorm:"not null" json:"end_date_time"`
	OwnerID     uint      `gorm:"index;not null" json:"owner_id"`
	Ended       bool      `gorm:"not null;default:false" json:"ended"`
	WinnerID    *uint     `json:"winner_id,omitempty"`
	WinningBid  *float64  `json:"winning_bid,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

// Bid represents a user's bid on an auction
type Bid struct {
	ID        uint      `gorm:"primaryKey" json:"bid_id"`
	AuctionID uint      `gorm:"index;not null" json:"auction_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a message left on an auction's discussion board
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"comment_id"`
	AuctionID uint      `gorm:"index;not null" json:"auction_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Content   string    `gorm:"size:1024;not null" json:"comm_content"`
	CreatedAt time.Time `json:"created_at"`
}
