package repository

import (
	"errors"
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/config"
	model "auction-house/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AuctionDB defines the relational storage interface for the auction house
type AuctionDB interface {
	CreateUser(user *model.User) error
	GetUserByUsername(username string) (model.User, error)
	ListUsers() ([]model.User, error)
	UpdateUserCity(username, city string) (int64, error)
	CountByUsername(username string) (int64, error)

	CreateToken(token *model.Token) error
	GetToken(token string) (model.Token, error)
	DeleteExpiredTokens(now time.Time) error

	CreateAuction(auction *model.Auction) error
	GetAuctionByID(id uint) (model.Auction, error)
	ListActiveAuctions() ([]model.Auction, error)
	UpdateAuctionDescription(id uint, description string) (int64, error)
	SearchAuctionsByItemID(itemID string) ([]model.Auction, error)
	SearchAuctionsByDescription(keyword string) ([]model.Auction, error)
	GetAuctionsByOwner(ownerID uint) ([]model.Auction, error)
	GetAuctionsBidByUser(userID uint) ([]model.Auction, error)
	FinalizeAuction(id, winnerID uint, winningBid float64) error
	MarkAuctionEnded(id uint) error

	RecordBidForAuction(bid *model.Bid) error
	GetBidsByAuction(auctionID uint) ([]model.Bid, error)
	GetWinningBid(auctionID uint) (model.Bid, error)

	RecordComment(comment *model.Comment) error
	GetCommentsByAuction(auctionID uint) ([]model.Comment, error)
}

// Connect opens the configured database. The returned *gorm.DB carries its
// own connection pool and is shared by all handlers.
func Connect(cfg config.DB) (*gorm.DB, error) {
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// Migrate creates or updates the schema for all auction entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.Auction{},
		&model.Bid{},
		&model.Comment{},
	)
}

// GormRepo is the gorm-backed implementation of AuctionDB
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo creates a new repository instance over an open database handle
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// CreateUser inserts a new user row
func (r *GormRepo) CreateUser(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}
	return nil
}

// GetUserByUsername returns the user with the given username
func (r *GormRepo) GetUserByUsername(username string) (model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("get user %s: %w", username, auctionerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user %s: %w", username, err)
	}
	return user, nil
}

// ListUsers returns all registered users
func (r *GormRepo) ListUsers() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("username").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUserCity updates a user's city by username and returns the number of
// rows affected. Zero affected rows is reported, not treated as an error.
func (r *GormRepo) UpdateUserCity(username, city string) (int64, error) {
	res := r.db.Model(&model.User{}).Where("username = ?", username).Update("city", city)
	if res.Error != nil {
		return 0, fmt.Errorf("update city for user %s: %w", username, res.Error)
	}
	return res.RowsAffected, nil
}

// CountByUsername returns how many users carry the given username
func (r *GormRepo) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count username %s: %w", username, err)
	}
	return count, nil
}

// CreateToken inserts a new access token row
func (r *GormRepo) CreateToken(token *model.Token) error {
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("create token for user %d: %w", token.UserID, err)
	}
	return nil
}

// GetToken resolves a token string to its row
func (r *GormRepo) GetToken(token string) (model.Token, error) {
	var row model.Token
	if err := r.db.Where("token = ?", token).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Token{}, fmt.Errorf("get token: %w", auctionerrors.ErrInvalidToken)
		}
		return model.Token{}, fmt.Errorf("get token: %w", err)
	}
	return row, nil
}

// DeleteExpiredTokens removes all token rows that expired before now
func (r *GormRepo) DeleteExpiredTokens(now time.Time) error {
	if err := r.db.Where("expires_at < ?", now).Delete(&model.Token{}).Error; err != nil {
		return fmt.Errorf("delete expired tokens: %w", err)
	}
	return nil
}

// CreateAuction inserts a new auction row and fills in its generated id
func (r *GormRepo) CreateAuction(auction *model.Auction) error {
	if err := r.db.Create(auction).Error; err != nil {
		return fmt.Errorf("create auction for item %s: %w", auction.ItemID, err)
	}
	return nil
}

// GetAuctionByID returns the auction with the given id
func (r *GormRepo) GetAuctionByID(id uint) (model.Auction, error) {
	var auction model.Auction
	if err := r.db.First(&auction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Auction{}, fmt.Errorf("get auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
		}
		return model.Auction{}, fmt.Errorf("get auction %d: %w", id, err)
	}
	return auction, nil
}

// ListActiveAuctions returns all auctions whose ended flag is not set
func (r *GormRepo) ListActiveAuctions() ([]model.Auction, error) {
	var auctions []model.Auction
	if err := r.db.Where("ended = ?", false).Order("end_time").Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("list active auctions: %w", err)
	}
	return auctions, nil
}

// UpdateAuctionDescription updates an auction's description by id and returns
// the number of rows affected
func (r *GormRepo) UpdateAuctionDescription(id uint, description string) (int64, error) {
	res := r.db.Model(&model.Auction{}).Where("id = ?", id).Update("description", description)
	if res.Error != nil {
		return 0, fmt.Errorf("update description for auction %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// SearchAuctionsByItemID returns auctions with an exact item id match
func (r *GormRepo) SearchAuctionsByItemID(itemID string) ([]model.Auction, error) {
	var auctions []model.Auction
	if err := r.db.Where("item_id = ?", itemID).Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("search auctions by item %s: %w", itemID, err)
	}
	return auctions, nil
}

// SearchAuctionsByDescription returns auctions whose description contains the
// keyword, case-insensitively
func (r *GormRepo) SearchAuctionsByDescription(keyword string) ([]model.Auction, error) {
	var auctions []model.Auction
	pattern := "%" + keyword + "%"
	if err := r.db.Where("LOWER(description) LIKE LOWER(?)", pattern).Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("search auctions by keyword %s: %w", keyword, err)
	}
	return auctions, nil
}

// GetAuctionsByOwner returns all auctions created by a user
func (r *GormRepo) GetAuctionsByOwner(ownerID uint) ([]model.Auction, error) {
	var auctions []model.Auction
	if err := r.db.Where("owner_id = ?", ownerID).Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("get auctions for owner %d: %w", ownerID, err)
	}
	return auctions, nil
}

// GetAuctionsBidByUser returns all auctions the user has placed bids on
func (r *GormRepo) GetAuctionsBidByUser(userID uint) ([]model.Auction, error) {
	var auctions []model.Auction
	err := r.db.
		Where("id IN (?)", r.db.Model(&model.Bid{}).Select("auction_id").Where("user_id = ?", userID)).
		Find(&auctions).Error
	if err != nil {
		return nil, fmt.Errorf("get auctions bid by user %d: %w", userID, err)
	}
	return auctions, nil
}

// FinalizeAuction marks an auction ended and records the winner
func (r *GormRepo) FinalizeAuction(id, winnerID uint, winningBid float64) error {
	res := r.db.Model(&model.Auction{}).Where("id = ?", id).Updates(map[string]any{
		"ended":       true,
		"winner_id":   winnerID,
		"winning_bid": winningBid,
	})
	if res.Error != nil {
		return fmt.Errorf("finalize auction %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("finalize auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

// MarkAuctionEnded sets an auction's ended flag without recording a winner
func (r *GormRepo) MarkAuctionEnded(id uint) error {
	res := r.db.Model(&model.Auction{}).Where("id = ?", id).Update("ended", true)
	if res.Error != nil {
		return fmt.Errorf("mark auction %d ended: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("mark auction %d ended: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

// RecordBidForAuction inserts a bid row
func (r *GormRepo) RecordBidForAuction(bid *model.Bid) error {
	if err := r.db.Create(bid).Error; err != nil {
		return fmt.Errorf("record bid for auction %d: %w", bid.AuctionID, err)
	}
	return nil
}

// GetBidsByAuction returns all bids for an auction, newest last
func (r *GormRepo) GetBidsByAuction(auctionID uint) ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.Where("auction_id = ?", auctionID).Order("created_at").Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("get bids for auction %d: %w", auctionID, err)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for an auction; the earliest bid wins
// ties on amount
func (r *GormRepo) GetWinningBid(auctionID uint) (model.Bid, error) {
	var bid model.Bid
	err := r.db.Where("auction_id = ?", auctionID).
		Order("amount DESC").Order("created_at ASC").
		First(&bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Bid{}, fmt.Errorf("get winning bid for auction %d: %w", auctionID, auctionerrors.ErrNoBids)
		}
		return model.Bid{}, fmt.Errorf("get winning bid for auction %d: %w", auctionID, err)
	}
	return bid, nil
}

// RecordComment inserts a comment row linked to its auction
func (r *GormRepo) RecordComment(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("record comment for auction %d: %w", comment.AuctionID, err)
	}
	return nil
}

// GetCommentsByAuction returns all comments for an auction in posting order
func (r *GormRepo) GetCommentsByAuction(auctionID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("auction_id = ?", auctionID).Order("created_at").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("get comments for auction %d: %w", auctionID, err)
	}
	return comments, nil
}
