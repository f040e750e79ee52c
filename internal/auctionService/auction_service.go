package auction

import (
	"errors"
	"fmt"
	"math"
	"time"
	"unicode"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuctionService defines the business logic for the auction house
type AuctionService struct {
	repo     repository.AuctionDB
	tokenTTL time.Duration
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, tokenTTL time.Duration) *AuctionService {
	return &AuctionService{
		repo:     repo,
		tokenTTL: tokenTTL,
	}
}

// RegisterUser validates and creates a new user with a hashed password
func (s *AuctionService) RegisterUser(username, email, password, city string) (models.User, error) {
	if username == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("service: %w - missing username, email or password", auctionerrors.ErrInvalidInput)
	}

	count, err := s.repo.CountByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to check username %s: %w", username, err)
	}
	if count > 0 {
		return models.User{}, fmt.Errorf("service: %w - %s", auctionerrors.ErrDuplicateUsername, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		City:         city,
	}
	if err := s.repo.CreateUser(&user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to create user %s: %w", username, err)
	}

	return user, nil
}

// ListUsers returns all registered users
func (s *AuctionService) ListUsers() ([]models.User, error) {
	users, err := s.repo.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns the user with the given username
func (s *AuctionService) GetUser(username string) (models.User, error) {
	if username == "" {
		return models.User{}, fmt.Errorf("service: %w - empty username", auctionerrors.ErrInvalidInput)
	}
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", username, err)
	}
	return user, nil
}

// UpdateUserCity updates a user's city and returns the affected row count
func (s *AuctionService) UpdateUserCity(username, city string) (int64, error) {
	if username == "" || city == "" {
		return 0, fmt.Errorf("service: %w - missing username or city", auctionerrors.ErrInvalidInput)
	}
	count, err := s.repo.UpdateUserCity(username, city)
	if err != nil {
		return 0, fmt.Errorf("service: failed to update city for user %s: %w", username, err)
	}
	return count, nil
}

// Login verifies credentials and issues a fresh access token
func (s *AuctionService) Login(username, password string) (models.Token, error) {
	if username == "" || password == "" {
		return models.Token{}, fmt.Errorf("service: %w - missing credentials", auctionerrors.ErrInvalidCredentials)
	}

	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return models.Token{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
		}
		return models.Token{}, fmt.Errorf("service: failed to look up user %s: %w", username, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.Token{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
	}

	token := models.Token{
		Token:     utils.GenerateID(),
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(s.tokenTTL),
	}
	if err := s.repo.CreateToken(&token); err != nil {
		return models.Token{}, fmt.Errorf("service: failed to store token for user %s: %w", username, err)
	}

	return token, nil
}

// Authenticate sweeps expired tokens, then resolves a token to its user id
func (s *AuctionService) Authenticate(token string) (uint, error) {
	if token == "" {
		return 0, fmt.Errorf("service: %w - no token supplied", auctionerrors.ErrInvalidToken)
	}

	now := time.Now().UTC()
	if err := s.repo.DeleteExpiredTokens(now); err != nil {
		return 0, fmt.Errorf("service: failed to sweep expired tokens: %w", err)
	}

	row, err := s.repo.GetToken(token)
	if err != nil {
		return 0, fmt.Errorf("service: failed to resolve token: %w", err)
	}
	if !row.ExpiresAt.After(now) {
		return 0, fmt.Errorf("service: %w - token expired", auctionerrors.ErrInvalidToken)
	}

	return row.UserID, nil
}

// CreateAuction validates and creates a new auction owned by ownerID
func (s *AuctionService) CreateAuction(ownerID uint, itemID, title, description string, minPrice float64, endTime time.Time) (models.Auction, error) {
	if itemID == "" || title == "" || description == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing auction fields", auctionerrors.ErrInvalidInput)
	}
	if minPrice <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - non-positive minimum price", auctionerrors.ErrInvalidInput)
	}
	if endTime.IsZero() {
		return models.Auction{}, fmt.Errorf("service: %w - missing end time", auctionerrors.ErrInvalidInput)
	}

	auction := models.Auction{
		ItemID:      itemID,
		Title:       title,
		Description: description,
		MinPrice:    minPrice,
		EndTime:     endTime.UTC(),
		OwnerID:     ownerID,
	}
	if err := s.repo.CreateAuction(&auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction for item %s: %w", itemID, err)
	}

	return auction, nil
}

// ListActiveAuctions returns all auctions that have not ended
func (s *AuctionService) ListActiveAuctions() ([]models.Auction, error) {
	auctions, err := s.repo.ListActiveAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// GetAuctionDetail returns an auction together with its bids and comments
func (s *AuctionService) GetAuctionDetail(id uint) (models.Auction, []models.Bid, []models.Comment, error) {
	auction, err := s.repo.GetAuctionByID(id)
	if err != nil {
		return models.Auction{}, nil, nil, fmt.Errorf("service: failed to get auction %d: %w", id, err)
	}

	bids, err := s.repo.GetBidsByAuction(id)
	if err != nil {
		return models.Auction{}, nil, nil, fmt.Errorf("service: failed to get bids for auction %d: %w", id, err)
	}

	comments, err := s.repo.GetCommentsByAuction(id)
	if err != nil {
		return models.Auction{}, nil, nil, fmt.Errorf("service: failed to get comments for auction %d: %w", id, err)
	}

	return auction, bids, comments, nil
}

// UpdateAuctionDescription updates an auction's description and returns the
// affected row count
func (s *AuctionService) UpdateAuctionDescription(id uint, description string) (int64, error) {
	if description == "" {
		return 0, fmt.Errorf("service: %w - empty description", auctionerrors.ErrInvalidInput)
	}
	count, err := s.repo.UpdateAuctionDescription(id, description)
	if err != nil {
		return 0, fmt.Errorf("service: failed to update auction %d: %w", id, err)
	}
	return count, nil
}

// SearchAuctions matches an all-digits keyword against item ids exactly, and
// anything else against descriptions as a case-insensitive substring
func (s *AuctionService) SearchAuctions(keyword string) ([]models.Auction, error) {
	if keyword == "" {
		return nil, fmt.Errorf("service: %w - empty keyword", auctionerrors.ErrInvalidInput)
	}

	var auctions []models.Auction
	var err error
	if isAllDigits(keyword) {
		auctions, err = s.repo.SearchAuctionsByItemID(keyword)
	} else {
		auctions, err = s.repo.SearchAuctionsByDescription(keyword)
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to search auctions for %q: %w", keyword, err)
	}
	return auctions, nil
}

// UserActivity returns the auctions a user created and the auctions they have
// bid on, as two separate lists
func (s *AuctionService) UserActivity(userID uint) ([]models.Auction, []models.Auction, error) {
	created, err := s.repo.GetAuctionsByOwner(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to get auctions created by user %d: %w", userID, err)
	}

	bidOn, err := s.repo.GetAuctionsBidByUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to get auctions bid by user %d: %w", userID, err)
	}

	return created, bidOn, nil
}

// PlaceBid validates and records a user's bid on an auction. The bid must
// strictly exceed both the auction's minimum price and the current highest bid.
func (s *AuctionService) PlaceBid(auctionID, userID uint, amount float64) (models.Bid, error) {
	// NaN compares false against everything and would slip past the price
	// checks below; Inf would survive them and top the auction forever.
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.Bid{}, fmt.Errorf("service: %w - bid amount must be a positive finite number", auctionerrors.ErrInvalidInput)
	}

	auction, err := s.repo.GetAuctionByID(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}
	if auction.Ended {
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionEnded)
	}
	if amount <= auction.MinPrice {
		return models.Bid{}, fmt.Errorf("service: %w - minimum price is %.2f", auctionerrors.ErrBidTooLow, auction.MinPrice)
	}

	winning, err := s.repo.GetWinningBid(auctionID)
	if err == nil {
		if amount <= winning.Amount {
			return models.Bid{}, fmt.Errorf("service: %w - current highest bid is %.2f", auctionerrors.ErrBidTooLow, winning.Amount)
		}
	} else if !errors.Is(err, auctionerrors.ErrNoBids) {
		return models.Bid{}, fmt.Errorf("service: failed to check winning bid: %w", err)
	}

	bid := models.Bid{
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.RecordBidForAuction(&bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on auction %d by user %d: %w", auctionID, userID, err)
	}

	return bid, nil
}

// CloseAuction ends an auction past its end time and records the winner
func (s *AuctionService) CloseAuction(id uint) (models.Auction, error) {
	auction, err := s.repo.GetAuctionByID(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %d: %w", id, err)
	}
	if auction.Ended {
		return models.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionEnded)
	}
	if time.Now().UTC().Before(auction.EndTime) {
		return models.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionNotClosed)
	}

	winning, err := s.repo.GetWinningBid(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to determine winner for auction %d: %w", id, err)
	}

	if err := s.repo.FinalizeAuction(id, winning.UserID, winning.Amount); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to finalize auction %d: %w", id, err)
	}

	auction.Ended = true
	auction.WinnerID = &winning.UserID
	auction.WinningBid = &winning.Amount
	return auction, nil
}

// CancelAuction ends an active auction without recording a winner
func (s *AuctionService) CancelAuction(id uint) (models.Auction, error) {
	auction, err := s.repo.GetAuctionByID(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %d: %w", id, err)
	}
	if auction.Ended {
		return models.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionEnded)
	}

	if err := s.repo.MarkAuctionEnded(id); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to cancel auction %d: %w", id, err)
	}

	auction.Ended = true
	return auction, nil
}

// AddComment records a comment on an existing auction
func (s *AuctionService) AddComment(auctionID, userID uint, content string) (models.Comment, error) {
	if content == "" {
		return models.Comment{}, fmt.Errorf("service: %w - empty comment", auctionerrors.ErrInvalidInput)
	}

	if _, err := s.repo.GetAuctionByID(auctionID); err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}

	comment := models.Comment{
		AuctionID: auctionID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.RecordComment(&comment); err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to record comment on auction %d: %w", auctionID, err)
	}

	return comment, nil
}

// isAllDigits reports whether the keyword consists solely of decimal digits
func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
