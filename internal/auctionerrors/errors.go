package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrAuctionNotFound   = errors.New("auction not found")
	ErrNoBids            = errors.New("no bids found for auction")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("could not verify")
	ErrInvalidToken       = errors.New("invalid token")
)

// Business logic errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrAuctionEnded     = errors.New("auction already ended")
	ErrAuctionNotClosed = errors.New("auction end time not reached")
)
