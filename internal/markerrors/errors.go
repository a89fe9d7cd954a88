package markerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoBids          = errors.New("no bids found for auction")
)

// Authentication and authorization errors
var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrNotAdmin           = errors.New("not enough permissions")
	ErrNotAccredited      = errors.New("accreditation not approved")
)

// Business logic errors
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrAuctionNotActive   = errors.New("auction is not active")
	ErrAuctionEnded       = errors.New("auction has ended")
	ErrAuctionNotComplete = errors.New("auction is not completed yet")
	ErrInvalidDecision    = errors.New("invalid accreditation status")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBidTooLow          = errors.New("bid amount too low")
)

// BidTooLowError carries the computed minimum so callers can surface it.
// It unwraps to ErrBidTooLow for errors.Is checks.
type BidTooLowError struct {
	Minimum float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid must be at least 1%% above the current price, minimum bid: %.2f", e.Minimum)
}

func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}
