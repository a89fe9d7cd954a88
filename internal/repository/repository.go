package repository

import (
	"context"

	model "grain-market/internal/models"
)

// UserStore defines durable storage for marketplace accounts
type UserStore interface {
	InsertUser(ctx context.Context, user model.User) error
	FindUserByID(ctx context.Context, id string) (model.User, error)
	FindUserByEmail(ctx context.Context, email string) (model.User, error)
	FindUsersByAccreditation(ctx context.Context, status model.AccreditationStatus) ([]model.User, error)
	UpdateAccreditation(ctx context.Context, id string, status model.AccreditationStatus) error
}

// AuctionStore defines durable storage for auctions
type AuctionStore interface {
	InsertAuction(ctx context.Context, auction model.Auction) error
	FindAuctionByID(ctx context.Context, id string) (model.Auction, error)
	FindAllAuctions(ctx context.Context) ([]model.Auction, error)
	UpdateAuctionStatus(ctx context.Context, id string, status model.AuctionStatus) error
	// SetAuctionWinner binds winner and status in a single document update.
	SetAuctionWinner(ctx context.Context, id, winnerID string) error
}

// BidStore defines durable storage for bids. Bids are append-only.
type BidStore interface {
	InsertBid(ctx context.Context, bid model.Bid) error
	FindBidByID(ctx context.Context, id string) (model.Bid, error)
	// FindBidsByAuction returns bids ordered by amount descending.
	FindBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	// FindHighestBid returns the leading bid or ErrNoBids.
	FindHighestBid(ctx context.Context, auctionID string) (model.Bid, error)
	CountBidsByAuction(ctx context.Context, auctionID string) (int64, error)
}

// CatalogStore defines durable storage for the grain catalog and the
// public order/contact intake
type CatalogStore interface {
	InsertGrains(ctx context.Context, grains []model.Grain) error
	FindActiveGrains(ctx context.Context) ([]model.Grain, error)
	CountGrains(ctx context.Context) (int64, error)
	InsertOrder(ctx context.Context, order model.Order) error
	InsertContact(ctx context.Context, contact model.Contact) error
}
