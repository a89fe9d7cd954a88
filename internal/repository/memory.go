package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"grain-market/internal/markerrors"
	model "grain-market/internal/models"
)

// MemoryStore is a concurrency-safe in-memory implementation of every
// store interface. It backs the tests and local development without a
// running database.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]model.User    // key: userID
	auctions map[string]model.Auction // key: auctionID
	bids     map[string][]model.Bid   // key: auctionID -> bids in insertion order
	bidsByID map[string]model.Bid     // key: bidID
	grains   map[string]model.Grain   // key: grainID
	orders   []model.Order
	contacts []model.Contact
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]model.User),
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
		bidsByID: make(map[string]model.Bid),
		grains:   make(map[string]model.Grain),
	}
}

// InsertUser stores a new user record
func (s *MemoryStore) InsertUser(_ context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

// FindUserByID returns the user with the given id
func (s *MemoryStore) FindUserByID(_ context.Context, id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("find user %s: %w", id, markerrors.ErrUserNotFound)
	}
	return user, nil
}

// FindUserByEmail returns the user with the given email
func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return model.User{}, fmt.Errorf("find user by email %s: %w", email, markerrors.ErrUserNotFound)
}

// FindUsersByAccreditation returns all users with the given accreditation status
func (s *MemoryStore) FindUsersByAccreditation(_ context.Context, status model.AccreditationStatus) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []model.User
	for _, user := range s.users {
		if user.AccreditationStatus == status {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

// UpdateAccreditation sets the accreditation status for a user
func (s *MemoryStore) UpdateAccreditation(_ context.Context, id string, status model.AccreditationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return fmt.Errorf("update accreditation for user %s: %w", id, markerrors.ErrUserNotFound)
	}
	user.AccreditationStatus = status
	s.users[id] = user
	return nil
}

// InsertAuction stores a new auction record
func (s *MemoryStore) InsertAuction(_ context.Context, auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auctions[auction.ID] = auction
	return nil
}

// FindAuctionByID returns the auction with the given id
func (s *MemoryStore) FindAuctionByID(_ context.Context, id string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("find auction %s: %w", id, markerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// FindAllAuctions returns every stored auction
func (s *MemoryStore) FindAllAuctions(_ context.Context) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(s.auctions))
	for _, auction := range s.auctions {
		auctions = append(auctions, auction)
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].CreatedAt.Before(auctions[j].CreatedAt) })
	return auctions, nil
}

// UpdateAuctionStatus sets the stored lifecycle status for an auction
func (s *MemoryStore) UpdateAuctionStatus(_ context.Context, id string, status model.AuctionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[id]
	if !ok {
		return fmt.Errorf("update status for auction %s: %w", id, markerrors.ErrAuctionNotFound)
	}
	auction.Status = status
	s.auctions[id] = auction
	return nil
}

// SetAuctionWinner binds the winner and flips the status in one update
func (s *MemoryStore) SetAuctionWinner(_ context.Context, id, winnerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[id]
	if !ok {
		return fmt.Errorf("set winner for auction %s: %w", id, markerrors.ErrAuctionNotFound)
	}
	auction.WinnerID = &winnerID
	auction.Status = model.AuctionWinnerSelected
	s.auctions[id] = auction
	return nil
}

// InsertBid records a bid on an auction
func (s *MemoryStore) InsertBid(_ context.Context, bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bids[bid.AuctionID] = append(s.bids[bid.AuctionID], bid)
	s.bidsByID[bid.ID] = bid
	return nil
}

// FindBidByID returns the bid with the given id
func (s *MemoryStore) FindBidByID(_ context.Context, id string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bid, ok := s.bidsByID[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("find bid %s: %w", id, markerrors.ErrBidNotFound)
	}
	return bid, nil
}

// FindBidsByAuction returns all bids for an auction, highest amount first
func (s *MemoryStore) FindBidsByAuction(_ context.Context, auctionID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := append([]model.Bid(nil), s.bids[auctionID]...)
	sort.Slice(bids, func(i, j int) bool { return bids[i].BidAmount > bids[j].BidAmount })
	return bids, nil
}

// FindHighestBid returns the leading bid for an auction
func (s *MemoryStore) FindHighestBid(_ context.Context, auctionID string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := s.bids[auctionID]
	if len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("find highest bid for auction %s: %w", auctionID, markerrors.ErrNoBids)
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.BidAmount > highest.BidAmount {
			highest = b
		}
	}
	return highest, nil
}

// CountBidsByAuction returns the number of bids recorded for an auction
func (s *MemoryStore) CountBidsByAuction(_ context.Context, auctionID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.bids[auctionID])), nil
}

// InsertGrains stores catalog entries
func (s *MemoryStore) InsertGrains(_ context.Context, grains []model.Grain) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, grain := range grains {
		s.grains[grain.ID] = grain
	}
	return nil
}

// FindActiveGrains returns all active catalog entries
func (s *MemoryStore) FindActiveGrains(_ context.Context) ([]model.Grain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var grains []model.Grain
	for _, grain := range s.grains {
		if grain.Active {
			grains = append(grains, grain)
		}
	}
	sort.Slice(grains, func(i, j int) bool { return grains[i].NameEN < grains[j].NameEN })
	return grains, nil
}

// CountGrains returns the number of catalog entries
func (s *MemoryStore) CountGrains(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.grains)), nil
}

// InsertOrder stores a purchase order
func (s *MemoryStore) InsertOrder(_ context.Context, order model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

// InsertContact stores a contact form submission
func (s *MemoryStore) InsertContact(_ context.Context, contact model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, contact)
	return nil
}
