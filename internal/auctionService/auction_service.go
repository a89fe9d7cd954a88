package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grain-market/internal/markerrors"
	model "grain-market/internal/models"
	"grain-market/internal/notify"
	"grain-market/internal/repository"
	"grain-market/utils"
)

// minIncrement is the multiplier a new bid must clear over the current
// floor (leading bid, or starting price when there are no bids yet).
const minIncrement = 1.01

// AuctionService defines the business logic for the auction lifecycle,
// the bid ledger and winner resolution
type AuctionService struct {
	auctions repository.AuctionStore
	bids     repository.BidStore
	users    repository.UserStore
	mailer   notify.Mailer
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(auctions repository.AuctionStore, bids repository.BidStore, users repository.UserStore, mailer notify.Mailer) *AuctionService {
	return &AuctionService{
		auctions: auctions,
		bids:     bids,
		users:    users,
		mailer:   mailer,
	}
}

// CreateParams describes a new grain lot put up for auction
type CreateParams struct {
	GrainID       string
	GrainType     string
	Category      string
	Moisture      string
	Protein       string
	Gluten        string
	Nature        string
	Quantity      float64
	StartingPrice float64
	StartDate     time.Time
	EndDate       time.Time
}

// DeriveStatus computes the lifecycle status from the stored status and
// the clock. Transitions only move forward: pending auctions become
// active once the start date passes and completed once the end date
// passes; completed and winner_selected never change automatically.
func DeriveStatus(stored model.AuctionStatus, now, start, end time.Time) model.AuctionStatus {
	switch stored {
	case model.AuctionPending:
		if !now.Before(end) {
			return model.AuctionCompleted
		}
		if !now.Before(start) {
			return model.AuctionActive
		}
		return model.AuctionPending
	case model.AuctionActive:
		if !now.Before(end) {
			return model.AuctionCompleted
		}
		return model.AuctionActive
	default:
		return stored
	}
}

// Create persists a new auction owned by the given admin
func (s *AuctionService) Create(ctx context.Context, params CreateParams, adminID string) (model.Auction, error) {
	auction := model.Auction{
		ID:            utils.GenerateID(),
		GrainID:       params.GrainID,
		GrainType:     params.GrainType,
		Category:      params.Category,
		Moisture:      params.Moisture,
		Protein:       params.Protein,
		Gluten:        params.Gluten,
		Nature:        params.Nature,
		Quantity:      params.Quantity,
		StartingPrice: params.StartingPrice,
		StartDate:     params.StartDate.UTC(),
		EndDate:       params.EndDate.UTC(),
		Status:        model.AuctionPending,
		CreatedBy:     adminID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.auctions.InsertAuction(ctx, auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	return auction, nil
}

// List returns every auction with reconciled status and bid enrichment.
// A failed bid lookup degrades that auction's view instead of failing
// the whole listing; a failed status write-back is logged and ignored
// because the derivation runs again on the next read.
func (s *AuctionService) List(ctx context.Context) ([]model.AuctionView, error) {
	auctions, err := s.auctions.FindAllAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	views := make([]model.AuctionView, 0, len(auctions))
	for _, a := range auctions {
		views = append(views, s.enrich(ctx, a))
	}
	return views, nil
}

// Get returns a single auction with reconciled status and bid enrichment
func (s *AuctionService) Get(ctx context.Context, id string) (model.AuctionView, error) {
	auction, err := s.auctions.FindAuctionByID(ctx, id)
	if err != nil {
		return model.AuctionView{}, fmt.Errorf("service: failed to get auction %s: %w", id, err)
	}
	return s.enrich(ctx, auction), nil
}

func (s *AuctionService) enrich(ctx context.Context, auction model.Auction) model.AuctionView {
	now := time.Now().UTC()
	derived := DeriveStatus(auction.Status, now, auction.StartDate, auction.EndDate)
	if derived != auction.Status {
		if err := s.auctions.UpdateAuctionStatus(ctx, auction.ID, derived); err != nil {
			utils.Warn("failed to persist derived auction status", map[string]any{
				"auction_id": auction.ID,
				"status":     derived,
				"error":      err.Error(),
			})
		}
		auction.Status = derived
	}

	view := model.AuctionView{Auction: auction}

	highest, err := s.bids.FindHighestBid(ctx, auction.ID)
	switch {
	case err == nil:
		view.CurrentHighestBid = &highest.BidAmount
	case !errors.Is(err, markerrors.ErrNoBids):
		utils.Warn("failed to look up highest bid", map[string]any{
			"auction_id": auction.ID,
			"error":      err.Error(),
		})
		return view
	}

	count, err := s.bids.CountBidsByAuction(ctx, auction.ID)
	if err != nil {
		utils.Warn("failed to count bids", map[string]any{
			"auction_id": auction.ID,
			"error":      err.Error(),
		})
		return view
	}
	view.TotalBids = count

	return view
}

// BidParams describes an offer placed by an accredited buyer
type BidParams struct {
	AuctionID        string
	BidAmount        float64
	PaymentType      string
	DeliveryLocation string
}

// PlaceBid validates and records a buyer's bid. The bidder's display
// name and company are snapshotted onto the bid at placement time.
func (s *AuctionService) PlaceBid(ctx context.Context, params BidParams, bidderID string) (model.Bid, error) {
	auction, err := s.auctions.FindAuctionByID(ctx, params.AuctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to place bid: %w", err)
	}

	if auction.Status != model.AuctionActive {
		return model.Bid{}, fmt.Errorf("service: %w", markerrors.ErrAuctionNotActive)
	}
	// the stored status may lag behind the clock, so the end date is
	// checked independently
	if !time.Now().UTC().Before(auction.EndDate) {
		return model.Bid{}, fmt.Errorf("service: %w", markerrors.ErrAuctionEnded)
	}

	floor := auction.StartingPrice
	highest, err := s.bids.FindHighestBid(ctx, params.AuctionID)
	if err == nil {
		floor = highest.BidAmount
	} else if !errors.Is(err, markerrors.ErrNoBids) {
		return model.Bid{}, fmt.Errorf("service: failed to check highest bid: %w", err)
	}

	minBid := floor * minIncrement
	if params.BidAmount < minBid {
		return model.Bid{}, &markerrors.BidTooLowError{Minimum: minBid}
	}

	bidder, err := s.users.FindUserByID(ctx, bidderID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load bidder %s: %w", bidderID, err)
	}

	bid := model.Bid{
		ID:               utils.GenerateID(),
		AuctionID:        params.AuctionID,
		BidAmount:        params.BidAmount,
		PaymentType:      params.PaymentType,
		DeliveryLocation: params.DeliveryLocation,
		UserID:           bidder.ID,
		UserName:         bidder.FullName,
		UserCompany:      bidder.CompanyName,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.bids.InsertBid(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid on auction %s: %w", params.AuctionID, err)
	}
	return bid, nil
}

// ListBids returns all bids for an auction ordered by amount descending.
// Callers gate this behind the admin check; bids are confidential until
// the auction is resolved.
func (s *AuctionService) ListBids(ctx context.Context, auctionID string) ([]model.Bid, error) {
	bids, err := s.bids.FindBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// SelectWinner binds the winning bid to a completed auction and
// notifies the winner. Notification is best-effort: a send failure is
// logged and the winner assignment stands.
func (s *AuctionService) SelectWinner(ctx context.Context, auctionID, winnerBidID string) (model.Bid, error) {
	auction, err := s.auctions.FindAuctionByID(ctx, auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to select winner: %w", err)
	}

	now := time.Now().UTC()
	status := DeriveStatus(auction.Status, now, auction.StartDate, auction.EndDate)
	if status != model.AuctionCompleted {
		return model.Bid{}, fmt.Errorf("service: %w", markerrors.ErrAuctionNotComplete)
	}

	bid, err := s.bids.FindBidByID(ctx, winnerBidID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to select winner: %w", err)
	}
	if bid.AuctionID != auctionID {
		return model.Bid{}, fmt.Errorf("service: bid %s belongs to another auction: %w", winnerBidID, markerrors.ErrBidNotFound)
	}

	if err := s.auctions.SetAuctionWinner(ctx, auctionID, bid.UserID); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to bind winner on auction %s: %w", auctionID, err)
	}

	s.notifyWinner(ctx, auction, bid)
	return bid, nil
}

func (s *AuctionService) notifyWinner(ctx context.Context, auction model.Auction, bid model.Bid) {
	winner, err := s.users.FindUserByID(ctx, bid.UserID)
	if err != nil {
		utils.Warn("winner selected but user lookup failed, skipping email", map[string]any{
			"auction_id": auction.ID,
			"user_id":    bid.UserID,
			"error":      err.Error(),
		})
		return
	}

	subject, body := notify.AuctionWonMessage(winner.FullName, auction.GrainType, auction.Quantity, bid.BidAmount)
	if err := s.mailer.Send(winner.Email, subject, body); err != nil {
		utils.Warn("failed to send winner notification", map[string]any{
			"auction_id": auction.ID,
			"to":         winner.Email,
			"error":      err.Error(),
		})
	}
}
