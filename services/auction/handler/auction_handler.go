package handler

import (
	"context"
	"fmt"
	"net/http"

	auction "grain-market/internal/auctionService"
	model "grain-market/internal/models"
	"grain-market/services/market/helpers"
	"grain-market/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	Create(ctx context.Context, params auction.CreateParams, adminID string) (model.Auction, error)
	List(ctx context.Context) ([]model.AuctionView, error)
	Get(ctx context.Context, id string) (model.AuctionView, error)
	PlaceBid(ctx context.Context, params auction.BidParams, bidderID string) (model.Bid, error)
	ListBids(ctx context.Context, auctionID string) ([]model.Bid, error)
	SelectWinner(ctx context.Context, auctionID, winnerBidID string) (model.Bid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /api/auctions/create (admin only)
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	principal, ok := helpers.CurrentPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing principal"), "could not validate credentials")
		return
	}

	created, err := h.service.Create(c.Request.Context(), auction.CreateParams{
		GrainID:       req.GrainID,
		GrainType:     req.GrainType,
		Category:      req.Category,
		Moisture:      req.Moisture,
		Protein:       req.Protein,
		Gluten:        req.Gluten,
		Nature:        req.Nature,
		Quantity:      req.Quantity,
		StartingPrice: req.StartingPrice,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}, principal.ID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"admin": principal.Email,
			"error": err.Error(),
		})
		return
	}

	view := model.AuctionView{Auction: created}
	utils.JSONResponse(c, http.StatusCreated, view, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.ID,
		"grain_type": created.GrainType,
		"admin":      principal.Email,
	})
}

// ListAuctionsHandler handles GET /api/auctions/list
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error retrieving auctions", map[string]any{"error": err.Error()})
		return
	}

	if views == nil {
		views = []model.AuctionView{}
	}
	utils.JSONResponse(c, http.StatusOK, views, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /api/auctions/:id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("id")
	view, err := h.service.Get(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction retrieved successfully")
}

// PlaceBidHandler handles POST /api/auctions/bid (approved buyers only)
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	principal, ok := helpers.CurrentPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing principal"), "could not validate credentials")
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), auction.BidParams{
		AuctionID:        req.AuctionID,
		BidAmount:        req.BidAmount,
		PaymentType:      req.PaymentType,
		DeliveryLocation: req.DeliveryLocation,
	}, principal.ID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    principal.ID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionID,
		"user_id":    bid.UserID,
		"amount":     bid.BidAmount,
	})
}

// ListBidsHandler handles GET /api/auctions/:id/bids (admin only; bids
// are confidential before winner resolution)
func (h *AuctionHandler) ListBidsHandler(c *gin.Context) {
	auctionID := c.Param("id")
	bids, err := h.service.ListBids(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListBidsHandler: error retrieving bids", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	responses := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		responses = append(responses, helpers.NewBidResponse(bid))
	}
	utils.JSONResponse(c, http.StatusOK, responses, "bids retrieved successfully")
}

// SelectWinnerHandler handles POST /api/auctions/select-winner (admin only)
func (h *AuctionHandler) SelectWinnerHandler(c *gin.Context) {
	var req helpers.SelectWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SelectWinnerHandler", err)
		return
	}

	bid, err := h.service.SelectWinner(c.Request.Context(), req.AuctionID, req.WinnerBidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SelectWinnerHandler: failed to select winner", map[string]any{
			"auction_id": req.AuctionID,
			"bid_id":     req.WinnerBidID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"winner_id": bid.UserID}, "winner selected and notified")
	helpers.LogSuccess("SelectWinnerHandler", "winner selected and notified", map[string]any{
		"auction_id": req.AuctionID,
		"bid_id":     bid.ID,
		"winner_id":  bid.UserID,
		"amount":     bid.BidAmount,
	})
}
