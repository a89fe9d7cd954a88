package helpers

import (
	"time"

	model "grain-market/internal/models"
)

// Request DTOs
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	EDRPOU      string `json:"edrpou" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AccreditationUpdateRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type CreateAuctionRequest struct {
	GrainID       string    `json:"grain_id" binding:"required"`
	GrainType     string    `json:"grain_type" binding:"required"`
	Category      string    `json:"category" binding:"required"`
	Moisture      string    `json:"moisture" binding:"required"`
	Protein       string    `json:"protein" binding:"required"`
	Gluten        string    `json:"gluten" binding:"required"`
	Nature        string    `json:"nature" binding:"required"`
	Quantity      float64   `json:"quantity" binding:"required,gt=0"`
	StartingPrice float64   `json:"starting_price" binding:"required,gt=0"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
}

type PlaceBidRequest struct {
	AuctionID        string  `json:"auction_id" binding:"required"`
	BidAmount        float64 `json:"bid_amount" binding:"required,gt=0"`
	PaymentType      string  `json:"payment_type" binding:"required,oneof=cash cashless"`
	DeliveryLocation string  `json:"delivery_location" binding:"required"`
}

type SelectWinnerRequest struct {
	AuctionID   string `json:"auction_id" binding:"required"`
	WinnerBidID string `json:"winner_bid_id" binding:"required"`
}

type OrderRequest struct {
	GrainType     string  `json:"grain_type" binding:"required"`
	GrainID       string  `json:"grain_id" binding:"required"`
	Quantity      float64 `json:"quantity" binding:"required,gt=0"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required,email"`
	Comment       string  `json:"comment"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Response DTOs
type UserResponse struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	FullName            string `json:"full_name"`
	CompanyName         string `json:"company_name"`
	EDRPOU              string `json:"edrpou"`
	Phone               string `json:"phone"`
	Role                string `json:"role"`
	AccreditationStatus string `json:"accreditation_status"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// BidResponse omits payment and delivery details; bid listings expose
// only the identity snapshot and the amount.
type BidResponse struct {
	ID          string  `json:"id"`
	AuctionID   string  `json:"auction_id"`
	BidAmount   float64 `json:"bid_amount"`
	UserName    string  `json:"user_name"`
	UserCompany string  `json:"user_company"`
	CreatedAt   string  `json:"created_at"`
}

// NewUserResponse converts a user record to its public representation
func NewUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:                  user.ID,
		Email:               user.Email,
		FullName:            user.FullName,
		CompanyName:         user.CompanyName,
		EDRPOU:              user.EDRPOU,
		Phone:               user.Phone,
		Role:                string(user.Role),
		AccreditationStatus: string(user.AccreditationStatus),
	}
}

// NewBidResponse converts a bid record to its public representation
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		ID:          bid.ID,
		AuctionID:   bid.AuctionID,
		BidAmount:   bid.BidAmount,
		UserName:    bid.UserName,
		UserCompany: bid.UserCompany,
		CreatedAt:   bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
