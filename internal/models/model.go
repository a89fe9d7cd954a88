package models

import "time"

type (
	Role                string // account role
	AccreditationStatus string // buyer accreditation state
	AuctionStatus       string // auction lifecycle state
)

const (
	RoleBuyer Role = "buyer"
	RoleAdmin Role = "admin"

	AccreditationPending  AccreditationStatus = "pending"
	AccreditationApproved AccreditationStatus = "approved"
	AccreditationRejected AccreditationStatus = "rejected"

	AuctionPending        AuctionStatus = "pending"
	AuctionActive         AuctionStatus = "active"
	AuctionCompleted      AuctionStatus = "completed"
	AuctionWinnerSelected AuctionStatus = "winner_selected"
)

// User represents a registered marketplace account. Buyers start with
// pending accreditation; the seeded admin account is pre-approved.
type User struct {
	ID                  string              `bson:"id" json:"id"`
	Email               string              `bson:"email" json:"email"`
	PasswordHash        string              `bson:"hashed_password" json:"-"`
	FullName            string              `bson:"full_name" json:"full_name"`
	CompanyName         string              `bson:"company_name" json:"company_name"`
	EDRPOU              string              `bson:"edrpou" json:"edrpou"`
	Phone               string              `bson:"phone" json:"phone"`
	Role                Role                `bson:"role" json:"role"`
	AccreditationStatus AccreditationStatus `bson:"accreditation_status" json:"accreditation_status"`
	CreatedAt           time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time           `bson:"updated_at" json:"updated_at"`
}

// Auction represents a grain lot offered for bidding
type Auction struct {
	ID            string        `bson:"id" json:"id"`
	GrainID       string        `bson:"grain_id" json:"grain_id"`
	GrainType     string        `bson:"grain_type" json:"grain_type"`
	Category      string        `bson:"category" json:"category"`
	Moisture      string        `bson:"moisture" json:"moisture"`
	Protein       string        `bson:"protein" json:"protein"`
	Gluten        string        `bson:"gluten" json:"gluten"`
	Nature        string        `bson:"nature" json:"nature"`
	Quantity      float64       `bson:"quantity" json:"quantity"`
	StartingPrice float64       `bson:"starting_price" json:"starting_price"`
	StartDate     time.Time     `bson:"start_date" json:"start_date"`
	EndDate       time.Time     `bson:"end_date" json:"end_date"`
	Status        AuctionStatus `bson:"status" json:"status"`
	WinnerID      *string       `bson:"winner_id" json:"winner_id"`
	CreatedBy     string        `bson:"created_by" json:"created_by"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}

// AuctionView is an Auction enriched with the current leading bid and
// total bid count for list/detail responses
type AuctionView struct {
	Auction
	CurrentHighestBid *float64 `json:"current_highest_bid"`
	TotalBids         int64    `json:"total_bids"`
}

// Bid represents an offer on an auction. Bidder name and company are
// snapshotted at bid time and never re-joined against the user record.
type Bid struct {
	ID               string    `bson:"id" json:"id"`
	AuctionID        string    `bson:"auction_id" json:"auction_id"`
	BidAmount        float64   `bson:"bid_amount" json:"bid_amount"`
	PaymentType      string    `bson:"payment_type" json:"payment_type"`
	DeliveryLocation string    `bson:"delivery_location" json:"delivery_location"`
	UserID           string    `bson:"user_id" json:"user_id"`
	UserName         string    `bson:"user_name" json:"user_name"`
	UserCompany      string    `bson:"user_company" json:"user_company"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// Grain represents a catalog entry
type Grain struct {
	ID          string `bson:"id" json:"id"`
	NameUA      string `bson:"name_ua" json:"name_ua"`
	NameEN      string `bson:"name_en" json:"name_en"`
	Category    string `bson:"category" json:"category"`
	Moisture    string `bson:"moisture" json:"moisture"`
	Protein     string `bson:"protein" json:"protein"`
	Gluten      string `bson:"gluten" json:"gluten"`
	Nature      string `bson:"nature" json:"nature"`
	Image       string `bson:"image" json:"image"`
	Active      bool   `bson:"active" json:"active"`
	Description string `bson:"description" json:"description"`
}

// Order represents a storefront purchase order
type Order struct {
	ID            string    `bson:"id" json:"id"`
	GrainType     string    `bson:"grain_type" json:"grain_type"`
	GrainID       string    `bson:"grain_id" json:"grain_id"`
	Quantity      float64   `bson:"quantity" json:"quantity"`
	CustomerName  string    `bson:"customer_name" json:"customer_name"`
	CustomerPhone string    `bson:"customer_phone" json:"customer_phone"`
	CustomerEmail string    `bson:"customer_email" json:"customer_email"`
	Comment       string    `bson:"comment" json:"comment"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Contact represents a contact form submission
type Contact struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
