package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"grain-market/internal/markerrors"
	model "grain-market/internal/models"
)

// Connect opens a MongoDB client and verifies the connection
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// MongoStore implements every store interface on top of MongoDB
// collections. Records carry an app-generated `id` field; the driver's
// own `_id` is never referenced.
type MongoStore struct {
	users    *mongo.Collection
	auctions *mongo.Collection
	bids     *mongo.Collection
	grains   *mongo.Collection
	orders   *mongo.Collection
	contacts *mongo.Collection
}

// NewMongoStore creates a MongoStore bound to the given database
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		users:    db.Collection("users"),
		auctions: db.Collection("auctions"),
		bids:     db.Collection("bids"),
		grains:   db.Collection("grains"),
		orders:   db.Collection("orders"),
		contacts: db.Collection("contacts"),
	}
}

// InsertUser stores a new user record
func (s *MongoStore) InsertUser(ctx context.Context, user model.User) error {
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user %s: %w", user.ID, err)
	}
	return nil
}

// FindUserByID returns the user with the given id
func (s *MongoStore) FindUserByID(ctx context.Context, id string) (model.User, error) {
	var user model.User
	err := s.users.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, fmt.Errorf("find user %s: %w", id, markerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user %s: %w", id, err)
	}
	return user, nil
}

// FindUserByEmail returns the user with the given email
func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, fmt.Errorf("find user by email %s: %w", email, markerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by email %s: %w", email, err)
	}
	return user, nil
}

// FindUsersByAccreditation returns all users with the given accreditation status
func (s *MongoStore) FindUsersByAccreditation(ctx context.Context, status model.AccreditationStatus) ([]model.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{"accreditation_status": status})
	if err != nil {
		return nil, fmt.Errorf("find users by accreditation %s: %w", status, err)
	}
	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users by accreditation %s: %w", status, err)
	}
	return users, nil
}

// UpdateAccreditation sets the accreditation status for a user
func (s *MongoStore) UpdateAccreditation(ctx context.Context, id string, status model.AccreditationStatus) error {
	result, err := s.users.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"accreditation_status": status}})
	if err != nil {
		return fmt.Errorf("update accreditation for user %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("update accreditation for user %s: %w", id, markerrors.ErrUserNotFound)
	}
	return nil
}

// InsertAuction stores a new auction record
func (s *MongoStore) InsertAuction(ctx context.Context, auction model.Auction) error {
	if _, err := s.auctions.InsertOne(ctx, auction); err != nil {
		return fmt.Errorf("insert auction %s: %w", auction.ID, err)
	}
	return nil
}

// FindAuctionByID returns the auction with the given id
func (s *MongoStore) FindAuctionByID(ctx context.Context, id string) (model.Auction, error) {
	var auction model.Auction
	err := s.auctions.FindOne(ctx, bson.M{"id": id}).Decode(&auction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Auction{}, fmt.Errorf("find auction %s: %w", id, markerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("find auction %s: %w", id, err)
	}
	return auction, nil
}

// FindAllAuctions returns every stored auction
func (s *MongoStore) FindAllAuctions(ctx context.Context) ([]model.Auction, error) {
	cursor, err := s.auctions.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find auctions: %w", err)
	}
	var auctions []model.Auction
	if err := cursor.All(ctx, &auctions); err != nil {
		return nil, fmt.Errorf("decode auctions: %w", err)
	}
	return auctions, nil
}

// UpdateAuctionStatus sets the stored lifecycle status for an auction
func (s *MongoStore) UpdateAuctionStatus(ctx context.Context, id string, status model.AuctionStatus) error {
	result, err := s.auctions.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update status for auction %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("update status for auction %s: %w", id, markerrors.ErrAuctionNotFound)
	}
	return nil
}

// SetAuctionWinner binds the winner and flips the status in a single
// document update, relying on MongoDB's per-document atomicity.
func (s *MongoStore) SetAuctionWinner(ctx context.Context, id, winnerID string) error {
	result, err := s.auctions.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"winner_id": winnerID,
		"status":    model.AuctionWinnerSelected,
	}})
	if err != nil {
		return fmt.Errorf("set winner for auction %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("set winner for auction %s: %w", id, markerrors.ErrAuctionNotFound)
	}
	return nil
}

// InsertBid records a bid on an auction
func (s *MongoStore) InsertBid(ctx context.Context, bid model.Bid) error {
	if _, err := s.bids.InsertOne(ctx, bid); err != nil {
		return fmt.Errorf("insert bid %s: %w", bid.ID, err)
	}
	return nil
}

// FindBidByID returns the bid with the given id
func (s *MongoStore) FindBidByID(ctx context.Context, id string) (model.Bid, error) {
	var bid model.Bid
	err := s.bids.FindOne(ctx, bson.M{"id": id}).Decode(&bid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Bid{}, fmt.Errorf("find bid %s: %w", id, markerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("find bid %s: %w", id, err)
	}
	return bid, nil
}

// FindBidsByAuction returns all bids for an auction, highest amount first
func (s *MongoStore) FindBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "bid_amount", Value: -1}})
	cursor, err := s.bids.Find(ctx, bson.M{"auction_id": auctionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find bids for auction %s: %w", auctionID, err)
	}
	var bids []model.Bid
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, fmt.Errorf("decode bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// FindHighestBid returns the leading bid for an auction
func (s *MongoStore) FindHighestBid(ctx context.Context, auctionID string) (model.Bid, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "bid_amount", Value: -1}})
	var bid model.Bid
	err := s.bids.FindOne(ctx, bson.M{"auction_id": auctionID}, opts).Decode(&bid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Bid{}, fmt.Errorf("find highest bid for auction %s: %w", auctionID, markerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("find highest bid for auction %s: %w", auctionID, err)
	}
	return bid, nil
}

// CountBidsByAuction returns the number of bids recorded for an auction
func (s *MongoStore) CountBidsByAuction(ctx context.Context, auctionID string) (int64, error) {
	count, err := s.bids.CountDocuments(ctx, bson.M{"auction_id": auctionID})
	if err != nil {
		return 0, fmt.Errorf("count bids for auction %s: %w", auctionID, err)
	}
	return count, nil
}

// InsertGrains stores catalog entries
func (s *MongoStore) InsertGrains(ctx context.Context, grains []model.Grain) error {
	docs := make([]any, 0, len(grains))
	for _, grain := range grains {
		docs = append(docs, grain)
	}
	if _, err := s.grains.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert grains: %w", err)
	}
	return nil
}

// FindActiveGrains returns all active catalog entries
func (s *MongoStore) FindActiveGrains(ctx context.Context) ([]model.Grain, error) {
	cursor, err := s.grains.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("find active grains: %w", err)
	}
	var grains []model.Grain
	if err := cursor.All(ctx, &grains); err != nil {
		return nil, fmt.Errorf("decode grains: %w", err)
	}
	return grains, nil
}

// CountGrains returns the number of catalog entries
func (s *MongoStore) CountGrains(ctx context.Context) (int64, error) {
	count, err := s.grains.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count grains: %w", err)
	}
	return count, nil
}

// InsertOrder stores a purchase order
func (s *MongoStore) InsertOrder(ctx context.Context, order model.Order) error {
	if _, err := s.orders.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order %s: %w", order.ID, err)
	}
	return nil
}

// InsertContact stores a contact form submission
func (s *MongoStore) InsertContact(ctx context.Context, contact model.Contact) error {
	if _, err := s.contacts.InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("insert contact %s: %w", contact.ID, err)
	}
	return nil
}
