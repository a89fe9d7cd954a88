package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"grain-market/internal/markerrors"
	model "grain-market/internal/models"
	"grain-market/internal/repository"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

// fakeMailer records sends and optionally fails
type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return f.err
}

func activeAuction(id string, startingPrice float64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		ID:            id,
		GrainType:     "Wheat",
		Quantity:      500,
		StartingPrice: startingPrice,
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
		Status:        model.AuctionActive,
	}
}

// Tests DeriveStatus
func TestDeriveStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name       string
		stored     model.AuctionStatus
		start, end time.Time
		want       model.AuctionStatus
	}{
		{name: "pending_before_start", stored: model.AuctionPending, start: after, end: after.Add(time.Hour), want: model.AuctionPending},
		{name: "pending_after_start", stored: model.AuctionPending, start: before, end: after, want: model.AuctionActive},
		{name: "pending_at_start", stored: model.AuctionPending, start: now, end: after, want: model.AuctionActive},
		{name: "pending_after_end", stored: model.AuctionPending, start: before.Add(-time.Hour), end: before, want: model.AuctionCompleted},
		{name: "active_before_end", stored: model.AuctionActive, start: before, end: after, want: model.AuctionActive},
		{name: "active_at_end", stored: model.AuctionActive, start: before, end: now, want: model.AuctionCompleted},
		{name: "active_after_end", stored: model.AuctionActive, start: before, end: before, want: model.AuctionCompleted},
		{name: "completed_is_terminal", stored: model.AuctionCompleted, start: before, end: after, want: model.AuctionCompleted},
		{name: "winner_selected_is_terminal", stored: model.AuctionWinnerSelected, start: before, end: before, want: model.AuctionWinnerSelected},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DeriveStatus(tc.stored, now, tc.start, tc.end))
		})
	}
}

// Tests Create
func TestAuctionService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auctions := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(auctions, repository.NewMockBidStore(ctrl), repository.NewMockUserStore(ctrl), &fakeMailer{})

	start := time.Now().UTC().Add(time.Hour)
	end := start.Add(24 * time.Hour)

	var inserted model.Auction
	auctions.EXPECT().InsertAuction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a model.Auction) error {
			inserted = a
			return nil
		})

	created, err := service.Create(context.Background(), CreateParams{
		GrainID:       "grain1",
		GrainType:     "Wheat",
		Category:      "1",
		Quantity:      500,
		StartingPrice: 1000,
		StartDate:     start,
		EndDate:       end,
	}, "admin1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, model.AuctionPending, created.Status)
	require.Nil(t, created.WinnerID)
	require.Equal(t, "admin1", created.CreatedBy)
	require.Equal(t, created, inserted)
}

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	buyer := model.User{ID: "user1", FullName: "Taras Melnyk", CompanyName: "AgroTrade LLC", Email: "taras@agrotrade.ua"}

	tests := []struct {
		name        string
		params      BidParams
		mockSetup   func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore)
		expectedErr error
		wantMinimum float64
	}{
		{
			name:   "first_bid_one_percent_over_starting_price",
			params: BidParams{AuctionID: "auction1", BidAmount: 1010, PaymentType: "cashless", DeliveryLocation: "Odesa"},
			mockSetup: func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore) {
				a.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(activeAuction("auction1", 1000), nil)
				b.EXPECT().FindHighestBid(gomock.Any(), "auction1").Return(model.Bid{}, markerrors.ErrNoBids)
				u.EXPECT().FindUserByID(gomock.Any(), "user1").Return(buyer, nil)
				b.EXPECT().InsertBid(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "first_bid_half_percent_over_is_too_low",
			params: BidParams{AuctionID: "auction1", BidAmount: 1005, PaymentType: "cashless", DeliveryLocation: "Odesa"},
			mockSetup: func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore) {
				a.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(activeAuction("auction1", 1000), nil)
				b.EXPECT().FindHighestBid(gomock.Any(), "auction1").Return(model.Bid{}, markerrors.ErrNoBids)
			},
			expectedErr: markerrors.ErrBidTooLow,
			wantMinimum: 1010,
		},
		{
			name:   "next_bid_must_clear_leading_bid_floor",
			params: BidParams{AuctionID: "auction1", BidAmount: 1015, PaymentType: "cash", DeliveryLocation: "Kyiv"},
			mockSetup: func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore) {
				a.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(activeAuction("auction1", 1000), nil)
				b.EXPECT().FindHighestBid(gomock.Any(), "auction1").Return(model.Bid{BidAmount: 1010}, nil)
			},
			expectedErr: markerrors.ErrBidTooLow,
			wantMinimum: 1020.1,
		},
		{
			name:   "bid_over_leading_floor_accepted",
			params: BidParams{AuctionID: "auction1", BidAmount: 1021, PaymentType: "cash", DeliveryLocation: "Kyiv"},
			mockSetup: func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore) {
				a.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(activeAuction("auction1", 1000), nil)
				b.EXPECT().FindHighestBid(gomock.Any(), "auction1").Return(model.Bid{BidAmount: 1010}, nil)
				u.EXPECT().FindUserByID(gomock.Any(), "user1").Return(buyer, nil)
				b.EXPECT().InsertBid(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "auction_not_found",
			params: BidParams{AuctionID: "missing", BidAmount: 1010},
			mockSetup: func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore) {
				a.EXPECT().FindAuctionByID(gomock.Any(), "missing").Return(model.Auction{}, markerrors.ErrAuctionNotFound)
			},
			expectedErr: markerrors.ErrAuctionNotFound,
		},
		{
			name:   "pending_auction_rejects_bid",
			params: BidParams{AuctionID: "auction1", BidAmount: 1010},
			mockSetup: func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore) {
				pending := activeAuction("auction1", 1000)
				pending.Status = model.AuctionPending
				a.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(pending, nil)
			},
			expectedErr: markerrors.ErrAuctionNotActive,
		},
		{
			name:   "completed_auction_rejects_bid",
			params: BidParams{AuctionID: "auction1", BidAmount: 1010},
			mockSetup: func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore) {
				completed := activeAuction("auction1", 1000)
				completed.Status = model.AuctionCompleted
				a.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(completed, nil)
			},
			expectedErr: markerrors.ErrAuctionNotActive,
		},
		{
			name:   "winner_selected_auction_rejects_bid",
			params: BidParams{AuctionID: "auction1", BidAmount: 1010},
			mockSetup: func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore) {
				resolved := activeAuction("auction1", 1000)
				resolved.Status = model.AuctionWinnerSelected
				a.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(resolved, nil)
			},
			expectedErr: markerrors.ErrAuctionNotActive,
		},
		{
			// stored status still says active but the end date has
			// passed; the end-date check catches the stale record
			name:   "stale_active_status_past_end_date",
			params: BidParams{AuctionID: "auction1", BidAmount: 1010},
			mockSetup: func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore) {
				stale := activeAuction("auction1", 1000)
				stale.EndDate = time.Now().UTC().Add(-time.Minute)
				a.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(stale, nil)
			},
			expectedErr: markerrors.ErrAuctionEnded,
		},
		{
			name:   "store_write_failure_is_wrapped",
			params: BidParams{AuctionID: "auction1", BidAmount: 1010},
			mockSetup: func(a *repository.MockAuctionStore, b *repository.MockBidStore, u *repository.MockUserStore) {
				a.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(activeAuction("auction1", 1000), nil)
				b.EXPECT().FindHighestBid(gomock.Any(), "auction1").Return(model.Bid{}, markerrors.ErrNoBids)
				u.EXPECT().FindUserByID(gomock.Any(), "user1").Return(buyer, nil)
				b.EXPECT().InsertBid(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
			},
			expectedErr: nil, // wrapped store error, no sentinel to match
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auctions := repository.NewMockAuctionStore(ctrl)
			bids := repository.NewMockBidStore(ctrl)
			users := repository.NewMockUserStore(ctrl)
			service := NewAuctionService(auctions, bids, users, &fakeMailer{})

			tc.mockSetup(auctions, bids, users)

			bid, err := service.PlaceBid(context.Background(), tc.params, "user1")
			if tc.name == "store_write_failure_is_wrapped" {
				require.Error(t, err)
				return
			}
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				if tc.wantMinimum > 0 {
					var tooLow *markerrors.BidTooLowError
					require.ErrorAs(t, err, &tooLow)
					require.InDelta(t, tc.wantMinimum, tooLow.Minimum, 0.001)
				}
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, bid.ID)
			require.Equal(t, tc.params.BidAmount, bid.BidAmount)
			require.Equal(t, buyer.ID, bid.UserID)
			require.Equal(t, buyer.FullName, bid.UserName)
			require.Equal(t, buyer.CompanyName, bid.UserCompany)
		})
	}
}

// Tests the bid-too-low message surfaces the computed minimum
func TestAuctionService_PlaceBid_MinimumInMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auctions := repository.NewMockAuctionStore(ctrl)
	bids := repository.NewMockBidStore(ctrl)
	service := NewAuctionService(auctions, bids, repository.NewMockUserStore(ctrl), &fakeMailer{})

	auctions.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(activeAuction("auction1", 1000), nil)
	bids.EXPECT().FindHighestBid(gomock.Any(), "auction1").Return(model.Bid{}, markerrors.ErrNoBids)

	_, err := service.PlaceBid(context.Background(), BidParams{AuctionID: "auction1", BidAmount: 500}, "user1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "1010.00")
}

// Tests List status reconciliation and enrichment
func TestAuctionService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auctions := repository.NewMockAuctionStore(ctrl)
	bids := repository.NewMockBidStore(ctrl)
	service := NewAuctionService(auctions, bids, repository.NewMockUserStore(ctrl), &fakeMailer{})

	now := time.Now().UTC()
	started := model.Auction{ID: "a1", Status: model.AuctionPending, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)}
	ended := model.Auction{ID: "a2", Status: model.AuctionActive, StartDate: now.Add(-2 * time.Hour), EndDate: now.Add(-time.Hour)}
	upcoming := model.Auction{ID: "a3", Status: model.AuctionPending, StartDate: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour)}

	auctions.EXPECT().FindAllAuctions(gomock.Any()).Return([]model.Auction{started, ended, upcoming}, nil)

	// started flips to active, ended flips to completed; write-backs persist the change
	auctions.EXPECT().UpdateAuctionStatus(gomock.Any(), "a1", model.AuctionActive).Return(nil)
	auctions.EXPECT().UpdateAuctionStatus(gomock.Any(), "a2", model.AuctionCompleted).Return(nil)

	bids.EXPECT().FindHighestBid(gomock.Any(), "a1").Return(model.Bid{BidAmount: 1200}, nil)
	bids.EXPECT().CountBidsByAuction(gomock.Any(), "a1").Return(int64(3), nil)
	bids.EXPECT().FindHighestBid(gomock.Any(), "a2").Return(model.Bid{}, markerrors.ErrNoBids)
	bids.EXPECT().CountBidsByAuction(gomock.Any(), "a2").Return(int64(0), nil)
	bids.EXPECT().FindHighestBid(gomock.Any(), "a3").Return(model.Bid{}, markerrors.ErrNoBids)
	bids.EXPECT().CountBidsByAuction(gomock.Any(), "a3").Return(int64(0), nil)

	views, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)

	require.Equal(t, model.AuctionActive, views[0].Status)
	require.NotNil(t, views[0].CurrentHighestBid)
	require.Equal(t, 1200.0, *views[0].CurrentHighestBid)
	require.Equal(t, int64(3), views[0].TotalBids)

	require.Equal(t, model.AuctionCompleted, views[1].Status)
	require.Nil(t, views[1].CurrentHighestBid)

	require.Equal(t, model.AuctionPending, views[2].Status)
}

// A failed bid lookup degrades one listing entry instead of failing the call
func TestAuctionService_List_PartialEnrichment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auctions := repository.NewMockAuctionStore(ctrl)
	bids := repository.NewMockBidStore(ctrl)
	service := NewAuctionService(auctions, bids, repository.NewMockUserStore(ctrl), &fakeMailer{})

	now := time.Now().UTC()
	broken := model.Auction{ID: "a1", Status: model.AuctionActive, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)}
	healthy := model.Auction{ID: "a2", Status: model.AuctionActive, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)}

	auctions.EXPECT().FindAllAuctions(gomock.Any()).Return([]model.Auction{broken, healthy}, nil)
	bids.EXPECT().FindHighestBid(gomock.Any(), "a1").Return(model.Bid{}, errors.New("store unavailable"))
	bids.EXPECT().FindHighestBid(gomock.Any(), "a2").Return(model.Bid{BidAmount: 900}, nil)
	bids.EXPECT().CountBidsByAuction(gomock.Any(), "a2").Return(int64(1), nil)

	views, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Nil(t, views[0].CurrentHighestBid)
	require.Zero(t, views[0].TotalBids)
	require.NotNil(t, views[1].CurrentHighestBid)
}

// A failed status write-back still returns the derived status
func TestAuctionService_Get_WriteBackFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auctions := repository.NewMockAuctionStore(ctrl)
	bids := repository.NewMockBidStore(ctrl)
	service := NewAuctionService(auctions, bids, repository.NewMockUserStore(ctrl), &fakeMailer{})

	now := time.Now().UTC()
	stale := model.Auction{ID: "a1", Status: model.AuctionPending, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)}

	auctions.EXPECT().FindAuctionByID(gomock.Any(), "a1").Return(stale, nil)
	auctions.EXPECT().UpdateAuctionStatus(gomock.Any(), "a1", model.AuctionActive).Return(errors.New("write failed"))
	bids.EXPECT().FindHighestBid(gomock.Any(), "a1").Return(model.Bid{}, markerrors.ErrNoBids)
	bids.EXPECT().CountBidsByAuction(gomock.Any(), "a1").Return(int64(0), nil)

	view, err := service.Get(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, model.AuctionActive, view.Status)
}

// Tests SelectWinner
func TestAuctionService_SelectWinner(t *testing.T) {
	winner := model.User{ID: "user1", FullName: "Taras Melnyk", Email: "taras@agrotrade.ua"}

	completedAuction := func() model.Auction {
		now := time.Now().UTC()
		return model.Auction{
			ID:        "auction1",
			GrainType: "Wheat",
			Quantity:  500,
			StartDate: now.Add(-2 * time.Hour),
			EndDate:   now.Add(-time.Hour),
			Status:    model.AuctionCompleted,
		}
	}

	t.Run("success_notifies_winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auctions := repository.NewMockAuctionStore(ctrl)
		bids := repository.NewMockBidStore(ctrl)
		users := repository.NewMockUserStore(ctrl)
		mailer := &fakeMailer{}
		service := NewAuctionService(auctions, bids, users, mailer)

		auctions.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(completedAuction(), nil)
		bids.EXPECT().FindBidByID(gomock.Any(), "bid1").Return(model.Bid{ID: "bid1", AuctionID: "auction1", UserID: "user1", BidAmount: 1500}, nil)
		auctions.EXPECT().SetAuctionWinner(gomock.Any(), "auction1", "user1").Return(nil)
		users.EXPECT().FindUserByID(gomock.Any(), "user1").Return(winner, nil)

		bid, err := service.SelectWinner(context.Background(), "auction1", "bid1")
		require.NoError(t, err)
		require.Equal(t, "user1", bid.UserID)
		require.Len(t, mailer.sent, 1)
		require.Equal(t, winner.Email, mailer.sent[0].to)
		require.Contains(t, mailer.sent[0].body, "Wheat")
		require.Contains(t, mailer.sent[0].body, "1500.00")
	})

	t.Run("auction_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auctions := repository.NewMockAuctionStore(ctrl)
		service := NewAuctionService(auctions, repository.NewMockBidStore(ctrl), repository.NewMockUserStore(ctrl), &fakeMailer{})

		auctions.EXPECT().FindAuctionByID(gomock.Any(), "missing").Return(model.Auction{}, markerrors.ErrAuctionNotFound)

		_, err := service.SelectWinner(context.Background(), "missing", "bid1")
		require.ErrorIs(t, err, markerrors.ErrAuctionNotFound)
	})

	t.Run("auction_still_active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auctions := repository.NewMockAuctionStore(ctrl)
		service := NewAuctionService(auctions, repository.NewMockBidStore(ctrl), repository.NewMockUserStore(ctrl), &fakeMailer{})

		auctions.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(activeAuction("auction1", 1000), nil)

		_, err := service.SelectWinner(context.Background(), "auction1", "bid1")
		require.ErrorIs(t, err, markerrors.ErrAuctionNotComplete)
	})

	t.Run("second_call_rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auctions := repository.NewMockAuctionStore(ctrl)
		service := NewAuctionService(auctions, repository.NewMockBidStore(ctrl), repository.NewMockUserStore(ctrl), &fakeMailer{})

		resolved := completedAuction()
		resolved.Status = model.AuctionWinnerSelected
		auctions.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(resolved, nil)

		_, err := service.SelectWinner(context.Background(), "auction1", "bid1")
		require.ErrorIs(t, err, markerrors.ErrAuctionNotComplete)
	})

	t.Run("bid_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auctions := repository.NewMockAuctionStore(ctrl)
		bids := repository.NewMockBidStore(ctrl)
		service := NewAuctionService(auctions, bids, repository.NewMockUserStore(ctrl), &fakeMailer{})

		auctions.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(completedAuction(), nil)
		bids.EXPECT().FindBidByID(gomock.Any(), "missing").Return(model.Bid{}, markerrors.ErrBidNotFound)

		_, err := service.SelectWinner(context.Background(), "auction1", "missing")
		require.ErrorIs(t, err, markerrors.ErrBidNotFound)
	})

	t.Run("bid_from_another_auction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auctions := repository.NewMockAuctionStore(ctrl)
		bids := repository.NewMockBidStore(ctrl)
		service := NewAuctionService(auctions, bids, repository.NewMockUserStore(ctrl), &fakeMailer{})

		auctions.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(completedAuction(), nil)
		bids.EXPECT().FindBidByID(gomock.Any(), "bid9").Return(model.Bid{ID: "bid9", AuctionID: "other", UserID: "user1"}, nil)

		_, err := service.SelectWinner(context.Background(), "auction1", "bid9")
		require.ErrorIs(t, err, markerrors.ErrBidNotFound)
	})

	t.Run("mail_failure_does_not_fail_resolution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auctions := repository.NewMockAuctionStore(ctrl)
		bids := repository.NewMockBidStore(ctrl)
		users := repository.NewMockUserStore(ctrl)
		mailer := &fakeMailer{err: errors.New("smtp unavailable")}
		service := NewAuctionService(auctions, bids, users, mailer)

		auctions.EXPECT().FindAuctionByID(gomock.Any(), "auction1").Return(completedAuction(), nil)
		bids.EXPECT().FindBidByID(gomock.Any(), "bid1").Return(model.Bid{ID: "bid1", AuctionID: "auction1", UserID: "user1", BidAmount: 1500}, nil)
		auctions.EXPECT().SetAuctionWinner(gomock.Any(), "auction1", "user1").Return(nil)
		users.EXPECT().FindUserByID(gomock.Any(), "user1").Return(winner, nil)

		_, err := service.SelectWinner(context.Background(), "auction1", "bid1")
		require.NoError(t, err)
	})
}

// Tests ListBids ordering passthrough
func TestAuctionService_ListBids(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bids := repository.NewMockBidStore(ctrl)
	service := NewAuctionService(repository.NewMockAuctionStore(ctrl), bids, repository.NewMockUserStore(ctrl), &fakeMailer{})

	stored := []model.Bid{
		{ID: "bid2", AuctionID: "auction1", BidAmount: 1500},
		{ID: "bid1", AuctionID: "auction1", BidAmount: 1200},
	}
	bids.EXPECT().FindBidsByAuction(gomock.Any(), "auction1").Return(stored, nil)

	got, err := service.ListBids(context.Background(), "auction1")
	require.NoError(t, err)
	require.Equal(t, stored, got)
}
