package market_test

import (
	"context"
	"strings"
	"testing"

	"github.com/playmixer/goldmarket/internal/adapters/store/errstore"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"github.com/playmixer/goldmarket/internal/core/market"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMarket_CreateOrder(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		order model.Order
		valid bool
	}{
		{
			name: "correct",
			order: model.Order{
				Title: "gold for raid", Buyer: "buyer#1234",
				Faction: model.FactionHorde, Region: model.RegionEU,
				MinReserve: 100, PricePer1K: 500, Amount: 10000,
			},
			valid: true,
		},
		{
			name: "empty title",
			order: model.Order{
				Buyer:   "buyer#1234",
				Faction: model.FactionHorde, Region: model.RegionEU,
				MinReserve: 100, PricePer1K: 500, Amount: 10000,
			},
		},
		{
			name: "min reserve above amount",
			order: model.Order{
				Title: "gold", Buyer: "buyer#1234",
				Faction: model.FactionHorde, Region: model.RegionEU,
				MinReserve: 20000, PricePer1K: 500, Amount: 10000,
			},
		},
		{
			name: "unknown faction",
			order: model.Order{
				Title: "gold", Buyer: "buyer#1234",
				Faction: "neutral", Region: model.RegionEU,
				MinReserve: 100, PricePer1K: 500, Amount: 10000,
			},
		},
		{
			name: "zero price",
			order: model.Order{
				Title: "gold", Buyer: "buyer#1234",
				Faction: model.FactionAlliance, Region: model.RegionUS,
				MinReserve: 100, PricePer1K: 0, Amount: 10000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mart, storeMock, _ := newMarket(t)

			if tt.valid {
				storeMock.EXPECT().
					CreateOrder(ctx, gomock.Any()).
					Return(nil).
					Times(1)
			}

			order := tt.order
			err := mart.CreateOrder(ctx, &order)
			if !tt.valid {
				assert.ErrorIs(t, err, market.ErrOrderNotValid)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, model.OrderStateAvailable, order.Status)
			assert.Equal(t, order.Amount, order.Rest)
			assert.NotEmpty(t, order.UUID.String())
		})
	}
}

func TestMarket_SubmitOffer(t *testing.T) {
	ctx := context.Background()
	order := model.Order{
		ID: 1, MinReserve: 100, PricePer1K: 500, Amount: 10000, Rest: 1000,
	}

	tests := []struct {
		name     string
		quantity int
		total    int
		valid    bool
	}{
		{
			name:     "correct",
			quantity: 300,
			total:    150,
			valid:    true,
		},
		{
			name:     "whole rest",
			quantity: 1000,
			total:    500,
			valid:    true,
		},
		{
			name:     "below min reserve",
			quantity: 50,
		},
		{
			name:     "above rest",
			quantity: 1100,
		},
		{
			name:     "not a multiple of min reserve",
			quantity: 250,
		},
		{
			name:     "zero",
			quantity: 0,
		},
		{
			name:     "negative",
			quantity: -100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mart, storeMock, _ := newMarket(t)

			storeMock.EXPECT().
				GetOrder(ctx, uint(1)).
				Return(order, nil).
				Times(1)
			if tt.valid {
				storeMock.EXPECT().
					CreateOfferAndReserve(ctx, gomock.Any()).
					Return(nil).
					Times(1)
			}

			offer, err := mart.SubmitOffer(ctx, 1, 2, tt.quantity)
			if !tt.valid {
				assert.ErrorIs(t, err, market.ErrInvalidQuantity)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.quantity, offer.Quantity)
			assert.Equal(t, tt.total, offer.TotalPrice)
			assert.Equal(t, order.PricePer1K, offer.PricePer1K)
			assert.Equal(t, model.OfferStatePending, offer.Status)
		})
	}
}

func TestMarket_SubmitOffer_RestRace(t *testing.T) {
	ctx := context.Background()

	mart, storeMock, _ := newMarket(t)

	storeMock.EXPECT().
		GetOrder(ctx, uint(1)).
		Return(model.Order{ID: 1, MinReserve: 100, PricePer1K: 500, Amount: 10000, Rest: 1000}, nil).
		Times(1)
	storeMock.EXPECT().
		CreateOfferAndReserve(ctx, gomock.Any()).
		Return(errstore.ErrOrderRestNotEnough).
		Times(1)

	_, err := mart.SubmitOffer(ctx, 1, 2, 1000)
	assert.ErrorIs(t, err, market.ErrInvalidQuantity)
}

func TestMarket_ActiveOffer(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		offer  model.Offer
		err    error
		active bool
	}{
		{
			name:   "pending",
			offer:  model.Offer{ID: 1, Status: model.OfferStatePending},
			active: true,
		},
		{
			name:   "awaiting payment",
			offer:  model.Offer{ID: 1, Status: model.OfferStateAwaitingPayment},
			active: true,
		},
		{
			name:  "not approved",
			offer: model.Offer{ID: 1, Status: model.OfferStateNotApproved},
		},
		{
			name: "no offers",
			err:  errstore.ErrNotFoundData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mart, storeMock, _ := newMarket(t)

			storeMock.EXPECT().
				LastOfferBySeller(ctx, uint(1), uint(2)).
				Return(tt.offer, tt.err).
				Times(1)

			_, active, err := mart.ActiveOffer(ctx, 1, 2)
			assert.NoError(t, err)
			assert.Equal(t, tt.active, active)
		})
	}
}

func TestMarket_TransitionOffer(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		from  model.OfferStatus
		to    model.OfferStatus
		valid bool
	}{
		{name: "pending to review", from: model.OfferStatePending, to: model.OfferStateReview, valid: true},
		{name: "review to awaiting payment", from: model.OfferStateReview, to: model.OfferStateAwaitingPayment, valid: true},
		{name: "review to not approved", from: model.OfferStateReview, to: model.OfferStateNotApproved, valid: true},
		{name: "awaiting payment to paid", from: model.OfferStateAwaitingPayment, to: model.OfferStatePaid, valid: true},
		{name: "pending to paid", from: model.OfferStatePending, to: model.OfferStatePaid},
		{name: "paid is terminal", from: model.OfferStatePaid, to: model.OfferStateReview},
		{name: "not approved is terminal", from: model.OfferStateNotApproved, to: model.OfferStateReview},
		{name: "backwards", from: model.OfferStateReview, to: model.OfferStatePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mart, storeMock, _ := newMarket(t)

			storeMock.EXPECT().
				GetOffer(ctx, uint(1)).
				Return(model.Offer{ID: 1, Status: tt.from}, nil).
				Times(1)
			if tt.valid {
				storeMock.EXPECT().
					UpdateOfferStatus(ctx, uint(1), tt.to).
					Return(nil).
					Times(1)
			}

			err := mart.TransitionOffer(ctx, 1, tt.to)
			if !tt.valid {
				assert.ErrorIs(t, err, market.ErrInvalidTransition)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMarket_AttachProof(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name        string
		contentType string
		size        int64
		offerErr    error
		wantErr     error
	}{
		{
			name:        "correct",
			contentType: "video/mp4",
			size:        1024,
		},
		{
			name:        "wrong type",
			contentType: "image/png",
			size:        1024,
			wantErr:     market.ErrInvalidFile,
		},
		{
			name:        "too big",
			contentType: "video/mp4",
			size:        31 << 20,
			wantErr:     market.ErrInvalidFile,
		},
		{
			name:        "no active offer",
			contentType: "video/webm",
			size:        1024,
			offerErr:    errstore.ErrNotFoundData,
			wantErr:     market.ErrNoActiveOffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mart, storeMock, _ := newMarket(t)

			if tt.wantErr == nil || tt.offerErr != nil {
				storeMock.EXPECT().
					LastOfferBySeller(ctx, uint(1), uint(2)).
					Return(model.Offer{ID: 10, Status: model.OfferStatePending}, tt.offerErr).
					Times(1)
			}
			if tt.wantErr == nil {
				storeMock.EXPECT().
					AttachOfferProof(ctx, uint(10), gomock.Any()).
					Return(nil).
					Times(1)
			}

			file := market.ProofFile{
				Data:        strings.NewReader("video data"),
				Name:        "proof.mp4",
				ContentType: tt.contentType,
				Size:        tt.size,
			}
			err := mart.AttachProof(ctx, 1, 2, file)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
