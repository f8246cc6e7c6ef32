package market_test

import (
	"context"
	"testing"

	"github.com/playmixer/goldmarket/internal/adapters/store/errstore"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"github.com/playmixer/goldmarket/internal/core/market"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMarket_CreateProduct(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		product model.Product
		slug    string
		wantErr error
	}{
		{
			name:    "correct",
			product: model.Product{Name: "100K Gold (EU)", Price: 1000, CategoryID: 1},
			slug:    "100k-gold-eu",
		},
		{
			name:    "empty name",
			product: model.Product{Price: 1000, CategoryID: 1},
			wantErr: market.ErrNameNotValid,
		},
		{
			name:    "negative price",
			product: model.Product{Name: "gold", Price: -1, CategoryID: 1},
			wantErr: market.ErrPriceNotValid,
		},
		{
			name:    "discount out of range",
			product: model.Product{Name: "gold", Price: 1000, Discount: 150, CategoryID: 1},
			wantErr: market.ErrDiscountNotValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mart, storeMock, _ := newMarket(t)

			if tt.wantErr == nil {
				storeMock.EXPECT().
					GetCategory(ctx, uint(1)).
					Return(model.Category{ID: 1, Name: "gold"}, nil).
					Times(1)
				storeMock.EXPECT().
					CreateProduct(ctx, gomock.Any()).
					Return(nil).
					Times(1)
			}

			product := tt.product
			err := mart.CreateProduct(ctx, &product)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.slug, product.Slug)
			assert.NotEmpty(t, product.UUID.String())
		})
	}
}

func TestMarket_CreateProduct_UnknownCategory(t *testing.T) {
	ctx := context.Background()

	mart, storeMock, _ := newMarket(t)

	storeMock.EXPECT().
		GetCategory(ctx, uint(9)).
		Return(model.Category{}, errstore.ErrNotFoundData).
		Times(1)

	product := model.Product{Name: "gold", Price: 1000, CategoryID: 9}
	err := mart.CreateProduct(ctx, &product)
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)
}

func TestMarket_CreateCategory(t *testing.T) {
	ctx := context.Background()

	mart, storeMock, _ := newMarket(t)

	parentID := uint(1)
	storeMock.EXPECT().
		GetCategory(ctx, parentID).
		Return(model.Category{ID: 1, Name: "gold"}, nil).
		Times(1)
	storeMock.EXPECT().
		CreateCategory(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	category := model.Category{Name: "eu realms", ParentID: &parentID}
	assert.NoError(t, mart.CreateCategory(ctx, &category))
}

func TestMarket_CreateCategory_EmptyName(t *testing.T) {
	ctx := context.Background()

	mart, _, _ := newMarket(t)

	err := mart.CreateCategory(ctx, &model.Category{})
	assert.ErrorIs(t, err, market.ErrNameNotValid)
}

func TestMarket_CreateExpansion(t *testing.T) {
	ctx := context.Background()

	mart, storeMock, _ := newMarket(t)

	storeMock.EXPECT().
		CreateExpansion(ctx, gomock.Any()).
		Return(errstore.ErrNameNotUnique).
		Times(1)

	err := mart.CreateExpansion(ctx, &model.Expansion{Name: "classic"})
	assert.ErrorIs(t, err, errstore.ErrNameNotUnique)

	err = mart.CreateExpansion(ctx, &model.Expansion{})
	assert.ErrorIs(t, err, market.ErrNameNotValid)
}
