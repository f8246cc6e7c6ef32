package market_test

import (
	"context"
	"testing"

	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"github.com/playmixer/goldmarket/internal/core/market"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMarket_BuildInvoice(t *testing.T) {
	ctx := context.Background()

	mart, storeMock, _ := newMarket(t)

	cart := market.Cart{"1": 2, "2": 1}
	storeMock.EXPECT().
		GetProductsByIDs(ctx, gomock.Any()).
		Return([]*model.Product{
			{ID: 1, Name: "100k gold", Price: 1000, Discount: 10},
			{ID: 2, Name: "boost", Price: 500},
		}, nil).
		Times(1)
	storeMock.EXPECT().
		CreateInvoiceWithItems(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invoice *model.Invoice, items []*model.InvoiceItem) error {
			invoice.ID = 5
			assert.Len(t, items, 2)
			return nil
		}).
		Times(1)

	invoice, err := mart.BuildInvoice(ctx, 1, cart, "buyer#1234", "two items")
	assert.NoError(t, err)
	assert.Equal(t, 2300, invoice.Total)
	assert.Equal(t, uint(5), invoice.ID)
	assert.Equal(t, 0.09, invoice.VAT)
	assert.Equal(t, "buyer#1234", invoice.BattleTag)
}

func TestMarket_BuildInvoice_EmptyCart(t *testing.T) {
	ctx := context.Background()

	mart, _, _ := newMarket(t)

	_, err := mart.BuildInvoice(ctx, 1, market.Cart{}, "", "")
	assert.ErrorIs(t, err, market.ErrEmptyCart)
}

func TestMarket_BuildInvoice_MissingProduct(t *testing.T) {
	ctx := context.Background()

	mart, storeMock, _ := newMarket(t)

	cart := market.Cart{"1": 1, "99": 1}
	storeMock.EXPECT().
		GetProductsByIDs(ctx, gomock.Any()).
		Return([]*model.Product{
			{ID: 1, Name: "100k gold", Price: 1000},
		}, nil).
		Times(1)

	_, err := mart.BuildInvoice(ctx, 1, cart, "", "")
	assert.ErrorIs(t, err, market.ErrProductNotFound)
}

func TestMarket_DerivePayment(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		invoice model.Invoice
		total   int
	}{
		{
			name:    "vat only",
			invoice: model.Invoice{ID: 5, Total: 1000, VAT: 0.09},
			total:   1090,
		},
		{
			name:    "discount and vat",
			invoice: model.Invoice{ID: 5, Total: 1000, Discount: 0.1, VAT: 0.09},
			total:   981,
		},
		{
			name:    "rounding",
			invoice: model.Invoice{ID: 5, Total: 333, VAT: 0.09},
			total:   363,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mart, storeMock, _ := newMarket(t)

			storeMock.EXPECT().
				CreatePayment(ctx, gomock.Any()).
				Return(nil).
				Times(1)

			payment, err := mart.DerivePayment(ctx, tt.invoice, "10.0.0.1")
			assert.NoError(t, err)
			assert.Equal(t, tt.total, payment.Total)
			assert.Equal(t, tt.invoice.ID, payment.InvoiceID)
			assert.Equal(t, model.PaymentStatePending, payment.Status)
		})
	}
}

func TestMarket_Checkout(t *testing.T) {
	ctx := context.Background()

	mart, storeMock, gatewayMock := newMarket(t)

	cart := market.Cart{"1": 2}
	storeMock.EXPECT().
		GetUserByID(ctx, uint(1)).
		Return(model.User{ID: 1, Email: "user@example.com", Phone: "+7 900 000-00-00"}, nil).
		Times(1)
	storeMock.EXPECT().
		GetProductsByIDs(ctx, gomock.Any()).
		Return([]*model.Product{
			{ID: 1, Name: "100k gold", Price: 1000},
		}, nil).
		Times(1)
	storeMock.EXPECT().
		CreateInvoiceWithItems(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invoice *model.Invoice, _ []*model.InvoiceItem) error {
			invoice.ID = 5
			return nil
		}).
		Times(1)
	storeMock.EXPECT().
		CreatePayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, payment *model.Payment) error {
			payment.ID = 7
			assert.Equal(t, 2180, payment.Total)
			return nil
		}).
		Times(1)
	gatewayMock.EXPECT().
		Request(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req market.GatewayRequest) (string, error) {
			assert.Equal(t, 2180, req.Amount)
			assert.Equal(t, "user@example.com", req.Email)
			assert.Equal(t, "79000000000", req.Mobile)
			return "A0001", nil
		}).
		Times(1)
	storeMock.EXPECT().
		SetPaymentAuthority(ctx, uint(7), "A0001").
		Return(nil).
		Times(1)
	gatewayMock.EXPECT().
		StartPayURL("A0001").
		Return("https://sandbox.zarinpal.com/pg/StartPay/A0001").
		Times(1)

	redirectURL, err := mart.Checkout(ctx, 1, cart, "buyer#1234", "", "http://localhost:8080/api/payment/verify", "10.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, "https://sandbox.zarinpal.com/pg/StartPay/A0001", redirectURL)
	assert.Len(t, cart, 0)
}

func TestMarket_Checkout_GatewayRejected(t *testing.T) {
	ctx := context.Background()

	mart, storeMock, gatewayMock := newMarket(t)

	cart := market.Cart{"1": 1}
	storeMock.EXPECT().
		GetUserByID(ctx, uint(1)).
		Return(model.User{ID: 1}, nil).
		Times(1)
	storeMock.EXPECT().
		GetProductsByIDs(ctx, gomock.Any()).
		Return([]*model.Product{{ID: 1, Name: "100k gold", Price: 1000}}, nil).
		Times(1)
	storeMock.EXPECT().
		CreateInvoiceWithItems(ctx, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	storeMock.EXPECT().
		CreatePayment(ctx, gomock.Any()).
		Return(nil).
		Times(1)
	gatewayMock.EXPECT().
		Request(ctx, gomock.Any()).
		Return("", &market.GatewayError{Message: "merchant id is not valid"}).
		Times(1)

	_, err := mart.Checkout(ctx, 1, cart, "", "", "http://localhost:8080/api/payment/verify", "10.0.0.1")
	var gwErr *market.GatewayError
	assert.ErrorAs(t, err, &gwErr)
	assert.Len(t, cart, 0)
}
