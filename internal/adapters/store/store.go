package store

import (
	"context"
	"fmt"

	"github.com/playmixer/goldmarket/internal/adapters/store/database"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"go.uber.org/zap"
)

type Config struct {
	Database *database.Config
}

type Store interface {
	RegisterUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByLogin(ctx context.Context, login string) (model.User, error)
	GetUserByID(ctx context.Context, userID uint) (model.User, error)

	Products(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID uint) (model.Product, error)
	GetProductsByIDs(ctx context.Context, productIDs []uint) ([]*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID uint) error

	Categories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, categoryID uint) (model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, categoryID uint) error

	Expansions(ctx context.Context) ([]*model.Expansion, error)
	CreateExpansion(ctx context.Context, expansion *model.Expansion) error
	CreateRealm(ctx context.Context, realm *model.Realm) error

	Orders(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error)
	GetOrder(ctx context.Context, orderID uint) (model.Order, error)
	CreateOrder(ctx context.Context, order *model.Order) error
	CreateOfferAndReserve(ctx context.Context, offer *model.Offer) error
	LastOfferBySeller(ctx context.Context, orderID, sellerID uint) (model.Offer, error)
	AttachOfferProof(ctx context.Context, offerID uint, path string) error
	GetOffer(ctx context.Context, offerID uint) (model.Offer, error)
	UpdateOfferStatus(ctx context.Context, offerID uint, status model.OfferStatus) error

	CreateInvoiceWithItems(ctx context.Context, invoice *model.Invoice, items []*model.InvoiceItem) error
	CreatePayment(ctx context.Context, payment *model.Payment) error
	SetPaymentAuthority(ctx context.Context, paymentID uint, authority string) error
	GetPendingPaymentByAuthority(ctx context.Context, authority string) (model.Payment, error)
	FinishPayment(ctx context.Context, paymentID uint, status model.PaymentStatus, ref string) error
}

func New(ctx context.Context, cfg *Config, log *zap.Logger) (Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
