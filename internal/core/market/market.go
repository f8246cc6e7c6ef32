package market

import (
	"context"
	"fmt"

	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"go.uber.org/zap"
)

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

// Gateway is the payment gateway boundary, substitutable in tests.
type Gateway interface {
	Request(ctx context.Context, req GatewayRequest) (authority string, err error)
	Verify(ctx context.Context, amount int, authority string) (GatewayVerify, error)
	StartPayURL(authority string) string
}

type GatewayRequest struct {
	CallbackURL string
	Description string
	Email       string
	Mobile      string
	Amount      int
}

type GatewayVerify struct {
	RefID   string
	Message string
	Code    int
}

type Config struct {
	UploadPath string `env:"UPLOAD_PATH" envDefault:"uploads"`
}

type Market struct {
	log     *zap.Logger
	cfg     *Config
	store   Store
	gateway Gateway
}

type option func(*Market)

func Logger(log *zap.Logger) option {
	return func(m *Market) {
		if log != nil {
			m.log = log
		}
	}
}

func New(cfg *Config, store Store, gateway Gateway, options ...option) *Market {
	m := &Market{
		log:     zap.NewNop(),
		cfg:     cfg,
		store:   store,
		gateway: gateway,
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

func (m *Market) Register(ctx context.Context, login, password, email, phone string) error {
	if err := validatePassword(password); err != nil {
		return fmt.Errorf("password invalidate: %w", err)
	}

	if err := validateLogin(login); err != nil {
		return fmt.Errorf("login invalidate: %w", err)
	}

	hashPass, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed hash password: %w", err)
	}

	_, err = m.store.RegisterUser(ctx, model.User{
		Login:        login,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashPass,
	})
	if err != nil {
		return fmt.Errorf("failed register user: %w", err)
	}

	return nil
}

func (m *Market) Authorization(ctx context.Context, login, password string) (model.User, error) {
	var user model.User
	var err error
	if err := validatePassword(password); err != nil {
		return user, fmt.Errorf("password invalidate: %w", err)
	}

	if err := validateLogin(login); err != nil {
		return user, fmt.Errorf("login invalidate: %w", err)
	}

	user, err = m.store.GetUserByLogin(ctx, login)
	if err != nil {
		return user, fmt.Errorf("failed getting user `%s`: %w", login, err)
	}

	if ok := checkPasswordHash(password, user.PasswordHash); !ok {
		return user, ErrPasswordNotEquale
	}

	return user, nil
}

func (m *Market) GetUser(ctx context.Context, userID uint) (model.User, error) {
	user, err := m.store.GetUserByID(ctx, userID)
	if err != nil {
		return user, fmt.Errorf("failed getting user: %w", err)
	}

	return user, nil
}
