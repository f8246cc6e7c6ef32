package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/playmixer/goldmarket/internal/adapters/store/errstore"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	var err error
	s := &Store{
		log: zap.NewNop(),
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	s.db = db.WithContext(ctx)

	for _, opt := range options {
		opt(s)
	}

	err = s.db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Expansion{},
		&model.Realm{},
		&model.Order{},
		&model.Offer{},
		&model.Invoice{},
		&model.InvoiceItem{},
		&model.Payment{},
	)

	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var sqlError *pgconn.PgError
	return errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation
}

func (s *Store) RegisterUser(ctx context.Context, user model.User) (model.User, error) {
	tx := s.db.WithContext(ctx)
	if err := tx.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return user, errstore.ErrLoginNotUnique
		}
		return user, fmt.Errorf("failed save user: %w", err)
	}

	return user, nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (model.User, error) {
	tx := s.db.WithContext(ctx)
	user := model.User{}
	result := tx.Where(&model.User{Login: login}).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", result.Error)
	}

	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, userID uint) (model.User, error) {
	tx := s.db.WithContext(ctx)
	user := model.User{}
	if err := tx.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errstore.ErrNotFoundData
		}
		return user, fmt.Errorf("failed get user: %w", err)
	}

	return user, nil
}

func (s *Store) Products(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
	products := []*model.Product{}
	tx := s.db.WithContext(ctx).Order("created_at desc")
	if filter.CategoryID != 0 {
		tx = tx.Where(&model.Product{CategoryID: filter.CategoryID})
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit).Offset(filter.Page * filter.Limit)
	}
	if err := tx.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed get products: %w", err)
	}

	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, productID uint) (model.Product, error) {
	product := model.Product{}
	if err := s.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product, errstore.ErrNotFoundData
		}
		return product, fmt.Errorf("failed get product: %w", err)
	}

	return product, nil
}

func (s *Store) GetProductsByIDs(ctx context.Context, productIDs []uint) ([]*model.Product, error) {
	products := []*model.Product{}
	if err := s.db.WithContext(ctx).Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed get products by ids: %w", err)
	}

	return products, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *model.Product) error {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrNameNotUnique
		}
		return fmt.Errorf("failed create product: %w", err)
	}

	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, product *model.Product) error {
	result := s.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", product.ID).
		Select("Name", "Slug", "Description", "CategoryID", "Price", "Count", "Discount", "Enabled").
		Updates(product)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed update product: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, productID uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Product{}, productID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed delete product: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (s *Store) Categories(ctx context.Context) ([]*model.Category, error) {
	categories := []*model.Category{}
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed get categories: %w", err)
	}

	return categories, nil
}

func (s *Store) GetCategory(ctx context.Context, categoryID uint) (model.Category, error) {
	category := model.Category{}
	if err := s.db.WithContext(ctx).First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category, errstore.ErrNotFoundData
		}
		return category, fmt.Errorf("failed get category: %w", err)
	}

	return category, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *model.Category) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed check category name: %w", err)
		}
		if count > 0 {
			return errstore.ErrNameNotUnique
		}
		if err := tx.Create(category).Error; err != nil {
			return fmt.Errorf("failed create category: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrNameNotUnique) {
			return errstore.ErrNameNotUnique
		}
		return fmt.Errorf("failed complete transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, category *model.Category) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Category{}).
			Where("name = ? AND id <> ?", category.Name, category.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed check category name: %w", err)
		}
		if count > 0 {
			return errstore.ErrNameNotUnique
		}

		// walk up from the new parent, the category itself must not appear
		parentID := category.ParentID
		for parentID != nil {
			if *parentID == category.ID {
				return errstore.ErrCategoryCycle
			}
			parent := model.Category{}
			if err := tx.First(&parent, *parentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errstore.ErrNotFoundData
				}
				return fmt.Errorf("failed get parent category: %w", err)
			}
			parentID = parent.ParentID
		}

		result := tx.Model(&model.Category{}).Where("id = ?", category.ID).
			Select("Name", "ParentID").
			Updates(category)
		if err := result.Error; err != nil {
			return fmt.Errorf("failed update category: %w", err)
		}
		if result.RowsAffected == 0 {
			return errstore.ErrNotFoundData
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrNameNotUnique) ||
			errors.Is(err, errstore.ErrCategoryCycle) ||
			errors.Is(err, errstore.ErrNotFoundData) {
			return err
		}
		return fmt.Errorf("failed complete transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, categoryID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var products int64
		if err := tx.Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&products).Error; err != nil {
			return fmt.Errorf("failed count products: %w", err)
		}
		var children int64
		if err := tx.Model(&model.Category{}).Where("parent_id = ?", categoryID).Count(&children).Error; err != nil {
			return fmt.Errorf("failed count child categories: %w", err)
		}
		if products > 0 || children > 0 {
			return errstore.ErrCategoryInUse
		}

		result := tx.Delete(&model.Category{}, categoryID)
		if err := result.Error; err != nil {
			return fmt.Errorf("failed delete category: %w", err)
		}
		if result.RowsAffected == 0 {
			return errstore.ErrNotFoundData
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrCategoryInUse) || errors.Is(err, errstore.ErrNotFoundData) {
			return err
		}
		return fmt.Errorf("failed complete transaction: %w", err)
	}

	return nil
}

func (s *Store) Expansions(ctx context.Context) ([]*model.Expansion, error) {
	expansions := []*model.Expansion{}
	if err := s.db.WithContext(ctx).Order("name").Find(&expansions).Error; err != nil {
		return nil, fmt.Errorf("failed get expansions: %w", err)
	}

	return expansions, nil
}

func (s *Store) CreateExpansion(ctx context.Context, expansion *model.Expansion) error {
	if err := s.db.WithContext(ctx).Create(expansion).Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrNameNotUnique
		}
		return fmt.Errorf("failed create expansion: %w", err)
	}

	return nil
}

func (s *Store) CreateRealm(ctx context.Context, realm *model.Realm) error {
	if err := s.db.WithContext(ctx).Create(realm).Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrNameNotUnique
		}
		return fmt.Errorf("failed create realm: %w", err)
	}

	return nil
}

func (s *Store) Orders(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error) {
	orders := []*model.Order{}
	tx := s.db.WithContext(ctx).Preload("Expansions").Preload("Realms").Order("created_at desc")
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Faction != "" {
		tx = tx.Where("faction = ?", filter.Faction)
	}
	if filter.Region != "" {
		tx = tx.Where("region = ?", filter.Region)
	}
	if filter.ExpansionID != 0 {
		tx = tx.Joins("JOIN order_expansions ON order_expansions.order_id = orders.id").
			Where("order_expansions.expansion_id = ?", filter.ExpansionID)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit).Offset(filter.Page * filter.Limit)
	}
	if err := tx.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed get orders: %w", err)
	}

	return orders, nil
}

func (s *Store) GetOrder(ctx context.Context, orderID uint) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).Preload("Expansions").Preload("Realms").First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, errstore.ErrNotFoundData
		}
		return order, fmt.Errorf("failed get order: %w", err)
	}

	return order, nil
}

func (s *Store) CreateOrder(ctx context.Context, order *model.Order) error {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed create order: %w", err)
	}

	return nil
}

// CreateOfferAndReserve couples the rest decrement with the offer insert.
// The order row is locked for the whole transaction so two competing
// sellers never observe the same pre-decrement rest.
func (s *Store) CreateOfferAndReserve(ctx context.Context, offer *model.Offer) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := model.Order{}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, offer.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed lock order: %w", err)
		}

		if offer.Quantity > order.Rest {
			return errstore.ErrOrderRestNotEnough
		}

		order.Rest -= offer.Quantity
		if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).Update("rest", order.Rest).Error; err != nil {
			return fmt.Errorf("failed update order rest: %w", err)
		}

		if err := tx.Create(offer).Error; err != nil {
			return fmt.Errorf("failed create offer: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrOrderRestNotEnough) || errors.Is(err, errstore.ErrNotFoundData) {
			return err
		}
		return fmt.Errorf("failed complete transaction: %w", err)
	}

	return nil
}

func (s *Store) LastOfferBySeller(ctx context.Context, orderID, sellerID uint) (model.Offer, error) {
	offer := model.Offer{}
	err := s.db.WithContext(ctx).
		Where(&model.Offer{OrderID: orderID, SellerID: sellerID}).
		Order("id desc").
		First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return offer, errstore.ErrNotFoundData
		}
		return offer, fmt.Errorf("failed get offer: %w", err)
	}

	return offer, nil
}

func (s *Store) AttachOfferProof(ctx context.Context, offerID uint, path string) error {
	result := s.db.WithContext(ctx).Model(&model.Offer{}).Where("id = ?", offerID).
		Updates(map[string]interface{}{
			"proof":  path,
			"status": model.OfferStateReview,
		})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed attach proof: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (s *Store) GetOffer(ctx context.Context, offerID uint) (model.Offer, error) {
	offer := model.Offer{}
	if err := s.db.WithContext(ctx).First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return offer, errstore.ErrNotFoundData
		}
		return offer, fmt.Errorf("failed get offer: %w", err)
	}

	return offer, nil
}

func (s *Store) UpdateOfferStatus(ctx context.Context, offerID uint, status model.OfferStatus) error {
	result := s.db.WithContext(ctx).Model(&model.Offer{}).Where("id = ?", offerID).
		Update("status", status)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed update offer status: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

// CreateInvoiceWithItems persists the invoice and all its items as one
// transaction, the bulk insert never partially succeeds.
func (s *Store) CreateInvoiceWithItems(ctx context.Context, invoice *model.Invoice, items []*model.InvoiceItem) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return fmt.Errorf("failed create invoice: %w", err)
		}
		for _, item := range items {
			item.InvoiceID = invoice.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed create invoice items: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed complete transaction: %w", err)
	}

	return nil
}

func (s *Store) CreatePayment(ctx context.Context, payment *model.Payment) error {
	if err := s.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed create payment: %w", err)
	}

	return nil
}

func (s *Store) SetPaymentAuthority(ctx context.Context, paymentID uint, authority string) error {
	result := s.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ? AND status = ?", paymentID, model.PaymentStatePending).
		Update("authority", authority)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed set payment authority: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrPaymentNotPending
	}

	return nil
}

func (s *Store) GetPendingPaymentByAuthority(ctx context.Context, authority string) (model.Payment, error) {
	payment := model.Payment{}
	err := s.db.WithContext(ctx).
		Where(&model.Payment{Authority: authority, Status: model.PaymentStatePending}).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payment, errstore.ErrNotFoundData
		}
		return payment, fmt.Errorf("failed get payment: %w", err)
	}

	return payment, nil
}

// FinishPayment moves a pending payment to a terminal state. Payments
// already done or errored are left untouched.
func (s *Store) FinishPayment(ctx context.Context, paymentID uint, status model.PaymentStatus, ref string) error {
	values := map[string]interface{}{"status": status}
	if ref != "" {
		values["ref"] = ref
	}
	result := s.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ? AND status = ?", paymentID, model.PaymentStatePending).
		Updates(values)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed finish payment: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrPaymentNotPending
	}

	return nil
}
