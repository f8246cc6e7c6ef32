package market

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
)

func (m *Market) Products(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
	products, err := m.store.Products(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed getting products: %w", err)
	}
	return products, nil
}

func (m *Market) GetProduct(ctx context.Context, productID uint) (model.Product, error) {
	product, err := m.store.GetProduct(ctx, productID)
	if err != nil {
		return product, fmt.Errorf("failed getting product: %w", err)
	}
	return product, nil
}

func validateProduct(product *model.Product) error {
	if product.Name == "" {
		return ErrNameNotValid
	}
	if product.Price < 0 {
		return ErrPriceNotValid
	}
	if product.Discount < 0 || product.Discount > 100 {
		return ErrDiscountNotValid
	}
	return nil
}

func (m *Market) CreateProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if _, err := m.store.GetCategory(ctx, product.CategoryID); err != nil {
		return fmt.Errorf("failed getting category: %w", err)
	}

	product.UUID = uuid.New()
	product.Slug = slugify(product.Name)
	if err := m.store.CreateProduct(ctx, product); err != nil {
		return fmt.Errorf("failed create product: %w", err)
	}

	return nil
}

func (m *Market) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if _, err := m.store.GetCategory(ctx, product.CategoryID); err != nil {
		return fmt.Errorf("failed getting category: %w", err)
	}

	product.Slug = slugify(product.Name)
	if err := m.store.UpdateProduct(ctx, product); err != nil {
		return fmt.Errorf("failed update product: %w", err)
	}

	return nil
}

func (m *Market) DeleteProduct(ctx context.Context, productID uint) error {
	if err := m.store.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed delete product: %w", err)
	}
	return nil
}

func (m *Market) Categories(ctx context.Context) ([]*model.Category, error) {
	categories, err := m.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting categories: %w", err)
	}
	return categories, nil
}

func (m *Market) CreateCategory(ctx context.Context, category *model.Category) error {
	if category.Name == "" {
		return ErrNameNotValid
	}
	if category.ParentID != nil {
		if _, err := m.store.GetCategory(ctx, *category.ParentID); err != nil {
			return fmt.Errorf("failed getting parent category: %w", err)
		}
	}
	if err := m.store.CreateCategory(ctx, category); err != nil {
		return fmt.Errorf("failed create category: %w", err)
	}

	return nil
}

func (m *Market) UpdateCategory(ctx context.Context, category *model.Category) error {
	if category.Name == "" {
		return ErrNameNotValid
	}
	if err := m.store.UpdateCategory(ctx, category); err != nil {
		return fmt.Errorf("failed update category: %w", err)
	}

	return nil
}

func (m *Market) DeleteCategory(ctx context.Context, categoryID uint) error {
	if err := m.store.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed delete category: %w", err)
	}
	return nil
}

func (m *Market) Expansions(ctx context.Context) ([]*model.Expansion, error) {
	expansions, err := m.store.Expansions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting expansions: %w", err)
	}
	return expansions, nil
}

func (m *Market) CreateExpansion(ctx context.Context, expansion *model.Expansion) error {
	if expansion.Name == "" {
		return ErrNameNotValid
	}
	if err := m.store.CreateExpansion(ctx, expansion); err != nil {
		return fmt.Errorf("failed create expansion: %w", err)
	}
	return nil
}

func (m *Market) CreateRealm(ctx context.Context, realm *model.Realm) error {
	if realm.Name == "" {
		return ErrNameNotValid
	}
	if err := m.store.CreateRealm(ctx, realm); err != nil {
		return fmt.Errorf("failed create realm: %w", err)
	}
	return nil
}
