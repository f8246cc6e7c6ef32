package market

import (
	"context"
	"fmt"
	"strconv"

	"github.com/playmixer/goldmarket/internal/adapters/store/model"
)

// Cart maps a string-encoded product id to a positive count. It is a
// plain value object owned by one browser session; the rest adapter
// loads and stores it per request.
type Cart map[string]int

// Add puts one more unit of the product into the cart. Disabled or
// out-of-stock products are silently ignored.
func (c Cart) Add(product model.Product) {
	if product.Count > 0 && product.Enabled {
		c[strconv.Itoa(int(product.ID))]++
	}
}

func (c Cart) Remove(productID string) {
	delete(c, productID)
}

// Decrease drops one unit, removing the key entirely at zero.
func (c Cart) Decrease(productID string) {
	count, ok := c[productID]
	if !ok {
		return
	}
	if count > 1 {
		c[productID] = count - 1
		return
	}
	delete(c, productID)
}

func (c Cart) Empty() {
	for id := range c {
		delete(c, id)
	}
}

func (c Cart) productIDs() []uint {
	ids := make([]uint, 0, len(c))
	for key := range c {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

type CartItem struct {
	Product model.Product
	Count   int
	Price   int
}

// CartView resolves the cart against live products. Entries whose
// product no longer exists are silently skipped, checkout is the place
// that fails loudly on them.
func (m *Market) CartView(ctx context.Context, cart Cart) ([]CartItem, int, error) {
	items := []CartItem{}
	total := 0
	if len(cart) == 0 {
		return items, total, nil
	}

	products, err := m.store.GetProductsByIDs(ctx, cart.productIDs())
	if err != nil {
		return nil, 0, fmt.Errorf("failed resolve cart products: %w", err)
	}
	byID := make(map[string]*model.Product, len(products))
	for _, product := range products {
		byID[strconv.Itoa(int(product.ID))] = product
	}

	for key, count := range cart {
		product, ok := byID[key]
		if !ok {
			continue
		}
		price := lineTotal(product.Price, count, product.Discount)
		items = append(items, CartItem{Product: *product, Count: count, Price: price})
		total += price
	}

	return items, total, nil
}

// CartTotal sums the discounted line prices of every resolvable entry.
func (m *Market) CartTotal(ctx context.Context, cart Cart) (int, error) {
	_, total, err := m.CartView(ctx, cart)
	return total, err
}

// AddToCart resolves the product and applies the cart add policy.
func (m *Market) AddToCart(ctx context.Context, cart Cart, productID uint) error {
	product, err := m.store.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed get product: %w", err)
	}
	cart.Add(product)

	return nil
}
