package market

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/playmixer/goldmarket/internal/adapters/store/model"
)

const defaultVAT = 0.09

// BuildInvoice snapshots the cart into an immutable invoice. Unlike the
// cart view, a cart entry pointing at a missing product fails the whole
// checkout.
func (m *Market) BuildInvoice(ctx context.Context, userID uint, cart Cart, battleTag, description string) (model.Invoice, error) {
	invoice := model.Invoice{}
	if len(cart) == 0 {
		return invoice, ErrEmptyCart
	}

	products, err := m.store.GetProductsByIDs(ctx, cart.productIDs())
	if err != nil {
		return invoice, fmt.Errorf("failed resolve cart products: %w", err)
	}
	byID := make(map[string]*model.Product, len(products))
	for _, product := range products {
		byID[strconv.Itoa(int(product.ID))] = product
	}

	items := make([]*model.InvoiceItem, 0, len(cart))
	total := 0
	for key, count := range cart {
		product, ok := byID[key]
		if !ok {
			return invoice, fmt.Errorf("%w: id %s", ErrProductNotFound, key)
		}
		item := &model.InvoiceItem{
			ProductID: product.ID,
			Name:      product.Name,
			Count:     count,
			Price:     product.Price,
			Discount:  product.Discount,
			Total:     lineTotal(product.Price, count, product.Discount),
		}
		items = append(items, item)
		total += item.Total
	}

	invoice = model.Invoice{
		UserID:      userID,
		Total:       total,
		Discount:    0,
		VAT:         defaultVAT,
		BattleTag:   battleTag,
		Description: description,
	}
	if err := m.store.CreateInvoiceWithItems(ctx, &invoice, items); err != nil {
		return invoice, fmt.Errorf("failed persist invoice: %w", err)
	}

	return invoice, nil
}

// DerivePayment creates the pending payment bound one-to-one to the
// invoice: total after invoice discount and VAT, rounded to the
// smallest currency unit.
func (m *Market) DerivePayment(ctx context.Context, invoice model.Invoice, userIP string) (model.Payment, error) {
	payment := model.Payment{
		InvoiceID:   invoice.ID,
		Total:       int(math.Round(float64(invoice.Total) * (1 - invoice.Discount) * (1 + invoice.VAT))),
		Status:      model.PaymentStatePending,
		Description: "purchase from goldmarket",
		UserIP:      userIP,
	}
	if err := m.store.CreatePayment(ctx, &payment); err != nil {
		return payment, fmt.Errorf("failed create payment: %w", err)
	}

	return payment, nil
}

// Checkout runs the full cart-to-gateway pipeline and returns the
// gateway redirect target. The cart is emptied as soon as the invoice
// is persisted; a later gateway failure leaves a retryable pending
// payment behind.
func (m *Market) Checkout(ctx context.Context, userID uint, cart Cart, battleTag, description, callbackURL, userIP string) (string, error) {
	user, err := m.store.GetUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed getting user: %w", err)
	}

	invoice, err := m.BuildInvoice(ctx, userID, cart, battleTag, description)
	if err != nil {
		return "", err
	}
	cart.Empty()

	payment, err := m.DerivePayment(ctx, invoice, userIP)
	if err != nil {
		return "", err
	}

	return m.RequestPayment(ctx, payment, callbackURL, user)
}
