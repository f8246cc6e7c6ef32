package market

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/playmixer/goldmarket/internal/adapters/store/errstore"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"go.uber.org/zap"
)

const maxProofSize = 30 << 20 // 30 MiB

var allowedProofTypes = map[string]struct{}{
	"video/mp4":  {},
	"video/mpeg": {},
	"video/avi":  {},
	"video/mov":  {},
	"video/webm": {},
}

// activeOfferStates are the offer states still claiming a slice of an
// order's rest from the seller's point of view.
var activeOfferStates = map[model.OfferStatus]struct{}{
	model.OfferStatePending:         {},
	model.OfferStateReview:          {},
	model.OfferStateAwaitingPayment: {},
}

var offerTransitions = map[model.OfferStatus][]model.OfferStatus{
	model.OfferStatePending:         {model.OfferStateReview},
	model.OfferStateReview:          {model.OfferStateAwaitingPayment, model.OfferStateNotApproved},
	model.OfferStateAwaitingPayment: {model.OfferStatePaid},
}

func validOfferTransition(from, to model.OfferStatus) bool {
	for _, allowed := range offerTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (m *Market) CreateOrder(ctx context.Context, order *model.Order) error {
	if order.Title == "" || order.Buyer == "" {
		return ErrOrderNotValid
	}
	if order.Amount <= 0 || order.MinReserve <= 0 || order.PricePer1K <= 0 {
		return ErrOrderNotValid
	}
	if order.MinReserve > order.Amount {
		return ErrOrderNotValid
	}
	if order.Faction != model.FactionHorde && order.Faction != model.FactionAlliance {
		return ErrOrderNotValid
	}
	if order.Region != model.RegionEU && order.Region != model.RegionUS {
		return ErrOrderNotValid
	}

	order.UUID = uuid.New()
	order.Status = model.OrderStateAvailable
	order.Rest = order.Amount
	if err := m.store.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("failed create order: %w", err)
	}

	return nil
}

func (m *Market) Orders(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error) {
	orders, err := m.store.Orders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed getting orders: %w", err)
	}
	return orders, nil
}

func (m *Market) GetOrder(ctx context.Context, orderID uint) (model.Order, error) {
	order, err := m.store.GetOrder(ctx, orderID)
	if err != nil {
		return order, fmt.Errorf("failed getting order: %w", err)
	}
	return order, nil
}

// ActiveOffer returns the seller's latest offer on the order when it is
// still in an active state.
func (m *Market) ActiveOffer(ctx context.Context, orderID, sellerID uint) (model.Offer, bool, error) {
	offer, err := m.store.LastOfferBySeller(ctx, orderID, sellerID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return offer, false, nil
		}
		return offer, false, fmt.Errorf("failed getting offer: %w", err)
	}
	_, active := activeOfferStates[offer.Status]

	return offer, active, nil
}

// SubmitOffer reserves quantity from the order's rest. The quantity must
// be a multiple of the minimum reserve and fit into the rest; the final
// rest check is repeated inside the store transaction under a row lock.
func (m *Market) SubmitOffer(ctx context.Context, orderID, sellerID uint, quantity int) (model.Offer, error) {
	offer := model.Offer{}
	order, err := m.store.GetOrder(ctx, orderID)
	if err != nil {
		return offer, fmt.Errorf("failed getting order: %w", err)
	}

	if quantity < order.MinReserve || quantity > order.Rest || quantity%order.MinReserve != 0 {
		return offer, ErrInvalidQuantity
	}

	offer = model.Offer{
		OrderID:    order.ID,
		SellerID:   sellerID,
		Quantity:   quantity,
		PricePer1K: order.PricePer1K,
		TotalPrice: int(math.Round(float64(quantity) / 1000 * float64(order.PricePer1K))),
		Status:     model.OfferStatePending,
	}
	if err := m.store.CreateOfferAndReserve(ctx, &offer); err != nil {
		if errors.Is(err, errstore.ErrOrderRestNotEnough) {
			return offer, ErrInvalidQuantity
		}
		return offer, fmt.Errorf("failed create offer: %w", err)
	}

	return offer, nil
}

type ProofFile struct {
	Data        io.Reader
	Name        string
	ContentType string
	Size        int64
}

// AttachProof stores a delivery video against the seller's latest offer
// on the order and moves the offer to review.
func (m *Market) AttachProof(ctx context.Context, orderID, sellerID uint, file ProofFile) error {
	if _, ok := allowedProofTypes[file.ContentType]; !ok {
		return ErrInvalidFile
	}
	if file.Size > maxProofSize {
		return ErrInvalidFile
	}

	offer, err := m.store.LastOfferBySeller(ctx, orderID, sellerID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return ErrNoActiveOffer
		}
		return fmt.Errorf("failed getting offer: %w", err)
	}

	path, err := m.saveProof(file)
	if err != nil {
		return fmt.Errorf("failed save proof file: %w", err)
	}

	if err := m.store.AttachOfferProof(ctx, offer.ID, path); err != nil {
		return fmt.Errorf("failed attach proof: %w", err)
	}
	m.log.Info("proof attached",
		zap.Uint("orderID", orderID),
		zap.Uint("offerID", offer.ID),
		zap.String("path", path),
	)

	return nil
}

func (m *Market) saveProof(file ProofFile) (string, error) {
	if err := os.MkdirAll(m.cfg.UploadPath, 0o750); err != nil {
		return "", fmt.Errorf("failed create upload dir: %w", err)
	}

	name := uuid.NewString() + filepath.Ext(file.Name)
	path := filepath.Join(m.cfg.UploadPath, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed create file: %w", err)
	}
	defer func() {
		if err := dst.Close(); err != nil {
			m.log.Error("failed close proof file", zap.Error(err))
		}
	}()

	if _, err := io.Copy(dst, io.LimitReader(file.Data, maxProofSize)); err != nil {
		return "", fmt.Errorf("failed write file: %w", err)
	}

	return path, nil
}

// TransitionOffer applies an admin status change against the closed
// transition table.
func (m *Market) TransitionOffer(ctx context.Context, offerID uint, to model.OfferStatus) error {
	offer, err := m.store.GetOffer(ctx, offerID)
	if err != nil {
		return fmt.Errorf("failed getting offer: %w", err)
	}

	if !validOfferTransition(offer.Status, to) {
		return ErrInvalidTransition
	}

	if err := m.store.UpdateOfferStatus(ctx, offerID, to); err != nil {
		return fmt.Errorf("failed update offer status: %w", err)
	}

	return nil
}
