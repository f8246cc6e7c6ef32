package rest

import (
	"time"

	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"github.com/playmixer/goldmarket/internal/core/market"
)

type tRegistration struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type tAuthorization struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tProduct struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	ID          uint    `json:"id"`
	CategoryID  uint    `json:"category_id"`
	Price       int     `json:"price"`
	Count       int     `json:"count"`
	Discount    float64 `json:"discount"`
	Enabled     bool    `json:"enabled"`
}

func newProduct(product model.Product) tProduct {
	return tProduct{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		CategoryID:  product.CategoryID,
		Price:       product.Price,
		Count:       product.Count,
		Discount:    product.Discount,
		Enabled:     product.Enabled,
	}
}

type tCreateProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  uint    `json:"category_id"`
	Price       int     `json:"price"`
	Count       int     `json:"count"`
	Discount    float64 `json:"discount"`
	Enabled     bool    `json:"enabled"`
}

type tCategory struct {
	Name     string `json:"name"`
	ParentID *uint  `json:"parent_id,omitempty"`
	ID       uint   `json:"id"`
}

type tCreateCategory struct {
	Name     string `json:"name"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

type tName struct {
	Name string `json:"name"`
}

type tCartItem struct {
	Product tProduct `json:"product"`
	Count   int      `json:"count"`
	Price   int      `json:"price"`
}

type tCart struct {
	Items []tCartItem `json:"items"`
	Total int         `json:"total"`
}

func newCart(items []market.CartItem, total int) tCart {
	response := tCart{Items: []tCartItem{}, Total: total}
	for _, item := range items {
		response.Items = append(response.Items, tCartItem{
			Product: newProduct(item.Product),
			Count:   item.Count,
			Price:   item.Price,
		})
	}
	return response
}

type tCheckout struct {
	BattleTag   string `json:"battle_tag"`
	Description string `json:"description"`
}

type tCheckoutResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type tVerifyResponse struct {
	Status          string `json:"status"`
	RefID           string `json:"ref_id,omitempty"`
	Message         string `json:"message,omitempty"`
	AlreadyVerified bool   `json:"already_verified,omitempty"`
}

type tCreateOrder struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Buyer        string `json:"buyer"`
	Faction      string `json:"faction"`
	Region       string `json:"region"`
	ExpansionIDs []uint `json:"expansion_ids"`
	RealmIDs     []uint `json:"realm_ids"`
	MinReserve   int    `json:"min_reserve"`
	PricePer1K   int    `json:"price_per_1k"`
	Amount       int    `json:"amount"`
}

type tOrder struct {
	createdAt  time.Time
	UUID       string            `json:"uuid"`
	Title      string            `json:"title"`
	Buyer      string            `json:"buyer"`
	Faction    string            `json:"faction"`
	Region     string            `json:"region"`
	Status     model.OrderStatus `json:"status"`
	CreatedAt  string            `json:"created_at"`
	Expansions []string          `json:"expansions"`
	Realms     []string          `json:"realms"`
	ID         uint              `json:"id"`
	MinReserve int               `json:"min_reserve"`
	PricePer1K int               `json:"price_per_1k"`
	Amount     int               `json:"amount"`
	Rest       int               `json:"rest"`
}

func newOrder(order model.Order) tOrder {
	response := tOrder{
		createdAt:  order.CreatedAt,
		ID:         order.ID,
		UUID:       order.UUID.String(),
		Title:      order.Title,
		Buyer:      order.Buyer,
		Faction:    string(order.Faction),
		Region:     string(order.Region),
		Status:     order.Status,
		MinReserve: order.MinReserve,
		PricePer1K: order.PricePer1K,
		Amount:     order.Amount,
		Rest:       order.Rest,
		Expansions: []string{},
		Realms:     []string{},
	}
	for _, expansion := range order.Expansions {
		response.Expansions = append(response.Expansions, expansion.Name)
	}
	for _, realm := range order.Realms {
		response.Realms = append(response.Realms, realm.Name)
	}
	response.CreatedAt = response.createdAt.Format(time.RFC3339)
	return response
}

type tSubmitOffer struct {
	Quantity int `json:"quantity"`
}

type tOffer struct {
	Status     model.OfferStatus `json:"status"`
	ID         uint              `json:"id"`
	OrderID    uint              `json:"order_id"`
	Quantity   int               `json:"quantity"`
	PricePer1K int               `json:"price_per_1k"`
	TotalPrice int               `json:"total_price"`
}

func newOffer(offer model.Offer) tOffer {
	return tOffer{
		ID:         offer.ID,
		OrderID:    offer.OrderID,
		Quantity:   offer.Quantity,
		PricePer1K: offer.PricePer1K,
		TotalPrice: offer.TotalPrice,
		Status:     offer.Status,
	}
}

type tOrderDetails struct {
	ActiveOffer *tOffer `json:"active_offer,omitempty"`
	Order       tOrder  `json:"order"`
}

type tOfferStatus struct {
	Status string `json:"status"`
}
