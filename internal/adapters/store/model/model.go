package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Login        string `gorm:"unique"`
	Email        string
	Phone        string
	PasswordHash string
	ID           uint `gorm:"primarykey"`
	IsAdmin      bool
}

type Product struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	UUID        uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	Name        string
	Slug        string
	Description string
	ID          uint `gorm:"primarykey"`
	CategoryID  uint `gorm:"index"`
	Price       int
	Count       int
	Discount    float64
	Enabled     bool `gorm:"default:true"`
}

type Category struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	Name      string
	ID        uint  `gorm:"primarykey"`
	ParentID  *uint `gorm:"index"`
}

type Expansion struct {
	Name string `gorm:"unique"`
	ID   uint   `gorm:"primarykey"`
}

type Realm struct {
	Name string `gorm:"unique"`
	ID   uint   `gorm:"primarykey"`
}

type OrderStatus string

const (
	OrderStateAvailable OrderStatus = "available"
	OrderStatePending   OrderStatus = "pending"
	OrderStateDone      OrderStatus = "done"
	OrderStateCancelled OrderStatus = "cancelled"
)

type Faction string

const (
	FactionHorde    Faction = "horde"
	FactionAlliance Faction = "alliance"
)

type Region string

const (
	RegionEU Region = "eu"
	RegionUS Region = "us"
)

type Order struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UUID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Title       string
	Description string
	Buyer       string
	Faction     Faction
	Region      Region
	Status      OrderStatus `gorm:"default:available"`
	Expansions  []Expansion `gorm:"many2many:order_expansions;"`
	Realms      []Realm     `gorm:"many2many:order_realms;"`
	ID          uint        `gorm:"primarykey"`
	MinReserve  int
	PricePer1K  int
	Amount      int
	Rest        int
}

type OfferStatus string

const (
	OfferStatePending         OfferStatus = "pending"
	OfferStateReview          OfferStatus = "review"
	OfferStateAwaitingPayment OfferStatus = "awaiting_payment"
	OfferStatePaid            OfferStatus = "paid"
	OfferStateNotApproved     OfferStatus = "not_approved"
)

type Offer struct {
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Status     OfferStatus `gorm:"default:pending"`
	Proof      string
	ID         uint `gorm:"primarykey"`
	OrderID    uint `gorm:"index"`
	SellerID   uint `gorm:"index"`
	Quantity   int
	PricePer1K int
	TotalPrice int
}

type Invoice struct {
	CreatedAt   time.Time
	BattleTag   string
	Description string
	Items       []InvoiceItem
	ID          uint `gorm:"primarykey"`
	UserID      uint `gorm:"index"`
	Total       int
	Discount    float64
	VAT         float64 `gorm:"default:0.09"`
}

type InvoiceItem struct {
	Name      string
	ID        uint `gorm:"primarykey"`
	InvoiceID uint `gorm:"index"`
	ProductID uint `gorm:"index"`
	Count     int
	Price     int
	Total     int
	Discount  float64
}

type PaymentStatus string

const (
	PaymentStatePending PaymentStatus = "pending"
	PaymentStateDone    PaymentStatus = "done"
	PaymentStateError   PaymentStatus = "error"
)

type Payment struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Status      PaymentStatus `gorm:"default:pending"`
	Ref         string
	Authority   string `gorm:"index"`
	Description string
	UserIP      string
	ID          uint `gorm:"primarykey"`
	InvoiceID   uint `gorm:"unique"`
	Total       int
}

type ProductFilter struct {
	CategoryID uint
	Page       int
	Limit      int
}

type OrderFilter struct {
	Status      OrderStatus
	Faction     Faction
	Region      Region
	ExpansionID uint
	Page        int
	Limit       int
}
