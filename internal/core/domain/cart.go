package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one line of a cart snapshot.
type CartItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	IsActive  bool            `json:"is_active"`
}

// CartSnapshot is the read-only view of a cart owned by the order subsystem.
type CartSnapshot struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	MerchantID uuid.UUID       `json:"merchant_id"`
	IsActive   bool            `json:"is_active"`
	Discount   decimal.Decimal `json:"discount"`
	Items      []CartItem      `json:"items"`
}

// ActiveItems returns the lines that count towards the subtotal.
func (c *CartSnapshot) ActiveItems() []CartItem {
	active := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.IsActive && it.Quantity > 0 {
			active = append(active, it)
		}
	}
	return active
}

// OrderStatus is the fulfilment state of an order. This service only moves
// PENDING to CONFIRMED.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
)

// PaymentStatus is the payment flag of an order, written only by settlement.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// Order is the external order record tied to a cart.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	CartID        uuid.UUID     `json:"cart_id"`
	UserID        uuid.UUID     `json:"user_id"`
	MerchantID    uuid.UUID     `json:"merchant_id"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}
