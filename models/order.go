package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by admin
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // terminal
	OrderStatusCancelled OrderStatus = "cancelled" // terminal
)

// statusTransitions is the allowed-transitions table: forward progress only,
// with cancellation reachable from any non-terminal state.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ParseOrderStatus maps a request string to a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, true
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, true
	case OrderStatusShipped:
		return OrderStatusShipped, true
	case OrderStatusDelivered:
		return OrderStatusDelivered, true
	case OrderStatusCancelled:
		return OrderStatusCancelled, true
	default:
		return "", false
	}
}

// CanTransitionTo reports whether the status change from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s OrderStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

type Order struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	// The user reference is weak: orders outlive their account.
	UserID     uint            `gorm:"index" json:"user_id"`
	User       User            `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
	OrderRef   string          `gorm:"uniqueIndex" json:"order_ref"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Status     OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderItem captures the unit price at purchase time, decoupled from the
// live book price. Immutable once created.
type OrderItem struct {
	ID       uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID  uint            `gorm:"index;not null" json:"order_id"`
	BookID   uint            `gorm:"not null" json:"book_id"`
	Book     Book            `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}
