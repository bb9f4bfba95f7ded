package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
	StatusDeleted   OrderStatus = "deleted"
)

var ErrInvalidTransition = errors.New("invalid status transition")

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusDelivered, StatusCancelled, StatusDeleted:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusDeleted
}

// next step in the fulfillment chain
var statusFlow = map[OrderStatus]OrderStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

// CanTransition reports whether an order may move from one status to another.
// Fulfillment advances one step at a time, any non-terminal order may be
// cancelled, and any order may be soft-deleted. Nothing leaves deleted.
func CanTransition(from, to OrderStatus) bool {
	if from == StatusDeleted {
		return false
	}
	if to == StatusDeleted {
		return true
	}
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return statusFlow[from] == to
}

// Order is an immutable snapshot taken at checkout. Items are deep copies of
// the cart lines, Total is computed by the caller and frozen, and UserName /
// UserContact are denormalized for the admin dashboard so later profile edits
// don't rewrite history.
type Order struct {
	ID              string          `json:"id"`
	UserID          uint            `json:"userId"`
	Items           []CartLine      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	DeliveryAddress string          `json:"deliveryAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	CreatedAt       time.Time       `json:"createdAt"`
	UserName        string          `json:"userName,omitempty"`
	UserContact     string          `json:"userContact,omitempty"`
}

func (o Order) Clone() Order {
	out := o
	out.Items = CloneLines(o.Items)
	return out
}
