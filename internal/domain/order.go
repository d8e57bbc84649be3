package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"
	StatusPaid      OrderStatus = "PAID"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus accepts the wire form of a status, ignoring case and
// surrounding whitespace. Unknown values yield a BadRequest error.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch status := OrderStatus(strings.ToUpper(strings.TrimSpace(raw))); status {
	case StatusCreated, StatusPaid, StatusCancelled:
		return status, nil
	default:
		return "", BadRequestf("invalid status %q, allowed: CREATED, PAID, CANCELLED", raw)
	}
}

// Terminal reports whether no further status transition is permitted.
func (s OrderStatus) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

type Order struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Status    OrderStatus     `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItem     `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// OrderItem is one line of an order. UnitPrice is the product price frozen
// at order time; LineTotal is UnitPrice multiplied by Quantity.
type OrderItem struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// OrderLine is a requested (product, quantity) pair before pricing.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

// OrderRepository persists orders. CreateOrder runs the whole creation
// sequence in a single transaction: for each line, in request order, it
// resolves the product, validates the quantity against current stock,
// decrements the stock and snapshots the unit price. Any failure rolls the
// entire transaction back, including stock decremented for earlier lines.
type OrderRepository interface {
	CreateOrder(userID int64, lines []OrderLine) (*Order, error)
	GetOrderByID(id int64) (*Order, error)
	ListOrders() ([]Order, error)
	UpdateOrderStatus(id int64, status OrderStatus) (*Order, error)
	DeleteOrder(id int64) error
}

type OrderUseCase interface {
	CreateOrder(userID int64, lines []OrderLine) (*Order, error)
	GetOrderByID(id int64) (*Order, error)
	ListOrders() ([]Order, error)
	PatchOrderStatus(id int64, rawStatus string) (*Order, error)
	DeleteOrder(id int64) error
}
