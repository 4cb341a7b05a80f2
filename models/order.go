package models

import "time"

// OrderStatus is the kitchen-side lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
)

// Next returns the status that follows s in the pending → preparing →
// ready chain. ok is false when s is terminal or unknown; there are no
// skips and no backward transitions.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	}
	return s, false
}

// Order is a submitted cart. PaymentVerified is orthogonal to Status: an
// admin can mark an order ready while its payment is still unverified.
type Order struct {
	ID                string      `json:"id" db:"id"`
	StudentName       string      `json:"student_name" db:"student_name"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total" db:"total"`
	Status            OrderStatus `json:"status" db:"status"`
	OrderTime         time.Time   `json:"order_time" db:"order_time"`
	PaymentScreenshot string      `json:"payment_screenshot,omitempty" db:"payment_screenshot"`
	PaymentVerified   bool        `json:"payment_verified" db:"payment_verified"`
}

// OrderItem is one line of an order with the price captured at submission
// time, so later catalog edits do not change past orders.
type OrderItem struct {
	Name     string  `json:"name" db:"name"`
	Quantity int     `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`
}

// HasPaymentProof reports whether a payment screenshot was attached. The
// content is never validated; only presence gates submission.
func (o *Order) HasPaymentProof() bool {
	return o.PaymentScreenshot != ""
}
