package domain

import "time"

type Hotel struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type FoodItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Restaurant string  `json:"restaurant"`
}

type CartLineItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image"`
	Restaurant string  `json:"restaurant"`
}

// Order is the payment receipt handed back to the success screen.
// It is built in memory when the payment flow completes and is not
// the persisted order history row (see OrderRecord).
type Order struct {
	OrderID       string    `json:"order_id"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	QRCode        string    `json:"qr_code,omitempty"`
	PaidAt        time.Time `json:"paid_at"`
}

type OrderRecord struct {
	ID           int       `json:"id"`
	OrderID      string    `json:"order_id"`
	Hotel        string    `json:"hotel"`
	CustomerName string    `json:"customer_name"`
	Items        string    `json:"items"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Order statuses shown on the admin panel.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusDelivered = "delivered"
)

type User struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Password string `json:"-"`
	Role     string `json:"role"`
	Hotel    string `json:"hotel,omitempty"`
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleOwner    = "owner"
)

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	Hotel     string    `json:"hotel"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}
