package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// LineItem is one product line in an order. Products are free-typed by the
// customer, so ProductID references nothing outside the order that carries it.
type LineItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// Order is a finalized purchase request. Everything except Status and
// UpdatedAt is immutable once the record store has assigned ID and CreatedAt.
type Order struct {
	ID              string       `json:"id"`
	CustomerName    string       `json:"customerName"`
	CustomerPhone   string       `json:"customerPhone"`
	CustomerEmail   string       `json:"customerEmail,omitempty"`
	CustomerAddress string       `json:"customerAddress"`
	CustomerNumber  string       `json:"customerNumber,omitempty"`
	DeliveryDate    string       `json:"deliveryDate"` // YYYY-MM-DD form value
	DeliveryType    DeliveryType `json:"deliveryType"`
	Notes           string       `json:"notes,omitempty"`
	Items           []LineItem   `json:"items"`
	Status          OrderStatus  `json:"status"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt,omitzero"`
}
