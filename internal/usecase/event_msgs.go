package usecase

import "time"

// Published to RabbitMQ after a successful payment application.
type OrderPlacedMsg struct {
	OrderID       string    `json:"orderId"`
	OrderCode     string    `json:"orderCode"`
	TotalWithTax  int64     `json:"totalWithTax"`
	CurrencyCode  string    `json:"currencyCode"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	PlacedAt      time.Time `json:"placedAt"`
}

// Sent by the commerce backend on Kafka when an order changes state.
type OrderStateChangedMsg struct {
	OrderCode string `json:"orderCode"`
	State     string `json:"state"` // e.g. "PaymentSettled"
}
