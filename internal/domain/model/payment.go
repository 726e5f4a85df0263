package model

import "time"

// PaymentMethod is a stored payment instrument.
type PaymentMethod struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Last4       string    `json:"last4"`
	Brand       string    `json:"brand"`
	ExpiryMonth int       `json:"expiryMonth,omitempty"`
	ExpiryYear  int       `json:"expiryYear,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SubscriptionPlan describes a purchasable membership tier.
type SubscriptionPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
	IsPopular   bool     `json:"isPopular"`
	IsActive    bool     `json:"isActive"`
}
