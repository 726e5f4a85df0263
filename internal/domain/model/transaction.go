package model

import "time"

// TransactionType distinguishes point accrual from redemption.
type TransactionType string

const (
	TransactionEarn   TransactionType = "EARN"
	TransactionRedeem TransactionType = "REDEEM"
)

// Transaction is an immutable, append-only ledger entry.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Type      TransactionType `json:"type"`
	Points    int             `json:"points"`
	Reason    string          `json:"reason"`
	PartnerID string          `json:"partnerId,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
