package provider

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

// AddPointsParams describes a single point accrual.
type AddPointsParams struct {
	UserID    string
	Points    int
	Reason    string
	PartnerID string
}

// Points exposes the loyalty point ledger.
type Points interface {
	Named
	LoyaltyPoints(ctx context.Context, userID string) (*model.LoyaltyPoints, error)
	AddPoints(ctx context.Context, params AddPointsParams) (*model.LoyaltyPoints, error)
}

// Ledger lists the transaction history behind a balance. Only the custom
// backend keeps a queryable history, so the ledger chain skips the managed
// provider.
type Ledger interface {
	Named
	Transactions(ctx context.Context, userID string) ([]model.Transaction, error)
}
