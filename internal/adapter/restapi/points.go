package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
)

type addPointsResponse struct {
	Success    bool   `json:"success"`
	NewBalance int    `json:"newBalance"`
	Message    string `json:"message"`
}

// LoyaltyPoints fetches the ledger snapshot the backend keeps for a user.
func (c *Client) LoyaltyPoints(ctx context.Context, userID string) (*model.LoyaltyPoints, error) {
	var points model.LoyaltyPoints
	if err := c.do(ctx, http.MethodGet, "/api/loyalty-points/"+userID, nil, &points); err != nil {
		return nil, err
	}
	return &points, nil
}

// AddPoints credits points through the backend. The backend reports only the
// new balance, so the returned snapshot carries nothing else.
func (c *Client) AddPoints(ctx context.Context, params provider.AddPointsParams) (*model.LoyaltyPoints, error) {
	body := map[string]any{
		"userId": params.UserID,
		"points": params.Points,
		"reason": params.Reason,
	}
	var data addPointsResponse
	if err := c.do(ctx, http.MethodPost, "/api/loyalty-points/add", body, &data); err != nil {
		return nil, err
	}
	if !data.Success {
		return nil, fmt.Errorf("add points rejected: %s", data.Message)
	}
	return &model.LoyaltyPoints{UserID: params.UserID, PointsBalance: data.NewBalance}, nil
}

// Transactions lists a user's point history.
func (c *Client) Transactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions/"+userID, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
