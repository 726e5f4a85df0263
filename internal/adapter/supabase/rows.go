package supabase

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	domainErrors "github.com/tnyamakura/loyaltylink/internal/domain/errors"
	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
)

// Row API table names.
const (
	tableProfiles      = "profiles"
	tableLoyaltyPoints = "loyalty_points"
	tableTransactions  = "transactions"
)

type profileRow struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r profileRow) toUser(auth *authUser) *model.User {
	user := &model.User{
		ID:          r.ID,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Role:        model.Role(r.Role),
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if auth != nil {
		if user.Email == "" {
			user.Email = auth.Email
		}
		if user.CreatedAt.IsZero() {
			user.CreatedAt = auth.CreatedAt
		}
		if user.UpdatedAt.IsZero() {
			user.UpdatedAt = auth.UpdatedAt
		}
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	return user
}

type pointsRow struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	PointsBalance int       `json:"points_balance"`
	TotalEarned   int       `json:"total_earned"`
	TotalRedeemed int       `json:"total_redeemed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r pointsRow) toModel() *model.LoyaltyPoints {
	return &model.LoyaltyPoints{
		ID:            r.ID,
		UserID:        r.UserID,
		PointsBalance: r.PointsBalance,
		TotalEarned:   r.TotalEarned,
		TotalRedeemed: r.TotalRedeemed,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (c *Client) rowPath(table string) string {
	return "/rest/v1/" + table
}

func (c *Client) fetchProfile(ctx context.Context, bearer, userID string) (*profileRow, error) {
	query := url.Values{"id": []string{"eq." + userID}, "select": []string{"*"}}
	req, err := c.newRequest(ctx, http.MethodGet, c.rowPath(tableProfiles), query, nil, bearer)
	if err != nil {
		return nil, err
	}

	var rows []profileRow
	if err := c.do(req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return &rows[0], nil
}

func (c *Client) insertProfile(ctx context.Context, bearer string, auth *authUser, params provider.SignUpParams) error {
	req, err := c.newRequest(ctx, http.MethodPost, c.rowPath(tableProfiles), nil, profileRow{
		ID:          auth.ID,
		Email:       auth.Email,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		PhoneNumber: params.PhoneNumber,
		Role:        string(model.RoleUser),
		IsActive:    true,
		CreatedAt:   auth.CreatedAt,
		UpdatedAt:   auth.CreatedAt,
	}, bearer)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")
	return c.do(req, nil)
}

func (c *Client) insertPointsRow(ctx context.Context, bearer, userID string) error {
	req, err := c.newRequest(ctx, http.MethodPost, c.rowPath(tableLoyaltyPoints), nil, map[string]any{
		"user_id":        userID,
		"points_balance": 0,
		"total_earned":   0,
		"total_redeemed": 0,
	}, bearer)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")
	return c.do(req, nil)
}

// LoyaltyPoints reads the single ledger row for a user.
func (c *Client) LoyaltyPoints(ctx context.Context, userID string) (*model.LoyaltyPoints, error) {
	query := url.Values{"user_id": []string{"eq." + userID}, "select": []string{"*"}}
	req, err := c.newRequest(ctx, http.MethodGet, c.rowPath(tableLoyaltyPoints), query, nil, "")
	if err != nil {
		return nil, err
	}

	var rows []pointsRow
	if err := c.do(req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return rows[0].toModel(), nil
}

// AddPoints performs the provider-side accrual as a read-modify-write: fetch
// the current row, compute the new balance, write it back, then best-effort
// append a transaction row. The two writes are not atomic and concurrent
// accruals for one user race last-write-wins on the balance field.
func (c *Client) AddPoints(ctx context.Context, params provider.AddPointsParams) (*model.LoyaltyPoints, error) {
	current, err := c.LoyaltyPoints(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newBalance := current.PointsBalance + params.Points
	newEarned := current.TotalEarned + params.Points

	query := url.Values{"user_id": []string{"eq." + params.UserID}}
	req, err := c.newRequest(ctx, http.MethodPatch, c.rowPath(tableLoyaltyPoints), query, map[string]any{
		"points_balance": newBalance,
		"total_earned":   newEarned,
		"updated_at":     now.Format(time.RFC3339),
	}, "")
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=minimal")
	if err := c.do(req, nil); err != nil {
		return nil, err
	}

	if err := c.insertTransaction(ctx, params); err != nil {
		// Orphaned balance change: the accrual landed but leaves no audit row.
		c.logger.Error("transaction record creation failed",
			slog.String("user", params.UserID),
			slog.Int("points", params.Points),
			slog.String("error", err.Error()))
	}

	updated := *current
	updated.PointsBalance = newBalance
	updated.TotalEarned = newEarned
	updated.UpdatedAt = now
	return &updated, nil
}

func (c *Client) insertTransaction(ctx context.Context, params provider.AddPointsParams) error {
	body := map[string]any{
		"user_id": params.UserID,
		"type":    string(model.TransactionEarn),
		"points":  params.Points,
		"reason":  params.Reason,
	}
	if params.PartnerID != "" {
		body["partner_id"] = params.PartnerID
	}
	req, err := c.newRequest(ctx, http.MethodPost, c.rowPath(tableTransactions), nil, body, "")
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")
	return c.do(req, nil)
}
