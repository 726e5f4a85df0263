package restapi

import (
	"context"
	"net/http"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

func (c *Client) PaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	var methods []model.PaymentMethod
	if err := c.do(ctx, http.MethodGet, "/api/payments/methods", nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

func (c *Client) AddPaymentMethod(ctx context.Context, method model.PaymentMethod) (*model.PaymentMethod, error) {
	var created model.PaymentMethod
	if err := c.do(ctx, http.MethodPost, "/api/payments/methods", method, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) SubscriptionPlans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	var plans []model.SubscriptionPlan
	if err := c.do(ctx, http.MethodGet, "/api/subscriptions/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) Subscribe(ctx context.Context, planID, paymentMethodID string) (*model.OpResult, error) {
	body := map[string]string{
		"planId":          planID,
		"paymentMethodId": paymentMethodID,
	}
	var result model.OpResult
	if err := c.do(ctx, http.MethodPost, "/api/subscriptions/subscribe", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
