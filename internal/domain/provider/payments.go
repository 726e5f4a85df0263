package provider

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

// Payments covers stored payment methods and subscription plans.
type Payments interface {
	Named
	PaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
	AddPaymentMethod(ctx context.Context, method model.PaymentMethod) (*model.PaymentMethod, error)
	SubscriptionPlans(ctx context.Context) ([]model.SubscriptionPlan, error)
	Subscribe(ctx context.Context, planID, paymentMethodID string) (*model.OpResult, error)
}
