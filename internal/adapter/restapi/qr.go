package restapi

import (
	"context"
	"net/http"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
)

func (c *Client) GenerateQR(ctx context.Context, params provider.GenerateQRParams) (*model.QRCode, error) {
	body := map[string]any{
		"type":         params.Type,
		"pointsAmount": params.PointsAmount,
		"description":  params.Description,
	}
	var code model.QRCode
	if err := c.do(ctx, http.MethodPost, "/api/qr/generate", body, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

func (c *Client) ScanQR(ctx context.Context, qrData string) (*model.OpResult, error) {
	body := map[string]string{"qrData": qrData}
	var result model.OpResult
	if err := c.do(ctx, http.MethodPost, "/api/qr/scan", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) QRHistory(ctx context.Context) ([]model.QRCode, error) {
	var history []model.QRCode
	if err := c.do(ctx, http.MethodGet, "/api/qr/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}
