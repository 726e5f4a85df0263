package provider

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

// GenerateQRParams describes the code a user wants minted.
type GenerateQRParams struct {
	Type         string
	PointsAmount int
	Description  string
}

// QR covers loyalty QR code generation, redemption, and history.
type QR interface {
	Named
	GenerateQR(ctx context.Context, params GenerateQRParams) (*model.QRCode, error)
	ScanQR(ctx context.Context, qrData string) (*model.OpResult, error)
	QRHistory(ctx context.Context) ([]model.QRCode, error)
}
