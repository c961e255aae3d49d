// Package qrcode renders and parses the QR code printed on order receipts.
package qrcode

import (
	"encoding/json"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const (
	receiptType = "order_receipt"

	defaultSize  = 256
	defaultLevel = "M"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData is the JSON payload encoded in a receipt QR code.
type ReceiptData struct {
	Type        string          `json:"type"`
	OrderID     string          `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

// NewFromConfig builds the service from the qrcode config section, using defaults when absent.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, defaultLevel)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateOrderReceiptQR renders the receipt payload of the order as a PNG.
func (s *qrcodeService) GenerateOrderReceiptQR(order *entity.Order) ([]byte, error) {
	payload, err := json.Marshal(ReceiptData{
		Type:        receiptType,
		OrderID:     order.ID.String(),
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal receipt data")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderReceiptQR parses scanned receipt content and returns the order ID.
func (s *qrcodeService) ParseOrderReceiptQR(qrData string) (uuid.UUID, error) {
	var data ReceiptData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal receipt data")
	}

	if data.Type != receiptType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, nil
}
