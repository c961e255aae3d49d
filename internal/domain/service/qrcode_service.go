package service

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// QRCodeService defines the interface for order receipt QR generation and parsing
type QRCodeService interface {
	// GenerateOrderReceiptQR renders a PNG QR code identifying the order
	GenerateOrderReceiptQR(order *entity.Order) ([]byte, error)

	// ParseOrderReceiptQR parses scanned QR content and returns the order ID
	ParseOrderReceiptQR(qrData string) (uuid.UUID, error)
}
