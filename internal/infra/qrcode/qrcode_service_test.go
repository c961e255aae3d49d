package qrcode

import (
	"encoding/json"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder() *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		TotalAmount: decimal.RequireFromString("40.00"),
		Status:      entity.OrderStatusPending,
	}
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateOrderReceiptQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateOrderReceiptQR(newOrder())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseOrderReceiptQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	order := newOrder()

	payload, err := json.Marshal(ReceiptData{
		Type:        "order_receipt",
		OrderID:     order.ID.String(),
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
	})
	require.NoError(t, err)

	orderID, err := service.ParseOrderReceiptQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, order.ID, orderID)
}

func TestQRCodeService_ParseOrderReceiptQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not-json"},
		{"wrong type", `{"type":"subscription","order_id":"` + uuid.NewString() + `"}`},
		{"bad order id", `{"type":"order_receipt","order_id":"not-a-uuid"}`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderID, err := service.ParseOrderReceiptQR(tt.data)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, orderID)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	svc, ok := NewFromConfig(nil).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 256, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)

	svc, ok = NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"}}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 512, svc.size)
	assert.Equal(t, qrcode.Highest, svc.errorCorrectionLevel)
}
