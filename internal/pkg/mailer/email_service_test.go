package mailer

import (
	"path/filepath"
	"testing"
	"time"

	"techmart-be/internal/config"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleOrder() *entity.Order {
	return &entity.Order{
		Id:     "A1B2C3D4",
		Status: entity.OrderStatusShipped,
		Items: []entity.OrderItem{
			{ProductId: "P005", Name: "Levi's <511>", UnitPrice: decimal.RequireFromString("69.99"), Quantity: 2},
		},
		Total:             decimal.RequireFromString("139.98"),
		EstimatedDelivery: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
	}
}

func TestOrderConfirmationBody(t *testing.T) {
	body := OrderConfirmationBody(sampleOrder(), "http://shop.test")

	assert.Contains(t, body, "A1B2C3D4")
	assert.Contains(t, body, "$139.98")
	assert.Contains(t, body, "Levi&#39;s &lt;511&gt;")
	assert.Contains(t, body, "March 9, 2024")
	assert.Contains(t, body, `href="http://shop.test/orders"`)
}

func TestOrderStatusBody(t *testing.T) {
	body := OrderStatusBody(sampleOrder(), "")
	assert.Contains(t, body, "<strong>Shipped</strong>")
}

func TestDisabledServiceSkipsSending(t *testing.T) {
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "mail.log"))
	svc := NewEmailService(config.SMTPConfig{}, "http://shop.test", log)

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.SendOrderConfirmation("a@b.test", sampleOrder()))
}
