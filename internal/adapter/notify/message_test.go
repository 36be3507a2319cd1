package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shefazol/ordering/internal/core/domain"
)

func TestFormatDateHe(t *testing.T) {
	assert.Equal(t, "2.9.2026", formatDateHe("2026-09-02"))
	assert.Equal(t, "31.12.2025", formatDateHe("2025-12-31"))
	// Unparseable values pass through.
	assert.Equal(t, "garbage", formatDateHe("garbage"))
}

func TestItemLines(t *testing.T) {
	items := []domain.LineItem{
		{ProductName: "לחם", Quantity: 2},
		{ProductName: "חלב", Quantity: 1},
	}
	assert.Equal(t, "לחם: 2\nחלב: 1\n", itemLines(items))
	assert.Equal(t, "", itemLines(nil))
}

func TestDeliveryTypeLabel(t *testing.T) {
	assert.Equal(t, "משלוח", deliveryTypeLabel(domain.DeliveryTypeDelivery))
	assert.Equal(t, "איסוף עצמי", deliveryTypeLabel(domain.DeliveryTypePickup))
}
