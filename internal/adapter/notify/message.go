package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/shefazol/ordering/internal/core/domain"
)

const (
	TemplateOrderNotification    = "order_notification"
	TemplateCustomerConfirmation = "customer_confirmation"

	adminName          = "מנהל שפע-זול"
	noEmailPlaceholder = "לא צוין"
	noNotesPlaceholder = "אין הערות"
)

// itemLines joins items as "name: quantity" lines, one per item.
func itemLines(items []domain.LineItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s: %d\n", item.ProductName, item.Quantity)
	}
	return b.String()
}

// formatDateHe renders a YYYY-MM-DD form value in the local d.m.yyyy
// convention. Unparseable input is passed through untouched.
func formatDateHe(value string) string {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}

func deliveryTypeLabel(t domain.DeliveryType) string {
	if t == domain.DeliveryTypeDelivery {
		return "משלוח"
	}
	return "איסוף עצמי"
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// emailParams builds the fixed-shape parameter set shared by both email
// templates.
func emailParams(order domain.Order) map[string]string {
	return map[string]string{
		"to_name":          adminName,
		"customer_name":    order.CustomerName,
		"customer_phone":   order.CustomerPhone,
		"customer_email":   orDefault(order.CustomerEmail, noEmailPlaceholder),
		"customer_address": order.CustomerAddress,
		"delivery_date":    formatDateHe(order.DeliveryDate),
		"delivery_type":    deliveryTypeLabel(order.DeliveryType),
		"order_items":      itemLines(order.Items),
		"notes":            orDefault(order.Notes, noNotesPlaceholder),
	}
}

// messageBody builds the text block for the message-link channel: greeting
// from settings, customer block, item listing, notes.
func messageBody(order domain.Order, settings domain.Settings) string {
	var b strings.Builder
	b.WriteString(settings.OrderNotificationText)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "שם: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "טלפון: %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "כתובת: %s\n", order.CustomerAddress)
	fmt.Fprintf(&b, "תאריך משלוח: %s\n", formatDateHe(order.DeliveryDate))
	fmt.Fprintf(&b, "סוג משלוח: %s\n\n", deliveryTypeLabel(order.DeliveryType))
	fmt.Fprintf(&b, "פריטים:\n%s\n", itemLines(order.Items))
	fmt.Fprintf(&b, "הערות: %s", orDefault(order.Notes, noNotesPlaceholder))
	return b.String()
}
