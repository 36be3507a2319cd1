package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shefazol/ordering/internal/core/domain"
)

type sendCall struct {
	target     string
	templateID string
	params     map[string]string
}

type fakeEmailSender struct {
	calls []sendCall
	err   error
}

func (f *fakeEmailSender) Send(ctx context.Context, target, templateID string, params map[string]string) error {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	f.calls = append(f.calls, sendCall{target: target, templateID: templateID, params: copied})
	return f.err
}

type fakeLinkOpener struct {
	links []string
	err   error
}

func (f *fakeLinkOpener) Open(ctx context.Context, link string) error {
	f.links = append(f.links, link)
	return f.err
}

func testOrder() domain.Order {
	return domain.Order{
		ID:              "order_42",
		CustomerName:    "ישראל ישראלי",
		CustomerPhone:   "0501234567",
		CustomerAddress: "הרצל 1, תל אביב",
		DeliveryDate:    "2026-09-02",
		DeliveryType:    domain.DeliveryTypeDelivery,
		Items: []domain.LineItem{
			{ProductID: "custom_1", ProductName: "לחם", Quantity: 2},
			{ProductID: "custom_2", ProductName: "חלב", Quantity: 1},
		},
	}
}

func TestDispatchBothChannelsSucceed(t *testing.T) {
	email := &fakeEmailSender{}
	links := &fakeLinkOpener{}
	d := NewDispatcher(email, links)

	ok := d.Dispatch(context.Background(), testOrder(), domain.DefaultSettings())
	assert.True(t, ok)
	assert.Len(t, email.calls, 1)
	assert.Len(t, links.links, 1)
}

func TestDispatchEmailFailureDoesNotStopLinkChannel(t *testing.T) {
	email := &fakeEmailSender{err: errors.New("provider down")}
	links := &fakeLinkOpener{}
	d := NewDispatcher(email, links)

	ok := d.Dispatch(context.Background(), testOrder(), domain.DefaultSettings())
	assert.False(t, ok)
	// Message-link channel was still attempted.
	assert.Len(t, links.links, 1)
}

func TestDispatchLinkFailureStillReportsEmail(t *testing.T) {
	email := &fakeEmailSender{}
	links := &fakeLinkOpener{err: errors.New("no browser")}
	d := NewDispatcher(email, links)

	ok := d.Dispatch(context.Background(), testOrder(), domain.DefaultSettings())
	assert.False(t, ok)
	assert.Len(t, email.calls, 1)
}

func TestEmailChannelSendsAdminAndCustomerMessages(t *testing.T) {
	email := &fakeEmailSender{}
	d := NewDispatcher(email, &fakeLinkOpener{})
	settings := domain.DefaultSettings()

	order := testOrder()
	order.CustomerEmail = "customer@example.com"

	ok := d.Dispatch(context.Background(), order, settings)
	assert.True(t, ok)
	require.Len(t, email.calls, 2)

	admin := email.calls[0]
	assert.Equal(t, settings.AdminEmail, admin.target)
	assert.Equal(t, TemplateOrderNotification, admin.templateID)
	assert.Equal(t, "לחם: 2\nחלב: 1\n", admin.params["order_items"])
	assert.Equal(t, "2.9.2026", admin.params["delivery_date"])
	assert.Equal(t, "משלוח", admin.params["delivery_type"])
	assert.Equal(t, "אין הערות", admin.params["notes"])

	customer := email.calls[1]
	assert.Equal(t, "customer@example.com", customer.target)
	assert.Equal(t, TemplateCustomerConfirmation, customer.templateID)
	assert.Equal(t, order.CustomerName, customer.params["to_name"])
}

func TestEmailChannelSkipsCustomerWithoutEmail(t *testing.T) {
	email := &fakeEmailSender{}
	d := NewDispatcher(email, &fakeLinkOpener{})

	ok := d.Dispatch(context.Background(), testOrder(), domain.DefaultSettings())
	assert.True(t, ok)
	require.Len(t, email.calls, 1)
	assert.Equal(t, "לא צוין", email.calls[0].params["customer_email"])
}

func TestMessageLinkCarriesGreetingAndItems(t *testing.T) {
	links := &fakeLinkOpener{}
	d := NewDispatcher(&fakeEmailSender{}, links)
	settings := domain.DefaultSettings()

	ok := d.Dispatch(context.Background(), testOrder(), settings)
	assert.True(t, ok)
	require.Len(t, links.links, 1)

	link := links.links[0]
	assert.Contains(t, link, "https://wa.me/972501234567?text=")
	// The body is percent-encoded; decode the shape indirectly.
	body := messageBody(testOrder(), settings)
	assert.Contains(t, body, settings.OrderNotificationText)
	assert.Contains(t, body, "לחם: 2")
	assert.Contains(t, body, "סוג משלוח: משלוח")
}
