package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/shefazol/ordering/internal/core/domain"
	"github.com/shefazol/ordering/internal/port"
)

// Dispatcher fans a completed order out to the email and message-link
// channels. The channels are independent: a failure in one is logged and
// recorded in the result, but the other is still attempted. The order is
// already durably stored by the time Dispatch runs, so nothing here may
// fail the surrounding flow.
type Dispatcher struct {
	email port.EmailSender
	links port.LinkOpener
}

func NewDispatcher(email port.EmailSender, links port.LinkOpener) *Dispatcher {
	return &Dispatcher{email: email, links: links}
}

// Dispatch attempts both channels sequentially and returns true only if both
// succeeded.
func (d *Dispatcher) Dispatch(ctx context.Context, order domain.Order, settings domain.Settings) bool {
	ok := true

	if err := d.sendEmail(ctx, order, settings); err != nil {
		log.Printf("email channel failed for order %s: %v", order.ID, err)
		ok = false
	}

	if err := d.sendMessageLink(ctx, order, settings); err != nil {
		log.Printf("message-link channel failed for order %s: %v", order.ID, err)
		ok = false
	}

	return ok
}

// sendEmail sends the business notification, and a confirmation to the
// customer when they left an email address.
func (d *Dispatcher) sendEmail(ctx context.Context, order domain.Order, settings domain.Settings) error {
	params := emailParams(order)

	if err := d.email.Send(ctx, settings.AdminEmail, TemplateOrderNotification, params); err != nil {
		return fmt.Errorf("admin notification: %w", err)
	}

	if order.CustomerEmail != "" {
		params["to_name"] = order.CustomerName
		if err := d.email.Send(ctx, order.CustomerEmail, TemplateCustomerConfirmation, params); err != nil {
			return fmt.Errorf("customer confirmation: %w", err)
		}
	}

	return nil
}

func (d *Dispatcher) sendMessageLink(ctx context.Context, order domain.Order, settings domain.Settings) error {
	link := MessageURL(order.CustomerPhone, messageBody(order, settings))
	if err := d.links.Open(ctx, link); err != nil {
		return fmt.Errorf("open message link: %w", err)
	}
	return nil
}
