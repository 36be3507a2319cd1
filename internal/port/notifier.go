package port

import (
	"context"

	"github.com/shefazol/ordering/internal/core/domain"
)

// EmailSender delivers one templated message to one recipient.
type EmailSender interface {
	Send(ctx context.Context, target, templateID string, params map[string]string) error
}

// LinkOpener hands a deep link to the surrounding environment, typically by
// opening it in the default browser.
type LinkOpener interface {
	Open(ctx context.Context, url string) error
}

// Notifier fans a completed order out to every notification channel. A failed
// channel is logged, never raised: dispatch must not disturb the already
// persisted order or the confirmation flow. Returns true only if every
// channel succeeded.
type Notifier interface {
	Dispatch(ctx context.Context, order domain.Order, settings domain.Settings) bool
}

// DocumentRenderer produces the printable artifact for an order and returns
// the path it was written to.
type DocumentRenderer interface {
	RenderOrder(ctx context.Context, order domain.Order) (string, error)
}
