package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/shefazol/ordering/internal/core/domain"
	"github.com/shefazol/ordering/internal/port"
)

var (
	ErrEmptyCart      = errors.New("order must contain at least one item")
	ErrNoOrderToPrint = errors.New("no order data to print")
)

const (
	resolveTimeout  = 10 * time.Second
	dispatchTimeout = 30 * time.Second
)

// CustomerFields is the customer block of the submission form.
type CustomerFields struct {
	Name           string
	Phone          string
	Email          string
	Address        string
	CustomerNumber string
	DeliveryDate   string // YYYY-MM-DD
	DeliveryType   domain.DeliveryType
	Notes          string
}

// OrderService owns the session state (the draft and the last finalized
// order) and glues validation, address resolution, persistence and
// notification dispatch together. Completed orders are pushed onto a buffered
// queue consumed by RunDispatcher so notification latency never delays the
// confirmation.
type OrderService struct {
	store    port.RecordStore
	resolver port.AddressResolver
	notifier port.Notifier
	renderer port.DocumentRenderer

	notifyQueue chan domain.Order

	mu        sync.Mutex
	draft     *Draft
	lastOrder *domain.Order
}

func NewOrderService(store port.RecordStore, resolver port.AddressResolver, notifier port.Notifier, renderer port.DocumentRenderer, queueSize int) *OrderService {
	return &OrderService{
		store:       store,
		resolver:    resolver,
		notifier:    notifier,
		renderer:    renderer,
		notifyQueue: make(chan domain.Order, queueSize),
		draft:       NewDraft(),
	}
}

// AddItem adds a line item to the current draft.
func (s *OrderService) AddItem(name string, quantity int) (domain.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.AddItem(name, quantity)
}

// IncreaseItem bumps the quantity of a draft item.
func (s *OrderService) IncreaseItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Increase(itemID)
}

// DecreaseItem lowers the quantity of a draft item, removing it at 1.
func (s *OrderService) DecreaseItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Decrease(itemID)
}

// RemoveItem deletes a draft item.
func (s *OrderService) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Remove(itemID)
}

// Summary returns a copy of the current draft items.
func (s *OrderService) Summary() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Summary()
}

// ResetDraft discards the current draft, starting a fresh order.
func (s *OrderService) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = NewDraft()
}

// Submit finalizes the draft: validate, resolve the address, persist, queue
// notifications and return the stored order. On any failure the draft is left
// in place so the customer does not lose entered data.
func (s *OrderService) Submit(ctx context.Context, fields CustomerFields) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft
	d.CustomerName = fields.Name
	d.CustomerPhone = fields.Phone
	d.CustomerEmail = fields.Email
	d.CustomerAddress = fields.Address
	d.CustomerNumber = fields.CustomerNumber
	d.DeliveryDate = fields.DeliveryDate
	d.DeliveryType = fields.DeliveryType
	d.Notes = fields.Notes

	if verr := d.validateFields(time.Now()); verr != nil {
		return nil, verr
	}

	address, err := s.resolveAddress(ctx, d.CustomerAddress)
	if err != nil {
		return nil, err
	}

	items := d.Summary()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := domain.Order{
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		CustomerEmail:   d.CustomerEmail,
		CustomerAddress: address,
		CustomerNumber:  d.CustomerNumber,
		DeliveryDate:    d.DeliveryDate,
		DeliveryType:    d.DeliveryType,
		Notes:           d.Notes,
		Items:           items,
	}

	saved, err := s.store.AddOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	select {
	case s.notifyQueue <- *saved:
	default:
		log.Printf("notification queue full, skipping dispatch for order %s", saved.ID)
	}

	s.lastOrder = saved
	s.draft = NewDraft()
	return saved, nil
}

// resolveAddress normalizes the free-text address through the resolver.
// An unreachable resolver falls back to the raw text: availability over
// strict validation. A resolver that answers "no candidate" is a rejection.
func (s *OrderService) resolveAddress(ctx context.Context, raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	rctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	resolved, err := s.resolver.Resolve(rctx, raw)
	switch {
	case err == nil:
		if !resolved.HasGeometry() {
			log.Printf("no geometry for address %q, accepting anyway", raw)
		}
		if resolved.FormattedAddress != "" {
			return resolved.FormattedAddress, nil
		}
		return raw, nil
	case errors.Is(err, port.ErrNoSelection):
		return "", &ValidationError{Field: "customerAddress", Reason: "אנא בחר כתובת מהרשימה"}
	default:
		if raw == "" {
			return "", &ValidationError{Field: "customerAddress", Reason: "אנא הזן כתובת"}
		}
		log.Printf("address resolver unavailable, keeping raw text: %v", err)
		return raw, nil
	}
}

// RunDispatcher drains the notification queue until Close is called. Settings
// are read per order so a notification reflects the settings at dispatch
// time; an unreadable settings record degrades to the defaults rather than
// dropping the notification.
func (s *OrderService) RunDispatcher(ctx context.Context) {
	for order := range s.notifyQueue {
		dctx, cancel := context.WithTimeout(ctx, dispatchTimeout)

		settings, err := s.store.GetSettings(dctx)
		if err != nil {
			log.Printf("dispatcher: reading settings: %v", err)
			settings = domain.DefaultSettings()
		}

		if ok := s.notifier.Dispatch(dctx, order, settings); !ok {
			log.Printf("dispatcher: one or more channels failed for order %s", order.ID)
		}

		cancel()
	}
}

// Close closes the notification queue, letting RunDispatcher drain and exit.
func (s *OrderService) Close() {
	close(s.notifyQueue)
}

// PrintLastOrder renders the most recently submitted order into a printable
// document and returns its path.
func (s *OrderService) PrintLastOrder(ctx context.Context) (string, error) {
	s.mu.Lock()
	order := s.lastOrder
	s.mu.Unlock()

	if order == nil {
		return "", ErrNoOrderToPrint
	}

	path, err := s.renderer.RenderOrder(ctx, *order)
	if err != nil {
		return "", fmt.Errorf("render order document: %w", err)
	}
	return path, nil
}

// Settings returns the current business settings.
func (s *OrderService) Settings(ctx context.Context) (domain.Settings, error) {
	return s.store.GetSettings(ctx)
}

// SaveSettings overwrites the business settings.
func (s *OrderService) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.store.SaveSettings(ctx, settings)
}
