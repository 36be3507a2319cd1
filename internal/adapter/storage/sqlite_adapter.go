package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/shefazol/ordering/internal/core/domain"
)

// ErrStoreUnreadable is returned when a stored value cannot be decoded.
// Corrupt data is surfaced, never silently replaced.
var ErrStoreUnreadable = errors.New("store unreadable")

const (
	settingsKey = "shefazol_settings"
	ordersKey   = "shefazol_orders"
)

// SQLiteAdapter is a key/value record store over a local SQLite file. It
// keeps the semantics of the original browser storage: one JSON value per
// key, and whole-collection read-modify-write for the orders array. There is
// no partial-update primitive, so two processes sharing the same file can
// race and lose updates; this store is meant for a single writer.
type SQLiteAdapter struct {
	db *sql.DB
}

func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single writer; SQLite performs best with one connection anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}

	return &SQLiteAdapter{db: db}, nil
}

func (a *SQLiteAdapter) Close() error {
	return a.db.Close()
}

func (a *SQLiteAdapter) getRaw(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := a.db.QueryRowContext(ctx,
		`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, true, nil
}

func (a *SQLiteAdapter) putRaw(ctx context.Context, key, value string) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// GetSettings returns the saved settings. A missing record is not an error:
// the defaults are synthesized.
func (a *SQLiteAdapter) GetSettings(ctx context.Context) (domain.Settings, error) {
	raw, ok, err := a.getRaw(ctx, settingsKey)
	if err != nil {
		return domain.Settings{}, err
	}
	if !ok {
		return domain.DefaultSettings(), nil
	}

	var settings domain.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: settings: %v", ErrStoreUnreadable, err)
	}
	return settings, nil
}

func (a *SQLiteAdapter) SaveSettings(ctx context.Context, settings domain.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return a.putRaw(ctx, settingsKey, string(raw))
}

func (a *SQLiteAdapter) GetOrders(ctx context.Context) ([]domain.Order, error) {
	raw, ok, err := a.getRaw(ctx, ordersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Order{}, nil
	}

	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("%w: orders: %v", ErrStoreUnreadable, err)
	}
	return orders, nil
}

func (a *SQLiteAdapter) putOrders(ctx context.Context, orders []domain.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	return a.putRaw(ctx, ordersKey, string(raw))
}

func (a *SQLiteAdapter) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := a.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

// AddOrder assigns id, pending status and creation time, then appends the
// order to the collection in a single write.
func (a *SQLiteAdapter) AddOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	orders, err := a.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	order.ID = fmt.Sprintf("order_%d", time.Now().UnixNano())
	order.Status = domain.OrderStatusPending
	order.CreatedAt = time.Now()

	orders = append(orders, order)
	if err := a.putOrders(ctx, orders); err != nil {
		return nil, err
	}
	return &order, nil
}

func (a *SQLiteAdapter) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	orders, err := a.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		orders[i].UpdatedAt = time.Now()
		if err := a.putOrders(ctx, orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, nil
}

func (a *SQLiteAdapter) AddOrderItems(ctx context.Context, id string, items []domain.LineItem) (*domain.Order, error) {
	orders, err := a.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Items = items
		if err := a.putOrders(ctx, orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, nil
}
