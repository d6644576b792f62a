package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
	"github.com/jcmexdev/order-service/internal/order-service/core/ports"

	// Register the pure-Go SQLite driver. No CGO, so it builds cleanly
	// in Alpine-based images.
	_ "modernc.org/sqlite"
)

var _ ports.OrderRepository = (*SQLiteRepository)(nil)

// schema is the DDL executed once on Open. Items are stored as a JSON
// column; the order total is never stored and is always recomputed from
// the items, so the two cannot drift.
const schema = `
CREATE TABLE IF NOT EXISTS orders (
    -- Order ID generated by the domain, never by the database.
    id           TEXT PRIMARY KEY,

    customer_id  TEXT NOT NULL,

    -- JSON array of {product_id, quantity, unit_price}.
    items        TEXT NOT NULL,

    status       TEXT NOT NULL,

    -- RFC3339 stored as TEXT, SQLite idiom.
    created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id);
`

// SQLiteRepository is the SQLite implementation of ports.OrderRepository.
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at the given path and applies
// the schema. WAL mode lets the read endpoint run while a save is in flight;
// busy_timeout waits for locks instead of failing immediately.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Save upserts by order ID: saving the same ID twice overwrites the row.
func (r *SQLiteRepository) Save(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	rec := toRecord(order)
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return nil, fmt.Errorf("sqlite: marshal items for order %s: %w", order.ID, err)
	}

	const q = `
		INSERT INTO orders (id, customer_id, items, status, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			customer_id = excluded.customer_id,
			items       = excluded.items,
			status      = excluded.status,
			created_at  = excluded.created_at`

	_, err = r.db.ExecContext(ctx, q,
		rec.ID,
		rec.CustomerID,
		string(items),
		rec.Status,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: save order %s: %w: %w", order.ID, entity.ErrStorageUnavailable, err)
	}
	return order, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	const q = `
		SELECT id, customer_id, items, status, created_at
		FROM   orders
		WHERE  id = ?`

	row := r.db.QueryRowContext(ctx, q, id)

	var rec orderRecord
	var items, createdAt string
	err := row.Scan(&rec.ID, &rec.CustomerID, &items, &rec.Status, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get order %s: %w: %w", id, entity.ErrStorageUnavailable, err)
	}

	if err := json.Unmarshal([]byte(items), &rec.Items); err != nil {
		return nil, fmt.Errorf("sqlite: unmarshal items for order %s: %w", id, err)
	}
	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("sqlite: parse created_at for order %s: %w", id, err)
	}

	return rec.toEntity(), nil
}
