/*
Package sqlite provides a SQLite-backed source for analysis datasets.

PURPOSE:
  The analytics engine only accepts in-memory collections; something has to
  supply them. This package is the database-backed loader: it persists raw
  sellers, products and purchase receipts and reads them back as an
  analytics.Dataset in the exact order they were written.

WHAT IS (AND ISN'T) STORED:
  Stored:   the three raw input collections, for loading and demo seeding
  Not stored: report rows, accumulators, bonuses - analysis results are
  recomputed on every call and never persisted

ORDERING:
  Report tie-breaking depends on input order, so every table carries a
  position column and reads are ordered by it. A loaded dataset reproduces
  the seeded one element for element.

KEY TABLES:
  sellers:       id, first_name, last_name
  products:      sku, purchase_price
  receipts:      seller_id, total_amount
  receipt_items: per-receipt line items

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/sales.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  data, err := store.LoadDataset(ctx)
  rows, err := analytics.Analyze(data, factory.DefaultOptions())

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - analytics/types.go: The dataset shape
  - api/scenarios.go: Seeds demo datasets through SaveDataset
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/sales-analytics/analytics"
)

// Store persists raw analysis inputs in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sellers (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		seller_id TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS products (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		sku TEXT NOT NULL,
		purchase_price REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS receipts (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		seller_id TEXT NOT NULL,
		total_amount REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS receipt_items (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		receipt_position INTEGER NOT NULL,
		sku TEXT NOT NULL,
		quantity REAL NOT NULL DEFAULT 0,
		sale_price REAL NOT NULL DEFAULT 0,
		discount REAL NOT NULL DEFAULT 0,
		FOREIGN KEY (receipt_position) REFERENCES receipts(position) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_receipt_items_receipt
		ON receipt_items(receipt_position);
	CREATE INDEX IF NOT EXISTS idx_receipts_seller
		ON receipts(seller_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// WRITE PATH
// =============================================================================

// SaveDataset replaces the stored dataset with the given one atomically.
func (s *Store) SaveDataset(ctx context.Context, data *analytics.Dataset) error {
	if data == nil {
		return fmt.Errorf("dataset is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"receipt_items", "receipts", "products", "sellers"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, seller := range data.Sellers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sellers (seller_id, first_name, last_name) VALUES (?, ?, ?)`,
			seller.ID, seller.FirstName, seller.LastName,
		); err != nil {
			return fmt.Errorf("insert seller %s: %w", seller.ID, err)
		}
	}

	for _, product := range data.Products {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO products (sku, purchase_price) VALUES (?, ?)`,
			product.SKU, product.PurchasePrice,
		); err != nil {
			return fmt.Errorf("insert product %s: %w", product.SKU, err)
		}
	}

	for _, receipt := range data.PurchaseRecords {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO receipts (seller_id, total_amount) VALUES (?, ?)`,
			receipt.SellerID, receipt.TotalAmount,
		)
		if err != nil {
			return fmt.Errorf("insert receipt for %s: %w", receipt.SellerID, err)
		}
		receiptPos, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("receipt position: %w", err)
		}

		for _, item := range receipt.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO receipt_items (receipt_position, sku, quantity, sale_price, discount)
				 VALUES (?, ?, ?, ?, ?)`,
				receiptPos, item.SKU, item.Quantity, item.SalePrice, item.Discount,
			); err != nil {
				return fmt.Errorf("insert receipt item %s: %w", item.SKU, err)
			}
		}
	}

	return tx.Commit()
}

// Reset deletes the stored dataset.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"receipt_items", "receipts", "products", "sellers"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// =============================================================================
// READ PATH
// =============================================================================

// LoadDataset reads the stored dataset back in insertion order.
func (s *Store) LoadDataset(ctx context.Context) (*analytics.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := &analytics.Dataset{}

	rows, err := s.db.QueryContext(ctx,
		`SELECT seller_id, first_name, last_name FROM sellers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query sellers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var seller analytics.Seller
		if err := rows.Scan(&seller.ID, &seller.FirstName, &seller.LastName); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		data.Sellers = append(data.Sellers, seller)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read sellers: %w", err)
	}

	productRows, err := s.db.QueryContext(ctx,
		`SELECT sku, purchase_price FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer productRows.Close()
	for productRows.Next() {
		var product analytics.Product
		if err := productRows.Scan(&product.SKU, &product.PurchasePrice); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		data.Products = append(data.Products, product)
	}
	if err := productRows.Err(); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}

	receipts, err := s.loadReceipts(ctx)
	if err != nil {
		return nil, err
	}
	data.PurchaseRecords = receipts

	return data, nil
}

func (s *Store) loadReceipts(ctx context.Context) ([]analytics.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, seller_id, total_amount FROM receipts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}
	defer rows.Close()

	var receipts []analytics.Receipt
	var positions []int64
	for rows.Next() {
		var pos int64
		var receipt analytics.Receipt
		if err := rows.Scan(&pos, &receipt.SellerID, &receipt.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		receipts = append(receipts, receipt)
		positions = append(positions, pos)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read receipts: %w", err)
	}

	// Attach items in one ordered query rather than one query per receipt.
	indexByPos := make(map[int64]int, len(positions))
	for i, pos := range positions {
		indexByPos[pos] = i
	}

	itemRows, err := s.db.QueryContext(ctx,
		`SELECT receipt_position, sku, quantity, sale_price, discount
		 FROM receipt_items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query receipt items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var pos int64
		var item analytics.ReceiptItem
		if err := itemRows.Scan(&pos, &item.SKU, &item.Quantity, &item.SalePrice, &item.Discount); err != nil {
			return nil, fmt.Errorf("scan receipt item: %w", err)
		}
		if i, ok := indexByPos[pos]; ok {
			receipts[i].Items = append(receipts[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("read receipt items: %w", err)
	}

	return receipts, nil
}

// =============================================================================
// COUNTS (for API summaries)
// =============================================================================

// DatasetCounts reports collection sizes without loading the full dataset.
type DatasetCounts struct {
	Sellers  int `json:"sellers"`
	Products int `json:"products"`
	Receipts int `json:"receipts"`
}

// Counts returns the stored collection sizes.
func (s *Store) Counts(ctx context.Context) (DatasetCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts DatasetCounts
	for _, q := range []struct {
		table string
		dst   *int
	}{
		{"sellers", &counts.Sellers},
		{"products", &counts.Products},
		{"receipts", &counts.Receipts},
	} {
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+q.table).Scan(q.dst); err != nil {
			return DatasetCounts{}, fmt.Errorf("count %s: %w", q.table, err)
		}
	}
	return counts, nil
}
