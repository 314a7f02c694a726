package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderLine is one persisted row: a product, how many, and the line total.
type OrderLine struct {
	UserID      int             `db:"user_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	TotalPrice  decimal.Decimal `db:"total_price"`
}

// OrderRow is what history pages read back.
type OrderRow struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	TotalPrice  decimal.Decimal `db:"total_price"`
	CreatedAt   string          `db:"created_at"`
}

// InsertBatch writes all lines of one checkout in a single transaction.
// Either every row lands or none do; a failure on any line rolls the whole
// batch back.
func (r *OrderRepo) InsertBatch(lines []OrderLine) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, l := range lines {
		if _, err := tx.Exec(`
		  INSERT INTO orders(user_id, product_name, quantity, total_price)
		  VALUES(?, ?, ?, ?)
		`, l.UserID, l.ProductName, l.Quantity, l.TotalPrice.String()); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *OrderRepo) ListByUser(userID int) ([]OrderRow, error) {
	var out []OrderRow
	err := r.db.Select(&out, `
	  SELECT id, user_id, product_name, quantity, total_price, created_at
	  FROM orders
	  WHERE user_id = ?
	  ORDER BY datetime(created_at) DESC, id DESC
	`, userID)
	return out, err
}

func (r *OrderRepo) ListLatest(limit int) ([]OrderRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []OrderRow
	err := r.db.Select(&out, `
	  SELECT id, user_id, product_name, quantity, total_price, created_at
	  FROM orders
	  ORDER BY datetime(created_at) DESC, id DESC
	  LIMIT ?
	`, limit)
	return out, err
}
