package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID          int             `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Stock       int             `db:"stock" json:"stock"`
	Category    string          `db:"category" json:"category,omitempty"`
}

// Equal compares by value, so a catalog poll can tell whether a reload
// actually changed anything before re-rendering.
func (p Product) Equal(o Product) bool {
	return p.ID == o.ID &&
		p.Name == o.Name &&
		p.Description == o.Description &&
		p.Price.Equal(o.Price) &&
		p.Stock == o.Stock &&
		p.Category == o.Category
}

type StockStatus string

const (
	InStock    StockStatus = "IN_STOCK"
	LowStock   StockStatus = "LOW_STOCK"
	OutOfStock StockStatus = "OUT_OF_STOCK"
)

// Availability maps a stock count to the badge shown on product cards.
func (p Product) Availability() StockStatus {
	switch {
	case p.Stock >= 5:
		return InStock
	case p.Stock > 0:
		return LowStock
	}
	return OutOfStock
}
