package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
)

const snapshotVersion = 1

// productRecord is the storage schema, kept separate from domain.Product so
// the file format can evolve without touching business logic. Prices are
// stored as strings to keep exact decimal round-trips.
type productRecord struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category,omitempty"`
}

type snapshotFile struct {
	Version  int             `json:"version"`
	SavedAt  string          `json:"saved_at"`
	Products []productRecord `json:"products"`
}

// FileStore persists the catalog as a versioned JSON snapshot at Path.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load reads the snapshot. A missing file seeds the default catalog and
// saves it immediately so the next load succeeds. A snapshot that exists
// but fails to parse is surfaced as an error; the caller keeps whatever
// catalog state it already has.
func (s *FileStore) Load() ([]domain.Product, error) {
	raw, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		ps := DefaultProducts()
		if err := s.Save(ps); err != nil {
			return nil, fmt.Errorf("seed catalog snapshot: %w", err)
		}
		return ps, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog snapshot: %w", err)
	}

	var f snapshotFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog snapshot %s: %w", s.Path, err)
	}
	if f.Version != snapshotVersion {
		return nil, fmt.Errorf("catalog snapshot %s: unsupported version %d", s.Path, f.Version)
	}

	out := make([]domain.Product, 0, len(f.Products))
	for _, r := range f.Products {
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog snapshot %s: product %d: bad price %q: %w", s.Path, r.ID, r.Price, err)
		}
		out = append(out, domain.Product{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Price:       price,
			Stock:       r.Stock,
			Category:    r.Category,
		})
	}
	return out, nil
}

// Save serializes the full collection, overwriting the prior snapshot.
func (s *FileStore) Save(ps []domain.Product) error {
	f := snapshotFile{
		Version: snapshotVersion,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, p := range ps {
		f.Products = append(f.Products, productRecord{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.String(),
			Stock:       p.Stock,
			Category:    p.Category,
		})
	}
	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog snapshot: %w", err)
	}
	if err := os.WriteFile(s.Path, raw, 0644); err != nil {
		return fmt.Errorf("write catalog snapshot: %w", err)
	}
	return nil
}

// DefaultProducts is the built-in catalog used when no snapshot exists yet.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Description: "High-performance gaming laptop with RTX 3080, 16GB RAM, and 1TB SSD storage", Price: decimal.RequireFromString("1299.99"), Stock: 10, Category: "Electronics"},
		{ID: 2, Name: "Smartphone", Description: "Latest model with 5G support, 6.7-inch display, and 128GB storage", Price: decimal.RequireFromString("799.99"), Stock: 15, Category: "Electronics"},
		{ID: 3, Name: "Headphones", Description: "Noise-cancelling wireless headphones with 40-hour battery life", Price: decimal.RequireFromString("199.99"), Stock: 20, Category: "Electronics"},
		{ID: 4, Name: "Smart Watch", Description: "Fitness tracking, heart rate monitoring, and GPS capabilities", Price: decimal.RequireFromString("249.99"), Stock: 8, Category: "Electronics"},
		{ID: 5, Name: "Tablet", Description: "10-inch display, 64GB storage, perfect for productivity and entertainment", Price: decimal.RequireFromString("349.99"), Stock: 12, Category: "Electronics"},
	}
}
