package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/utsab8/Ecommerce-Cart-System/internal/catalog"
	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
	applog "github.com/utsab8/Ecommerce-Cart-System/internal/log"
	"github.com/utsab8/Ecommerce-Cart-System/internal/repos"
)

var (
	ErrNameRequired  = errors.New("product name is required")
	ErrBadPrice      = errors.New("price must be greater than zero")
	ErrNegativeStock = errors.New("stock cannot be negative")
)

// CatalogService owns admin catalog mutations. The products table is the
// primary store; after every mutation the in-memory snapshot is refreshed
// and, when a mirror is configured, the full collection is re-serialized to
// it (the snapshot file both dashboards read).
type CatalogService struct {
	Products *repos.ProductRepo
	Cache    *catalog.Cache
	Mirror   catalog.Store // optional snapshot mirror; may be nil
}

func NewCatalogService(products *repos.ProductRepo, cache *catalog.Cache, mirror catalog.Store) *CatalogService {
	return &CatalogService{Products: products, Cache: cache, Mirror: mirror}
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if !in.Price.IsPositive() {
		return ErrBadPrice
	}
	if in.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

func (s *CatalogService) List() []domain.Product { return s.Cache.Products() }

func (s *CatalogService) Get(id int) (domain.Product, bool) { return s.Cache.Get(id) }

func (s *CatalogService) Add(in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}
	p := domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    strings.TrimSpace(in.Category),
	}
	id, err := s.Products.Insert(p)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id
	s.sync()
	return p, nil
}

func (s *CatalogService) Update(id int, in ProductInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	if _, err := s.Products.Get(id); err != nil {
		return err
	}
	p := domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    strings.TrimSpace(in.Category),
	}
	if err := s.Products.Update(p); err != nil {
		return err
	}
	s.sync()
	return nil
}

func (s *CatalogService) Delete(id int) error {
	if err := s.Products.Delete(id); err != nil {
		return err
	}
	s.sync()
	return nil
}

// Refresh re-reads the primary store into the cache; used at startup and by
// the polling refresher.
func (s *CatalogService) Refresh() error {
	ps, err := s.Products.Load()
	if err != nil {
		return err
	}
	s.Cache.Replace(ps)
	return nil
}

// Flush writes the current collection to the mirror. Called after mutations
// and once more on shutdown.
func (s *CatalogService) Flush() error {
	if s.Mirror == nil {
		return nil
	}
	return s.Mirror.Save(s.Cache.Products())
}

func (s *CatalogService) sync() {
	if err := s.Refresh(); err != nil {
		applog.Error(nil, "catalog.refresh.fail", err, nil)
		return
	}
	if err := s.Flush(); err != nil {
		applog.Error(nil, "catalog.snapshot.fail", err, nil)
	}
}
