package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/utsab8/Ecommerce-Cart-System/internal/catalog"
	"github.com/utsab8/Ecommerce-Cart-System/internal/repos"
	"github.com/utsab8/Ecommerce-Cart-System/internal/services"
)

type Deps struct {
	ProductHandler *ProductHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	AdminHandler   *AdminHandler

	CatalogSvc *services.CatalogService
	CartSvc    *services.CartService
}

func NewDeps(db *sqlx.DB, cache *catalog.Cache, mirror catalog.Store) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo, cache, mirror)
	cartSvc := services.NewCartService(cache)
	orderSvc := services.NewOrderService(orderRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		CartHandler:    &CartHandler{Cart: cartSvc},
		OrderHandler:   &OrderHandler{Cart: cartSvc, Order: orderSvc, Repo: orderRepo},
		AdminHandler:   &AdminHandler{Catalog: catalogSvc, Orders: orderRepo},
		CatalogSvc:     catalogSvc,
		CartSvc:        cartSvc,
	}
}
