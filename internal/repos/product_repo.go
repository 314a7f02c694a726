package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
)

// ProductRepo persists the catalog in the products table. It satisfies
// catalog.Store so the same refresher works against the DB or a file.
type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, description, price, stock, COALESCE(category,'') AS category
	  FROM products
	  ORDER BY id
	`)
	return out, err
}

func (r *ProductRepo) Get(id int) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, description, price, stock, COALESCE(category,'') AS category
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Insert(p domain.Product) (int, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(name, description, price, stock, category)
	  VALUES(?, ?, ?, ?, ?)
	`, p.Name, p.Description, p.Price.String(), p.Stock, p.Category)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products
	  SET name = ?, description = ?, price = ?, stock = ?, category = ?,
	      updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, p.Name, p.Description, p.Price.String(), p.Stock, p.Category, p.ID)
	return err
}

func (r *ProductRepo) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}

// Load implements catalog.Store.
func (r *ProductRepo) Load() ([]domain.Product, error) { return r.List() }

// Save implements catalog.Store by replacing the whole table with ps in one
// transaction. Admin edits go through Insert/Update/Delete; Save exists for
// snapshot-style writers (bulk import, shutdown flush).
func (r *ProductRepo) Save(ps []domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}
	for _, p := range ps {
		if _, err := tx.Exec(`
		  INSERT INTO products(id, name, description, price, stock, category)
		  VALUES(?, ?, ?, ?, ?, ?)
		`, p.ID, p.Name, p.Description, p.Price.String(), p.Stock, p.Category); err != nil {
			return err
		}
	}
	return tx.Commit()
}
