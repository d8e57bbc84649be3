package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{db: db, log: logger}
}

const productSelect = `
        SELECT p.id, p.name, p.sku, p.price, p.stock, p.category_id, c.name
        FROM products p
        JOIN categories c ON c.id = p.category_id`

func scanProduct(row interface{ Scan(...interface{}) error }, product *domain.Product) error {
	return row.Scan(
		&product.ID,
		&product.Name,
		&product.SKU,
		&product.Price,
		&product.Stock,
		&product.CategoryID,
		&product.CategoryName,
	)
}

func (r *postgresProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, sku, price, stock, category_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`
	err := r.db.QueryRow(query, product.Name, product.SKU, product.Price, product.Stock, product.CategoryID).
		Scan(&product.ID)
	if err != nil {
		switch pqErrorCode(err) {
		case pqUniqueViolation:
			r.log.Warnf("Attempted to create product with duplicate SKU: %s", product.SKU)
			return nil, domain.Conflictf("SKU already exists")
		case pqForeignKeyViolation:
			r.log.Warnf("Attempted to create product with non-existent category ID: %d", product.CategoryID)
			return nil, domain.NotFoundf("category with id %d not found", product.CategoryID)
		case pqCheckViolation:
			r.log.Warnf("Check constraint violation creating product '%s': %v", product.Name, err)
			return nil, domain.BadRequestf("product data constraint violation")
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return nil, domain.Internalf(err, "could not create product")
	}
	r.log.Infof("Product created with ID %d, SKU %s", product.ID, product.SKU)
	return r.GetProductByID(product.ID)
}

func (r *postgresProductRepository) GetProductByID(id int64) (*domain.Product, error) {
	product := &domain.Product{}
	err := scanProduct(r.db.QueryRow(productSelect+` WHERE p.id = $1`, id), product)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("product with id %d not found", id)
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, domain.Internalf(err, "could not get product by id")
	}
	return product, nil
}

func (r *postgresProductRepository) ListProducts() ([]domain.Product, error) {
	return r.queryProducts(productSelect+` ORDER BY p.id ASC`)
}

func (r *postgresProductRepository) ListProductsByCategory(categoryID int64) ([]domain.Product, error) {
	return r.queryProducts(productSelect+` WHERE p.category_id = $1 ORDER BY p.id ASC`, categoryID)
}

func (r *postgresProductRepository) queryProducts(query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, domain.Internalf(err, "could not list products")
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := scanProduct(rows, &product); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, domain.Internalf(err, "error scanning product data")
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internalf(err, "error iterating products")
	}
	return products, nil
}

func (r *postgresProductRepository) UpdateProduct(id int64, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.Empty() {
		return r.GetProductByID(id)
	}

	setClauses := []string{}
	args := []interface{}{}
	arg := func(value interface{}) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Name != nil {
		setClauses = append(setClauses, "name = "+arg(*patch.Name))
	}
	if patch.SKU != nil {
		setClauses = append(setClauses, "sku = "+arg(*patch.SKU))
	}
	if patch.Price != nil {
		setClauses = append(setClauses, "price = "+arg(*patch.Price))
	}
	if patch.Stock != nil {
		setClauses = append(setClauses, "stock = "+arg(*patch.Stock))
	}
	if patch.CategoryID != nil {
		setClauses = append(setClauses, "category_id = "+arg(*patch.CategoryID))
	}

	query := "UPDATE products SET " + strings.Join(setClauses, ", ") + " WHERE id = " + arg(id)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		switch pqErrorCode(err) {
		case pqUniqueViolation:
			return nil, domain.Conflictf("SKU already exists")
		case pqForeignKeyViolation:
			return nil, domain.NotFoundf("category with id %d not found", *patch.CategoryID)
		case pqCheckViolation:
			return nil, domain.BadRequestf("product data constraint violation")
		}
		r.log.Errorf("Failed to update product ID %d: %v", id, err)
		return nil, domain.Internalf(err, "could not update product")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, domain.Internalf(err, "could not confirm product update")
	}
	if rowsAffected == 0 {
		return nil, domain.NotFoundf("product with id %d not found", id)
	}
	r.log.Infof("Product updated with ID %d", id)
	return r.GetProductByID(id)
}

func (r *postgresProductRepository) DeleteProduct(id int64) error {
	result, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return domain.Internalf(err, "could not delete product")
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internalf(err, "could not confirm product deletion")
	}
	if rowsAffected == 0 {
		return domain.NotFoundf("product with id %d not found", id)
	}
	r.log.Infof("Product deleted with ID %d", id)
	return nil
}

func (r *postgresProductRepository) SKUExists(sku string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku).Scan(&exists)
	if err != nil {
		r.log.Errorf("Failed to check SKU existence for '%s': %v", sku, err)
		return false, domain.Internalf(err, "could not check SKU existence")
	}
	return exists, nil
}

func (r *postgresProductRepository) ExistsByCategory(categoryID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM products WHERE category_id = $1)`, categoryID).Scan(&exists)
	if err != nil {
		r.log.Errorf("Failed to check products for category %d: %v", categoryID, err)
		return false, domain.Internalf(err, "could not check category products")
	}
	return exists, nil
}
