package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Nunca ejecuta DELETE: el borrado lógico es SetActive(id, false).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, category_id, stock_quantity, created_date, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.CategoryID,
		product.StockQuantity, product.CreatedDate, product.Active,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update reemplaza los campos mutables. id y created_date quedan fuera del SET.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category_id = $5, stock_quantity = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.CategoryID, product.StockQuantity,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetActive cambia el flag de borrado lógico del producto.
func (r *ProductRepo) SetActive(ctx context.Context, id int, active bool) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID sin importar su estado Active.
func (r *ProductRepo) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, category_id, stock_quantity, created_date, active
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
		&p.StockQuantity, &p.CreatedDate, &p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetActiveByID obtiene un producto activo con el nombre de su categoría.
func (r *ProductRepo) GetActiveByID(ctx context.Context, id int) (*repository.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.category_id, p.stock_quantity, p.created_date, p.active, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1 AND p.active`
	var p repository.ProductWithCategory
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
		&p.StockQuantity, &p.CreatedDate, &p.Active, &p.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active product: %w", err)
	}
	return &p, nil
}

// ListActive lista los productos activos ordenados por nombre, con nombre de categoría.
func (r *ProductRepo) ListActive(ctx context.Context) ([]repository.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.category_id, p.stock_quantity, p.created_date, p.active, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.active
		ORDER BY p.name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductWithCategory
	for rows.Next() {
		var p repository.ProductWithCategory
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
			&p.StockQuantity, &p.CreatedDate, &p.Active, &p.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListByCategory lista todos los productos de una categoría, activos e inactivos.
// Aprovecha el índice compuesto (category_id, active).
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int) ([]entity.Product, error) {
	query := `
		SELECT id, name, description, price, category_id, stock_quantity, created_date, active
		FROM products WHERE category_id = $1
		ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
			&p.StockQuantity, &p.CreatedDate, &p.Active,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
