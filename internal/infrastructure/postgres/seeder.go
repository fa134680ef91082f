package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Seed puebla el catálogo con datos de demostración si está vacío.
// Idempotente: si ya existen categorías, no hace nada. Incluye a propósito una
// categoría inactiva, productos inactivos y un producto dentro de la categoría
// inactiva, para poder ejercitar los casos borde de resúmenes y listados en local.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("seed: contar categorías: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := NewCategoryRepository(pool)
	products := NewProductRepository(pool)

	electronics := &entity.Category{Name: "Electronics", Description: "Gadgets and devices", Active: true}
	home := &entity.Category{Name: "Home", Description: "Home essentials", Active: true}
	fitness := &entity.Category{Name: "Fitness", Description: "Fitness gear", Active: true}
	books := &entity.Category{Name: "Books", Description: "Books & media", Active: true}
	legacy := &entity.Category{Name: "Legacy", Description: "Inactive category", Active: false}

	for _, c := range []*entity.Category{electronics, home, fitness, books, legacy} {
		if err := categories.Create(ctx, c); err != nil {
			return fmt.Errorf("seed: categoría %q: %w", c.Name, err)
		}
	}

	now := time.Now().UTC()
	demo := []entity.Product{
		{Name: "Wireless Headphones", Description: "Over-ear", Price: decimal.NewFromFloat(149.99), CategoryID: electronics.ID, StockQuantity: 25, CreatedDate: now.AddDate(0, 0, -10), Active: true},
		{Name: "USB-C Charger", Description: "65W", Price: decimal.NewFromFloat(39.99), CategoryID: electronics.ID, StockQuantity: 0, CreatedDate: now.AddDate(0, 0, -7), Active: true},
		{Name: "Smart Light Bulb", Description: "Color", Price: decimal.NewFromFloat(19.99), CategoryID: electronics.ID, StockQuantity: 80, CreatedDate: now.AddDate(0, 0, -20), Active: true},

		{Name: "Chef Knife", Description: "8-inch", Price: decimal.NewFromFloat(59.99), CategoryID: home.ID, StockQuantity: 12, CreatedDate: now.AddDate(0, 0, -15), Active: true},
		{Name: "Cast Iron Skillet", Description: "12-inch", Price: decimal.NewFromFloat(34.99), CategoryID: home.ID, StockQuantity: 5, CreatedDate: now.AddDate(0, 0, -30), Active: true},
		{Name: "Cutting block", Description: "Wood", Price: decimal.NewFromFloat(50.99), CategoryID: home.ID, StockQuantity: 10, CreatedDate: now.AddDate(0, 0, -30), Active: true},

		{Name: "Yoga Mat", Description: "Non-slip", Price: decimal.NewFromFloat(29.99), CategoryID: fitness.ID, StockQuantity: 40, CreatedDate: now.AddDate(0, 0, -5), Active: true},
		{Name: "Kettlebell 35lb", Description: "Cast", Price: decimal.NewFromFloat(69.99), CategoryID: fitness.ID, StockQuantity: 8, CreatedDate: now.AddDate(0, 0, -2), Active: true},
		{Name: "Resistance Bands", Description: "Set", Price: decimal.NewFromFloat(14.99), CategoryID: fitness.ID, StockQuantity: 0, CreatedDate: now.AddDate(0, 0, -1), Active: true},

		{Name: "Distributed Systems", Description: "Textbook", Price: decimal.NewFromFloat(89.00), CategoryID: books.ID, StockQuantity: 3, CreatedDate: now.AddDate(0, 0, -60), Active: true},
		{Name: "Clean Architecture", Description: "Patterns", Price: decimal.NewFromFloat(42.00), CategoryID: books.ID, StockQuantity: 10, CreatedDate: now.AddDate(0, 0, -45), Active: true},
		{Name: "Refactoring", Description: "Patterns", Price: decimal.NewFromFloat(40.00), CategoryID: books.ID, StockQuantity: 5, CreatedDate: now.AddDate(0, 0, -45), Active: true},

		// Productos inactivos para casos borde
		{Name: "Old Model Router", Description: "Legacy", Price: decimal.NewFromFloat(24.99), CategoryID: electronics.ID, StockQuantity: 1, CreatedDate: now.AddDate(-1, 0, 0), Active: false},
		{Name: "Old Model Laptop", Description: "Legacy", Price: decimal.NewFromFloat(100.99), CategoryID: electronics.ID, StockQuantity: 1, CreatedDate: now.AddDate(-1, 0, 0), Active: false},

		// Producto activo dentro de la categoría inactiva
		{Name: "Discontinued Item", Description: "Legacy", Price: decimal.NewFromFloat(9.99), CategoryID: legacy.ID, StockQuantity: 10, CreatedDate: now.AddDate(0, 0, -200), Active: true},
	}

	for i := range demo {
		if err := products.Create(ctx, &demo[i]); err != nil {
			return fmt.Errorf("seed: producto %q: %w", demo[i].Name, err)
		}
	}
	return nil
}
