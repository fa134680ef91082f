package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// ProductWithCategory producto junto con el nombre de su categoría, tal como lo
// exponen los listados. Se resuelve con un JOIN en el adaptador; la entidad no
// guarda referencias inversas para evitar grafos cíclicos.
type ProductWithCategory struct {
	entity.Product
	CategoryName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las vistas "activas" filtran por el flag Active y ordenan por nombre; GetByID es la
// búsqueda sin restricción que necesitan update/delete para distinguir "no existe" de
// "existe pero inactivo". Los métodos de lectura devuelven (nil, nil) si no hay fila.
type ProductRepository interface {
	// Create persiste el producto y asigna su ID. CreatedDate viene dado por el caso de uso.
	Create(ctx context.Context, product *entity.Product) error
	// Update reemplaza todos los campos mutables. ID y CreatedDate no se tocan.
	Update(ctx context.Context, product *entity.Product) error
	// SetActive cambia el flag de borrado lógico.
	SetActive(ctx context.Context, id int, active bool) error
	// GetByID obtiene el producto sin importar su estado Active.
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	// GetActiveByID obtiene el producto solo si está activo, con el nombre de su categoría.
	GetActiveByID(ctx context.Context, id int) (*ProductWithCategory, error)
	// ListActive lista los productos activos ordenados por nombre, con nombre de categoría.
	ListActive(ctx context.Context) ([]ProductWithCategory, error)
	// ListByCategory lista TODOS los productos de una categoría (activos e inactivos),
	// insumo del agregador de resúmenes.
	ListByCategory(ctx context.Context, categoryID int) ([]entity.Product, error)
}
