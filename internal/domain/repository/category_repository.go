package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// La distinción activo-vs-todos es explícita en los métodos: GetByID ignora el flag
// Active (lo necesitan los resúmenes de categorías inactivas), GetActiveByID no.
// Los métodos de lectura devuelven (nil, nil) cuando la fila no existe.
type CategoryRepository interface {
	// Create persiste la categoría y asigna su ID.
	Create(ctx context.Context, category *entity.Category) error
	// GetByID obtiene la categoría sin importar su estado Active.
	GetByID(ctx context.Context, id int) (*entity.Category, error)
	// GetActiveByID obtiene la categoría solo si está activa (valida referencias de producto).
	GetActiveByID(ctx context.Context, id int) (*entity.Category, error)
	// ListActive lista las categorías activas ordenadas por nombre ascendente.
	ListActive(ctx context.Context) ([]entity.Category, error)
}
