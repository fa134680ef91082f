package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/validation"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El borrado es siempre lógico:
// Deactivate apaga el flag Active y la fila se conserva.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// Create valida, resuelve la categoría y persiste un producto activo.
// La categoría debe existir y estar activa al momento de la escritura; después puede
// desactivarse sin invalidar el producto. La secuencia verificar-luego-insertar no es
// atómica frente a una desactivación concurrente de la categoría; es una carrera aceptada.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if violations := validation.Product(in); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}
	category, err := uc.categories.GetActiveByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotActive
	}
	product := &entity.Product{
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		Price:         in.Price,
		CategoryID:    category.ID,
		StockQuantity: in.StockQuantity,
		CreatedDate:   time.Now().UTC(),
		Active:        true,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product, category.Name), nil
}

// GetByID obtiene un producto activo con el nombre de su categoría.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int) (*dto.ProductResponse, error) {
	product, err := uc.products.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(&product.Product, product.CategoryName), nil
}

// List lista los productos activos ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(&p.Product, p.CategoryName))
	}
	return items, nil
}

// Update reemplaza todos los campos mutables de un producto activo.
// ID y CreatedDate no se tocan. La referencia de categoría se revalida contra las
// categorías activas, igual que en Create.
func (uc *ProductUseCase) Update(ctx context.Context, id int, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if violations := validation.Product(in); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}
	existing, err := uc.products.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categories.GetActiveByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotActive
	}

	product := existing.Product
	product.Name = strings.TrimSpace(in.Name)
	product.Description = strings.TrimSpace(in.Description)
	product.Price = in.Price
	product.CategoryID = category.ID
	product.StockQuantity = in.StockQuantity

	if err := uc.products.Update(ctx, &product); err != nil {
		return nil, err
	}
	return toProductResponse(&product, category.Name), nil
}

// Deactivate marca un producto activo como inactivo (borrado lógico).
// Desactivar un producto ya inactivo devuelve domain.ErrNotFound: la búsqueda que
// protege la operación es solo-activos. Decisión documentada, no idempotente;
// cambiarla requiere confirmación del dueño del producto.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id int) error {
	product, err := uc.products.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.SetActive(ctx, id, false)
}

func toProductResponse(p *entity.Product, categoryName string) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CreatedDate:   p.CreatedDate,
		CategoryID:    p.CategoryID,
		CategoryName:  categoryName,
	}
}
