package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/validation"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/catalog"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// CategoryUseCase casos de uso para categorías: creación, listado y resumen agregado.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products}
}

// Create valida y persiste una nueva categoría activa.
// Devuelve *domain.ValidationError con la lista completa de violaciones si la entrada es inválida.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if violations := validation.Category(in); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}
	category := &entity.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Active:      true,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista las categorías activas ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(&c))
	}
	return items, nil
}

// Summary calcula el resumen agregado de la categoría sobre TODOS sus productos.
// La categoría puede estar inactiva: el resumen se calcula igual (decisión deliberada,
// solo la ausencia de la fila produce domain.ErrNotFound).
func (uc *CategoryUseCase) Summary(ctx context.Context, id int) (*dto.CategorySummaryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	products, err := uc.products.ListByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	s := catalog.Summarize(*category, products)
	return &dto.CategorySummaryResponse{
		CategoryID:          s.CategoryID,
		CategoryName:        s.CategoryName,
		TotalProducts:       s.TotalProducts,
		ActiveProducts:      s.ActiveProducts,
		OutOfStockCount:     s.OutOfStockCount,
		AveragePrice:        s.AveragePrice,
		TotalInventoryValue: s.TotalInventoryValue,
		MinPrice:            s.MinPrice,
		MaxPrice:            s.MaxPrice,
	}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
