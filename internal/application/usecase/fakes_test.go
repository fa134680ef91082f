package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Respetan el contrato
// de los adaptadores reales: (nil, nil) cuando la fila no existe, listados
// activos ordenados por nombre, y Update sin tocar ID ni CreatedDate.
// ──────────────────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	seq   int
	items map[int]entity.Category
}

var _ repository.CategoryRepository = (*memCategoryRepo)(nil)

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{items: make(map[int]entity.Category)}
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.seq++
	c.ID = r.seq
	r.items[c.ID] = *c
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id int) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCategoryRepo) GetActiveByID(_ context.Context, id int) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok || !c.Active {
		return nil, nil
	}
	return &c, nil
}

func (r *memCategoryRepo) ListActive(_ context.Context) ([]entity.Category, error) {
	var list []entity.Category
	for _, c := range r.items {
		if c.Active {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

type memProductRepo struct {
	seq        int
	items      map[int]entity.Product
	categories *memCategoryRepo
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

func newMemProductRepo(categories *memCategoryRepo) *memProductRepo {
	return &memProductRepo{items: make(map[int]entity.Product), categories: categories}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.seq++
	p.ID = r.seq
	r.items[p.ID] = *p
	return nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	stored, ok := r.items[p.ID]
	if !ok {
		return nil
	}
	stored.Name = p.Name
	stored.Description = p.Description
	stored.Price = p.Price
	stored.CategoryID = p.CategoryID
	stored.StockQuantity = p.StockQuantity
	r.items[p.ID] = stored
	return nil
}

func (r *memProductRepo) SetActive(_ context.Context, id int, active bool) error {
	if p, ok := r.items[id]; ok {
		p.Active = active
		r.items[id] = p
	}
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) GetActiveByID(_ context.Context, id int) (*repository.ProductWithCategory, error) {
	p, ok := r.items[id]
	if !ok || !p.Active {
		return nil, nil
	}
	return r.withCategory(p), nil
}

func (r *memProductRepo) ListActive(_ context.Context) ([]repository.ProductWithCategory, error) {
	var list []repository.ProductWithCategory
	for _, p := range r.items {
		if p.Active {
			list = append(list, *r.withCategory(p))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *memProductRepo) ListByCategory(_ context.Context, categoryID int) ([]entity.Product, error) {
	var list []entity.Product
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *memProductRepo) withCategory(p entity.Product) *repository.ProductWithCategory {
	name := ""
	if c, ok := r.categories.items[p.CategoryID]; ok {
		name = c.Name
	}
	return &repository.ProductWithCategory{Product: p, CategoryName: name}
}
