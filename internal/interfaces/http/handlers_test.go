package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	gohttp "net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	apphttp "github.com/jhoicas/storefront-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria mínimos para probar el contrato HTTP de extremo a
// extremo (handler → caso de uso → repo) sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	catSeq, prodSeq int
	cats            map[int]entity.Category
	prods           map[int]entity.Product
}

func newMemStore() *memStore {
	return &memStore{cats: make(map[int]entity.Category), prods: make(map[int]entity.Product)}
}

type memCats struct{ s *memStore }

func (r memCats) Create(_ context.Context, c *entity.Category) error {
	r.s.catSeq++
	c.ID = r.s.catSeq
	r.s.cats[c.ID] = *c
	return nil
}

func (r memCats) GetByID(_ context.Context, id int) (*entity.Category, error) {
	if c, ok := r.s.cats[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r memCats) GetActiveByID(_ context.Context, id int) (*entity.Category, error) {
	if c, ok := r.s.cats[id]; ok && c.Active {
		return &c, nil
	}
	return nil, nil
}

func (r memCats) ListActive(_ context.Context) ([]entity.Category, error) {
	var list []entity.Category
	for _, c := range r.s.cats {
		if c.Active {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

type memProds struct{ s *memStore }

func (r memProds) Create(_ context.Context, p *entity.Product) error {
	r.s.prodSeq++
	p.ID = r.s.prodSeq
	r.s.prods[p.ID] = *p
	return nil
}

func (r memProds) Update(_ context.Context, p *entity.Product) error {
	stored, ok := r.s.prods[p.ID]
	if !ok {
		return nil
	}
	stored.Name, stored.Description = p.Name, p.Description
	stored.Price, stored.CategoryID, stored.StockQuantity = p.Price, p.CategoryID, p.StockQuantity
	r.s.prods[p.ID] = stored
	return nil
}

func (r memProds) SetActive(_ context.Context, id int, active bool) error {
	if p, ok := r.s.prods[id]; ok {
		p.Active = active
		r.s.prods[id] = p
	}
	return nil
}

func (r memProds) GetByID(_ context.Context, id int) (*entity.Product, error) {
	if p, ok := r.s.prods[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r memProds) GetActiveByID(_ context.Context, id int) (*repository.ProductWithCategory, error) {
	p, ok := r.s.prods[id]
	if !ok || !p.Active {
		return nil, nil
	}
	return &repository.ProductWithCategory{Product: p, CategoryName: r.s.cats[p.CategoryID].Name}, nil
}

func (r memProds) ListActive(_ context.Context) ([]repository.ProductWithCategory, error) {
	var list []repository.ProductWithCategory
	for _, p := range r.s.prods {
		if p.Active {
			list = append(list, repository.ProductWithCategory{Product: p, CategoryName: r.s.cats[p.CategoryID].Name})
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r memProds) ListByCategory(_ context.Context, categoryID int) ([]entity.Product, error) {
	var list []entity.Product
	for _, p := range r.s.prods {
		if p.CategoryID == categoryID {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// buildTestApp arma la aplicación Fiber completa sobre los repos en memoria.
func buildTestApp() (*fiber.App, *memStore) {
	store := newMemStore()
	cats := memCats{s: store}
	prods := memProds{s: store}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(cats, prods),
		ProductUC:  usecase.NewProductUseCase(prods, cats),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*gohttp.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func seedCategory(t *testing.T, store *memStore, name string, active bool) int {
	t.Helper()
	c := &entity.Category{Name: name, Active: active}
	require.NoError(t, memCats{s: store}.Create(context.Background(), c))
	return c.ID
}

func productBody(categoryID int) map[string]any {
	return map[string]any{
		"name":          "Yoga Mat",
		"description":   "Non-slip",
		"price":         29.99,
		"categoryId":    categoryID,
		"stockQuantity": 40,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTPCategoryCreate_201(t *testing.T) {
	app, _ := buildTestApp()

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/categories", map[string]any{
		"name": "Electronics", "description": "Gadgets",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.CategoryResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 1, out.ID)
	assert.Equal(t, "Electronics", out.Name)
}

func TestHTTPCategoryCreate_400ConListaDeErrores(t *testing.T) {
	app, _ := buildTestApp()

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/categories", map[string]any{"name": "   "})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, []string{"Name is required."}, out.Errors)
}

func TestHTTPCategoryList_SoloActivas(t *testing.T) {
	app, store := buildTestApp()
	seedCategory(t, store, "Home", true)
	seedCategory(t, store, "Books", true)
	seedCategory(t, store, "Legacy", false)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/api/categories", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Books", out[0].Name)
	assert.Equal(t, "Home", out[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTPProductCreate_201(t *testing.T) {
	app, store := buildTestApp()
	catID := seedCategory(t, store, "Fitness", true)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/products", productBody(catID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Yoga Mat", out.Name)
	assert.Equal(t, "Fitness", out.CategoryName)
	assert.True(t, out.Price.Equal(decimal.NewFromFloat(29.99)))
	assert.False(t, out.CreatedDate.IsZero())
}

func TestHTTPProductCreate_400ValidacionCompleta(t *testing.T) {
	app, store := buildTestApp()
	catID := seedCategory(t, store, "Fitness", true)

	body := productBody(catID)
	body["name"] = ""
	body["price"] = -1
	body["stockQuantity"] = -5
	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/products", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, []string{
		"Name is required.",
		"Price must be greater than 0.",
		"StockQuantity cannot be negative.",
	}, out.Errors)
}

func TestHTTPProductCreate_400CategoriaInactiva(t *testing.T) {
	app, store := buildTestApp()
	catID := seedCategory(t, store, "Legacy", false)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/products", productBody(catID))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, []string{"CategoryId must reference an active category."}, out.Errors)
	assert.Empty(t, store.prods, "el fallo de referencia no persiste nada")
}

func TestHTTPProductLifecycle_CrearObtenerDesactivar(t *testing.T) {
	app, store := buildTestApp()
	catID := seedCategory(t, store, "Fitness", true)

	_, raw := doJSON(t, app, fiber.MethodPost, "/api/products", productBody(catID))
	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	path := fmt.Sprintf("/api/products/%d", created.ID)

	resp, _ := doJSON(t, app, fiber.MethodGet, path, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Tras el borrado lógico: vista activa 404, fila conservada en el almacén
	resp, _ = doJSON(t, app, fiber.MethodGet, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, store.prods[created.ID].Active)

	// Desactivar de nuevo también es 404 (decisión documentada, no idempotente)
	resp, _ = doJSON(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHTTPProductUpdate_200Y404(t *testing.T) {
	app, store := buildTestApp()
	catID := seedCategory(t, store, "Fitness", true)

	_, raw := doJSON(t, app, fiber.MethodPost, "/api/products", productBody(catID))
	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	body := productBody(catID)
	body["name"] = "Resistance Bands"
	body["stockQuantity"] = 0
	resp, raw := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/products/%d", created.ID), body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Resistance Bands", updated.Name)
	assert.True(t, created.CreatedDate.Equal(updated.CreatedDate), "CreatedDate no cambia en update")

	resp, _ = doJSON(t, app, fiber.MethodPut, "/api/products/9999", body)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen por categoría
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTPSummary_CategoriaVaciaTodoCeroEnJSON(t *testing.T) {
	app, store := buildTestApp()
	catID := seedCategory(t, store, "Books", true)

	resp, raw := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/categories/%d/summary", catID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Las métricas deben ser ceros presentes en el JSON, nunca null ni ausentes.
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	for _, field := range []string{"totalProducts", "activeProducts", "outOfStockCount",
		"averagePrice", "totalInventoryValue", "minPrice", "maxPrice"} {
		require.Contains(t, out, field)
		assert.EqualValues(t, 0, out[field], "campo %s", field)
	}
	assert.EqualValues(t, catID, out["categoryId"])
	assert.Equal(t, "Books", out["categoryName"])
}

func TestHTTPSummary_404(t *testing.T) {
	app, _ := buildTestApp()
	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/categories/404/summary", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
