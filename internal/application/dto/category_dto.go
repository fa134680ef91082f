package dto

import "github.com/shopspring/decimal"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategorySummaryResponse resumen agregado por categoría.
// Con cero productos activos, todas las métricas son cero explícito (nunca null).
type CategorySummaryResponse struct {
	CategoryID          int             `json:"categoryId"`
	CategoryName        string          `json:"categoryName"`
	TotalProducts       int             `json:"totalProducts"`
	ActiveProducts      int             `json:"activeProducts"`
	OutOfStockCount     int             `json:"outOfStockCount"`
	AveragePrice        decimal.Decimal `json:"averagePrice"`
	TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`
	MinPrice            decimal.Decimal `json:"minPrice"`
	MaxPrice            decimal.Decimal `json:"maxPrice"`
}
