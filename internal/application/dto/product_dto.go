package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest entrada para crear o actualizar un producto.
// Create y update comparten cuerpo y reglas: el update es un reemplazo completo
// de los campos mutables (ID y CreatedDate nunca viajan en el cuerpo).
type SaveProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    int             `json:"categoryId"`
	StockQuantity int             `json:"stockQuantity"`
}

// ProductResponse salida de un producto, con el nombre de su categoría resuelto.
type ProductResponse struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	CreatedDate   time.Time       `json:"createdDate"`
	CategoryID    int             `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
}
