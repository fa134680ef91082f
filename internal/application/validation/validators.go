// Package validation contiene las reglas de campo para las mutaciones del catálogo.
// Funciones puras sin acceso a almacenamiento: cada regla se evalúa siempre (sin
// cortocircuito) para que una petición reporte todas sus violaciones en una sola
// respuesta, en orden estable. Lista vacía ⇒ petición válida.
package validation

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/storefront-api/internal/application/dto"
)

// Mensajes fijos expuestos al cliente.
const (
	MsgNameRequired    = "Name is required."
	MsgPricePositive   = "Price must be greater than 0."
	MsgStockNegative   = "StockQuantity cannot be negative."
	MsgCategoryInvalid = "CategoryId must be a valid id."
)

// Category valida la creación de una categoría.
func Category(in dto.CreateCategoryRequest) []string {
	var violations []string
	if strings.TrimSpace(in.Name) == "" {
		violations = append(violations, MsgNameRequired)
	}
	return violations
}

// Product valida la creación o actualización de un producto (mismas reglas).
// CategoryId solo se verifica estructuralmente (> 0); la existencia de la categoría
// la resuelve el caso de uso contra el repositorio.
func Product(in dto.SaveProductRequest) []string {
	var violations []string
	if strings.TrimSpace(in.Name) == "" {
		violations = append(violations, MsgNameRequired)
	}
	if in.Price.LessThanOrEqual(decimal.Zero) {
		violations = append(violations, MsgPricePositive)
	}
	if in.StockQuantity < 0 {
		violations = append(violations, MsgStockNegative)
	}
	if in.CategoryID <= 0 {
		violations = append(violations, MsgCategoryInvalid)
	}
	return violations
}
