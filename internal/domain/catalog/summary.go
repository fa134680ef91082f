// Package catalog contiene la lógica de agregación del catálogo (servicios de dominio puros).
package catalog

import (
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Summary vista agregada de una categoría sobre el conjunto completo de sus productos.
// Los conteos incluyen productos inactivos solo donde se indica; las métricas de precio
// e inventario se calculan únicamente sobre productos activos.
type Summary struct {
	CategoryID          int
	CategoryName        string
	TotalProducts       int // activos + inactivos
	ActiveProducts      int
	OutOfStockCount     int // activos con stock 0
	AveragePrice        decimal.Decimal
	TotalInventoryValue decimal.Decimal
	MinPrice            decimal.Decimal
	MaxPrice            decimal.Decimal
}

// Summarize calcula el resumen de una categoría a partir de TODOS sus productos
// (cualquier estado de Active), sin importar cómo se obtuvo el conjunto.
//
// Política de grupo vacío: si la categoría no tiene productos activos, todas las
// métricas de precio e inventario son exactamente cero. Min/Max/Avg sobre un conjunto
// vacío no tienen valor natural; aquí la coerción a cero es explícita y uniforme,
// nunca delegada al comportamiento NULL de un motor de base de datos.
func Summarize(category entity.Category, products []entity.Product) Summary {
	s := Summary{
		CategoryID:          category.ID,
		CategoryName:        category.Name,
		TotalProducts:       len(products),
		AveragePrice:        decimal.Zero,
		TotalInventoryValue: decimal.Zero,
		MinPrice:            decimal.Zero,
		MaxPrice:            decimal.Zero,
	}

	sum := decimal.Zero
	for _, p := range products {
		if !p.Active {
			continue
		}
		s.ActiveProducts++
		if p.StockQuantity == 0 {
			s.OutOfStockCount++
		}
		qty := decimal.NewFromInt(int64(p.StockQuantity))
		sum = sum.Add(p.Price)
		s.TotalInventoryValue = s.TotalInventoryValue.Add(p.Price.Mul(qty))

		if s.ActiveProducts == 1 {
			s.MinPrice = p.Price
			s.MaxPrice = p.Price
			continue
		}
		if p.Price.LessThan(s.MinPrice) {
			s.MinPrice = p.Price
		}
		if p.Price.GreaterThan(s.MaxPrice) {
			s.MaxPrice = p.Price
		}
	}

	if s.ActiveProducts > 0 {
		s.AveragePrice = sum.Div(decimal.NewFromInt(int64(s.ActiveProducts))).Round(2)
	}
	return s
}
