package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// CategoryID referencia una categoría existente al momento de la escritura; si esa
// categoría se desactiva después, la referencia se mantiene (y el resumen la sigue contando).
// ID y CreatedDate son inmutables tras la creación.
type Product struct {
	ID            int
	Name          string          // requerido, máx 200
	Description   string          // opcional, máx 2000
	Price         decimal.Decimal // > 0, precisión de moneda (2 decimales)
	CategoryID    int
	StockQuantity int // >= 0
	CreatedDate   time.Time
	Active        bool // borrado lógico
}
