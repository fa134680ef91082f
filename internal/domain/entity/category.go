package entity

// Category representa una categoría del catálogo.
// Active en false equivale a borrado lógico: la fila se conserva y sus productos
// siguen siendo direccionables, pero la categoría sale de los listados por defecto.
type Category struct {
	ID          int
	Name        string // requerido, máx 200
	Description string // opcional, máx 2000
	Active      bool
}
