package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrCategoryNotActive: la categoría referenciada no existe o está inactiva.
	// El texto es el mensaje exacto que recibe el cliente en el cuerpo 400.
	ErrCategoryNotActive = errors.New("CategoryId must reference an active category.")
)

// ValidationError agrupa todas las violaciones de validación de una petición,
// en el orden en que se evaluaron las reglas. Nunca se trunca a la primera.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validación: " + strings.Join(e.Violations, "; ")
}

// NewValidationError construye el error a partir de la lista de mensajes.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}
