package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// StockValidationError agrupa todas las violaciones detectadas al validar una
// extracción (productos inexistentes, stock insuficiente). Se recolectan
// todas antes de fallar; nunca se corta en la primera.
type StockValidationError struct {
	Detalles []string
}

func (e *StockValidationError) Error() string {
	return "validación fallida: " + strings.Join(e.Detalles, "; ")
}

// Is permite errors.Is(err, domain.ErrInsufficientStock) sobre el agregado.
func (e *StockValidationError) Is(target error) bool {
	return target == ErrInsufficientStock
}
