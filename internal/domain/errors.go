package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrNoData          = errors.New("no hay registros disponibles")
	ErrInvalidEmployee = errors.New("número de empleado inválido")
	ErrInvalidInput    = errors.New("entrada inválida")
)
