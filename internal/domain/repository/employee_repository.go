package repository

import "github.com/hverdugo/health-survey-api/internal/domain/entity"

// EmployeeRepository define el puerto de lectura del padrón de empleados (DIP).
// El padrón se relee del respaldo en cada llamada; la API nunca lo modifica
// salvo la siembra inicial.
type EmployeeRepository interface {
	LoadAll() ([]entity.Employee, error)
	SeedIfMissing() error
}
