package csvstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hverdugo/health-survey-api/internal/domain"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
	"github.com/hverdugo/health-survey-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre un CSV
// plano. El archivo se relee completo en cada llamada; no hay caché.
type EmployeeRepo struct {
	path string
}

// NewEmployeeRepository construye el adaptador del padrón de empleados.
func NewEmployeeRepository(path string) *EmployeeRepo {
	return &EmployeeRepo{path: path}
}

// LoadAll lee el padrón completo. Los números se normalizan a 8 dígitos sin
// importar cómo estén escritos en el archivo (Excel suele comerse los ceros).
func (r *EmployeeRepo) LoadAll() ([]entity.Employee, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read employees file: %w", err)
	}
	rows, err := parseCSV(data)
	if err != nil {
		return nil, fmt.Errorf("parse employees file: %w", err)
	}
	employees := make([]entity.Employee, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // encabezado
		}
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		employees = append(employees, entity.Employee{
			Number: entity.NormalizeEmployeeNumber(row[0]),
			Name:   row[1],
		})
	}
	return employees, nil
}

// SeedIfMissing crea el padrón con la muestra corporativa si el archivo no
// existe. Nunca toca un padrón ya presente.
func (r *EmployeeRepo) SeedIfMissing() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat employees file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(r.path, []byte(sampleRoster), 0o644); err != nil {
		return fmt.Errorf("seed employees file: %w", err)
	}
	return nil
}
