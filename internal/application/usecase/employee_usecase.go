package usecase

import (
	"github.com/hverdugo/health-survey-api/internal/application/dto"
	"github.com/hverdugo/health-survey-api/internal/domain/repository"
)

// EmployeeUseCase consultas de solo lectura sobre el padrón de empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// List devuelve el padrón completo. El respaldo se relee en cada llamada, de
// modo que los cambios hechos al archivo se reflejan sin reiniciar.
func (uc *EmployeeUseCase) List() ([]dto.EmployeeResponse, error) {
	employees, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, dto.EmployeeResponse{
			EmployeeNumber: e.Number,
			EmployeeName:   e.Name,
		})
	}
	return out, nil
}
