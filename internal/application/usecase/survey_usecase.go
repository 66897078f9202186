package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hverdugo/health-survey-api/internal/application/dto"
	"github.com/hverdugo/health-survey-api/internal/domain"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
	"github.com/hverdugo/health-survey-api/internal/domain/repository"
)

// SurveyUseCase registro y consulta de respuestas de la encuesta de salud.
type SurveyUseCase struct {
	employees repository.EmployeeRepository
	responses repository.SurveyResponseRepository
}

// NewSurveyUseCase construye el caso de uso.
func NewSurveyUseCase(employees repository.EmployeeRepository, responses repository.SurveyResponseRepository) *SurveyUseCase {
	return &SurveyUseCase{employees: employees, responses: responses}
}

// Submit valida el número de empleado contra el padrón y agrega la respuesta
// a la tabla. Todo-o-nada: si la validación falla no se escribe ninguna fila.
// El BMI se redondea a 1 decimal antes de persistir.
func (uc *SurveyUseCase) Submit(in dto.SubmitSurveyRequest) (*dto.SurveyRecordResponse, error) {
	employees, err := uc.employees.LoadAll()
	if err != nil {
		return nil, err
	}
	number := entity.NormalizeEmployeeNumber(in.EmployeeNumber)
	known := false
	for _, e := range employees {
		if e.Number == number {
			known = true
			break
		}
	}
	if !known {
		return nil, domain.ErrInvalidEmployee
	}

	r := entity.SurveyResponse{
		SubmittedAt:    time.Now(),
		EmployeeNumber: number,
		EmployeeName:   in.EmployeeName,
		Gender:         in.Gender,
		Age:            in.Age,
		WaistInches:    decimal.NewFromFloat(in.WaistCircumference),
		HeightFeet:     in.HeightFeet,
		HeightInches:   in.HeightInches,
		WeightLb:       decimal.NewFromFloat(in.Weight),
		BMI:            decimal.NewFromFloat(in.BMI).Round(1),
		BMICategory:    in.BMICategory,
	}
	if err := uc.responses.Append(r); err != nil {
		return nil, err
	}
	resp := toSurveyRecordResponse(r)
	return &resp, nil
}

// List devuelve todas las respuestas en orden de inserción. Tabla ausente se
// comporta como tabla vacía.
func (uc *SurveyUseCase) List() ([]dto.SurveyRecordResponse, error) {
	records, err := uc.responses.ReadAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SurveyRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toSurveyRecordResponse(r))
	}
	return out, nil
}

// Debug arma el diagnóstico de GET /debug-csv: existencia del respaldo,
// columnas, total de filas, muestra de los dos primeros registros y tamaño.
func (uc *SurveyUseCase) Debug() (*dto.DebugCSVResponse, error) {
	if !uc.responses.Exists() {
		return nil, domain.ErrNotFound
	}
	records, err := uc.responses.ReadAll()
	if err != nil {
		return nil, err
	}
	size, _, err := uc.responses.Stat()
	if err != nil {
		return nil, err
	}
	sample := make([]dto.SurveyRecordResponse, 0, 2)
	for i := 0; i < len(records) && i < 2; i++ {
		sample = append(sample, toSurveyRecordResponse(records[i]))
	}
	return &dto.DebugCSVResponse{
		FileExists:    true,
		Columns:       entity.SurveyResponseColumns,
		TotalRows:     len(records),
		SampleData:    sample,
		FileSizeBytes: size,
	}, nil
}

func toSurveyRecordResponse(r entity.SurveyResponse) dto.SurveyRecordResponse {
	date := ""
	if !r.SubmittedAt.IsZero() {
		date = r.SubmittedAt.Format(entity.SubmissionTimeLayout)
	}
	return dto.SurveyRecordResponse{
		SubmissionDate:     date,
		EmployeeNumber:     r.EmployeeNumber,
		EmployeeName:       r.EmployeeName,
		Gender:             r.Gender,
		Age:                r.Age,
		WaistCircumference: r.WaistInches.InexactFloat64(),
		HeightFeet:         r.HeightFeet,
		HeightInches:       r.HeightInches,
		Weight:             r.WeightLb.InexactFloat64(),
		BMI:                r.BMI.InexactFloat64(),
		BMICategory:        r.BMICategory,
	}
}
