package usecase

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/hverdugo/health-survey-api/internal/application/dto"
	"github.com/hverdugo/health-survey-api/internal/domain"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
	"github.com/hverdugo/health-survey-api/internal/domain/repository"
)

// StatsUseCase estadísticas agregadas sobre las respuestas registradas.
type StatsUseCase struct {
	responses repository.SurveyResponseRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(responses repository.SurveyResponseRepository) *StatsUseCase {
	return &StatsUseCase{responses: responses}
}

// Get lee la tabla completa y calcula las estadísticas del momento, añadiendo
// los metadatos del respaldo. Devuelve ErrNotFound si el respaldo no existe y
// ErrNoData si existe pero no tiene registros.
func (uc *StatsUseCase) Get() (*dto.SurveyStatsResponse, error) {
	if !uc.responses.Exists() {
		return nil, domain.ErrNotFound
	}
	records, err := uc.responses.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNoData
	}
	size, location, err := uc.responses.Stat()
	if err != nil {
		return nil, err
	}
	sizeKB, _ := stats.Round(float64(size)/1024, 2)
	return &dto.SurveyStatsResponse{
		SurveyStatsData: computeStats(records),
		FileInfo: dto.SurveyFileInfo{
			SizeKB:   sizeKB,
			Location: location,
		},
	}, nil
}

// computeStats agrega los registros en memoria. Función pura: con cero
// registros devuelve la forma base sin realizar ninguna división. Un valor
// numérico en cero se trata como dato ausente (celda vacía o ilegible en el
// respaldo) y queda fuera de los promedios.
func computeStats(records []entity.SurveyResponse) dto.SurveyStatsData {
	data := dto.SurveyStatsData{
		TotalResponses:     len(records),
		GenderDistribution: map[string]int{},
		BMICategories:      map[string]int{},
		DateRange:          dto.SurveyDateRange{FirstResponse: "N/A", LastResponse: "N/A"},
	}
	if len(records) == 0 {
		return data
	}

	var ages, bmis, waists, weights, heights []float64
	var first, last time.Time
	for _, r := range records {
		if r.Gender != "" {
			data.GenderDistribution[r.Gender]++
		}
		if r.BMICategory != "" {
			data.BMICategories[r.BMICategory]++
		}
		if r.Age > 0 {
			ages = append(ages, float64(r.Age))
		}
		if r.BMI.IsPositive() {
			bmis = append(bmis, r.BMI.InexactFloat64())
		}
		if r.WaistInches.IsPositive() {
			waists = append(waists, r.WaistInches.InexactFloat64())
		}
		if r.WeightLb.IsPositive() {
			weights = append(weights, r.WeightLb.InexactFloat64())
		}
		if h := r.TotalHeightInches(); h > 0 {
			heights = append(heights, float64(h))
		}
		if !r.SubmittedAt.IsZero() {
			if first.IsZero() || r.SubmittedAt.Before(first) {
				first = r.SubmittedAt
			}
			if last.IsZero() || r.SubmittedAt.After(last) {
				last = r.SubmittedAt
			}
		}
	}

	data.Averages = dto.SurveyAverages{
		Age:                roundedMean(ages),
		BMI:                roundedMean(bmis),
		WaistCircumference: roundedMean(waists),
		Weight:             roundedMean(weights),
	}
	data.Averages.HeightFeet, data.Averages.HeightInches = splitHeight(roundedMean(heights))

	if !first.IsZero() {
		data.DateRange = dto.SurveyDateRange{
			FirstResponse: first.Format(entity.SubmissionTimeLayout),
			LastResponse:  last.Format(entity.SubmissionTimeLayout),
		}
	}
	return data
}

// roundedMean promedio redondeado a 1 decimal; 0 sin valores.
func roundedMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	r, err := stats.Round(m, 1)
	if err != nil {
		return 0
	}
	return r
}

// splitHeight descompone la estatura promedio (pulgadas totales, ya redondeada
// a 1 decimal) en pies enteros y pulgadas restantes.
func splitHeight(avgTotalInches float64) (int, float64) {
	if avgTotalInches <= 0 {
		return 0, 0
	}
	feet := int(avgTotalInches / 12)
	inches, err := stats.Round(math.Mod(avgTotalInches, 12), 1)
	if err != nil {
		return feet, 0
	}
	return feet, inches
}
