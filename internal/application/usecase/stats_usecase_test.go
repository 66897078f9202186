package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hverdugo/health-survey-api/internal/application/usecase"
	"github.com/hverdugo/health-survey-api/internal/domain"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
)

// statsRecord arma un registro completo para los agregados.
func statsRecord(submitted string, gender string, age int, waist, weight, bmi string, feet, inches int, category string) entity.SurveyResponse {
	var at time.Time
	if submitted != "" {
		parsed, err := time.ParseInLocation(entity.SubmissionTimeLayout, submitted, time.Local)
		if err != nil {
			panic(err)
		}
		at = parsed
	}
	return entity.SurveyResponse{
		SubmittedAt:  at,
		Gender:       gender,
		Age:          age,
		WaistInches:  decimal.RequireFromString(waist),
		HeightFeet:   feet,
		HeightInches: inches,
		WeightLb:     decimal.RequireFromString(weight),
		BMI:          decimal.RequireFromString(bmi),
		BMICategory:  category,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados vacíos
// ──────────────────────────────────────────────────────────────────────────────

func TestStatsGet_RespaldoAusente(t *testing.T) {
	uc := usecase.NewStatsUseCase(&fakeSurveyRepo{})

	_, err := uc.Get()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatsGet_TablaVacia(t *testing.T) {
	uc := usecase.NewStatsUseCase(&fakeSurveyRepo{exists: true})

	_, err := uc.Get()
	assert.ErrorIs(t, err, domain.ErrNoData)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregados
// ──────────────────────────────────────────────────────────────────────────────

// Dos registros completos: promedios a 1 decimal, distribución por género y
// por categoría, rango de fechas y metadatos del respaldo.
func TestStatsGet_AgregadosCompletos(t *testing.T) {
	repo := &fakeSurveyRepo{
		records: []entity.SurveyResponse{
			statsRecord("2025-01-15 09:30:00", "Female", 30, "30", "120", "22", 5, 4, "Normal weight"),
			statsRecord("2025-02-20 14:00:00", "Male", 40, "36", "180", "26.5", 5, 10, "Overweight"),
		},
		exists: true,
		size:   2560,
		path:   "data/survey_responses.csv",
	}
	uc := usecase.NewStatsUseCase(repo)

	out, err := uc.Get()
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalResponses)
	assert.Equal(t, map[string]int{"Female": 1, "Male": 1}, out.GenderDistribution)
	assert.Equal(t, map[string]int{"Normal weight": 1, "Overweight": 1}, out.BMICategories)

	assert.InDelta(t, 35.0, out.Averages.Age, 0.0001)
	assert.InDelta(t, 24.3, out.Averages.BMI, 0.0001, "(22+26.5)/2 = 24.25 redondea a 24.3")
	assert.InDelta(t, 33.0, out.Averages.WaistCircumference, 0.0001)
	assert.InDelta(t, 150.0, out.Averages.Weight, 0.0001)

	// Estatura promedio: (64+70)/2 = 67 pulgadas = 5 pies 7.0 pulgadas.
	assert.Equal(t, 5, out.Averages.HeightFeet)
	assert.InDelta(t, 7.0, out.Averages.HeightInches, 0.0001)

	assert.Equal(t, "2025-01-15 09:30:00", out.DateRange.FirstResponse)
	assert.Equal(t, "2025-02-20 14:00:00", out.DateRange.LastResponse)

	assert.InDelta(t, 2.5, out.FileInfo.SizeKB, 0.0001, "2560 bytes son 2.5 KB")
	assert.Equal(t, "data/survey_responses.csv", out.FileInfo.Location)
}

// Un cero numérico cuenta como dato ausente: entra al total pero no arrastra
// los promedios ni las distribuciones.
func TestStatsGet_CeroEsDatoAusente(t *testing.T) {
	incompleto := entity.SurveyResponse{} // fila ilegible: todo en cero
	repo := &fakeSurveyRepo{
		records: []entity.SurveyResponse{
			statsRecord("2025-01-15 09:30:00", "Female", 30, "30", "120", "22", 5, 4, "Normal weight"),
			statsRecord("2025-02-20 14:00:00", "Male", 40, "36", "180", "26.5", 5, 10, "Overweight"),
			incompleto,
		},
		exists: true,
	}
	uc := usecase.NewStatsUseCase(repo)

	out, err := uc.Get()
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalResponses, "la fila incompleta sí cuenta en el total")
	assert.InDelta(t, 35.0, out.Averages.Age, 0.0001, "la edad en cero no entra al promedio")
	assert.Equal(t, map[string]int{"Female": 1, "Male": 1}, out.GenderDistribution,
		"el género vacío no crea clave en la distribución")
	assert.Equal(t, "2025-01-15 09:30:00", out.DateRange.FirstResponse,
		"la fecha cero no acota el rango")
}

// La estatura se redondea primero como promedio total y después se descompone,
// por eso pueden aparecer pulgadas fraccionarias.
func TestStatsGet_EstaturaConFraccion(t *testing.T) {
	repo := &fakeSurveyRepo{
		records: []entity.SurveyResponse{
			statsRecord("2025-01-15 09:30:00", "Male", 30, "30", "150", "24", 5, 11, "Normal weight"),
			statsRecord("2025-01-16 09:30:00", "Male", 30, "30", "150", "24", 5, 10, "Normal weight"),
		},
		exists: true,
	}
	uc := usecase.NewStatsUseCase(repo)

	out, err := uc.Get()
	require.NoError(t, err)

	// (71+70)/2 = 70.5 pulgadas = 5 pies 10.5 pulgadas.
	assert.Equal(t, 5, out.Averages.HeightFeet)
	assert.InDelta(t, 10.5, out.Averages.HeightInches, 0.0001)
}

// Sin ninguna estatura aprovechable el promedio queda en 0 pies 0 pulgadas.
func TestStatsGet_SinEstaturas(t *testing.T) {
	repo := &fakeSurveyRepo{
		records: []entity.SurveyResponse{
			statsRecord("2025-01-15 09:30:00", "Female", 30, "30", "120", "22", 0, 0, "Normal weight"),
		},
		exists: true,
	}
	uc := usecase.NewStatsUseCase(repo)

	out, err := uc.Get()
	require.NoError(t, err)

	assert.Zero(t, out.Averages.HeightFeet)
	assert.Zero(t, out.Averages.HeightInches)
	assert.InDelta(t, 30.0, out.Averages.Age, 0.0001, "las demás medidas sí se promedian")
}

// Sin ninguna fecha válida el rango queda en "N/A", como en los respaldos
// migrados a mano.
func TestStatsGet_SinFechasValidas(t *testing.T) {
	repo := &fakeSurveyRepo{
		records: []entity.SurveyResponse{
			statsRecord("", "Female", 30, "30", "120", "22", 5, 4, "Normal weight"),
		},
		exists: true,
	}
	uc := usecase.NewStatsUseCase(repo)

	out, err := uc.Get()
	require.NoError(t, err)

	assert.Equal(t, "N/A", out.DateRange.FirstResponse)
	assert.Equal(t, "N/A", out.DateRange.LastResponse)
}
