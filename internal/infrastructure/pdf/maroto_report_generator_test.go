package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hverdugo/health-survey-api/internal/application/dto"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
	"github.com/hverdugo/health-survey-api/internal/infrastructure/pdf"
)

func buildReportStats() dto.SurveyStatsData {
	return dto.SurveyStatsData{
		TotalResponses:     2,
		GenderDistribution: map[string]int{"Female": 1, "Male": 1},
		Averages: dto.SurveyAverages{
			Age:                35.0,
			BMI:                24.3,
			WaistCircumference: 33.0,
			Weight:             150.0,
			HeightFeet:         5,
			HeightInches:       7.0,
		},
		BMICategories: map[string]int{"Normal weight": 1, "Overweight": 1},
		DateRange: dto.SurveyDateRange{
			FirstResponse: "2025-01-15 09:30:00",
			LastResponse:  "2025-02-20 14:00:00",
		},
	}
}

func buildReportRecords() []entity.SurveyResponse {
	return []entity.SurveyResponse{
		{
			SubmittedAt:    time.Date(2025, 1, 15, 9, 30, 0, 0, time.Local),
			EmployeeNumber: "00070098",
			EmployeeName:   "Aye Aye Tun",
			Gender:         "Female",
			Age:            30,
			WaistInches:    decimal.RequireFromString("30"),
			HeightFeet:     5,
			HeightInches:   4,
			WeightLb:       decimal.RequireFromString("120"),
			BMI:            decimal.RequireFromString("22"),
			BMICategory:    "Normal weight",
		},
		{
			SubmittedAt:    time.Date(2025, 2, 20, 14, 0, 0, 0, time.Local),
			EmployeeNumber: "00071215",
			EmployeeName:   "Pyae Phyo Latt",
			Gender:         "Male",
			Age:            40,
			WaistInches:    decimal.RequireFromString("36"),
			HeightFeet:     5,
			HeightInches:   10,
			WeightLb:       decimal.RequireFromString("180"),
			BMI:            decimal.RequireFromString("26.5"),
			BMICategory:    "Overweight",
		},
	}
}

// El reporte debe ser un PDF bien formado, con contenido real (no un
// documento vacío de unos pocos bytes).
func TestGenerateReport_ProduceUnPDF(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	payload, err := gen.GenerateReport(context.Background(), buildReportStats(), buildReportRecords())
	require.NoError(t, err)

	require.NotEmpty(t, payload)
	assert.Equal(t, "%PDF", string(payload[:4]), "el archivo debe iniciar con la firma PDF")
	assert.Greater(t, len(payload), 1000, "un reporte con resumen y tabla pesa más de 1 KB")
}

// Determinismo estructural: dos corridas sobre los mismos datos generan
// documentos del mismo orden de tamaño (la fecha de generación varía).
func TestGenerateReport_TamanoEstable(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	p1, err := gen.GenerateReport(context.Background(), buildReportStats(), buildReportRecords())
	require.NoError(t, err)
	p2, err := gen.GenerateReport(context.Background(), buildReportStats(), buildReportRecords())
	require.NoError(t, err)

	assert.InDelta(t, len(p1), len(p2), 200)
}

// Sin filas de detalle el reporte igual sale: encabezado y resumen solamente.
func TestGenerateReport_SinDetalle(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	stats := dto.SurveyStatsData{
		TotalResponses:     0,
		GenderDistribution: map[string]int{},
		BMICategories:      map[string]int{},
		DateRange:          dto.SurveyDateRange{FirstResponse: "N/A", LastResponse: "N/A"},
	}

	payload, err := gen.GenerateReport(context.Background(), stats, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(payload[:4]))
}
