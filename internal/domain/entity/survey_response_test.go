package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hverdugo/health-survey-api/internal/domain/entity"
)

func buildResponse() entity.SurveyResponse {
	return entity.SurveyResponse{
		SubmittedAt:    time.Date(2025, 1, 15, 9, 30, 0, 0, time.Local),
		EmployeeNumber: "00070098",
		EmployeeName:   "Aye Aye Tun",
		Gender:         "Female",
		Age:            30,
		WaistInches:    decimal.RequireFromString("34.5"),
		HeightFeet:     5,
		HeightInches:   6,
		WeightLb:       decimal.RequireFromString("150.5"),
		BMI:            decimal.RequireFromString("24.3"),
		BMICategory:    "Normal weight",
	}
}

func TestTotalHeightInches_SumaPiesYPulgadas(t *testing.T) {
	r := buildResponse()
	assert.Equal(t, 66, r.TotalHeightInches(), "5 pies 6 pulgadas son 66 pulgadas")
}

// TestFields_OrdenYFormato verifica la proyección a texto: mismo orden que
// SurveyResponseColumns y formato estable para fecha, enteros y decimales.
func TestFields_OrdenYFormato(t *testing.T) {
	r := buildResponse()

	fields := r.Fields()
	require.Len(t, fields, len(entity.SurveyResponseColumns),
		"la proyección debe cubrir todas las columnas")

	expected := []string{
		"2025-01-15 09:30:00",
		"00070098",
		"Aye Aye Tun",
		"Female",
		"30",
		"34.5",
		"5",
		"6",
		"150.5",
		"24.3",
		"Normal weight",
	}
	assert.Equal(t, expected, fields)
}

// TestFields_FechaCeroQuedaVacia cubre filas heredadas sin marca de tiempo:
// la celda de fecha queda vacía, nunca "0001-01-01".
func TestFields_FechaCeroQuedaVacia(t *testing.T) {
	r := buildResponse()
	r.SubmittedAt = time.Time{}

	assert.Equal(t, "", r.Fields()[0])
}
