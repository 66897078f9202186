package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// SubmissionTimeLayout es el formato con el que se registra y expone la fecha
// de envío de cada respuesta.
const SubmissionTimeLayout = "2006-01-02 15:04:05"

// SurveyResponseColumns es el orden fijo de columnas de la tabla de respuestas.
// Todo formato de salida (JSON de listado, CSV, Excel, PDF) respeta este orden.
var SurveyResponseColumns = []string{
	"SubmissionDate",
	"EmployeeNumber",
	"EmployeeName",
	"Gender",
	"Age",
	"Waist Circumference (inches)",
	"Height - Feet",
	"Height - Inches",
	"Weight (lb)",
	"BMI",
	"BMI Category",
}

// SurveyResponse es una respuesta de la encuesta de salud. Las respuestas son
// de solo inserción: nunca se actualizan ni se eliminan.
type SurveyResponse struct {
	SubmittedAt    time.Time
	EmployeeNumber string // normalizado, conserva ceros a la izquierda
	EmployeeName   string
	Gender         string
	Age            int
	WaistInches    decimal.Decimal
	HeightFeet     int
	HeightInches   int
	WeightLb       decimal.Decimal
	BMI            decimal.Decimal // redondeado a 1 decimal al registrar
	BMICategory    string          // se guarda tal como lo envía el cliente
}

// TotalHeightInches devuelve la estatura total en pulgadas (pies*12 + pulgadas).
// Un total de 0 se interpreta como dato ausente en las agregaciones.
func (r SurveyResponse) TotalHeightInches() int {
	return r.HeightFeet*12 + r.HeightInches
}

// Fields proyecta el registro al orden de SurveyResponseColumns. Es la única
// serialización a texto: la usan tanto el almacén como las exportaciones.
func (r SurveyResponse) Fields() []string {
	date := ""
	if !r.SubmittedAt.IsZero() {
		date = r.SubmittedAt.Format(SubmissionTimeLayout)
	}
	return []string{
		date,
		r.EmployeeNumber,
		r.EmployeeName,
		r.Gender,
		strconv.Itoa(r.Age),
		r.WaistInches.String(),
		strconv.Itoa(r.HeightFeet),
		strconv.Itoa(r.HeightInches),
		r.WeightLb.String(),
		r.BMI.String(),
		r.BMICategory,
	}
}
