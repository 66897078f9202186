// Package pdf implementa el reporte imprimible de la encuesta de salud con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del programa  │  Total + fecha de generación │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: promedios (edad, BMI, cintura, peso, estatura),   │
//	│  distribución por género y por categoría de BMI             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Date | Employee # | Name | Gender | Age | BMI | Cat │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/hverdugo/health-survey-api/internal/application/dto"
	"github.com/hverdugo/health-survey-api/internal/application/export"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 102, Green: 126, Blue: 234} // 667EEA, el morado del frontend
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa export.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReport genera el reporte y devuelve sus bytes. Los textos del
// documento van en inglés, igual que los encabezados de la tabla exportada.
func (g *MarotoReportGenerator) GenerateReport(
	_ context.Context,
	stats dto.SurveyStatsData,
	records []entity.SurveyResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Health Survey Report", true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Resumen estadístico
	for _, r := range summaryRows(stats) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de respuestas
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(records) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del programa (izq) y total + fecha de generación (der).
func headerRow(stats dto.SurveyStatsData) core.Row {
	generated := time.Now().Format(entity.SubmissionTimeLayout)

	return row.New(16).Add(
		col.New(7).Add(
			text.New("Employee Health Survey", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Survey responses report", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Total responses: %d", stats.TotalResponses), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Generated: "+generated, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// summaryRows: bloque de promedios y distribuciones.
func summaryRows(stats dto.SurveyStatsData) []core.Row {
	avg := stats.Averages
	height := fmt.Sprintf("%d ft %.1f in", avg.HeightFeet, avg.HeightInches)

	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(10).Add(
			summaryCell("Average age", fmt.Sprintf("%.1f", avg.Age)),
			summaryCell("Average BMI", fmt.Sprintf("%.1f", avg.BMI)),
			summaryCell("Average waist", fmt.Sprintf("%.1f in", avg.WaistCircumference)),
			summaryCell("Average weight", fmt.Sprintf("%.1f lb", avg.Weight)),
		),
		row.New(10).Add(
			summaryCell("Average height", height),
			summaryCell("First response", stats.DateRange.FirstResponse),
			summaryCell("Last response", stats.DateRange.LastResponse),
			col.New(3),
		),
		row.New(5).Add(col.New(12).Add(
			text.New("Gender: "+formatDistribution(stats.GenderDistribution), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("BMI categories: "+formatDistribution(stats.BMICategories), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)),
	}
}

// summaryCell: etiqueta pequeña encima del valor.
func summaryCell(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 4}),
	)
}

// tableHeaderRow: cabecera de la tabla de respuestas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Date", 3, align.Left),
		h("Employee #", 2, align.Left),
		h("Name", 3, align.Left),
		h("Gender", 1, align.Center),
		h("Age", 1, align.Center),
		h("BMI", 1, align.Center),
		h("Category", 1, align.Left),
	)
}

// tableRows: una fila por respuesta, en orden de inserción. Las medidas que no
// caben (cintura, peso, estatura) quedan representadas por el resumen.
func tableRows(records []entity.SurveyResponse) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, r := range records {
		date := ""
		if !r.SubmittedAt.IsZero() {
			date = r.SubmittedAt.Format(entity.SubmissionTimeLayout)
		}
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(date, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(r.EmployeeNumber, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(r.EmployeeName, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(r.Gender, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(r.Age), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(r.BMI.StringFixed(1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(r.BMICategory, props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatDistribution aplana una distribución a "clave: n" ordenada por clave.
func formatDistribution(dist map[string]int) string {
	if len(dist) == 0 {
		return "N/A"
	}
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, dist[k]))
	}
	return strings.Join(parts, ", ")
}
