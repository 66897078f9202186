// Package excel implementa la exportación del libro "Survey Responses" con
// excelize, replicando el formato del reporte manual del área de bienestar:
//
//	┌────────────────────────────────────────────────────────────┐
//	│  ENCABEZADO: negrita blanca 12pt sobre relleno 667EEA,     │
//	│  centrado en ambos ejes con ajuste de texto, alto 25       │
//	│  DATOS: bordes finos en todas las celdas                   │
//	│  ANCHOS: contenido máximo + 2, acotado entre 12 y 50       │
//	└────────────────────────────────────────────────────────────┘
package excel

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/hverdugo/health-survey-api/internal/application/export"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
)

// SheetName nombre de la única hoja del libro.
const SheetName = "Survey Responses"

// headerFillColor morado corporativo del frontend de la encuesta.
const headerFillColor = "667EEA"

// Anchos de columna en caracteres.
const (
	minColWidth = 12
	maxColWidth = 50
)

var _ export.SpreadsheetGenerator = (*ExcelizeGenerator)(nil)

// ExcelizeGenerator implementa export.SpreadsheetGenerator usando excelize.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator construye el generador.
func NewExcelizeGenerator() *ExcelizeGenerator { return &ExcelizeGenerator{} }

// GenerateWorkbook arma el libro completo en memoria y devuelve sus bytes.
func (g *ExcelizeGenerator) GenerateWorkbook(_ context.Context, records []entity.SurveyResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	// ── 1. Encabezado ─────────────────────────────────────────────────────────
	header := make([]interface{}, len(entity.SurveyResponseColumns))
	for i, c := range entity.SurveyResponseColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: escribir encabezado: %w", err)
	}

	// ── 2. Filas de datos ─────────────────────────────────────────────────────
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de fila %d: %w", i+2, err)
		}
		row := cellValues(r)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: escribir fila %d: %w", i+2, err)
		}
	}

	// ── 3. Estilos ────────────────────────────────────────────────────────────
	if err := applyStyles(f, len(records)); err != nil {
		return nil, err
	}

	// ── 4. Anchos de columna y alto del encabezado ────────────────────────────
	if err := applyColumnWidths(f, records); err != nil {
		return nil, err
	}
	if err := f.SetRowHeight(SheetName, 1, 25); err != nil {
		return nil, fmt.Errorf("excel: alto de encabezado: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValues proyecta un registro a celdas tipadas: EmployeeNumber se escribe
// como texto (conserva los ceros a la izquierda) y las medidas como números.
func cellValues(r entity.SurveyResponse) []interface{} {
	date := ""
	if !r.SubmittedAt.IsZero() {
		date = r.SubmittedAt.Format(entity.SubmissionTimeLayout)
	}
	return []interface{}{
		date,
		r.EmployeeNumber,
		r.EmployeeName,
		r.Gender,
		r.Age,
		r.WaistInches.InexactFloat64(),
		r.HeightFeet,
		r.HeightInches,
		r.WeightLb.InexactFloat64(),
		r.BMI.InexactFloat64(),
		r.BMICategory,
	}
}

// applyStyles aplica el estilo del encabezado y los bordes finos de las
// celdas de datos.
func applyStyles(f *excelize.File, dataRows int) error {
	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thin,
	})
	if err != nil {
		return fmt.Errorf("excel: estilo de encabezado: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(entity.SurveyResponseColumns), 1)
	if err != nil {
		return fmt.Errorf("excel: última celda de encabezado: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("excel: aplicar estilo de encabezado: %w", err)
	}

	if dataRows == 0 {
		return nil
	}
	dataStyle, err := f.NewStyle(&excelize.Style{Border: thin})
	if err != nil {
		return fmt.Errorf("excel: estilo de datos: %w", err)
	}
	lastCell, err := excelize.CoordinatesToCellName(len(entity.SurveyResponseColumns), dataRows+1)
	if err != nil {
		return fmt.Errorf("excel: última celda de datos: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A2", lastCell, dataStyle); err != nil {
		return fmt.Errorf("excel: aplicar bordes de datos: %w", err)
	}
	return nil
}

// applyColumnWidths replica el autoajuste del reporte manual: longitud máxima
// del contenido de cada columna (encabezado incluido) más 2, acotada.
func applyColumnWidths(f *excelize.File, records []entity.SurveyResponse) error {
	widths := make([]int, len(entity.SurveyResponseColumns))
	for i, c := range entity.SurveyResponseColumns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, r := range records {
		for i, v := range r.Fields() {
			if n := utf8.RuneCountInString(v); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("excel: nombre de columna %d: %w", i+1, err)
		}
		width := w + 2
		if width < minColWidth {
			width = minColWidth
		}
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			return fmt.Errorf("excel: ancho de columna %s: %w", name, err)
		}
	}
	return nil
}
