package export

import (
	"context"

	"github.com/hverdugo/health-survey-api/internal/application/dto"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
)

// SpreadsheetGenerator puerto de generación del libro Excel con estilo.
type SpreadsheetGenerator interface {
	GenerateWorkbook(ctx context.Context, records []entity.SurveyResponse) ([]byte, error)
}

// ReportPDFGenerator puerto de generación del reporte PDF imprimible
// (resumen estadístico + detalle de respuestas).
type ReportPDFGenerator interface {
	GenerateReport(ctx context.Context, stats dto.SurveyStatsData, records []entity.SurveyResponse) ([]byte, error)
}
