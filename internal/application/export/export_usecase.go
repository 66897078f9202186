package export

import (
	"context"
	"fmt"
	"time"

	"github.com/hverdugo/health-survey-api/internal/application/usecase"
	"github.com/hverdugo/health-survey-api/internal/domain"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
	"github.com/hverdugo/health-survey-api/internal/domain/repository"
)

// Marca de tiempo de los nombres de archivo adjunto (survey_responses_YYYYMMDD_HHMMSS.ext).
const timestampLayout = "20060102_150405"

// ExportUseCase arma las descargas de la tabla de respuestas en sus tres
// formatos: CSV plano, libro Excel con estilo y reporte PDF imprimible.
type ExportUseCase struct {
	responses   repository.SurveyResponseRepository
	stats       *usecase.StatsUseCase
	spreadsheet SpreadsheetGenerator
	report      ReportPDFGenerator
}

// NewExportUseCase construye el caso de uso inyectando los generadores.
func NewExportUseCase(
	responses repository.SurveyResponseRepository,
	stats *usecase.StatsUseCase,
	spreadsheet SpreadsheetGenerator,
	report ReportPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{
		responses:   responses,
		stats:       stats,
		spreadsheet: spreadsheet,
		report:      report,
	}
}

// DownloadCSV serializa la tabla completa con todos los campos entre comillas.
//
// Retorna:
//   - (contenido, nombre de archivo, nil) si todo sale bien.
//   - domain.ErrNotFound                  si el respaldo no existe.
//   - domain.ErrNoData                    si existe pero no tiene registros.
func (uc *ExportUseCase) DownloadCSV() ([]byte, string, error) {
	records, err := uc.readForExport()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("survey_responses_%s.csv", time.Now().Format(timestampLayout))
	return renderCSV(records), filename, nil
}

// DownloadExcel genera el libro con la hoja "Survey Responses" y el estilo
// corporativo del encabezado. Mismas guardas de 404 que DownloadCSV.
func (uc *ExportUseCase) DownloadExcel(ctx context.Context) ([]byte, string, error) {
	records, err := uc.readForExport()
	if err != nil {
		return nil, "", err
	}
	book, err := uc.spreadsheet.GenerateWorkbook(ctx, records)
	if err != nil {
		return nil, "", fmt.Errorf("excel: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("survey_responses_%s.xlsx", time.Now().Format(timestampLayout))
	return book, filename, nil
}

// DownloadReportPDF genera el reporte imprimible: resumen estadístico más el
// detalle de todas las respuestas. Mismas guardas de 404 que DownloadCSV.
func (uc *ExportUseCase) DownloadReportPDF(ctx context.Context) ([]byte, string, error) {
	records, err := uc.readForExport()
	if err != nil {
		return nil, "", err
	}
	statsResp, err := uc.stats.Get()
	if err != nil {
		return nil, "", fmt.Errorf("report: estadísticas: %w", err)
	}
	pdf, err := uc.report.GenerateReport(ctx, statsResp.SurveyStatsData, records)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("survey_report_%s.pdf", time.Now().Format(timestampLayout))
	return pdf, filename, nil
}

// readForExport aplica las guardas comunes de toda descarga.
func (uc *ExportUseCase) readForExport() ([]entity.SurveyResponse, error) {
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
	return records, nil
}
