// Package http define los handlers y el enrutamiento de la API.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hverdugo/health-survey-api/internal/application/export"
	"github.com/hverdugo/health-survey-api/internal/application/usecase"
)

// RouterDeps dependencias inyectadas para construir las rutas.
type RouterDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
	SurveyUC   *usecase.SurveyUseCase
	StatsUC    *usecase.StatsUseCase
	ExportUC   *export.ExportUseCase
}

// Router registra todas las rutas de la API sobre la app Fiber.
// Las rutas cuelgan de la raíz, sin prefijo de versión.
func Router(app *fiber.App, deps RouterDeps) {
	employees := NewEmployeeHandler(deps.EmployeeUC)
	survey := NewSurveyHandler(deps.SurveyUC)
	stats := NewStatsHandler(deps.StatsUC)
	exports := NewExportHandler(deps.ExportUC)

	// ── Padrón de empleados ──
	app.Get("/employees", employees.List)

	// ── Encuesta ──
	app.Post("/submit-survey", survey.Submit)
	app.Get("/survey-responses", survey.List)
	app.Get("/debug-csv", survey.Debug)

	// ── Estadísticas ──
	app.Get("/survey-stats", stats.Get)

	// ── Descargas ──
	app.Get("/download-survey-responses", exports.DownloadCSV)
	app.Get("/download-survey-responses-excel", exports.DownloadExcel)
	app.Get("/download-survey-report", exports.DownloadPDF)
}
