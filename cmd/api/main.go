package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/hverdugo/health-survey-api/docs"
	"github.com/hverdugo/health-survey-api/internal/application/export"
	"github.com/hverdugo/health-survey-api/internal/application/usecase"
	"github.com/hverdugo/health-survey-api/internal/infrastructure/csvstore"
	"github.com/hverdugo/health-survey-api/internal/infrastructure/excel"
	infrapdf "github.com/hverdugo/health-survey-api/internal/infrastructure/pdf"
	httpRouter "github.com/hverdugo/health-survey-api/internal/interfaces/http"
	"github.com/hverdugo/health-survey-api/pkg/config"
	"github.com/hverdugo/health-survey-api/pkg/logger"
)

// @title Health Survey API
// @version 1.0
// @description API para la encuesta de salud de empleados: padrón, envío de respuestas, estadísticas y descargas.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	employeeRepo := csvstore.NewEmployeeRepository(cfg.Data.EmployeesCSV)
	surveyRepo := csvstore.NewSurveyRepository(cfg.Data.SurveyCSV)

	// El almacén se prepara al arranque: padrón de ejemplo si falta y
	// archivo de respuestas con encabezado listo para anexar.
	if err := employeeRepo.SeedIfMissing(); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Data.EmployeesCSV).Msg("preparar padrón de empleados")
	}
	if err := surveyRepo.Initialize(); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Data.SurveyCSV).Msg("preparar almacén de respuestas")
	}

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	surveyUC := usecase.NewSurveyUseCase(employeeRepo, surveyRepo)
	statsUC := usecase.NewStatsUseCase(surveyRepo)

	spreadsheetGen := excel.NewExcelizeGenerator()
	reportGen := infrapdf.NewMarotoReportGenerator()
	exportUC := export.NewExportUseCase(surveyRepo, statsUC, spreadsheetGen, reportGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.AllowOrigins,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Health Survey API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Health Survey API is running"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC: employeeUC,
		SurveyUC:   surveyUC,
		StatsUC:    statsUC,
		ExportUC:   exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
