package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hverdugo/health-survey-api/internal/application/dto"
	"github.com/hverdugo/health-survey-api/internal/application/usecase"
	"github.com/hverdugo/health-survey-api/internal/domain"
)

// Mensajes para los dos estados vacíos: archivo ausente vs. archivo sin filas.
const (
	msgNoSurveyData      = "No survey data available"
	msgNoSurveyResponses = "No survey responses available"
)

// StatsHandler maneja la consulta de estadísticas agregadas.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Get godoc
// @Summary Estadísticas de la encuesta
// @Description Devuelve totales, distribuciones y promedios sobre las respuestas registradas. Sin datos responde 200 con total cero.
// @Tags stats
// @Produce json
// @Success 200 {object} dto.SurveyStatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /survey-stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.uc.Get()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(dto.SurveyStatsEmptyResponse{
				TotalResponses: 0,
				Message:        msgNoSurveyData,
			})
		}
		if errors.Is(err, domain.ErrNoData) {
			return c.JSON(dto.SurveyStatsEmptyResponse{
				TotalResponses: 0,
				Message:        msgNoSurveyResponses,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "Error retrieving survey statistics: " + err.Error(),
		})
	}
	return c.JSON(stats)
}
