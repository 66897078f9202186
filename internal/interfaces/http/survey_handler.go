package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hverdugo/health-survey-api/internal/application/dto"
	"github.com/hverdugo/health-survey-api/internal/application/usecase"
	"github.com/hverdugo/health-survey-api/internal/domain"
	"github.com/hverdugo/health-survey-api/pkg/validate"
)

// SurveyHandler maneja el envío y la consulta de respuestas de la encuesta.
type SurveyHandler struct {
	uc *usecase.SurveyUseCase
}

func NewSurveyHandler(uc *usecase.SurveyUseCase) *SurveyHandler {
	return &SurveyHandler{uc: uc}
}

// Submit godoc
// @Summary Enviar respuesta de encuesta
// @Description Valida al empleado contra el padrón, completa la marca de tiempo y persiste la respuesta.
// @Tags survey
// @Accept json
// @Produce json
// @Param survey body dto.SubmitSurveyRequest true "Respuesta de la encuesta"
// @Success 200 {object} dto.SubmitSurveyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submit-survey [post]
func (h *SurveyHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "cuerpo inválido",
		})
	}
	if fields, err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: err.Error(),
		})
	} else if fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION",
			Message: "datos de la encuesta inválidos",
			Fields:  fields,
		})
	}

	out, err := h.uc.Submit(req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmployee) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INVALID_EMPLOYEE",
				Message: "Invalid employee number",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "Error submitting survey: " + err.Error(),
		})
	}

	return c.JSON(dto.SubmitSurveyResponse{
		Message: "Survey submitted successfully",
		Data:    *out,
	})
}

// List godoc
// @Summary Listar respuestas de encuesta
// @Description Devuelve todas las respuestas registradas, en orden de llegada.
// @Tags survey
// @Produce json
// @Success 200 {array} dto.SurveyRecordResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /survey-responses [get]
func (h *SurveyHandler) List(c *fiber.Ctx) error {
	records, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "Error retrieving survey responses: " + err.Error(),
		})
	}
	return c.JSON(records)
}

// Debug godoc
// @Summary Inspeccionar almacén de respuestas
// @Description Expone columnas, total de filas y una muestra del archivo de respuestas para diagnóstico.
// @Tags survey
// @Produce json
// @Success 200 {object} dto.DebugCSVResponse
// @Router /debug-csv [get]
func (h *SurveyHandler) Debug(c *fiber.Ctx) error {
	info, err := h.uc.Debug()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(dto.MessageResponse{Message: "CSV file doesn't exist"})
		}
		// El diagnóstico nunca falla la petición: reporta el error en el cuerpo.
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(info)
}
