package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hverdugo/health-survey-api/internal/application/dto"
	"github.com/hverdugo/health-survey-api/internal/application/usecase"
	"github.com/hverdugo/health-survey-api/internal/domain"
)

// EmployeeHandler maneja las peticiones HTTP del padrón de empleados.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary Listar empleados
// @Description Devuelve el padrón completo de empleados habilitados para responder la encuesta.
// @Tags employees
// @Produce json
// @Success 200 {array} dto.EmployeeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.uc.List()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NOT_FOUND",
				Message: "Employee data file not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "Error loading employee data: " + err.Error(),
		})
	}
	return c.JSON(employees)
}
