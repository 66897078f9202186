package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hverdugo/health-survey-api/internal/application/dto"
	"github.com/hverdugo/health-survey-api/internal/application/export"
	"github.com/hverdugo/health-survey-api/internal/domain"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler maneja las descargas de respuestas en CSV, Excel y PDF.
type ExportHandler struct {
	uc *export.ExportUseCase
}

func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// DownloadCSV godoc
// @Summary Descargar respuestas en CSV
// @Description Genera un CSV con todas las respuestas, con cada campo entre comillas para conservar los ceros a la izquierda.
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "archivo CSV"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /download-survey-responses [get]
func (h *ExportHandler) DownloadCSV(c *fiber.Ctx) error {
	payload, filename, err := h.uc.DownloadCSV()
	if err != nil {
		return exportError(c, err)
	}
	return sendAttachment(c, "text/csv", filename, payload)
}

// DownloadExcel godoc
// @Summary Descargar respuestas en Excel
// @Description Genera un libro .xlsx con encabezado estilizado y columnas autoajustadas.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {string} string "archivo XLSX"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /download-survey-responses-excel [get]
func (h *ExportHandler) DownloadExcel(c *fiber.Ctx) error {
	payload, filename, err := h.uc.DownloadExcel(c.Context())
	if err != nil {
		return exportError(c, err)
	}
	return sendAttachment(c, mimeXLSX, filename, payload)
}

// DownloadPDF godoc
// @Summary Descargar reporte en PDF
// @Description Genera un reporte PDF con resumen estadístico y el detalle de respuestas.
// @Tags export
// @Produce application/pdf
// @Success 200 {string} string "archivo PDF"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /download-survey-report [get]
func (h *ExportHandler) DownloadPDF(c *fiber.Ctx) error {
	payload, filename, err := h.uc.DownloadReportPDF(c.Context())
	if err != nil {
		return exportError(c, err)
	}
	return sendAttachment(c, "application/pdf", filename, payload)
}

// exportError traduce los errores de exportación a respuestas HTTP.
func exportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "No survey responses found",
		})
	}
	if errors.Is(err, domain.ErrNoData) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "No survey responses available for download",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "Error downloading survey responses: " + err.Error(),
	})
}

// sendAttachment fija los encabezados de descarga y envía el archivo.
func sendAttachment(c *fiber.Ctx, contentType, filename string, payload []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}
