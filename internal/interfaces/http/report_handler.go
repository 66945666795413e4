package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/souhailwaf/wareho/internal/application/dto"
	"github.com/souhailwaf/wareho/internal/application/reports"
	"github.com/souhailwaf/wareho/internal/domain"
)

// ReportHandler expone los reportes (kardex en PDF).
type ReportHandler struct {
	kardexUC *reports.KardexUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(kardexUC *reports.KardexUseCase) *ReportHandler {
	return &ReportHandler{kardexUC: kardexUC}
}

// Kardex godoc
// @Summary      Kardex de un artículo en PDF
// @Description  Historial cronológico de movimientos con saldo corrido.
// @Tags         reports
// @Produce      application/pdf
// @Param        item_id  path   string  true   "ID del artículo"
// @Param        from     query  string  false  "RFC3339"
// @Param        to       query  string  false  "RFC3339"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/kardex/{item_id} [get]
func (h *ReportHandler) Kardex(c *fiber.Ctx) error {
	itemID := c.Params("item_id")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id es requerido"})
	}
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
	}
	pdfBytes, err := h.kardexUC.GenerateKardexPDF(c.Context(), itemID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="kardex-%s.pdf"`, itemID))
	return c.Send(pdfBytes)
}
