package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/souhailwaf/wareho/internal/application/dto"
	"github.com/souhailwaf/wareho/internal/domain/repository"
)

// StockHandler expone el lado de lectura de niveles de stock (protegido).
type StockHandler struct {
	stockRepo repository.StockRepository
}

// NewStockHandler construye el handler.
func NewStockHandler(stockRepo repository.StockRepository) *StockHandler {
	return &StockHandler{stockRepo: stockRepo}
}

// List godoc
// @Summary      Consultar niveles de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_id      query  string  false  "Filtrar por artículo"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Success      200  {array}  dto.StockLevelResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()

	filter := repository.StockFilter{
		ItemID:     c.Query("item_id"),
		LocationID: c.Query("location_id"),
	}
	stocks, err := h.stockRepo.List(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	levels := make([]dto.StockLevelResponse, 0, len(stocks))
	for _, s := range stocks {
		levels = append(levels, dto.ToStockLevelResponse(s))
	}
	return c.JSON(fiber.Map{"total": len(levels), "levels": levels})
}
