package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/souhailwaf/wareho/internal/application/dto"
	"github.com/souhailwaf/wareho/internal/domain"
	"github.com/souhailwaf/wareho/internal/domain/entity"
	"github.com/souhailwaf/wareho/internal/domain/repository"
)

// ItemHandler maneja el catálogo de artículos (protegido).
type ItemHandler struct {
	itemRepo repository.ItemRepository
}

// NewItemHandler construye el handler.
func NewItemHandler(itemRepo repository.ItemRepository) *ItemHandler {
	return &ItemHandler{itemRepo: itemRepo}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "sku, name, barcode?, unit_measure?"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.SKU == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku y name son obligatorios"})
	}
	unit := in.UnitMeasure
	if unit == "" {
		unit = "EA"
	}
	item := &entity.Item{
		SKU:         in.SKU,
		Barcode:     in.Barcode,
		Name:        in.Name,
		Description: in.Description,
		UnitMeasure: unit,
		IsActive:    true,
	}
	if err := h.itemRepo.Create(c.Context(), item); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el SKU ya existe"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToItemResponse(item))
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.itemRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.ToItemResponse(item))
}

// List godoc
// @Summary      Listar artículos
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	items, err := h.itemRepo.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	list := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		list = append(list, dto.ToItemResponse(i))
	}
	return c.JSON(fiber.Map{"total": len(list), "items": list})
}

// LocationHandler maneja las ubicaciones de bodega (protegido).
type LocationHandler struct {
	locationRepo repository.LocationRepository
}

// NewLocationHandler construye el handler.
func NewLocationHandler(locationRepo repository.LocationRepository) *LocationHandler {
	return &LocationHandler{locationRepo: locationRepo}
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "code, name?, parent_location_id?, is_pickable?, is_receivable?"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es obligatorio"})
	}
	loc := &entity.Location{
		Code:             in.Code,
		Name:             in.Name,
		ParentLocationID: in.ParentLocationID,
		IsPickable:       boolOrDefault(in.IsPickable, true),
		IsReceivable:     boolOrDefault(in.IsReceivable, true),
		IsActive:         true,
	}
	if err := h.locationRepo.Create(c.Context(), loc); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya existe"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToLocationResponse(loc))
}

// GetByID godoc
// @Summary      Obtener ubicación por ID
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	loc, err := h.locationRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ubicación no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.ToLocationResponse(loc))
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	locations, err := h.locationRepo.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(locations), "locations": locationResponses(locations)})
}

// Children godoc
// @Summary      Listar ubicaciones hijas directas
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicación padre"
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations/{id}/children [get]
func (h *LocationHandler) Children(c *fiber.Ctx) error {
	children, err := h.locationRepo.ListChildren(c.Context(), c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(children), "locations": locationResponses(children)})
}

func locationResponses(locations []*entity.Location) []dto.LocationResponse {
	list := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		list = append(list, dto.ToLocationResponse(l))
	}
	return list
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
