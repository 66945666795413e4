package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/souhailwaf/wareho/internal/application/dto"
	"github.com/souhailwaf/wareho/internal/application/stockmovement"
	"github.com/souhailwaf/wareho/internal/domain"
	"github.com/souhailwaf/wareho/internal/domain/entity"
	"github.com/souhailwaf/wareho/internal/domain/quantity"
	"github.com/souhailwaf/wareho/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP del motor de movimientos (protegido).
type MovementHandler struct {
	uc           *stockmovement.UseCase
	movementRepo repository.MovementRepository
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *stockmovement.UseCase, movementRepo repository.MovementRepository) *MovementHandler {
	return &MovementHandler{uc: uc, movementRepo: movementRepo}
}

// Receive godoc
// @Summary      Registrar entrada de bodega
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveRequest  true  "item_id, location_id, quantity, lot_id?, serial_number?, reference?"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/receive [post]
func (h *MovementHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	qty, err := quantity.New(in.Quantity)
	if err != nil {
		return movementError(c, err)
	}
	mv, err := h.uc.Receive(c.Context(), stockmovement.ReceiveInput{
		ItemID:       in.ItemID,
		LocationID:   in.LocationID,
		Quantity:     qty,
		LotID:        in.LotID,
		SerialNumber: in.SerialNumber,
		Reference:    in.Reference,
		UserID:       GetUserID(c),
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(mv))
}

// Putaway godoc
// @Summary      Reubicar stock entre ubicaciones
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PutawayRequest  true  "item_id, from_location_id, to_location_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/putaway [post]
func (h *MovementHandler) Putaway(c *fiber.Ctx) error {
	var in dto.PutawayRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	qty, err := quantity.New(in.Quantity)
	if err != nil {
		return movementError(c, err)
	}
	mv, err := h.uc.Putaway(c.Context(), stockmovement.PutawayInput{
		ItemID:         in.ItemID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       qty,
		LotID:          in.LotID,
		SerialNumber:   in.SerialNumber,
		UserID:         GetUserID(c),
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(mv))
}

// Pick godoc
// @Summary      Registrar salida de despacho
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PickRequest  true  "item_id, location_id, quantity, order_number?"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/pick [post]
func (h *MovementHandler) Pick(c *fiber.Ctx) error {
	var in dto.PickRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	qty, err := quantity.New(in.Quantity)
	if err != nil {
		return movementError(c, err)
	}
	mv, err := h.uc.Pick(c.Context(), stockmovement.PickInput{
		ItemID:       in.ItemID,
		LocationID:   in.LocationID,
		Quantity:     qty,
		LotID:        in.LotID,
		SerialNumber: in.SerialNumber,
		OrderNumber:  in.OrderNumber,
		UserID:       GetUserID(c),
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(mv))
}

// Adjust godoc
// @Summary      Ajustar stock por conteo físico
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustRequest  true  "item_id, location_id, new_quantity, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/adjust [post]
func (h *MovementHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	qty, err := quantity.New(in.NewQuantity)
	if err != nil {
		return movementError(c, err)
	}
	mv, err := h.uc.Adjust(c.Context(), stockmovement.AdjustInput{
		ItemID:       in.ItemID,
		LocationID:   in.LocationID,
		NewQuantity:  qty,
		LotID:        in.LotID,
		SerialNumber: in.SerialNumber,
		Reason:       in.Reason,
		UserID:       GetUserID(c),
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(mv))
}

// List godoc
// @Summary      Listar movimientos por artículo o ubicación
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        item_id      query  string  false  "Filtrar por artículo"
// @Param        location_id  query  string  false  "Filtrar por ubicación (origen o destino)"
// @Param        from         query  string  false  "Fecha desde (RFC3339)"
// @Param        to           query  string  false  "Fecha hasta (RFC3339)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()

	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
	}

	itemID := c.Query("item_id")
	locationID := c.Query("location_id")

	var list []*dto.MovementResponse
	switch {
	case itemID != "":
		movements, err := h.movementRepo.ListByItem(c.Context(), itemID, from, to, page.Limit, page.Offset)
		if err != nil {
			return internalError(c, err)
		}
		list = toMovementResponses(movements)
	case locationID != "":
		movements, err := h.movementRepo.ListByLocation(c.Context(), locationID, from, to, page.Limit, page.Offset)
		if err != nil {
			return internalError(c, err)
		}
		list = toMovementResponses(movements)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere item_id o location_id"})
	}
	return c.JSON(fiber.Map{"total": len(list), "movements": list})
}

func toMovementResponses(movements []*entity.Movement) []*dto.MovementResponse {
	list := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		r := dto.ToMovementResponse(m)
		list = append(list, &r)
	}
	return list
}

// parseTimeQuery parsea un query param RFC3339 opcional.
func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// movementError mapea la taxonomía de errores del dominio a códigos HTTP.
func movementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo, ubicación o stock no encontrado"})
	case errors.Is(err, domain.ErrInactiveResource):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INACTIVE", Message: "recurso inactivo o no habilitado para la operación"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock disponible insuficiente"})
	case errors.Is(err, domain.ErrInvalidState):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "estado de stock inconsistente con la operación"})
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENCY_CONFLICT", Message: "la fila cambió de versión; reintente la operación"})
	default:
		return internalError(c, err)
	}
}

// internalError responde 500 sin filtrar detalles internos.
func internalError(c *fiber.Ctx, _ error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// badBody responde 400 por cuerpo no parseable.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
