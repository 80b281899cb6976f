package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/application/ledger"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// MovementHandler maneja el libro de movimientos y los saldos (protegido).
type MovementHandler struct {
	uc *ledger.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RegisterManual godoc
// @Summary      Registrar movimiento manual de inventario
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *MovementHandler) RegisterManual(c *fiber.Ctx) error {
	var in dto.ManualMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.WarehouseID == "" || in.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id e item_id son requeridos"})
	}
	if err := h.uc.RegisterManual(c.Context(), in.WarehouseID, in.ItemID, in.Delta, in.Note); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StatusResponse{Status: "registered"})
}

// Balance godoc
// @Summary      Saldo de un insumo en una bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_id       query  string  true  "ID del insumo"
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Success      200  {object}  map[string]string
// @Router       /api/stock/balance [get]
func (h *MovementHandler) Balance(c *fiber.Ctx) error {
	itemID := c.Query("item_id")
	warehouseID := c.Query("warehouse_id")
	if itemID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id y warehouse_id son requeridos"})
	}
	qty, err := h.uc.Balance(itemID, warehouseID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"item_id": itemID, "warehouse_id": warehouseID, "quantity": qty})
}

// Balances godoc
// @Summary      Saldos de una bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Success      200  {array}  dto.BalanceResponse
// @Router       /api/stock/balances [get]
func (h *MovementHandler) Balances(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	if warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}
	balances, err := h.uc.Balances(warehouseID)
	if err != nil {
		return fail(c, err)
	}
	out := make([]*dto.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.NewBalanceResponse(b))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos del libro
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_id       query  string  false  "Filtrar por insumo"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        doc_type      query  string  false  "Filtrar por tipo de documento"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/stock/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		ItemID:      c.Query("item_id"),
		WarehouseID: c.Query("warehouse_id"),
		DocType:     c.Query("doc_type"),
		Limit:       c.QueryInt("limit", 20),
		Offset:      c.QueryInt("offset", 0),
	}
	movements, err := h.uc.Movements(filter)
	if err != nil {
		return fail(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.NewMovementResponse(m))
	}
	return c.JSON(out)
}
