package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/application/usecase"
)

// OrderHandler maneja mesas y comandas del punto de venta (protegido).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CreateTable godoc
// @Summary      Crear mesa
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TableRequest  true  "Nombre de la mesa"
// @Success      201   {object}  dto.TableResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/tables [post]
func (h *OrderHandler) CreateTable(c *fiber.Ctx) error {
	var in dto.TableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateTable(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTables godoc
// @Summary      Listar mesas
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TableResponse
// @Router       /api/pos/tables [get]
func (h *OrderHandler) ListTables(c *fiber.Ctx) error {
	out, err := h.uc.ListTables()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DeleteTable godoc
// @Summary      Eliminar mesa
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la mesa"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pos/tables/{id} [delete]
func (h *OrderHandler) DeleteTable(c *fiber.Ctx) error {
	if err := h.uc.DeleteTable(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// Open godoc
// @Summary      Abrir comanda en una mesa
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenOrderRequest  true  "Mesa y datos de apertura"
// @Success      201   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/orders [post]
func (h *OrderHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Open(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener comanda
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la comanda"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pos/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListOpen godoc
// @Summary      Listar comandas abiertas
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/pos/orders [get]
func (h *OrderHandler) ListOpen(c *fiber.Ctx) error {
	out, err := h.uc.ListOpen()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto a la comanda
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la comanda"
// @Param        body  body  dto.OrderItemRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/orders/{id}/items [post]
func (h *OrderHandler) AddItem(c *fiber.Ctx) error {
	var in dto.OrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItem(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SetItemQty godoc
// @Summary      Cambiar cantidad de una línea (0 la elimina)
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID de la comanda"
// @Param        itemId  path  string  true  "ID de la línea"
// @Param        body    body  dto.OrderItemQtyRequest  true  "Nueva cantidad"
// @Success      200     {object}  dto.OrderResponse
// @Router       /api/pos/orders/{id}/items/{itemId} [put]
func (h *OrderHandler) SetItemQty(c *fiber.Ctx) error {
	var in dto.OrderItemQtyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetItemQty(c.Params("id"), c.Params("itemId"), in.Qty)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar línea de la comanda
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID de la comanda"
// @Param        itemId  path  string  true  "ID de la línea"
// @Success      200     {object}  dto.OrderResponse
// @Router       /api/pos/orders/{id}/items/{itemId} [delete]
func (h *OrderHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.Params("id"), c.Params("itemId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Pay godoc
// @Summary      Cobrar la comanda
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la comanda"
// @Param        body  body  dto.PayOrderRequest  true  "Método de pago"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/orders/{id}/pay [post]
func (h *OrderHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Pay(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar la comanda
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la comanda"
// @Success      200  {object}  dto.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pos/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
