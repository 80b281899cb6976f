package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/application/usecase"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// receiptGenerator es el contrato mínimo que necesita el handler para generar
// el recibo PDF. Lo implementa *pdf.MarotoReceiptGenerator.
type receiptGenerator interface {
	GenerateReceipt(order *entity.DeliveryOrder) ([]byte, error)
}

// DeliveryHandler maneja los pedidos de entrega del CRM (protegido).
type DeliveryHandler struct {
	uc       *usecase.DeliveryUseCase
	receipts receiptGenerator
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase, receipts receiptGenerator) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, receipts: receipts}
}

// Create godoc
// @Summary      Registrar pedido telefónico
// @Tags         delivery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "Pedido"
// @Success      201   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/delivery/orders [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener pedido de entrega
// @Tags         delivery
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.DeliveryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery/orders/{id} [get]
func (h *DeliveryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos por estado
// @Tags         delivery
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Estado"  default(new)
// @Success      200  {array}  dto.DeliveryResponse
// @Router       /api/delivery/orders [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar pedido de entrega
// @Tags         delivery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateDeliveryRequest  true  "Campos a editar"
// @Success      200   {object}  dto.DeliveryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/delivery/orders/{id} [put]
func (h *DeliveryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Cambiar estado del pedido
// @Tags         delivery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.DeliveryStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.DeliveryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/delivery/orders/{id}/status [post]
func (h *DeliveryHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.DeliveryStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AssignCourier godoc
// @Summary      Asignar repartidor
// @Tags         delivery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.AssignCourierRequest  true  "Repartidor"
// @Success      200   {object}  dto.DeliveryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/delivery/orders/{id}/courier [post]
func (h *DeliveryHandler) AssignCourier(c *fiber.Ctx) error {
	var in dto.AssignCourierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AssignCourier(c.Params("id"), in.CourierID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Recibo PDF del pedido
// @Tags         delivery
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery/orders/{id}/receipt [get]
func (h *DeliveryHandler) Receipt(c *fiber.Ctx) error {
	order, err := h.uc.GetEntity(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	data, err := h.receipts.GenerateReceipt(order)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="pedido.pdf"`)
	return c.Send(data)
}
