package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/application/ledger"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// DocumentHandler maneja los documentos de inventario: recepciones, traslados,
// bajas e inventarizaciones (protegido).
type DocumentHandler struct {
	uc *ledger.DocumentsUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *ledger.DocumentsUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// post ejecuta la provisión y arma la respuesta. Proveer un documento ya
// provisto responde 200 con already_posted, no error: el resultado pedido
// (documento en estado posted) ya existe.
func post(c *fiber.Ctx, id string, fn func() error) error {
	if err := fn(); err != nil {
		if errors.Is(err, domain.ErrAlreadyPosted) {
			return c.JSON(dto.PostResponse{ID: id, Status: entity.DocStatusPosted, AlreadyPosted: true})
		}
		return fail(c, err)
	}
	return c.JSON(dto.PostResponse{ID: id, Status: entity.DocStatusPosted})
}

// ── Recepciones ───────────────────────────────────────────────────────────────

// CreatePurchase godoc
// @Summary      Crear recepción en borrador
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Encabezado"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents/purchases [post]
func (h *DocumentHandler) CreatePurchase(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.CreatePurchase(in.WarehouseID, in.SupplierID, in.Date)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPurchaseResponse(doc))
}

// GetPurchase godoc
// @Summary      Obtener recepción
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/purchases/{id} [get]
func (h *DocumentHandler) GetPurchase(c *fiber.Ctx) error {
	doc, err := h.uc.GetPurchase(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewPurchaseResponse(doc))
}

// ListPurchases godoc
// @Summary      Listar recepciones
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/documents/purchases [get]
func (h *DocumentHandler) ListPurchases(c *fiber.Ctx) error {
	docs, err := h.uc.ListPurchases(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return fail(c, err)
	}
	out := make([]*dto.PurchaseResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, dto.NewPurchaseResponse(doc))
	}
	return c.JSON(out)
}

// UpdatePurchase godoc
// @Summary      Editar encabezado de recepción en borrador
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.UpdatePurchaseRequest  true  "Encabezado"
// @Success      200   {object}  dto.PurchaseResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/purchases/{id} [put]
func (h *DocumentHandler) UpdatePurchase(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.UpdatePurchaseHeader(c.Params("id"), in.WarehouseID, in.SupplierID, in.Date)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewPurchaseResponse(doc))
}

// AddPurchaseLine godoc
// @Summary      Agregar línea a recepción en borrador
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.PurchaseLineRequest  true  "Línea"
// @Success      201   {object}  dto.PurchaseLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/purchases/{id}/lines [post]
func (h *DocumentHandler) AddPurchaseLine(c *fiber.Ctx) error {
	var in dto.PurchaseLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.uc.AddPurchaseLine(c.Params("id"), in.ItemID, in.Qty, in.Price)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(&dto.PurchaseLineResponse{
		ID: line.ID, ItemID: line.ItemID, Qty: line.Qty, Price: line.Price,
	})
}

// RemovePurchaseLine godoc
// @Summary      Quitar línea de recepción en borrador
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID del documento"
// @Param        lineId   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/documents/purchases/{id}/lines/{lineId} [delete]
func (h *DocumentHandler) RemovePurchaseLine(c *fiber.Ctx) error {
	if err := h.uc.RemovePurchaseLine(c.Params("id"), c.Params("lineId")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// DeletePurchase godoc
// @Summary      Eliminar recepción en borrador
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/documents/purchases/{id} [delete]
func (h *DocumentHandler) DeletePurchase(c *fiber.Ctx) error {
	if err := h.uc.DeletePurchase(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// PostPurchase godoc
// @Summary      Proveer recepción
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.PostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/purchases/{id}/post [post]
func (h *DocumentHandler) PostPurchase(c *fiber.Ctx) error {
	id := c.Params("id")
	return post(c, id, func() error { return h.uc.PostPurchase(c.Context(), id) })
}

// ── Traslados ─────────────────────────────────────────────────────────────────

// CreateTransfer godoc
// @Summary      Crear traslado en borrador
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Encabezado"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents/transfers [post]
func (h *DocumentHandler) CreateTransfer(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.CreateTransfer(in.FromWarehouseID, in.ToWarehouseID, in.Date)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransferResponse(doc))
}

// GetTransfer godoc
// @Summary      Obtener traslado
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/transfers/{id} [get]
func (h *DocumentHandler) GetTransfer(c *fiber.Ctx) error {
	doc, err := h.uc.GetTransfer(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewTransferResponse(doc))
}

// ListTransfers godoc
// @Summary      Listar traslados
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/documents/transfers [get]
func (h *DocumentHandler) ListTransfers(c *fiber.Ctx) error {
	docs, err := h.uc.ListTransfers(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return fail(c, err)
	}
	out := make([]*dto.TransferResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, dto.NewTransferResponse(doc))
	}
	return c.JSON(out)
}

// UpdateTransfer godoc
// @Summary      Editar encabezado de traslado en borrador
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.UpdateTransferRequest  true  "Encabezado"
// @Success      200   {object}  dto.TransferResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/transfers/{id} [put]
func (h *DocumentHandler) UpdateTransfer(c *fiber.Ctx) error {
	var in dto.UpdateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.UpdateTransferHeader(c.Params("id"), in.FromWarehouseID, in.ToWarehouseID, in.Date)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewTransferResponse(doc))
}

// AddTransferLine godoc
// @Summary      Agregar línea a traslado en borrador
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.TransferLineRequest  true  "Línea"
// @Success      201   {object}  dto.TransferLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents/transfers/{id}/lines [post]
func (h *DocumentHandler) AddTransferLine(c *fiber.Ctx) error {
	var in dto.TransferLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.uc.AddTransferLine(c.Params("id"), in.ItemID, in.Qty)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(&dto.TransferLineResponse{
		ID: line.ID, ItemID: line.ItemID, Qty: line.Qty,
	})
}

// RemoveTransferLine godoc
// @Summary      Quitar línea de traslado en borrador
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID del documento"
// @Param        lineId  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/documents/transfers/{id}/lines/{lineId} [delete]
func (h *DocumentHandler) RemoveTransferLine(c *fiber.Ctx) error {
	if err := h.uc.RemoveTransferLine(c.Params("id"), c.Params("lineId")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// DeleteTransfer godoc
// @Summary      Eliminar traslado en borrador
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/documents/transfers/{id} [delete]
func (h *DocumentHandler) DeleteTransfer(c *fiber.Ctx) error {
	if err := h.uc.DeleteTransfer(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// PostTransfer godoc
// @Summary      Proveer traslado
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.PostResponse
// @Router       /api/documents/transfers/{id}/post [post]
func (h *DocumentHandler) PostTransfer(c *fiber.Ctx) error {
	id := c.Params("id")
	return post(c, id, func() error { return h.uc.PostTransfer(c.Context(), id) })
}

// ── Bajas ─────────────────────────────────────────────────────────────────────

// CreateWriteOff godoc
// @Summary      Crear baja en borrador
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWriteOffRequest  true  "Encabezado"
// @Success      201   {object}  dto.WriteOffResponse
// @Router       /api/documents/writeoffs [post]
func (h *DocumentHandler) CreateWriteOff(c *fiber.Ctx) error {
	var in dto.CreateWriteOffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.CreateWriteOff(in.WarehouseID, in.Reason, in.Date)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewWriteOffResponse(doc))
}

// GetWriteOff godoc
// @Summary      Obtener baja
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.WriteOffResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/writeoffs/{id} [get]
func (h *DocumentHandler) GetWriteOff(c *fiber.Ctx) error {
	doc, err := h.uc.GetWriteOff(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewWriteOffResponse(doc))
}

// ListWriteOffs godoc
// @Summary      Listar bajas
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.WriteOffResponse
// @Router       /api/documents/writeoffs [get]
func (h *DocumentHandler) ListWriteOffs(c *fiber.Ctx) error {
	docs, err := h.uc.ListWriteOffs(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return fail(c, err)
	}
	out := make([]*dto.WriteOffResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, dto.NewWriteOffResponse(doc))
	}
	return c.JSON(out)
}

// UpdateWriteOff godoc
// @Summary      Editar encabezado de baja en borrador
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.UpdateWriteOffRequest  true  "Encabezado"
// @Success      200   {object}  dto.WriteOffResponse
// @Router       /api/documents/writeoffs/{id} [put]
func (h *DocumentHandler) UpdateWriteOff(c *fiber.Ctx) error {
	var in dto.UpdateWriteOffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.UpdateWriteOffHeader(c.Params("id"), in.WarehouseID, in.Reason, in.Date)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewWriteOffResponse(doc))
}

// AddWriteOffLine godoc
// @Summary      Agregar línea a baja en borrador
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.WriteOffLineRequest  true  "Línea"
// @Success      201   {object}  dto.WriteOffLineResponse
// @Router       /api/documents/writeoffs/{id}/lines [post]
func (h *DocumentHandler) AddWriteOffLine(c *fiber.Ctx) error {
	var in dto.WriteOffLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.uc.AddWriteOffLine(c.Params("id"), in.ItemID, in.Qty)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(&dto.WriteOffLineResponse{
		ID: line.ID, ItemID: line.ItemID, Qty: line.Qty,
	})
}

// RemoveWriteOffLine godoc
// @Summary      Quitar línea de baja en borrador
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID del documento"
// @Param        lineId  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/documents/writeoffs/{id}/lines/{lineId} [delete]
func (h *DocumentHandler) RemoveWriteOffLine(c *fiber.Ctx) error {
	if err := h.uc.RemoveWriteOffLine(c.Params("id"), c.Params("lineId")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// DeleteWriteOff godoc
// @Summary      Eliminar baja en borrador
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/documents/writeoffs/{id} [delete]
func (h *DocumentHandler) DeleteWriteOff(c *fiber.Ctx) error {
	if err := h.uc.DeleteWriteOff(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// PostWriteOff godoc
// @Summary      Proveer baja
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.PostResponse
// @Router       /api/documents/writeoffs/{id}/post [post]
func (h *DocumentHandler) PostWriteOff(c *fiber.Ctx) error {
	id := c.Params("id")
	return post(c, id, func() error { return h.uc.PostWriteOff(c.Context(), id) })
}

// ── Inventarizaciones ─────────────────────────────────────────────────────────

// CreateInventory godoc
// @Summary      Crear inventarización en borrador
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Encabezado"
// @Success      201   {object}  dto.InventoryResponse
// @Router       /api/documents/inventories [post]
func (h *DocumentHandler) CreateInventory(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.CreateInventory(in.WarehouseID, in.Date)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewInventoryResponse(doc))
}

// GetInventory godoc
// @Summary      Obtener inventarización
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/inventories/{id} [get]
func (h *DocumentHandler) GetInventory(c *fiber.Ctx) error {
	doc, err := h.uc.GetInventory(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewInventoryResponse(doc))
}

// ListInventories godoc
// @Summary      Listar inventarizaciones
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/documents/inventories [get]
func (h *DocumentHandler) ListInventories(c *fiber.Ctx) error {
	docs, err := h.uc.ListInventories(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return fail(c, err)
	}
	out := make([]*dto.InventoryResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, dto.NewInventoryResponse(doc))
	}
	return c.JSON(out)
}

// AddInventoryLine godoc
// @Summary      Agregar línea de conteo
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.InventoryLineRequest  true  "Conteo"
// @Success      201   {object}  dto.InventoryLineResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/inventories/{id}/lines [post]
func (h *DocumentHandler) AddInventoryLine(c *fiber.Ctx) error {
	var in dto.InventoryLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.uc.AddInventoryLine(c.Params("id"), in.ItemID, in.CountedQty)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(&dto.InventoryLineResponse{
		ID: line.ID, ItemID: line.ItemID, CountedQty: line.CountedQty,
	})
}

// UpdateInventoryLine godoc
// @Summary      Corregir línea de conteo
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del documento"
// @Param        lineId  path  string  true  "ID de la línea"
// @Param        body    body  dto.InventoryLineRequest  true  "Conteo"
// @Success      200     {object}  dto.InventoryLineResponse
// @Router       /api/documents/inventories/{id}/lines/{lineId} [put]
func (h *DocumentHandler) UpdateInventoryLine(c *fiber.Ctx) error {
	var in dto.InventoryLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.uc.UpdateInventoryLine(c.Params("id"), c.Params("lineId"), in.CountedQty)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(&dto.InventoryLineResponse{
		ID: line.ID, ItemID: line.ItemID, CountedQty: line.CountedQty,
	})
}

// RemoveInventoryLine godoc
// @Summary      Quitar línea de conteo
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID del documento"
// @Param        lineId  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/documents/inventories/{id}/lines/{lineId} [delete]
func (h *DocumentHandler) RemoveInventoryLine(c *fiber.Ctx) error {
	if err := h.uc.RemoveInventoryLine(c.Params("id"), c.Params("lineId")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// FillInventory godoc
// @Summary      Precargar conteo con los saldos actuales de la bodega
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/documents/inventories/{id}/fill [post]
func (h *DocumentHandler) FillInventory(c *fiber.Ctx) error {
	doc, err := h.uc.FillInventoryFromBalances(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewInventoryResponse(doc))
}

// DeleteInventory godoc
// @Summary      Eliminar inventarización en borrador
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/documents/inventories/{id} [delete]
func (h *DocumentHandler) DeleteInventory(c *fiber.Ctx) error {
	if err := h.uc.DeleteInventory(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// PostInventory godoc
// @Summary      Proveer inventarización
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.PostResponse
// @Router       /api/documents/inventories/{id}/post [post]
func (h *DocumentHandler) PostInventory(c *fiber.Ctx) error {
	id := c.Params("id")
	return post(c, id, func() error { return h.uc.PostInventory(c.Context(), id) })
}
