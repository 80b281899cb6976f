package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// CreatePurchaseRequest body para crear una recepción en borrador.
type CreatePurchaseRequest struct {
	WarehouseID string    `json:"warehouse_id"`
	SupplierID  string    `json:"supplier_id,omitempty"`
	Date        time.Time `json:"date,omitempty"`
}

// UpdatePurchaseRequest body para editar el encabezado de un borrador.
type UpdatePurchaseRequest struct {
	WarehouseID string    `json:"warehouse_id,omitempty"`
	SupplierID  string    `json:"supplier_id,omitempty"`
	Date        time.Time `json:"date,omitempty"`
}

// PurchaseLineRequest body para agregar una línea de recepción.
type PurchaseLineRequest struct {
	ItemID string          `json:"item_id"`
	Qty    decimal.Decimal `json:"qty"`
	Price  decimal.Decimal `json:"price"`
}

// PurchaseLineResponse línea de recepción.
type PurchaseLineResponse struct {
	ID     string          `json:"id"`
	ItemID string          `json:"item_id"`
	Qty    decimal.Decimal `json:"qty"`
	Price  decimal.Decimal `json:"price"`
}

// PurchaseResponse documento de recepción con sus líneas.
type PurchaseResponse struct {
	ID          string                  `json:"id"`
	SupplierID  string                  `json:"supplier_id,omitempty"`
	WarehouseID string                  `json:"warehouse_id"`
	Date        time.Time               `json:"date"`
	Status      string                  `json:"status"`
	Lines       []*PurchaseLineResponse `json:"lines"`
}

func NewPurchaseResponse(doc *entity.Purchase) *PurchaseResponse {
	resp := &PurchaseResponse{
		ID:          doc.ID,
		SupplierID:  doc.SupplierID,
		WarehouseID: doc.WarehouseID,
		Date:        doc.Date,
		Status:      doc.Status,
		Lines:       make([]*PurchaseLineResponse, 0, len(doc.Lines)),
	}
	for _, line := range doc.Lines {
		resp.Lines = append(resp.Lines, &PurchaseLineResponse{
			ID:     line.ID,
			ItemID: line.ItemID,
			Qty:    line.Qty,
			Price:  line.Price,
		})
	}
	return resp
}

// CreateTransferRequest body para crear un traslado en borrador.
type CreateTransferRequest struct {
	FromWarehouseID string    `json:"from_warehouse_id"`
	ToWarehouseID   string    `json:"to_warehouse_id"`
	Date            time.Time `json:"date,omitempty"`
}

// UpdateTransferRequest body para editar el encabezado de un borrador.
type UpdateTransferRequest struct {
	FromWarehouseID string    `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string    `json:"to_warehouse_id,omitempty"`
	Date            time.Time `json:"date,omitempty"`
}

// TransferLineRequest body para agregar una línea de traslado.
type TransferLineRequest struct {
	ItemID string          `json:"item_id"`
	Qty    decimal.Decimal `json:"qty"`
}

// TransferLineResponse línea de traslado.
type TransferLineResponse struct {
	ID     string          `json:"id"`
	ItemID string          `json:"item_id"`
	Qty    decimal.Decimal `json:"qty"`
}

// TransferResponse documento de traslado con sus líneas.
type TransferResponse struct {
	ID              string                  `json:"id"`
	FromWarehouseID string                  `json:"from_warehouse_id"`
	ToWarehouseID   string                  `json:"to_warehouse_id"`
	Date            time.Time               `json:"date"`
	Status          string                  `json:"status"`
	Lines           []*TransferLineResponse `json:"lines"`
}

func NewTransferResponse(doc *entity.Transfer) *TransferResponse {
	resp := &TransferResponse{
		ID:              doc.ID,
		FromWarehouseID: doc.FromWarehouseID,
		ToWarehouseID:   doc.ToWarehouseID,
		Date:            doc.Date,
		Status:          doc.Status,
		Lines:           make([]*TransferLineResponse, 0, len(doc.Lines)),
	}
	for _, line := range doc.Lines {
		resp.Lines = append(resp.Lines, &TransferLineResponse{
			ID:     line.ID,
			ItemID: line.ItemID,
			Qty:    line.Qty,
		})
	}
	return resp
}

// CreateWriteOffRequest body para crear una baja en borrador.
type CreateWriteOffRequest struct {
	WarehouseID string    `json:"warehouse_id"`
	Reason      string    `json:"reason,omitempty"`
	Date        time.Time `json:"date,omitempty"`
}

// UpdateWriteOffRequest body para editar el encabezado de un borrador.
type UpdateWriteOffRequest struct {
	WarehouseID string    `json:"warehouse_id,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Date        time.Time `json:"date,omitempty"`
}

// WriteOffLineRequest body para agregar una línea de baja.
type WriteOffLineRequest struct {
	ItemID string          `json:"item_id"`
	Qty    decimal.Decimal `json:"qty"`
}

// WriteOffLineResponse línea de baja.
type WriteOffLineResponse struct {
	ID     string          `json:"id"`
	ItemID string          `json:"item_id"`
	Qty    decimal.Decimal `json:"qty"`
}

// WriteOffResponse documento de baja con sus líneas.
type WriteOffResponse struct {
	ID          string                  `json:"id"`
	WarehouseID string                  `json:"warehouse_id"`
	Date        time.Time               `json:"date"`
	Reason      string                  `json:"reason,omitempty"`
	Status      string                  `json:"status"`
	Lines       []*WriteOffLineResponse `json:"lines"`
}

func NewWriteOffResponse(doc *entity.WriteOff) *WriteOffResponse {
	resp := &WriteOffResponse{
		ID:          doc.ID,
		WarehouseID: doc.WarehouseID,
		Date:        doc.Date,
		Reason:      doc.Reason,
		Status:      doc.Status,
		Lines:       make([]*WriteOffLineResponse, 0, len(doc.Lines)),
	}
	for _, line := range doc.Lines {
		resp.Lines = append(resp.Lines, &WriteOffLineResponse{
			ID:     line.ID,
			ItemID: line.ItemID,
			Qty:    line.Qty,
		})
	}
	return resp
}

// CreateInventoryRequest body para crear una inventarización en borrador.
type CreateInventoryRequest struct {
	WarehouseID string    `json:"warehouse_id"`
	Date        time.Time `json:"date,omitempty"`
}

// InventoryLineRequest body para agregar o corregir una línea de conteo.
type InventoryLineRequest struct {
	ItemID     string          `json:"item_id,omitempty"`
	CountedQty decimal.Decimal `json:"counted_qty"`
}

// InventoryLineResponse línea de conteo.
type InventoryLineResponse struct {
	ID         string          `json:"id"`
	ItemID     string          `json:"item_id"`
	CountedQty decimal.Decimal `json:"counted_qty"`
}

// InventoryResponse documento de inventarización con sus líneas.
type InventoryResponse struct {
	ID          string                   `json:"id"`
	WarehouseID string                   `json:"warehouse_id"`
	Date        time.Time                `json:"date"`
	Status      string                   `json:"status"`
	Lines       []*InventoryLineResponse `json:"lines"`
}

func NewInventoryResponse(doc *entity.InventoryDoc) *InventoryResponse {
	resp := &InventoryResponse{
		ID:          doc.ID,
		WarehouseID: doc.WarehouseID,
		Date:        doc.Date,
		Status:      doc.Status,
		Lines:       make([]*InventoryLineResponse, 0, len(doc.Lines)),
	}
	for _, line := range doc.Lines {
		resp.Lines = append(resp.Lines, &InventoryLineResponse{
			ID:         line.ID,
			ItemID:     line.ItemID,
			CountedQty: line.CountedQty,
		})
	}
	return resp
}

// PostResponse resultado de proveer un documento. Si el documento ya estaba
// provisto la operación no cambia nada y lo informa en AlreadyPosted.
type PostResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	AlreadyPosted bool   `json:"already_posted,omitempty"`
}
