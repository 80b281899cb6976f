package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var validPaymentMethods = map[string]bool{
	entity.PaymentCash:   true,
	entity.PaymentCard:   true,
	entity.PaymentOnline: true,
}

// OrderUseCase casos de uso del POS de sala: abrir pedido en mesa, agregar
// productos, ajustar cantidades y cobrar. El total del pedido se recalcula en
// cada mutación como suma de las líneas.
type OrderUseCase struct {
	orders   repository.OrderRepository
	tables   repository.TableRepository
	products repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, tables repository.TableRepository, products repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, tables: tables, products: products}
}

// ── Mesas ─────────────────────────────────────────────────────────────────────

// CreateTable crea una mesa del salón.
func (uc *OrderUseCase) CreateTable(in dto.TableRequest) (*dto.TableResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.tables.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	table := &entity.Table{ID: uuid.New().String(), Name: in.Name}
	if err := uc.tables.Create(table); err != nil {
		return nil, err
	}
	return &dto.TableResponse{ID: table.ID, Name: table.Name}, nil
}

// ListTables lista las mesas.
func (uc *OrderUseCase) ListTables() ([]*dto.TableResponse, error) {
	tables, err := uc.tables.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TableResponse, 0, len(tables))
	for _, table := range tables {
		out = append(out, &dto.TableResponse{ID: table.ID, Name: table.Name})
	}
	return out, nil
}

// DeleteTable elimina una mesa sin pedido abierto.
func (uc *OrderUseCase) DeleteTable(id string) error {
	table, err := uc.tables.GetByID(id)
	if err != nil {
		return err
	}
	if table == nil {
		return domain.ErrNotFound
	}
	open, err := uc.orders.HasOpenByTable(id)
	if err != nil {
		return err
	}
	if open {
		return domain.ErrConflict
	}
	return uc.tables.Delete(id)
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

// Open abre un pedido en una mesa. Una mesa solo admite un pedido abierto.
func (uc *OrderUseCase) Open(in dto.OpenOrderRequest) (*dto.OrderResponse, error) {
	table, err := uc.tables.GetByID(in.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.ErrNotFound
	}
	open, err := uc.orders.HasOpenByTable(in.TableID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, domain.ErrConflict
	}
	order := &entity.Order{
		ID:         uuid.New().String(),
		TableID:    in.TableID,
		Status:     entity.OrderStatusOpen,
		Total:      decimal.Zero,
		CreatedAt:  time.Now(),
		GuestCount: in.GuestCount,
		Waiter:     in.Waiter,
		Comment:    in.Comment,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

// Get obtiene un pedido con sus líneas.
func (uc *OrderUseCase) Get(id string) (*dto.OrderResponse, error) {
	order, err := uc.getOrder(id)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

// ListOpen lista los pedidos abiertos.
func (uc *OrderUseCase) ListOpen() ([]*dto.OrderResponse, error) {
	orders, err := uc.orders.ListByStatus(entity.OrderStatusOpen)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, dto.NewOrderResponse(order))
	}
	return out, nil
}

// AddItem agrega un producto al pedido abierto. El nombre y el precio quedan
// como snapshot: cambios posteriores del menú no alteran pedidos ya tomados.
func (uc *OrderUseCase) AddItem(orderID string, in dto.OrderItemRequest) (*dto.OrderResponse, error) {
	order, err := uc.openOrder(orderID)
	if err != nil {
		return nil, err
	}
	if in.Qty <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}

	// Si el producto ya está en el pedido se acumula la cantidad.
	for _, item := range order.Items {
		if item.ProductID == in.ProductID {
			item.Qty += in.Qty
			item.Sum = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Qty)))
			if err := uc.orders.UpdateItem(item); err != nil {
				return nil, err
			}
			return uc.recalc(order)
		}
	}

	item := &entity.OrderItem{
		ID:          uuid.New().String(),
		OrderID:     order.ID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Qty:         in.Qty,
		UnitPrice:   product.Price,
		Sum:         product.Price.Mul(decimal.NewFromInt(int64(in.Qty))),
	}
	if err := uc.orders.AddItem(item); err != nil {
		return nil, err
	}
	order.Items = append(order.Items, item)
	return uc.recalc(order)
}

// SetItemQty fija la cantidad de una línea; cero la elimina.
func (uc *OrderUseCase) SetItemQty(orderID, itemID string, qty int) (*dto.OrderResponse, error) {
	order, err := uc.openOrder(orderID)
	if err != nil {
		return nil, err
	}
	if qty < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	for i, item := range order.Items {
		if item.ID != itemID {
			continue
		}
		if qty == 0 {
			if err := uc.orders.DeleteItem(itemID); err != nil {
				return nil, err
			}
			order.Items = append(order.Items[:i], order.Items[i+1:]...)
		} else {
			item.Qty = qty
			item.Sum = item.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
			if err := uc.orders.UpdateItem(item); err != nil {
				return nil, err
			}
		}
		return uc.recalc(order)
	}
	return nil, domain.ErrNotFound
}

// RemoveItem elimina una línea del pedido abierto.
func (uc *OrderUseCase) RemoveItem(orderID, itemID string) (*dto.OrderResponse, error) {
	return uc.SetItemQty(orderID, itemID, 0)
}

// Pay cobra el pedido: registra el pago por el total y lo cierra. Un pedido
// vacío no se cobra.
func (uc *OrderUseCase) Pay(orderID string, in dto.PayOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.openOrder(orderID)
	if err != nil {
		return nil, err
	}
	if len(order.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !validPaymentMethods[in.Method] {
		return nil, domain.ErrInvalidInput
	}
	payment := &entity.Payment{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		Amount:    order.Total,
		Method:    in.Method,
		CreatedAt: time.Now(),
	}
	if err := uc.orders.CreatePayment(payment); err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusPaid
	if err := uc.orders.UpdateHeader(order); err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

// Cancel anula un pedido abierto.
func (uc *OrderUseCase) Cancel(orderID string) (*dto.OrderResponse, error) {
	order, err := uc.openOrder(orderID)
	if err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusCancelled
	if err := uc.orders.UpdateHeader(order); err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

func (uc *OrderUseCase) getOrder(id string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (uc *OrderUseCase) openOrder(id string) (*entity.Order, error) {
	order, err := uc.getOrder(id)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderStatusOpen {
		return nil, domain.ErrNotEditable
	}
	return order, nil
}

// recalc recalcula el total como suma de las líneas y persiste el encabezado.
func (uc *OrderUseCase) recalc(order *entity.Order) (*dto.OrderResponse, error) {
	total := decimal.Zero
	for _, item := range order.Items {
		total = total.Add(item.Sum)
	}
	order.Total = total
	if err := uc.orders.UpdateHeader(order); err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}
