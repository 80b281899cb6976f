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

// pointsPercent porcentaje del total que se acredita como puntos al cerrar
// un pedido de entrega.
const pointsPercent = 5

// Transiciones válidas del estado de un pedido de entrega.
var deliveryTransitions = map[string]map[string]bool{
	entity.DeliveryStatusNew: {
		entity.DeliveryStatusInProgress: true,
		entity.DeliveryStatusCancelled:  true,
	},
	entity.DeliveryStatusInProgress: {
		entity.DeliveryStatusDone:      true,
		entity.DeliveryStatusCancelled: true,
	},
}

// DeliveryUseCase casos de uso de pedidos de entrega: registro por teléfono o
// panel, avance de estado, asignación de repartidor y acumulación de puntos.
type DeliveryUseCase struct {
	orders    repository.DeliveryOrderRepository
	products  repository.ProductRepository
	employees repository.EmployeeRepository
	customers repository.CustomerRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	orders repository.DeliveryOrderRepository,
	products repository.ProductRepository,
	employees repository.EmployeeRepository,
	customers repository.CustomerRepository,
) *DeliveryUseCase {
	return &DeliveryUseCase{orders: orders, products: products, employees: employees, customers: customers}
}

// Create registra un pedido de entrega con origen phone. Nombre y precio de
// cada producto quedan como snapshot en la línea.
func (uc *DeliveryUseCase) Create(in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if in.Phone == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	receive := in.ReceiveMethod
	if receive == "" {
		receive = entity.ReceiveDelivery
	}
	order := &entity.DeliveryOrder{
		ID:            uuid.New().String(),
		Status:        entity.DeliveryStatusNew,
		Source:        entity.DeliverySourcePhone,
		Phone:         in.Phone,
		CustomerName:  in.CustomerName,
		Street:        in.Street,
		House:         in.House,
		Flat:          in.Flat,
		Entrance:      in.Entrance,
		Floor:         in.Floor,
		Comment:       in.Comment,
		PlannedAt:     in.PlannedAt,
		ReceiveMethod: receive,
		PaymentType:   in.PaymentType,
		Total:         decimal.Zero,
		CreatedAt:     time.Now(),
	}

	total := decimal.Zero
	items := make([]*entity.DeliveryOrderItem, 0, len(in.Items))
	for _, reqItem := range in.Items {
		if reqItem.Qty <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		product, err := uc.products.GetByID(reqItem.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, domain.ErrNotFound
		}
		sum := product.Price.Mul(decimal.NewFromInt(int64(reqItem.Qty)))
		items = append(items, &entity.DeliveryOrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Qty:         reqItem.Qty,
			UnitPrice:   product.Price,
			Sum:         sum,
		})
		total = total.Add(sum)
	}
	order.Total = total

	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := uc.orders.AddItem(item); err != nil {
			return nil, err
		}
	}
	order.Items = items
	return dto.NewDeliveryResponse(order), nil
}

// Get obtiene un pedido con sus líneas.
func (uc *DeliveryUseCase) Get(id string) (*dto.DeliveryResponse, error) {
	order, err := uc.getOrder(id)
	if err != nil {
		return nil, err
	}
	return dto.NewDeliveryResponse(order), nil
}

// GetEntity obtiene el pedido de dominio; lo usa el generador de recibos PDF.
func (uc *DeliveryUseCase) GetEntity(id string) (*entity.DeliveryOrder, error) {
	return uc.getOrder(id)
}

// ListByStatus lista pedidos por estado; estado vacío lista los nuevos.
func (uc *DeliveryUseCase) ListByStatus(status string) ([]*dto.DeliveryResponse, error) {
	if status == "" {
		status = entity.DeliveryStatusNew
	}
	orders, err := uc.orders.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeliveryResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, dto.NewDeliveryResponse(order))
	}
	return out, nil
}

// ListByUser lista los pedidos hechos por una cuenta del portal.
func (uc *DeliveryUseCase) ListByUser(userID string) ([]*dto.DeliveryResponse, error) {
	orders, err := uc.orders.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeliveryResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, dto.NewDeliveryResponse(order))
	}
	return out, nil
}

// Update edita contacto y datos de entrega de un pedido aún no cerrado.
func (uc *DeliveryUseCase) Update(id string, in dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	order, err := uc.getOrder(id)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.DeliveryStatusDone || order.Status == entity.DeliveryStatusCancelled {
		return nil, domain.ErrNotEditable
	}
	if in.Phone != "" {
		order.Phone = in.Phone
	}
	if in.CustomerName != "" {
		order.CustomerName = in.CustomerName
	}
	if in.Street != "" {
		order.Street = in.Street
	}
	if in.House != "" {
		order.House = in.House
	}
	if in.Flat != "" {
		order.Flat = in.Flat
	}
	if in.Entrance != "" {
		order.Entrance = in.Entrance
	}
	if in.Floor != "" {
		order.Floor = in.Floor
	}
	if in.Comment != "" {
		order.Comment = in.Comment
	}
	if in.PlannedAt != nil {
		order.PlannedAt = in.PlannedAt
	}
	if in.ReceiveMethod != "" {
		order.ReceiveMethod = in.ReceiveMethod
	}
	if in.PaymentType != "" {
		order.PaymentType = in.PaymentType
	}
	if err := uc.orders.UpdateHeader(order); err != nil {
		return nil, err
	}
	return dto.NewDeliveryResponse(order), nil
}

// SetStatus avanza el estado del pedido respetando las transiciones válidas.
// Al pasar a done acredita puntos de fidelización al cliente del teléfono.
func (uc *DeliveryUseCase) SetStatus(id string, status string) (*dto.DeliveryResponse, error) {
	order, err := uc.getOrder(id)
	if err != nil {
		return nil, err
	}
	allowed, ok := deliveryTransitions[order.Status]
	if !ok || !allowed[status] {
		return nil, domain.ErrConflict
	}
	order.Status = status
	if err := uc.orders.UpdateHeader(order); err != nil {
		return nil, err
	}
	if status == entity.DeliveryStatusDone {
		if err := uc.accruePoints(order); err != nil {
			return nil, err
		}
	}
	return dto.NewDeliveryResponse(order), nil
}

// AssignCourier asigna el repartidor del pedido.
func (uc *DeliveryUseCase) AssignCourier(id string, courierID string) (*dto.DeliveryResponse, error) {
	order, err := uc.getOrder(id)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.DeliveryStatusDone || order.Status == entity.DeliveryStatusCancelled {
		return nil, domain.ErrNotEditable
	}
	employee, err := uc.employees.GetByID(courierID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	order.CourierID = courierID
	if err := uc.orders.UpdateHeader(order); err != nil {
		return nil, err
	}
	return dto.NewDeliveryResponse(order), nil
}

// accruePoints acredita al cliente el porcentaje del total como puntos; si el
// teléfono no está registrado, lo da de alta.
func (uc *DeliveryUseCase) accruePoints(order *entity.DeliveryOrder) error {
	points := int(order.Total.Mul(decimal.NewFromInt(pointsPercent)).Div(decimal.NewFromInt(100)).IntPart())
	if points <= 0 {
		return nil
	}
	customer, err := uc.customers.GetByPhone(order.Phone)
	if err != nil {
		return err
	}
	if customer == nil {
		customer = &entity.Customer{
			ID:     uuid.New().String(),
			Phone:  order.Phone,
			Name:   order.CustomerName,
			Points: points,
		}
		return uc.customers.Create(customer)
	}
	customer.Points += points
	if customer.Name == "" {
		customer.Name = order.CustomerName
	}
	return uc.customers.Update(customer)
}

func (uc *DeliveryUseCase) getOrder(id string) (*entity.DeliveryOrder, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}
