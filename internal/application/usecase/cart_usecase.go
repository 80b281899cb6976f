package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// CartUseCase carrito del sitio público. El carrito vive en BD keyed por el
// session ID de la cookie del visitante; el checkout lo convierte en un
// pedido de entrega con origen site.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	checkout CheckoutTxRunner
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository, checkout CheckoutTxRunner) *CartUseCase {
	return &CartUseCase{carts: carts, products: products, checkout: checkout}
}

// Get devuelve el carrito con precios vigentes y total calculado. Productos
// desactivados después de agregarse se omiten del total.
func (uc *CartUseCase) Get(sessionID string) (*dto.CartResponse, error) {
	cart, err := uc.carts.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return uc.price(cart)
}

// Add suma qty unidades de un producto al carrito.
func (uc *CartUseCase) Add(sessionID string, in dto.CartItemRequest) (*dto.CartResponse, error) {
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
	cart, err := uc.carts.Get(sessionID)
	if err != nil {
		return nil, err
	}
	qty := in.Qty
	for _, item := range cart.Items {
		if item.ProductID == in.ProductID {
			qty += item.Qty
			break
		}
	}
	if err := uc.carts.SetItem(sessionID, in.ProductID, qty); err != nil {
		return nil, err
	}
	return uc.Get(sessionID)
}

// SetQty fija la cantidad exacta de un producto; cero lo elimina.
func (uc *CartUseCase) SetQty(sessionID string, in dto.CartItemRequest) (*dto.CartResponse, error) {
	if in.Qty < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := uc.carts.SetItem(sessionID, in.ProductID, in.Qty); err != nil {
		return nil, err
	}
	return uc.Get(sessionID)
}

// Remove elimina un producto del carrito.
func (uc *CartUseCase) Remove(sessionID, productID string) (*dto.CartResponse, error) {
	if err := uc.carts.SetItem(sessionID, productID, 0); err != nil {
		return nil, err
	}
	return uc.Get(sessionID)
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear(sessionID string) error {
	return uc.carts.Clear(sessionID)
}

// Checkout convierte el carrito en un pedido de entrega con origen site.
// Pedido, puntos y vaciado del carrito quedan en una sola transacción; si
// algo falla el carrito queda intacto. userID llega vacío para visitantes
// anónimos.
func (uc *CartUseCase) Checkout(ctx context.Context, sessionID, userID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	var resp *dto.CheckoutResponse
	err := uc.checkout.RunCheckout(ctx, func(repos CheckoutRepos) error {
		cart, err := repos.Carts.Get(sessionID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return domain.ErrEmptyCart
		}

		receive := in.ReceiveMethod
		if receive == "" {
			receive = entity.ReceiveDelivery
		}
		order := &entity.DeliveryOrder{
			ID:            uuid.New().String(),
			Status:        entity.DeliveryStatusNew,
			Source:        entity.DeliverySourceSite,
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
			UserID:        userID,
		}

		ids := make([]string, 0, len(cart.Items))
		for _, item := range cart.Items {
			ids = append(ids, item.ProductID)
		}
		products, err := repos.Products.GetByIDs(ids)
		if err != nil {
			return err
		}
		byID := make(map[string]*entity.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		total := decimal.Zero
		var items []*entity.DeliveryOrderItem
		for _, cartItem := range cart.Items {
			product, ok := byID[cartItem.ProductID]
			if !ok || !product.Active {
				// El producto salió del menú mientras estaba en el carrito.
				continue
			}
			sum := product.Price.Mul(decimal.NewFromInt(int64(cartItem.Qty)))
			items = append(items, &entity.DeliveryOrderItem{
				ID:          uuid.New().String(),
				OrderID:     order.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Qty:         cartItem.Qty,
				UnitPrice:   product.Price,
				Sum:         sum,
			})
			total = total.Add(sum)
		}
		if len(items) == 0 {
			return domain.ErrEmptyCart
		}
		order.Total = total

		if err := repos.Deliveries.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			if err := repos.Deliveries.AddItem(item); err != nil {
				return err
			}
		}
		if err := accruePoints(repos.Customers, in.Phone, in.CustomerName, total); err != nil {
			return err
		}
		if err := repos.Carts.Clear(sessionID); err != nil {
			return err
		}
		resp = &dto.CheckoutResponse{OrderID: order.ID, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// price arma la respuesta del carrito con los precios vigentes del menú.
func (uc *CartUseCase) price(cart *entity.Cart) (*dto.CartResponse, error) {
	resp := &dto.CartResponse{Items: []*dto.CartItemResponse{}, Total: decimal.Zero}
	if len(cart.Items) == 0 {
		return resp, nil
	}
	ids := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := uc.products.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok || !product.Active {
			continue
		}
		sum := product.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
		resp.Items = append(resp.Items, &dto.CartItemResponse{
			ProductID:   product.ID,
			ProductName: product.Name,
			Qty:         item.Qty,
			UnitPrice:   product.Price,
			Sum:         sum,
		})
		resp.Total = resp.Total.Add(sum)
	}
	return resp, nil
}

// accruePoints acredita al teléfono del pedido la parte entera del total como
// puntos de fidelización, creando el cliente si aún no existe. Un cliente con
// nombre conserva el suyo.
func accruePoints(customers repository.CustomerRepository, phone, name string, total decimal.Decimal) error {
	customer, err := customers.GetByPhone(phone)
	if err != nil {
		return err
	}
	points := int(total.IntPart())
	if customer == nil {
		return customers.Create(&entity.Customer{
			ID:     uuid.New().String(),
			Phone:  phone,
			Name:   name,
			Points: points,
		})
	}
	if customer.Name == "" && name != "" {
		customer.Name = name
	}
	customer.Points += points
	return customers.Update(customer)
}
