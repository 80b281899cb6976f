package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/application/usecase"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del POS de sala con repositorios en memoria. El total del pedido debe
// ser siempre la suma de las líneas, los precios quedan como snapshot al
// agregar y una mesa solo admite un pedido abierto.
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_MesaSoloAdmiteUnPedidoAbierto(t *testing.T) {
	env := newPOSEnv(t)

	first, err := env.uc.Open(dto.OpenOrderRequest{TableID: env.mesa.ID})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = env.uc.Open(dto.OpenOrderRequest{TableID: env.mesa.ID})
	assert.ErrorIs(t, err, domain.ErrConflict, "la mesa ya tiene un pedido abierto")
}

func TestOpen_MesaInexistente(t *testing.T) {
	env := newPOSEnv(t)
	_, err := env.uc.Open(dto.OpenOrderRequest{TableID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_TotalEsSumaDeLineas(t *testing.T) {
	env := newPOSEnv(t)
	order := env.openOrder(t)

	_, err := env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.pizza.ID, Qty: 2})
	require.NoError(t, err)
	resp, err := env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.gaseosa.ID, Qty: 3})
	require.NoError(t, err)

	// 2 x 25000 + 3 x 4500 = 63500
	assert.Equal(t, "63500", resp.Total.String())
	assert.Len(t, resp.Items, 2)
}

func TestAddItem_ProductoRepetidoAcumula(t *testing.T) {
	env := newPOSEnv(t)
	order := env.openOrder(t)

	_, err := env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.pizza.ID, Qty: 1})
	require.NoError(t, err)
	resp, err := env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.pizza.ID, Qty: 2})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1, "el mismo producto no abre línea nueva")
	assert.Equal(t, 3, resp.Items[0].Qty)
	assert.Equal(t, "75000", resp.Total.String())
}

func TestAddItem_PrecioQuedaComoSnapshot(t *testing.T) {
	env := newPOSEnv(t)
	order := env.openOrder(t)

	_, err := env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.pizza.ID, Qty: 1})
	require.NoError(t, err)

	// El menú sube de precio después de tomar el pedido.
	env.pizza.Price = decimal.RequireFromString("99000")

	resp, err := env.uc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "25000", resp.Items[0].UnitPrice.String(),
		"el cambio de menú no altera pedidos ya tomados")
	assert.Equal(t, "25000", resp.Total.String())
}

func TestAddItem_ProductoInactivoNoSeVende(t *testing.T) {
	env := newPOSEnv(t)
	order := env.openOrder(t)

	env.pizza.Active = false
	_, err := env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.pizza.ID, Qty: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_CantidadInvalida(t *testing.T) {
	env := newPOSEnv(t)
	order := env.openOrder(t)

	_, err := env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.pizza.ID, Qty: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.pizza.ID, Qty: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestSetItemQty_CeroEliminaLaLinea(t *testing.T) {
	env := newPOSEnv(t)
	order := env.openOrder(t)

	resp, err := env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.pizza.ID, Qty: 2})
	require.NoError(t, err)
	itemID := resp.Items[0].ID

	resp, err = env.uc.SetItemQty(order.ID, itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero(), "el total vuelve a cero al quitar la última línea")
}

func TestPay_CierraElPedidoYRegistraPago(t *testing.T) {
	env := newPOSEnv(t)
	order := env.openOrder(t)

	_, err := env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.gaseosa.ID, Qty: 2})
	require.NoError(t, err)

	resp, err := env.uc.Pay(order.ID, dto.PayOrderRequest{Method: entity.PaymentCash})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, resp.Status)

	require.Len(t, env.orders.payments, 1)
	assert.Equal(t, "9000", env.orders.payments[0].Amount.String(),
		"el pago registra el total del pedido")

	// Un pedido cerrado ya no se edita.
	_, err = env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.pizza.ID, Qty: 1})
	assert.ErrorIs(t, err, domain.ErrNotEditable)
}

func TestPay_PedidoVacioNoSeCobra(t *testing.T) {
	env := newPOSEnv(t)
	order := env.openOrder(t)

	_, err := env.uc.Pay(order.ID, dto.PayOrderRequest{Method: entity.PaymentCash})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPay_MetodoInvalido(t *testing.T) {
	env := newPOSEnv(t)
	order := env.openOrder(t)
	_, err := env.uc.AddItem(order.ID, dto.OrderItemRequest{ProductID: env.pizza.ID, Qty: 1})
	require.NoError(t, err)

	_, err = env.uc.Pay(order.ID, dto.PayOrderRequest{Method: "cheque"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancel_LiberaLaMesa(t *testing.T) {
	env := newPOSEnv(t)
	order := env.openOrder(t)

	resp, err := env.uc.Cancel(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, resp.Status)

	_, err = env.uc.Open(dto.OpenOrderRequest{TableID: env.mesa.ID})
	assert.NoError(t, err, "anulado el pedido, la mesa vuelve a estar libre")
}

func TestDeleteTable_ConPedidoAbiertoFalla(t *testing.T) {
	env := newPOSEnv(t)
	env.openOrder(t)

	err := env.uc.DeleteTable(env.mesa.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateTable_NombreDuplicado(t *testing.T) {
	env := newPOSEnv(t)
	_, err := env.uc.CreateTable(dto.TableRequest{Name: "Mesa 1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ── helpers ───────────────────────────────────────────────────────────────────

type posEnv struct {
	uc     *usecase.OrderUseCase
	orders *fakeOrderRepo

	mesa    *entity.Table
	pizza   *entity.Product
	gaseosa *entity.Product
}

func newPOSEnv(t *testing.T) *posEnv {
	t.Helper()

	orders := newFakeOrderRepo()
	tables := &fakeTableRepo{tables: map[string]*entity.Table{}}
	products := newFakeProductRepo()

	env := &posEnv{
		uc:      usecase.NewOrderUseCase(orders, tables, products),
		orders:  orders,
		mesa:    &entity.Table{ID: "mesa-1", Name: "Mesa 1"},
		pizza:   &entity.Product{ID: "prod-pizza", Name: "Pizza margarita", Price: decimal.RequireFromString("25000"), Active: true},
		gaseosa: &entity.Product{ID: "prod-gaseosa", Name: "Gaseosa", Price: decimal.RequireFromString("4500"), Active: true},
	}
	tables.tables[env.mesa.ID] = env.mesa
	products.products[env.pizza.ID] = env.pizza
	products.products[env.gaseosa.ID] = env.gaseosa
	return env
}

func (e *posEnv) openOrder(t *testing.T) *dto.OrderResponse {
	t.Helper()
	order, err := e.uc.Open(dto.OpenOrderRequest{TableID: e.mesa.ID})
	require.NoError(t, err)
	return order
}

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders   map[string]*entity.Order
	payments []*entity.Payment
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) UpdateHeader(order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) ListByStatus(status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		if order.Status == status {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) HasOpenByTable(tableID string) (bool, error) {
	for _, order := range r.orders {
		if order.TableID == tableID && order.Status == entity.OrderStatusOpen {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrderRepo) AddItem(item *entity.OrderItem) error { return nil }

func (r *fakeOrderRepo) GetItem(itemID string) (*entity.OrderItem, error) {
	for _, order := range r.orders {
		for _, item := range order.Items {
			if item.ID == itemID {
				return item, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) UpdateItem(item *entity.OrderItem) error { return nil }

func (r *fakeOrderRepo) DeleteItem(itemID string) error { return nil }

func (r *fakeOrderRepo) CreatePayment(payment *entity.Payment) error {
	r.payments = append(r.payments, payment)
	return nil
}

type fakeTableRepo struct {
	tables map[string]*entity.Table
}

func (r *fakeTableRepo) Create(table *entity.Table) error {
	r.tables[table.ID] = table
	return nil
}

func (r *fakeTableRepo) GetByID(id string) (*entity.Table, error) {
	return r.tables[id], nil
}

func (r *fakeTableRepo) GetByName(name string) (*entity.Table, error) {
	for _, table := range r.tables {
		if table.Name == name {
			return table, nil
		}
	}
	return nil, nil
}

func (r *fakeTableRepo) List() ([]*entity.Table, error) {
	var out []*entity.Table
	for _, table := range r.tables {
		out = append(out, table)
	}
	return out, nil
}

func (r *fakeTableRepo) Delete(id string) error {
	delete(r.tables, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if product, ok := r.products[id]; ok {
			out = append(out, product)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) List(onlyActive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, product := range r.products {
		if onlyActive && !product.Active {
			continue
		}
		out = append(out, product)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}
