package usecase_test

import (
	"context"
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
// Tests del carrito del sitio. El carrito vive keyed por session ID, los
// precios se resuelven contra el menú vigente al consultar y el checkout es
// atómico: pedido, cliente y vaciado del carrito juntos o nada.
// ──────────────────────────────────────────────────────────────────────────────

const testSession = "sess-abc"

func TestCartAdd_AcumulaYTotaliza(t *testing.T) {
	env := newCartEnv(t)

	_, err := env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.pizza.ID, Qty: 1})
	require.NoError(t, err)
	resp, err := env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.pizza.ID, Qty: 2})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Qty, "agregar el mismo producto acumula cantidad")
	assert.Equal(t, "75000", resp.Total.String())
}

func TestCartAdd_ProductoInactivo(t *testing.T) {
	env := newCartEnv(t)
	env.pizza.Active = false

	_, err := env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.pizza.ID, Qty: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartGet_ProductoDesactivadoSeOmiteDelTotal(t *testing.T) {
	env := newCartEnv(t)

	_, err := env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.pizza.ID, Qty: 1})
	require.NoError(t, err)
	_, err = env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.gaseosa.ID, Qty: 2})
	require.NoError(t, err)

	// La pizza sale del menú con el carrito armado.
	env.pizza.Active = false

	resp, err := env.uc.Get(testSession)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1, "el producto desactivado no se lista")
	assert.Equal(t, "9000", resp.Total.String())
}

func TestCartSetQty_CeroElimina(t *testing.T) {
	env := newCartEnv(t)

	_, err := env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.pizza.ID, Qty: 2})
	require.NoError(t, err)

	resp, err := env.uc.SetQty(testSession, dto.CartItemRequest{ProductID: env.pizza.ID, Qty: 0})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())
}

func TestCartSesionesIndependientes(t *testing.T) {
	env := newCartEnv(t)

	_, err := env.uc.Add("sess-uno", dto.CartItemRequest{ProductID: env.pizza.ID, Qty: 1})
	require.NoError(t, err)

	resp, err := env.uc.Get("sess-dos")
	require.NoError(t, err)
	assert.Empty(t, resp.Items, "cada session ID tiene su propio carrito")
}

// ── Checkout ──────────────────────────────────────────────────────────────────

func TestCheckout_CreaPedidoYVaciaCarrito(t *testing.T) {
	env := newCartEnv(t)

	_, err := env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.pizza.ID, Qty: 2})
	require.NoError(t, err)
	_, err = env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.gaseosa.ID, Qty: 1})
	require.NoError(t, err)

	resp, err := env.uc.Checkout(context.Background(), testSession, "user-1", dto.CheckoutRequest{
		Phone:        "3001234567",
		CustomerName: "Laura",
		Street:       "Calle 10",
	})
	require.NoError(t, err)
	assert.Equal(t, "54500", resp.Total.String())

	require.Len(t, env.deliveries.orders, 1)
	order := env.deliveries.orders[resp.OrderID]
	assert.Equal(t, entity.DeliverySourceSite, order.Source)
	assert.Equal(t, entity.DeliveryStatusNew, order.Status)
	assert.Equal(t, "user-1", order.UserID)
	assert.Len(t, env.deliveries.items[resp.OrderID], 2)

	cart, err := env.uc.Get(testSession)
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "el checkout vacía el carrito")
}

func TestCheckout_RegistraClienteYAcreditaPuntos(t *testing.T) {
	env := newCartEnv(t)
	_, err := env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.pizza.ID, Qty: 1})
	require.NoError(t, err)

	_, err = env.uc.Checkout(context.Background(), testSession, "", dto.CheckoutRequest{
		Phone:        "3007654321",
		CustomerName: "Andrés",
	})
	require.NoError(t, err)

	customer, err := env.customers.GetByPhone("3007654321")
	require.NoError(t, err)
	require.NotNil(t, customer, "el teléfono entra a fidelización")
	assert.Equal(t, "Andrés", customer.Name)
	assert.Equal(t, 25000, customer.Points,
		"el cliente nuevo arranca con la parte entera del total en puntos")
}

func TestCheckout_ClienteExistenteAcumulaPuntos(t *testing.T) {
	env := newCartEnv(t)
	existing := &entity.Customer{ID: "cust-1", Phone: "3000000000", Name: "Marta", Points: 1200}
	require.NoError(t, env.customers.Create(existing))

	_, err := env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.gaseosa.ID, Qty: 2})
	require.NoError(t, err)
	_, err = env.uc.Checkout(context.Background(), testSession, "", dto.CheckoutRequest{
		Phone:        "3000000000",
		CustomerName: "Otro nombre",
	})
	require.NoError(t, err)

	assert.Len(t, env.customers.byPhone, 1, "el cliente existente no se duplica")
	customer := env.customers.byPhone["3000000000"]
	assert.Equal(t, "Marta", customer.Name, "un cliente con nombre conserva el suyo")
	assert.Equal(t, 1200+9000, customer.Points,
		"cada checkout suma sus puntos a los acumulados")
}

func TestCheckout_CarritoVacio(t *testing.T) {
	env := newCartEnv(t)
	_, err := env.uc.Checkout(context.Background(), testSession, "", dto.CheckoutRequest{Phone: "3001112233"})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_SinTelefono(t *testing.T) {
	env := newCartEnv(t)
	_, err := env.uc.Checkout(context.Background(), testSession, "", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_SoloProductosInactivosEsVacio(t *testing.T) {
	env := newCartEnv(t)
	_, err := env.uc.Add(testSession, dto.CartItemRequest{ProductID: env.pizza.ID, Qty: 1})
	require.NoError(t, err)

	env.pizza.Active = false
	_, err = env.uc.Checkout(context.Background(), testSession, "", dto.CheckoutRequest{Phone: "3001112233"})
	assert.ErrorIs(t, err, domain.ErrEmptyCart,
		"un carrito cuyo único producto salió del menú no genera pedido")
}

// ── helpers ───────────────────────────────────────────────────────────────────

type cartEnv struct {
	uc         *usecase.CartUseCase
	carts      *fakeCartRepo
	deliveries *fakeDeliveryRepo
	customers  *fakeCustomerRepo

	pizza   *entity.Product
	gaseosa *entity.Product
}

func newCartEnv(t *testing.T) *cartEnv {
	t.Helper()

	carts := newFakeCartRepo()
	products := newFakeProductRepo()
	deliveries := newFakeDeliveryRepo()
	customers := newFakeCustomerRepo()

	runner := &fakeCheckoutRunner{repos: usecase.CheckoutRepos{
		Carts:      carts,
		Deliveries: deliveries,
		Customers:  customers,
		Products:   products,
	}}

	env := &cartEnv{
		uc:         usecase.NewCartUseCase(carts, products, runner),
		carts:      carts,
		deliveries: deliveries,
		customers:  customers,
		pizza:      &entity.Product{ID: "prod-pizza", Name: "Pizza margarita", Price: decimal.RequireFromString("25000"), Active: true},
		gaseosa:    &entity.Product{ID: "prod-gaseosa", Name: "Gaseosa", Price: decimal.RequireFromString("4500"), Active: true},
	}
	products.products[env.pizza.ID] = env.pizza
	products.products[env.gaseosa.ID] = env.gaseosa
	return env
}

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeCheckoutRunner struct{ repos usecase.CheckoutRepos }

func (r *fakeCheckoutRunner) RunCheckout(_ context.Context, fn func(usecase.CheckoutRepos) error) error {
	return fn(r.repos)
}

type fakeCartRepo struct {
	rows map[string]map[string]int // sessionID -> productID -> qty
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{rows: map[string]map[string]int{}}
}

func (r *fakeCartRepo) Get(sessionID string) (*entity.Cart, error) {
	cart := &entity.Cart{SessionID: sessionID}
	for productID, qty := range r.rows[sessionID] {
		cart.Items = append(cart.Items, &entity.CartItem{
			SessionID: sessionID,
			ProductID: productID,
			Qty:       qty,
		})
	}
	return cart, nil
}

func (r *fakeCartRepo) SetItem(sessionID, productID string, qty int) error {
	if qty <= 0 {
		delete(r.rows[sessionID], productID)
		return nil
	}
	if r.rows[sessionID] == nil {
		r.rows[sessionID] = map[string]int{}
	}
	r.rows[sessionID][productID] = qty
	return nil
}

func (r *fakeCartRepo) Clear(sessionID string) error {
	delete(r.rows, sessionID)
	return nil
}

type fakeDeliveryRepo struct {
	orders map[string]*entity.DeliveryOrder
	items  map[string][]*entity.DeliveryOrderItem
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{
		orders: map[string]*entity.DeliveryOrder{},
		items:  map[string][]*entity.DeliveryOrderItem{},
	}
}

func (r *fakeDeliveryRepo) Create(order *entity.DeliveryOrder) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeDeliveryRepo) GetByID(id string) (*entity.DeliveryOrder, error) {
	return r.orders[id], nil
}

func (r *fakeDeliveryRepo) UpdateHeader(order *entity.DeliveryOrder) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeDeliveryRepo) ListByStatus(status string) ([]*entity.DeliveryOrder, error) {
	var out []*entity.DeliveryOrder
	for _, order := range r.orders {
		if status == "" || order.Status == status {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *fakeDeliveryRepo) ListByUser(userID string) ([]*entity.DeliveryOrder, error) {
	var out []*entity.DeliveryOrder
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *fakeDeliveryRepo) AddItem(item *entity.DeliveryOrderItem) error {
	r.items[item.OrderID] = append(r.items[item.OrderID], item)
	return nil
}

type fakeCustomerRepo struct {
	byPhone map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byPhone: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(customer *entity.Customer) error {
	r.byPhone[customer.Phone] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, customer := range r.byPhone {
		if customer.ID == id {
			return customer, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	return r.byPhone[phone], nil
}

func (r *fakeCustomerRepo) Update(customer *entity.Customer) error {
	r.byPhone[customer.Phone] = customer
	return nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, customer := range r.byPhone {
		out = append(out, customer)
	}
	return out, nil
}
