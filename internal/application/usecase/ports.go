package usecase

import (
	"context"

	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// CheckoutRepos agrupa los repositorios atados a la transacción del checkout.
type CheckoutRepos struct {
	Carts      repository.CartRepository
	Deliveries repository.DeliveryOrderRepository
	Customers  repository.CustomerRepository
	Products   repository.ProductRepository
}

// CheckoutTxRunner ejecuta el checkout del sitio en una transacción: crear el
// pedido, acreditar puntos y vaciar el carrito se confirman o revierten juntos.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(repos CheckoutRepos) error) error
}
