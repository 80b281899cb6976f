package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/resto-crm/internal/application/ledger"
	"github.com/tu-usuario/resto-crm/internal/application/usecase"
)

var _ ledger.TxRunner = (*TxRunner)(nil)
var _ usecase.CheckoutTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repositorios del motor de
// inventario atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ledger.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := ledger.TxRepos{
		Balances:    NewStockBalanceRepository(tx),
		Movements:   NewStockMovementRepository(tx),
		Purchases:   NewPurchaseRepository(tx),
		Transfers:   NewTransferRepository(tx),
		WriteOffs:   NewWriteOffRepository(tx),
		Inventories: NewInventoryDocRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCheckout inicia una transacción con los repositorios del checkout del
// sitio: pedido, puntos y vaciado del carrito se confirman juntos.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(repos usecase.CheckoutRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := usecase.CheckoutRepos{
		Carts:      NewCartRepository(tx),
		Deliveries: NewDeliveryOrderRepository(tx),
		Customers:  NewCustomerRepository(tx),
		Products:   NewProductRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
