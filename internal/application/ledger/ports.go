package ledger

import (
	"context"

	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Balances    repository.StockBalanceRepository
	Movements   repository.StockMovementRepository
	Purchases   repository.PurchaseRepository
	Transfers   repository.TransferRepository
	WriteOffs   repository.WriteOffRepository
	Inventories repository.InventoryDocRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// inventario: saldo y movimiento nunca se observan por separado.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
