package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// quantityScale cantidad de decimales del libro (NUMERIC(12,3)).
const quantityScale = 3

// applyMovement es la única vía de mutación de saldos: suma el delta al saldo
// (bloqueando la fila) y agrega la entrada inmutable al libro, con los
// repositorios atados a la transacción del caller.
//
// El delta se redondea a 3 decimales y debe quedar distinto de cero. Un saldo
// negativo no es error: el conteo físico puede ir por detrás del papel hasta
// que una inventarización lo corrija.
func applyMovement(
	balances repository.StockBalanceRepository,
	movements repository.StockMovementRepository,
	warehouseID, itemID string,
	delta decimal.Decimal,
	docType, docID, note string,
	now time.Time,
) error {
	delta = delta.Round(quantityScale)
	if delta.IsZero() {
		return domain.ErrInvalidQuantity
	}

	// Bloquea la fila del saldo (SELECT FOR UPDATE); si no existe aún,
	// el repositorio devuelve saldo cero y el Upsert la crea.
	balance, err := balances.GetForUpdate(itemID, warehouseID)
	if err != nil {
		return err
	}
	balance.Quantity = balance.Quantity.Add(delta)
	balance.UpdatedAt = now
	if err := balances.Upsert(balance); err != nil {
		return err
	}

	return movements.Create(&entity.StockMovement{
		ID:          uuid.New().String(),
		CreatedAt:   now,
		DocType:     docType,
		DocID:       docID,
		ItemID:      itemID,
		WarehouseID: warehouseID,
		Delta:       delta,
		Note:        note,
	})
}
