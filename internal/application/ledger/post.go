package ledger

import (
	"context"
	"time"

	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// PostPurchase provee la recepción: sella el documento y suma cada línea al
// saldo de la bodega destino. Todo en una transacción.
func (uc *DocumentsUseCase) PostPurchase(ctx context.Context, id string) error {
	now := time.Now()
	return uc.txRunner.Run(ctx, func(repos TxRepos) error {
		doc, err := repos.Purchases.GetByID(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}
		if doc.Posted() {
			return domain.ErrAlreadyPosted
		}
		if len(doc.Lines) == 0 {
			return domain.ErrInvalidInput
		}
		ok, err := repos.Purchases.MarkPosted(id)
		if err != nil {
			return err
		}
		if !ok {
			// Otra transacción lo proveyó entre el SELECT y el UPDATE.
			return domain.ErrAlreadyPosted
		}
		for _, line := range doc.Lines {
			err := applyMovement(repos.Balances, repos.Movements,
				doc.WarehouseID, line.ItemID, line.Qty,
				entity.DocTypePurchase, doc.ID, "Recepción de compra", now)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// PostTransfer provee el traslado: por cada línea genera dos movimientos con
// el mismo documento origen, salida de la bodega origen y entrada a la destino.
func (uc *DocumentsUseCase) PostTransfer(ctx context.Context, id string) error {
	now := time.Now()
	return uc.txRunner.Run(ctx, func(repos TxRepos) error {
		doc, err := repos.Transfers.GetByID(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}
		if doc.Posted() {
			return domain.ErrAlreadyPosted
		}
		if len(doc.Lines) == 0 {
			return domain.ErrInvalidInput
		}
		ok, err := repos.Transfers.MarkPosted(id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyPosted
		}
		for _, line := range doc.Lines {
			err := applyMovement(repos.Balances, repos.Movements,
				doc.FromWarehouseID, line.ItemID, line.Qty.Neg(),
				entity.DocTypeTransfer, doc.ID, "Traslado: salida", now)
			if err != nil {
				return err
			}
			err = applyMovement(repos.Balances, repos.Movements,
				doc.ToWarehouseID, line.ItemID, line.Qty,
				entity.DocTypeTransfer, doc.ID, "Traslado: entrada", now)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// PostWriteOff provee la baja: resta cada línea del saldo de la bodega.
func (uc *DocumentsUseCase) PostWriteOff(ctx context.Context, id string) error {
	now := time.Now()
	return uc.txRunner.Run(ctx, func(repos TxRepos) error {
		doc, err := repos.WriteOffs.GetByID(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}
		if doc.Posted() {
			return domain.ErrAlreadyPosted
		}
		if len(doc.Lines) == 0 {
			return domain.ErrInvalidInput
		}
		ok, err := repos.WriteOffs.MarkPosted(id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyPosted
		}
		note := "Baja"
		if doc.Reason != "" {
			note = "Baja: " + doc.Reason
		}
		for _, line := range doc.Lines {
			err := applyMovement(repos.Balances, repos.Movements,
				doc.WarehouseID, line.ItemID, line.Qty.Neg(),
				entity.DocTypeWriteOff, doc.ID, note, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// PostInventory provee la inventarización: por cada línea calcula la
// diferencia entre el conteo físico y el saldo del libro, y registra solo las
// correcciones distintas de cero. El saldo se lee bajo bloqueo para que la
// diferencia se calcule sobre el valor que la transacción va a corregir.
func (uc *DocumentsUseCase) PostInventory(ctx context.Context, id string) error {
	now := time.Now()
	return uc.txRunner.Run(ctx, func(repos TxRepos) error {
		doc, err := repos.Inventories.GetByID(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}
		if doc.Posted() {
			return domain.ErrAlreadyPosted
		}
		if len(doc.Lines) == 0 {
			return domain.ErrInvalidInput
		}
		ok, err := repos.Inventories.MarkPosted(id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyPosted
		}
		for _, line := range doc.Lines {
			balance, err := repos.Balances.GetForUpdate(line.ItemID, doc.WarehouseID)
			if err != nil {
				return err
			}
			delta := line.CountedQty.Sub(balance.Quantity).Round(quantityScale)
			if delta.IsZero() {
				// El conteo coincide con el libro; no hay corrección.
				continue
			}
			err = applyMovement(repos.Balances, repos.Movements,
				doc.WarehouseID, line.ItemID, delta,
				entity.DocTypeInventory, doc.ID, "Corrección por inventarización", now)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
