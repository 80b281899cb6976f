package ledger_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/resto-crm/internal/application/ledger"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de inventario con repositorios en memoria. Cubren las
// garantías centrales del libro: el saldo siempre es la suma de los deltas,
// los documentos provistos quedan sellados y la doble provisión no duplica
// movimientos.
// ──────────────────────────────────────────────────────────────────────────────

func TestPostPurchase_SumaSaldoYGeneraMovimientos(t *testing.T) {
	env := newTestEnv(t)

	doc, err := env.docs.CreatePurchase(env.bodega.ID, "", time.Time{})
	require.NoError(t, err)

	_, err = env.docs.AddPurchaseLine(doc.ID, env.harina.ID, qty("10.5"), qty("3200"))
	require.NoError(t, err)
	_, err = env.docs.AddPurchaseLine(doc.ID, env.tomate.ID, qty("4"), qty("1500"))
	require.NoError(t, err)

	require.NoError(t, env.docs.PostPurchase(context.Background(), doc.ID))

	assert.Equal(t, "10.5", env.saldo(env.harina.ID, env.bodega.ID), "el saldo debe reflejar la cantidad recibida")
	assert.Equal(t, "4", env.saldo(env.tomate.ID, env.bodega.ID))

	movs := env.movements.all()
	require.Len(t, movs, 2, "una línea, un movimiento")
	for _, m := range movs {
		assert.Equal(t, entity.DocTypePurchase, m.DocType)
		assert.Equal(t, doc.ID, m.DocID)
	}

	posted, err := env.docs.GetPurchase(doc.ID)
	require.NoError(t, err)
	assert.True(t, posted.Posted(), "el documento debe quedar sellado")
}

func TestPostPurchase_DobleProvisionNoDuplica(t *testing.T) {
	env := newTestEnv(t)

	doc, err := env.docs.CreatePurchase(env.bodega.ID, "", time.Time{})
	require.NoError(t, err)
	_, err = env.docs.AddPurchaseLine(doc.ID, env.harina.ID, qty("5"), qty("1000"))
	require.NoError(t, err)

	require.NoError(t, env.docs.PostPurchase(context.Background(), doc.ID))

	err = env.docs.PostPurchase(context.Background(), doc.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyPosted, "la segunda provisión debe reportarse como ya provisto")

	assert.Equal(t, "5", env.saldo(env.harina.ID, env.bodega.ID), "el saldo no debe cambiar")
	assert.Len(t, env.movements.all(), 1, "no debe haber movimientos duplicados")
}

func TestPostPurchase_SinLineasEsInvalido(t *testing.T) {
	env := newTestEnv(t)
	doc, err := env.docs.CreatePurchase(env.bodega.ID, "", time.Time{})
	require.NoError(t, err)

	err = env.docs.PostPurchase(context.Background(), doc.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no se puede proveer un documento sin líneas")
}

func TestPostTransfer_DosMovimientosMismoDocumento(t *testing.T) {
	env := newTestEnv(t)
	env.setSaldo(env.harina.ID, env.bodega.ID, "20")

	doc, err := env.docs.CreateTransfer(env.bodega.ID, env.cocina.ID, time.Time{})
	require.NoError(t, err)
	_, err = env.docs.AddTransferLine(doc.ID, env.harina.ID, qty("7.25"))
	require.NoError(t, err)

	require.NoError(t, env.docs.PostTransfer(context.Background(), doc.ID))

	assert.Equal(t, "12.75", env.saldo(env.harina.ID, env.bodega.ID), "la bodega origen pierde la cantidad")
	assert.Equal(t, "7.25", env.saldo(env.harina.ID, env.cocina.ID), "la bodega destino la gana")

	movs := env.movements.all()
	require.Len(t, movs, 2, "un traslado genera salida y entrada")
	assert.Equal(t, movs[0].DocID, movs[1].DocID, "ambos movimientos comparten documento origen")
	assert.True(t, movs[0].Delta.Neg().Equal(movs[1].Delta), "los deltas son opuestos")
}

func TestPostWriteOff_PermiteSaldoNegativo(t *testing.T) {
	env := newTestEnv(t)
	env.setSaldo(env.tomate.ID, env.bodega.ID, "2")

	doc, err := env.docs.CreateWriteOff(env.bodega.ID, "merma", time.Time{})
	require.NoError(t, err)
	_, err = env.docs.AddWriteOffLine(doc.ID, env.tomate.ID, qty("5"))
	require.NoError(t, err)

	require.NoError(t, env.docs.PostWriteOff(context.Background(), doc.ID))

	assert.Equal(t, "-3", env.saldo(env.tomate.ID, env.bodega.ID),
		"el libro admite saldo negativo; la inventarización lo corrige después")
}

func TestPostInventory_CorrigeDiferenciasYOmiteCoincidencias(t *testing.T) {
	env := newTestEnv(t)
	env.setSaldo(env.harina.ID, env.bodega.ID, "10")
	env.setSaldo(env.tomate.ID, env.bodega.ID, "6")

	doc, err := env.docs.CreateInventory(env.bodega.ID, time.Time{})
	require.NoError(t, err)

	// harina contada igual al libro, tomate con faltante de 2.
	_, err = env.docs.AddInventoryLine(doc.ID, env.harina.ID, qty("10"))
	require.NoError(t, err)
	_, err = env.docs.AddInventoryLine(doc.ID, env.tomate.ID, qty("4"))
	require.NoError(t, err)

	require.NoError(t, env.docs.PostInventory(context.Background(), doc.ID))

	assert.Equal(t, "10", env.saldo(env.harina.ID, env.bodega.ID))
	assert.Equal(t, "4", env.saldo(env.tomate.ID, env.bodega.ID))

	movs := env.movements.all()
	require.Len(t, movs, 1, "la línea sin diferencia no genera movimiento")
	assert.Equal(t, entity.DocTypeInventory, movs[0].DocType)
	assert.Equal(t, "-2", movs[0].Delta.String(), "la corrección es conteo menos libro")
}

func TestPostInventory_ConteoCeroDescargaTodo(t *testing.T) {
	env := newTestEnv(t)
	env.setSaldo(env.harina.ID, env.bodega.ID, "8")

	doc, err := env.docs.CreateInventory(env.bodega.ID, time.Time{})
	require.NoError(t, err)
	_, err = env.docs.AddInventoryLine(doc.ID, env.harina.ID, decimal.Zero)
	require.NoError(t, err)

	require.NoError(t, env.docs.PostInventory(context.Background(), doc.ID))
	assert.Equal(t, "0", env.saldo(env.harina.ID, env.bodega.ID))
}

func TestFillInventoryFromBalances_PrecargaSaldos(t *testing.T) {
	env := newTestEnv(t)
	env.setSaldo(env.harina.ID, env.bodega.ID, "12")
	env.setSaldo(env.tomate.ID, env.bodega.ID, "3.5")

	doc, err := env.docs.CreateInventory(env.bodega.ID, time.Time{})
	require.NoError(t, err)

	filled, err := env.docs.FillInventoryFromBalances(doc.ID)
	require.NoError(t, err)
	assert.Len(t, filled.Lines, 2, "una línea por saldo existente en la bodega")
}

// ── Edición de borradores ─────────────────────────────────────────────────────

func TestDocumentoProvisto_NoSeEdita(t *testing.T) {
	env := newTestEnv(t)

	doc, err := env.docs.CreatePurchase(env.bodega.ID, "", time.Time{})
	require.NoError(t, err)
	line, err := env.docs.AddPurchaseLine(doc.ID, env.harina.ID, qty("1"), qty("100"))
	require.NoError(t, err)
	require.NoError(t, env.docs.PostPurchase(context.Background(), doc.ID))

	_, err = env.docs.AddPurchaseLine(doc.ID, env.tomate.ID, qty("1"), qty("100"))
	assert.ErrorIs(t, err, domain.ErrNotEditable, "agregar línea a un documento sellado debe fallar")

	err = env.docs.RemovePurchaseLine(doc.ID, line.ID)
	assert.ErrorIs(t, err, domain.ErrNotEditable)

	err = env.docs.DeletePurchase(doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotEditable, "un documento sellado no se borra")
}

func TestAddPurchaseLine_CantidadInvalida(t *testing.T) {
	env := newTestEnv(t)
	doc, err := env.docs.CreatePurchase(env.bodega.ID, "", time.Time{})
	require.NoError(t, err)

	_, err = env.docs.AddPurchaseLine(doc.ID, env.harina.ID, decimal.Zero, qty("100"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = env.docs.AddPurchaseLine(doc.ID, env.harina.ID, qty("-2"), qty("100"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	// 0.0004 redondea a cero en la escala del libro.
	_, err = env.docs.AddPurchaseLine(doc.ID, env.harina.ID, qty("0.0004"), qty("100"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestAddPurchaseLine_InsumoInexistente(t *testing.T) {
	env := newTestEnv(t)
	doc, err := env.docs.CreatePurchase(env.bodega.ID, "", time.Time{})
	require.NoError(t, err)

	_, err = env.docs.AddPurchaseLine(doc.ID, "no-existe", qty("1"), qty("100"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateTransfer_MismaBodegaEsInvalido(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.docs.CreateTransfer(env.bodega.ID, env.bodega.ID, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "origen y destino no pueden coincidir")
}

func TestAddInventoryLine_InsumoDuplicado(t *testing.T) {
	env := newTestEnv(t)
	doc, err := env.docs.CreateInventory(env.bodega.ID, time.Time{})
	require.NoError(t, err)

	_, err = env.docs.AddInventoryLine(doc.ID, env.harina.ID, qty("5"))
	require.NoError(t, err)
	_, err = env.docs.AddInventoryLine(doc.ID, env.harina.ID, qty("6"))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "un insumo solo puede contarse una vez por documento")
}

// ── Movimientos manuales y consultas ──────────────────────────────────────────

func TestRegisterManual_SaldoEsSumaDeDeltas(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.moves.RegisterManual(ctx, env.bodega.ID, env.harina.ID, qty("10"), "carga inicial"))
	require.NoError(t, env.moves.RegisterManual(ctx, env.bodega.ID, env.harina.ID, qty("-3.5"), "ajuste"))
	require.NoError(t, env.moves.RegisterManual(ctx, env.bodega.ID, env.harina.ID, qty("1.25"), ""))

	saldo, err := env.moves.Balance(env.harina.ID, env.bodega.ID)
	require.NoError(t, err)
	assert.Equal(t, "7.75", saldo.String(), "el saldo es la suma de todos los deltas")

	total := decimal.Zero
	for _, m := range env.movements.all() {
		total = total.Add(m.Delta)
	}
	assert.True(t, total.Equal(saldo), "libro y saldo deben coincidir siempre")
}

func TestRegisterManual_DeltaCeroEsInvalido(t *testing.T) {
	env := newTestEnv(t)
	err := env.moves.RegisterManual(context.Background(), env.bodega.ID, env.harina.ID, decimal.Zero, "nada")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestMovements_OrdenEstableDentroDeUnaProvision(t *testing.T) {
	env := newTestEnv(t)

	// Dos líneas provistas en la misma transacción comparten created_at; el
	// orden del libro lo fija la secuencia de inserción, no el reloj.
	doc, err := env.docs.CreatePurchase(env.bodega.ID, "", time.Time{})
	require.NoError(t, err)
	_, err = env.docs.AddPurchaseLine(doc.ID, env.harina.ID, qty("10"), qty("3200"))
	require.NoError(t, err)
	_, err = env.docs.AddPurchaseLine(doc.ID, env.tomate.ID, qty("4"), qty("1500"))
	require.NoError(t, err)
	require.NoError(t, env.docs.PostPurchase(context.Background(), doc.ID))

	require.NoError(t, env.moves.RegisterManual(context.Background(), env.bodega.ID, env.harina.ID, qty("-1"), "merma"))

	movs, err := env.moves.Movements(repository.MovementFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, movs, 3)

	assert.Equal(t, entity.DocTypeManual, movs[0].DocType, "lo último registrado va primero")
	assert.Equal(t, env.tomate.ID, movs[1].ItemID)
	assert.Equal(t, env.harina.ID, movs[2].ItemID)
	for i := 1; i < len(movs); i++ {
		assert.Greater(t, movs[i-1].Seq, movs[i].Seq, "la secuencia debe decrecer sin empates")
	}
}

func TestBalance_SinMovimientosEsCero(t *testing.T) {
	env := newTestEnv(t)
	saldo, err := env.moves.Balance(env.harina.ID, env.bodega.ID)
	require.NoError(t, err)
	assert.True(t, saldo.IsZero(), "un par (insumo, bodega) sin movimientos tiene saldo cero")
}

// ── helpers ───────────────────────────────────────────────────────────────────

type testEnv struct {
	docs      *ledger.DocumentsUseCase
	moves     *ledger.MovementUseCase
	balances  *fakeBalanceRepo
	movements *fakeMovementRepo

	bodega *entity.Warehouse
	cocina *entity.Warehouse
	harina *entity.StockItem
	tomate *entity.StockItem
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	balances := newFakeBalanceRepo()
	movements := &fakeMovementRepo{}
	purchases := newFakePurchaseRepo()
	transfers := newFakeTransferRepo()
	writeOffs := newFakeWriteOffRepo()
	inventories := newFakeInventoryRepo()
	items := &fakeItemRepo{items: map[string]*entity.StockItem{}}
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
	suppliers := &fakeSupplierRepo{}

	runner := &fakeTxRunner{repos: ledger.TxRepos{
		Balances:    balances,
		Movements:   movements,
		Purchases:   purchases,
		Transfers:   transfers,
		WriteOffs:   writeOffs,
		Inventories: inventories,
	}}

	env := &testEnv{
		docs:      ledger.NewDocumentsUseCase(runner, purchases, transfers, writeOffs, inventories, items, warehouses, suppliers, balances),
		moves:     ledger.NewMovementUseCase(runner, items, warehouses, balances, movements),
		balances:  balances,
		movements: movements,
		bodega:    &entity.Warehouse{ID: "wh-principal", Name: "Bodega principal"},
		cocina:    &entity.Warehouse{ID: "wh-cocina", Name: "Cocina"},
		harina:    &entity.StockItem{ID: "item-harina", Name: "Harina de trigo", Unit: "kg"},
		tomate:    &entity.StockItem{ID: "item-tomate", Name: "Tomate chonto", Unit: "kg"},
	}
	warehouses.warehouses[env.bodega.ID] = env.bodega
	warehouses.warehouses[env.cocina.ID] = env.cocina
	items.items[env.harina.ID] = env.harina
	items.items[env.tomate.ID] = env.tomate
	return env
}

func (e *testEnv) saldo(itemID, warehouseID string) string {
	balance, _ := e.balances.Get(itemID, warehouseID)
	return balance.Quantity.String()
}

func (e *testEnv) setSaldo(itemID, warehouseID, quantity string) {
	_ = e.balances.Upsert(&entity.StockBalance{
		ItemID:      itemID,
		WarehouseID: warehouseID,
		Quantity:    qty(quantity),
	})
}

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeTxRunner struct{ repos ledger.TxRepos }

func (r *fakeTxRunner) Run(_ context.Context, fn func(ledger.TxRepos) error) error {
	return fn(r.repos)
}

type fakeBalanceRepo struct {
	rows map[string]*entity.StockBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{rows: map[string]*entity.StockBalance{}}
}

func balanceKey(itemID, warehouseID string) string { return itemID + "|" + warehouseID }

func (r *fakeBalanceRepo) Get(itemID, warehouseID string) (*entity.StockBalance, error) {
	if b, ok := r.rows[balanceKey(itemID, warehouseID)]; ok {
		copied := *b
		return &copied, nil
	}
	return &entity.StockBalance{ItemID: itemID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
}

func (r *fakeBalanceRepo) GetForUpdate(itemID, warehouseID string) (*entity.StockBalance, error) {
	return r.Get(itemID, warehouseID)
}

func (r *fakeBalanceRepo) Upsert(balance *entity.StockBalance) error {
	copied := *balance
	r.rows[balanceKey(balance.ItemID, balance.WarehouseID)] = &copied
	return nil
}

func (r *fakeBalanceRepo) ListByWarehouse(warehouseID string) ([]*entity.StockBalance, error) {
	var out []*entity.StockBalance
	for _, b := range r.rows {
		if b.WarehouseID == warehouseID {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeMovementRepo struct {
	rows    []*entity.StockMovement
	lastSeq int64
}

// Create asigna seq creciente como lo hace la base con la columna BIGSERIAL.
func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.lastSeq++
	m.Seq = r.lastSeq
	copied := *m
	r.rows = append(r.rows, &copied)
	return nil
}

// List devuelve por seq descendente, igual que el adaptador de PostgreSQL.
func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	ordered := make([]*entity.StockMovement, len(r.rows))
	copy(ordered, r.rows)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Seq > ordered[j].Seq })

	var out []*entity.StockMovement
	for _, m := range ordered {
		if filter.ItemID != "" && m.ItemID != filter.ItemID {
			continue
		}
		if filter.WarehouseID != "" && m.WarehouseID != filter.WarehouseID {
			continue
		}
		if filter.DocType != "" && m.DocType != filter.DocType {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMovementRepo) all() []*entity.StockMovement { return r.rows }

type fakePurchaseRepo struct {
	docs map[string]*entity.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{docs: map[string]*entity.Purchase{}}
}

func (r *fakePurchaseRepo) Create(doc *entity.Purchase) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return r.docs[id], nil
}

func (r *fakePurchaseRepo) UpdateHeader(doc *entity.Purchase) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakePurchaseRepo) MarkPosted(id string) (bool, error) {
	doc, ok := r.docs[id]
	if !ok || doc.Status != entity.DocStatusDraft {
		return false, nil
	}
	doc.Status = entity.DocStatusPosted
	return true, nil
}

func (r *fakePurchaseRepo) AddLine(line *entity.PurchaseLine) error {
	doc := r.docs[line.PurchaseID]
	doc.Lines = append(doc.Lines, line)
	return nil
}

func (r *fakePurchaseRepo) DeleteLine(lineID string) error {
	for _, doc := range r.docs {
		for i, line := range doc.Lines {
			if line.ID == lineID {
				doc.Lines = append(doc.Lines[:i], doc.Lines[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (r *fakePurchaseRepo) Delete(id string) error {
	delete(r.docs, id)
	return nil
}

func (r *fakePurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

type fakeTransferRepo struct {
	docs map[string]*entity.Transfer
}

func newFakeTransferRepo() *fakeTransferRepo {
	return &fakeTransferRepo{docs: map[string]*entity.Transfer{}}
}

func (r *fakeTransferRepo) Create(doc *entity.Transfer) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	return r.docs[id], nil
}

func (r *fakeTransferRepo) UpdateHeader(doc *entity.Transfer) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeTransferRepo) MarkPosted(id string) (bool, error) {
	doc, ok := r.docs[id]
	if !ok || doc.Status != entity.DocStatusDraft {
		return false, nil
	}
	doc.Status = entity.DocStatusPosted
	return true, nil
}

func (r *fakeTransferRepo) AddLine(line *entity.TransferLine) error {
	doc := r.docs[line.TransferID]
	doc.Lines = append(doc.Lines, line)
	return nil
}

func (r *fakeTransferRepo) DeleteLine(lineID string) error {
	for _, doc := range r.docs {
		for i, line := range doc.Lines {
			if line.ID == lineID {
				doc.Lines = append(doc.Lines[:i], doc.Lines[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (r *fakeTransferRepo) Delete(id string) error {
	delete(r.docs, id)
	return nil
}

func (r *fakeTransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

type fakeWriteOffRepo struct {
	docs map[string]*entity.WriteOff
}

func newFakeWriteOffRepo() *fakeWriteOffRepo {
	return &fakeWriteOffRepo{docs: map[string]*entity.WriteOff{}}
}

func (r *fakeWriteOffRepo) Create(doc *entity.WriteOff) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeWriteOffRepo) GetByID(id string) (*entity.WriteOff, error) {
	return r.docs[id], nil
}

func (r *fakeWriteOffRepo) UpdateHeader(doc *entity.WriteOff) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeWriteOffRepo) MarkPosted(id string) (bool, error) {
	doc, ok := r.docs[id]
	if !ok || doc.Status != entity.DocStatusDraft {
		return false, nil
	}
	doc.Status = entity.DocStatusPosted
	return true, nil
}

func (r *fakeWriteOffRepo) AddLine(line *entity.WriteOffLine) error {
	doc := r.docs[line.WriteOffID]
	doc.Lines = append(doc.Lines, line)
	return nil
}

func (r *fakeWriteOffRepo) DeleteLine(lineID string) error {
	for _, doc := range r.docs {
		for i, line := range doc.Lines {
			if line.ID == lineID {
				doc.Lines = append(doc.Lines[:i], doc.Lines[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (r *fakeWriteOffRepo) Delete(id string) error {
	delete(r.docs, id)
	return nil
}

func (r *fakeWriteOffRepo) List(limit, offset int) ([]*entity.WriteOff, error) {
	var out []*entity.WriteOff
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

type fakeInventoryRepo struct {
	docs map[string]*entity.InventoryDoc
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{docs: map[string]*entity.InventoryDoc{}}
}

func (r *fakeInventoryRepo) Create(doc *entity.InventoryDoc) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeInventoryRepo) GetByID(id string) (*entity.InventoryDoc, error) {
	return r.docs[id], nil
}

func (r *fakeInventoryRepo) MarkPosted(id string) (bool, error) {
	doc, ok := r.docs[id]
	if !ok || doc.Status != entity.DocStatusDraft {
		return false, nil
	}
	doc.Status = entity.DocStatusPosted
	return true, nil
}

func (r *fakeInventoryRepo) AddLine(line *entity.InventoryLine) error {
	doc := r.docs[line.DocID]
	doc.Lines = append(doc.Lines, line)
	return nil
}

func (r *fakeInventoryRepo) UpdateLine(line *entity.InventoryLine) error {
	for _, doc := range r.docs {
		for i, l := range doc.Lines {
			if l.ID == line.ID {
				doc.Lines[i] = line
				return nil
			}
		}
	}
	return nil
}

func (r *fakeInventoryRepo) DeleteLine(lineID string) error {
	for _, doc := range r.docs {
		for i, line := range doc.Lines {
			if line.ID == lineID {
				doc.Lines = append(doc.Lines[:i], doc.Lines[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (r *fakeInventoryRepo) Delete(id string) error {
	delete(r.docs, id)
	return nil
}

func (r *fakeInventoryRepo) List(limit, offset int) ([]*entity.InventoryDoc, error) {
	var out []*entity.InventoryDoc
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

type fakeItemRepo struct {
	items map[string]*entity.StockItem
}

func (r *fakeItemRepo) Create(item *entity.StockItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.StockItem, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) Update(item *entity.StockItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWarehouseRepo) Delete(id string) error {
	delete(r.warehouses, id)
	return nil
}

type fakeSupplierRepo struct{}

func (r *fakeSupplierRepo) Create(*entity.Supplier) error          { return nil }
func (r *fakeSupplierRepo) GetByID(string) (*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error          { return nil }
func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error)      { return nil, nil }
func (r *fakeSupplierRepo) Delete(string) error                    { return nil }
