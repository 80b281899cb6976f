package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-crm/internal/application/analytics"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del tablero con un repositorio en memoria. La variación porcentual se
// calcula frente al día anterior y es null cuando ayer no hay base.
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_VariacionFrenteAAyer(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		ordersToday:     12,
		ordersYesterday: 10,
		revenueToday:    dec("150000"),
		revenueYest:     dec("120000"),
	}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 12, summary.OrdersToday)
	require.NotNil(t, summary.OrdersChange)
	assert.Equal(t, 20.0, *summary.OrdersChange, "12 pedidos sobre 10 de ayer es +20%")

	assert.Equal(t, "150000", summary.RevenueToday.String())
	require.NotNil(t, summary.RevenueChange)
	assert.Equal(t, 25.0, *summary.RevenueChange, "150000 sobre 120000 es +25%")
}

func TestGetSummary_SinBaseDeAyerLaVariacionEsNull(t *testing.T) {
	repo := &fakeAnalyticsRepo{ordersToday: 5, revenueToday: dec("40000")}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary()
	require.NoError(t, err)

	assert.Nil(t, summary.OrdersChange, "ayer sin pedidos no tiene base de comparación")
	assert.Nil(t, summary.RevenueChange)
}

func TestGetSummary_VariacionNegativaYRedondeo(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		ordersToday:     2,
		ordersYesterday: 3,
		revenueToday:    dec("1000"),
		revenueYest:     dec("3000"),
	}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary()
	require.NoError(t, err)

	require.NotNil(t, summary.OrdersChange)
	assert.Equal(t, -33.3, *summary.OrdersChange, "la variación se redondea a un decimal")
	require.NotNil(t, summary.RevenueChange)
	assert.Equal(t, -66.7, *summary.RevenueChange)
}

func TestGetSummary_ContadoresYUltimosPedidos(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		openOrders:      3,
		pendingDelivery: 2,
		latestOrders: []*entity.Order{
			{ID: "o-2", Status: entity.OrderStatusPaid, Total: dec("20000"), CreatedAt: time.Now()},
			{ID: "o-1", Status: entity.OrderStatusOpen, Total: dec("5000"), CreatedAt: time.Now().Add(-time.Hour)},
		},
		latestDeliveries: []*entity.DeliveryOrder{
			{ID: "d-1", Status: entity.DeliveryStatusNew, Total: dec("30000"), CreatedAt: time.Now()},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 3, summary.OpenOrders)
	assert.Equal(t, 2, summary.PendingDelivery)
	require.Len(t, summary.LatestOrders, 2)
	assert.Equal(t, "o-2", summary.LatestOrders[0].ID, "los más recientes van primero")
	require.Len(t, summary.LatestDeliveries, 1)
	assert.Equal(t, "d-1", summary.LatestDeliveries[0].ID)

	assert.Equal(t, 5, repo.latestLimit, "los widgets piden cinco filas")
}

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	ordersToday     int
	ordersYesterday int
	revenueToday    decimal.Decimal
	revenueYest     decimal.Decimal
	openOrders      int
	pendingDelivery int

	latestOrders     []*entity.Order
	latestDeliveries []*entity.DeliveryOrder
	latestLimit      int
}

// isToday distingue el rango de hoy del de ayer: el rango de hoy termina en
// el futuro, el de ayer termina hoy a las 00:00.
func isToday(to time.Time) bool { return to.After(time.Now()) }

func (r *fakeAnalyticsRepo) CountOrders(from, to time.Time) (int, error) {
	if isToday(to) {
		return r.ordersToday, nil
	}
	return r.ordersYesterday, nil
}

func (r *fakeAnalyticsRepo) PaidRevenue(from, to time.Time) (decimal.Decimal, error) {
	if isToday(to) {
		return r.revenueToday, nil
	}
	return r.revenueYest, nil
}

func (r *fakeAnalyticsRepo) CountOrdersByStatus(status string) (int, error) {
	return r.openOrders, nil
}

func (r *fakeAnalyticsRepo) CountActiveDeliveries() (int, error) {
	return r.pendingDelivery, nil
}

func (r *fakeAnalyticsRepo) LatestOrders(limit int) ([]*entity.Order, error) {
	r.latestLimit = limit
	return r.latestOrders, nil
}

func (r *fakeAnalyticsRepo) LatestDeliveries(limit int) ([]*entity.DeliveryOrder, error) {
	return r.latestDeliveries, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
