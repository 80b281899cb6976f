// Package analytics contiene los casos de uso de reportes del CRM y el
// tablero operativo de la página principal del back-office.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

const dashboardLatest = 5 // filas en los widgets de "últimos pedidos"

// DashboardUseCase genera el resumen del día: pedidos e ingresos de hoy con
// variación frente a ayer, pedidos abiertos, entregas pendientes y los
// últimos pedidos de sala y de entrega.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede
// directamente a las tablas de pedidos; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummary. Las fechas se calculan en el
// servidor: hoy es [00:00, 24:00) del día local y ayer el día anterior.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummary, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24 * time.Hour)
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	// ── Métricas de hoy y de ayer en paralelo ─────────────────────────────────
	todayCh := make(chan dayMetrics, 1)
	yesterdayCh := make(chan dayMetrics, 1)

	go func() { todayCh <- uc.dayMetrics(todayStart, todayEnd) }()
	go func() { yesterdayCh <- uc.dayMetrics(yesterdayStart, todayStart) }()

	today := <-todayCh
	yesterday := <-yesterdayCh
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", today.err)
	}
	if yesterday.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de ayer: %w", yesterday.err)
	}

	// ── Contadores operativos ─────────────────────────────────────────────────
	openOrders, err := uc.analyticsRepo.CountOrdersByStatus(entity.OrderStatusOpen)
	if err != nil {
		return nil, fmt.Errorf("dashboard: pedidos abiertos: %w", err)
	}
	pendingDelivery, err := uc.analyticsRepo.CountActiveDeliveries()
	if err != nil {
		return nil, fmt.Errorf("dashboard: entregas pendientes: %w", err)
	}

	// ── Últimos pedidos ───────────────────────────────────────────────────────
	latestOrders, err := uc.analyticsRepo.LatestOrders(dashboardLatest)
	if err != nil {
		return nil, fmt.Errorf("dashboard: últimos pedidos: %w", err)
	}
	latestDeliveries, err := uc.analyticsRepo.LatestDeliveries(dashboardLatest)
	if err != nil {
		return nil, fmt.Errorf("dashboard: últimas entregas: %w", err)
	}

	summary := &dto.DashboardSummary{
		OrdersToday:      today.orders,
		OrdersChange:     percentChange(float64(today.orders), float64(yesterday.orders)),
		RevenueToday:     today.revenue,
		RevenueChange:    percentChange(today.revenue.InexactFloat64(), yesterday.revenue.InexactFloat64()),
		OpenOrders:       openOrders,
		PendingDelivery:  pendingDelivery,
		LatestOrders:     make([]*dto.OrderResponse, 0, len(latestOrders)),
		LatestDeliveries: make([]*dto.DeliveryResponse, 0, len(latestDeliveries)),
	}
	for _, order := range latestOrders {
		summary.LatestOrders = append(summary.LatestOrders, dto.NewOrderResponse(order))
	}
	for _, order := range latestDeliveries {
		summary.LatestDeliveries = append(summary.LatestDeliveries, dto.NewDeliveryResponse(order))
	}
	return summary, nil
}

// dayMetrics pedidos e ingresos cobrados de un rango [from, to).
type dayMetrics struct {
	orders  int
	revenue decimal.Decimal
	err     error
}

func (uc *DashboardUseCase) dayMetrics(from, to time.Time) (m dayMetrics) {
	m.orders, m.err = uc.analyticsRepo.CountOrders(from, to)
	if m.err != nil {
		return m
	}
	m.revenue, m.err = uc.analyticsRepo.PaidRevenue(from, to)
	return m
}

// percentChange variación porcentual frente al día anterior, redondeada a un
// decimal. Sin base de comparación (ayer en cero) devuelve nil.
func percentChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	change := math.Round((current-previous)/previous*1000) / 10
	return &change
}
