package dto

import "github.com/shopspring/decimal"

// DashboardSummary resumen operativo del día para el tablero del CRM.
// Las variaciones son porcentaje frente al día anterior; null cuando el día
// anterior no tiene base de comparación.
type DashboardSummary struct {
	OrdersToday      int                 `json:"orders_today"`
	OrdersChange     *float64            `json:"orders_change"`
	RevenueToday     decimal.Decimal     `json:"revenue_today"`
	RevenueChange    *float64            `json:"revenue_change"`
	OpenOrders       int                 `json:"open_orders"`
	PendingDelivery  int                 `json:"pending_delivery"`
	LatestOrders     []*OrderResponse    `json:"latest_orders"`
	LatestDeliveries []*DeliveryResponse `json:"latest_deliveries"`
}
