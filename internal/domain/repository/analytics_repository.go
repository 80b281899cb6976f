package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// AnalyticsRepository consultas read-only para el tablero del CRM.
// Los rangos de fecha son [from, to).
type AnalyticsRepository interface {
	CountOrders(from, to time.Time) (int, error)
	// PaidRevenue suma el total de los pedidos cobrados en el rango.
	PaidRevenue(from, to time.Time) (decimal.Decimal, error)
	CountOrdersByStatus(status string) (int, error)
	// CountActiveDeliveries cuenta pedidos de entrega ni terminados ni anulados.
	CountActiveDeliveries() (int, error)
	// LatestOrders y LatestDeliveries devuelven encabezados sin líneas,
	// los más recientes primero.
	LatestOrders(limit int) ([]*entity.Order, error)
	LatestDeliveries(limit int) ([]*entity.DeliveryOrder, error)
}
