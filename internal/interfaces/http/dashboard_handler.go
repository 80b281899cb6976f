package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-crm/internal/application/analytics"
)

// DashboardHandler maneja el tablero operativo del CRM (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del día: pedidos e ingresos vs ayer, abiertos, entregas y últimos pedidos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
