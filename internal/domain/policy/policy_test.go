package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/resto-crm/internal/domain/policy"
)

func TestAllow_AdminTieneTodasLasAcciones(t *testing.T) {
	actions := []string{
		policy.ActionManageCatalog,
		policy.ActionManageStock,
		policy.ActionPostDocuments,
		policy.ActionEditDocuments,
		policy.ActionRegisterMoves,
		policy.ActionManageOrders,
		policy.ActionManageDelivery,
		policy.ActionManageCustomers,
		policy.ActionManageEmployees,
		policy.ActionManageUsers,
		policy.ActionViewDashboard,
	}
	for _, action := range actions {
		assert.True(t, policy.Allow(policy.RoleAdmin, action),
			"admin debe tener la acción %s", action)
	}
}

func TestAllow_ManagerNoGestionaCuentas(t *testing.T) {
	assert.True(t, policy.Allow(policy.RoleManager, policy.ActionManageEmployees))
	assert.True(t, policy.Allow(policy.RoleManager, policy.ActionViewDashboard))
	assert.False(t, policy.Allow(policy.RoleManager, policy.ActionManageUsers),
		"solo admin gestiona cuentas y roles")
}

func TestAllow_MeseroSoloOperaVentas(t *testing.T) {
	assert.True(t, policy.Allow(policy.RoleWaiter, policy.ActionManageOrders))
	assert.True(t, policy.Allow(policy.RoleWaiter, policy.ActionManageDelivery))

	assert.False(t, policy.Allow(policy.RoleWaiter, policy.ActionManageStock))
	assert.False(t, policy.Allow(policy.RoleWaiter, policy.ActionPostDocuments))
	assert.False(t, policy.Allow(policy.RoleWaiter, policy.ActionManageCatalog))
	assert.False(t, policy.Allow(policy.RoleWaiter, policy.ActionViewDashboard),
		"el tablero es de admin y manager")
}

func TestAllow_BodegueroOperaInventarioCompleto(t *testing.T) {
	assert.True(t, policy.Allow(policy.RoleWarehouse, policy.ActionManageStock))
	assert.True(t, policy.Allow(policy.RoleWarehouse, policy.ActionEditDocuments))
	assert.True(t, policy.Allow(policy.RoleWarehouse, policy.ActionPostDocuments))
	assert.True(t, policy.Allow(policy.RoleWarehouse, policy.ActionRegisterMoves))

	assert.False(t, policy.Allow(policy.RoleWarehouse, policy.ActionManageOrders),
		"warehouse no opera el punto de venta")
}

func TestAllow_ClientePortalSinAcciones(t *testing.T) {
	assert.False(t, policy.Allow(policy.RoleUser, policy.ActionManageOrders))
	assert.False(t, policy.Allow(policy.RoleUser, policy.ActionManageCustomers))
}

func TestAllow_RolYAccionDesconocidosSeDeniegan(t *testing.T) {
	assert.False(t, policy.Allow("superuser", policy.ActionManageUsers))
	assert.False(t, policy.Allow(policy.RoleAdmin, "accion.inexistente"))
	assert.False(t, policy.Allow("", ""))
}
