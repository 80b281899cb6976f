// Package policy centraliza la autorización por rol: una única función de
// evaluación (rol, acción) -> permitir/denegar, consultada por el middleware
// antes de cada operación que cambia estado.
package policy

// Acciones autorizables. Cada handler que muta estado declara la suya.
const (
	ActionManageCatalog   = "catalog.manage"   // productos, categorías, modificadores
	ActionManageStock     = "stock.manage"     // insumos, bodegas, proveedores
	ActionPostDocuments   = "documents.post"   // proveer documentos de inventario
	ActionEditDocuments   = "documents.edit"   // borradores de documentos
	ActionRegisterMoves   = "stock.move"       // movimientos manuales
	ActionManageOrders    = "orders.manage"    // POS: abrir, editar, cobrar
	ActionManageDelivery  = "delivery.manage"  // pedidos de entrega del CRM
	ActionManageCustomers = "customers.manage" // clientes y fidelización
	ActionManageEmployees = "employees.manage" // empleados y turnos
	ActionManageUsers     = "users.manage"     // cuentas y roles
	ActionViewDashboard   = "dashboard.view"   // tablero operativo del CRM
)

// Roles del sistema. "user" es el cliente del portal público y no tiene
// ninguna acción de back-office.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleWaiter    = "waiter"
	RoleWarehouse = "warehouse"
	RoleUser      = "user"
)

var grants = map[string]map[string]bool{
	RoleAdmin: {
		ActionManageCatalog:   true,
		ActionManageStock:     true,
		ActionPostDocuments:   true,
		ActionEditDocuments:   true,
		ActionRegisterMoves:   true,
		ActionManageOrders:    true,
		ActionManageDelivery:  true,
		ActionManageCustomers: true,
		ActionManageEmployees: true,
		ActionManageUsers:     true,
		ActionViewDashboard:   true,
	},
	RoleManager: {
		ActionManageCatalog:   true,
		ActionManageStock:     true,
		ActionPostDocuments:   true,
		ActionEditDocuments:   true,
		ActionRegisterMoves:   true,
		ActionManageOrders:    true,
		ActionManageDelivery:  true,
		ActionManageCustomers: true,
		ActionManageEmployees: true,
		ActionViewDashboard:   true,
	},
	RoleWaiter: {
		ActionManageOrders:   true,
		ActionManageDelivery: true,
	},
	RoleWarehouse: {
		ActionManageStock:   true,
		ActionEditDocuments: true,
		ActionPostDocuments: true,
		ActionRegisterMoves: true,
	},
}

// Allow evalúa si el rol puede ejecutar la acción. Roles o acciones
// desconocidos se deniegan.
func Allow(role, action string) bool {
	perms, ok := grants[role]
	if !ok {
		return false
	}
	return perms[action]
}
