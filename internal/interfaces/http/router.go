package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-crm/internal/application/analytics"
	"github.com/tu-usuario/resto-crm/internal/application/auth"
	"github.com/tu-usuario/resto-crm/internal/application/ledger"
	"github.com/tu-usuario/resto-crm/internal/application/usecase"
	"github.com/tu-usuario/resto-crm/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	StockItemUC *usecase.StockItemUseCase
	WarehouseUC *usecase.WarehouseUseCase
	SupplierUC  *usecase.SupplierUseCase
	MovementUC  *ledger.MovementUseCase
	DocumentsUC *ledger.DocumentsUseCase
	CatalogUC   *usecase.CatalogUseCase
	OrderUC     *usecase.OrderUseCase
	DeliveryUC  *usecase.DeliveryUseCase
	CartUC      *usecase.CartUseCase
	CustomerUC  *usecase.CustomerUseCase
	JobAppUC    *usecase.JobApplicationUseCase
	ReviewUC    *usecase.ReviewUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *analytics.DashboardUseCase
	Receipts    receiptGenerator
	Photos      photoStore
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTSecret)

	// Auth (público, salvo el perfil)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Sitio público: menú, carrito por cookie, checkout, reseñas, empleo
	site := api.Group("/site")
	siteHandler := NewSiteHandler(deps.CatalogUC, deps.CartUC, deps.DeliveryUC, deps.ReviewUC, deps.JobAppUC)
	site.Get("/menu", siteHandler.Menu)
	site.Get("/cart", siteHandler.GetCart)
	site.Post("/cart/items", siteHandler.AddToCart)
	site.Put("/cart/items", siteHandler.SetCartQty)
	site.Delete("/cart/items/:productId", siteHandler.RemoveFromCart)
	site.Delete("/cart", siteHandler.ClearCart)
	site.Post("/checkout", siteHandler.Checkout)
	site.Get("/my/orders", authRequired, siteHandler.MyOrders)
	site.Post("/reviews", siteHandler.SubmitReview)
	site.Get("/reviews", siteHandler.ListReviews)
	site.Post("/jobs", siteHandler.SubmitApplication)

	// Inventario: insumos, bodegas, proveedores, saldos y movimientos
	stock := api.Group("/stock", authRequired, RequirePermission(policy.ActionManageStock))
	stockItemHandler := NewStockItemHandler(deps.StockItemUC)
	stock.Post("/items", stockItemHandler.Create)
	stock.Get("/items", stockItemHandler.List)
	stock.Get("/items/:id", stockItemHandler.GetByID)
	stock.Put("/items/:id", stockItemHandler.Update)
	stock.Delete("/items/:id", stockItemHandler.Delete)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.SupplierUC)
	stock.Post("/warehouses", warehouseHandler.CreateWarehouse)
	stock.Get("/warehouses", warehouseHandler.ListWarehouses)
	stock.Put("/warehouses/:id", warehouseHandler.RenameWarehouse)
	stock.Delete("/warehouses/:id", warehouseHandler.DeleteWarehouse)
	stock.Post("/suppliers", warehouseHandler.CreateSupplier)
	stock.Get("/suppliers", warehouseHandler.ListSuppliers)
	stock.Put("/suppliers/:id", warehouseHandler.UpdateSupplier)
	stock.Delete("/suppliers/:id", warehouseHandler.DeleteSupplier)

	movementHandler := NewMovementHandler(deps.MovementUC)
	stock.Get("/balance", movementHandler.Balance)
	stock.Get("/balances", movementHandler.Balances)
	stock.Get("/movements", movementHandler.List)
	stock.Post("/movements", RequirePermission(policy.ActionRegisterMoves), movementHandler.RegisterManual)

	// Documentos de inventario. La provisión exige un permiso adicional al de
	// edición de borradores.
	docs := api.Group("/documents", authRequired, RequirePermission(policy.ActionEditDocuments))
	canPost := RequirePermission(policy.ActionPostDocuments)
	docHandler := NewDocumentHandler(deps.DocumentsUC)

	docs.Post("/purchases", docHandler.CreatePurchase)
	docs.Get("/purchases", docHandler.ListPurchases)
	docs.Get("/purchases/:id", docHandler.GetPurchase)
	docs.Put("/purchases/:id", docHandler.UpdatePurchase)
	docs.Delete("/purchases/:id", docHandler.DeletePurchase)
	docs.Post("/purchases/:id/lines", docHandler.AddPurchaseLine)
	docs.Delete("/purchases/:id/lines/:lineId", docHandler.RemovePurchaseLine)
	docs.Post("/purchases/:id/post", canPost, docHandler.PostPurchase)

	docs.Post("/transfers", docHandler.CreateTransfer)
	docs.Get("/transfers", docHandler.ListTransfers)
	docs.Get("/transfers/:id", docHandler.GetTransfer)
	docs.Put("/transfers/:id", docHandler.UpdateTransfer)
	docs.Delete("/transfers/:id", docHandler.DeleteTransfer)
	docs.Post("/transfers/:id/lines", docHandler.AddTransferLine)
	docs.Delete("/transfers/:id/lines/:lineId", docHandler.RemoveTransferLine)
	docs.Post("/transfers/:id/post", canPost, docHandler.PostTransfer)

	docs.Post("/writeoffs", docHandler.CreateWriteOff)
	docs.Get("/writeoffs", docHandler.ListWriteOffs)
	docs.Get("/writeoffs/:id", docHandler.GetWriteOff)
	docs.Put("/writeoffs/:id", docHandler.UpdateWriteOff)
	docs.Delete("/writeoffs/:id", docHandler.DeleteWriteOff)
	docs.Post("/writeoffs/:id/lines", docHandler.AddWriteOffLine)
	docs.Delete("/writeoffs/:id/lines/:lineId", docHandler.RemoveWriteOffLine)
	docs.Post("/writeoffs/:id/post", canPost, docHandler.PostWriteOff)

	docs.Post("/inventories", docHandler.CreateInventory)
	docs.Get("/inventories", docHandler.ListInventories)
	docs.Get("/inventories/:id", docHandler.GetInventory)
	docs.Delete("/inventories/:id", docHandler.DeleteInventory)
	docs.Post("/inventories/:id/lines", docHandler.AddInventoryLine)
	docs.Put("/inventories/:id/lines/:lineId", docHandler.UpdateInventoryLine)
	docs.Delete("/inventories/:id/lines/:lineId", docHandler.RemoveInventoryLine)
	docs.Post("/inventories/:id/fill", docHandler.FillInventory)
	docs.Post("/inventories/:id/post", canPost, docHandler.PostInventory)

	// Catálogo del menú
	catalog := api.Group("/catalog", authRequired, RequirePermission(policy.ActionManageCatalog))
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Post("/categories", catalogHandler.CreateCategory)
	catalog.Get("/categories", catalogHandler.ListCategories)
	catalog.Put("/categories/:id", catalogHandler.UpdateCategory)
	catalog.Delete("/categories/:id", catalogHandler.DeleteCategory)
	catalog.Post("/products", catalogHandler.CreateProduct)
	catalog.Get("/products", catalogHandler.SearchProducts)
	catalog.Get("/products/:id", catalogHandler.GetProduct)
	catalog.Put("/products/:id", catalogHandler.UpdateProduct)
	catalog.Delete("/products/:id", catalogHandler.DeleteProduct)

	// Punto de venta
	pos := api.Group("/pos", authRequired, RequirePermission(policy.ActionManageOrders))
	orderHandler := NewOrderHandler(deps.OrderUC)
	pos.Post("/tables", orderHandler.CreateTable)
	pos.Get("/tables", orderHandler.ListTables)
	pos.Delete("/tables/:id", orderHandler.DeleteTable)
	pos.Post("/orders", orderHandler.Open)
	pos.Get("/orders", orderHandler.ListOpen)
	pos.Get("/orders/:id", orderHandler.Get)
	pos.Post("/orders/:id/items", orderHandler.AddItem)
	pos.Put("/orders/:id/items/:itemId", orderHandler.SetItemQty)
	pos.Delete("/orders/:id/items/:itemId", orderHandler.RemoveItem)
	pos.Post("/orders/:id/pay", orderHandler.Pay)
	pos.Post("/orders/:id/cancel", orderHandler.Cancel)

	// Pedidos de entrega
	delivery := api.Group("/delivery", authRequired, RequirePermission(policy.ActionManageDelivery))
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC, deps.Receipts)
	delivery.Post("/orders", deliveryHandler.Create)
	delivery.Get("/orders", deliveryHandler.List)
	delivery.Get("/orders/:id", deliveryHandler.Get)
	delivery.Put("/orders/:id", deliveryHandler.Update)
	delivery.Post("/orders/:id/status", deliveryHandler.SetStatus)
	delivery.Post("/orders/:id/courier", deliveryHandler.AssignCourier)
	delivery.Get("/orders/:id/receipt", deliveryHandler.Receipt)

	// Clientes de fidelización y solicitudes recibidas
	customers := api.Group("/customers", authRequired, RequirePermission(policy.ActionManageCustomers))
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.JobAppUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/search", customerHandler.GetByPhone)
	customers.Get("/applications", customerHandler.ListApplications)
	customers.Put("/:id", customerHandler.Update)
	customers.Post("/:id/points", customerHandler.AdjustPoints)

	// Empleados y turnos
	employees := api.Group("/employees", authRequired, RequirePermission(policy.ActionManageEmployees))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Photos)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/photo", employeeHandler.UploadPhoto)
	employees.Post("/:id/shifts", employeeHandler.AssignShift)
	employees.Get("/:id/shifts", employeeHandler.ListShifts)
	employees.Delete("/:id/shifts/:shiftId", employeeHandler.RemoveShift)

	// Tablero operativo del CRM
	dashboard := api.Group("/dashboard", authRequired, RequirePermission(policy.ActionViewDashboard))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Cuentas y roles (solo admin)
	users := api.Group("/users", authRequired, RequirePermission(policy.ActionManageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
}
