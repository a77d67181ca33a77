package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autofuellanka/portal-service/internal/api/http/handlers"
	"github.com/autofuellanka/portal-service/internal/auth"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/navigation"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Navigation     *handlers.NavigationHandler
	Bookings       *handlers.BookingsHandler
	Vehicles       *handlers.VehiclesHandler
	Jobs           *handlers.JobsHandler
	Users          *handlers.UsersHandler
	Inventory      *handlers.InventoryHandler
	Billing        *handlers.BillingHandler
	Catalog        *handlers.CatalogHandler
	Feedback       *handlers.FeedbackHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Every protected route group is gated by
// the allow-list of the page it backs, so the HTTP surface and the
// navigation registry enforce the same access table.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)
	authProtected.Get("/me", cfg.Auth.Me)

	nav := app.Group("/navigation", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	nav.Get("/menu", cfg.Navigation.Menu)
	nav.Get("/pages", cfg.Navigation.Pages)
	nav.Get("/pages/:key", cfg.Navigation.CheckPage)
	nav.Post("/restore", cfg.Navigation.Restore)

	bookings := app.Group("/bookings", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	bookings.Post("", cfg.Bookings.Create)
	bookings.Get("", cfg.Bookings.List)
	bookings.Get("/:id", cfg.Bookings.Get)
	bookings.Patch("/:id/status", cfg.Bookings.ChangeStatus)

	vehicles := app.Group("/vehicles", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	vehicles.Post("", cfg.Vehicles.Create)
	vehicles.Get("", cfg.Vehicles.List)
	vehicles.Get("/:id", cfg.Vehicles.Get)
	vehicles.Put("/:id", cfg.Vehicles.Update)
	vehicles.Delete("/:id", cfg.Vehicles.Delete)

	vehicleTypes := app.Group("/vehicle-types", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	vehicleTypes.Get("", cfg.Vehicles.ListTypes)
	vehicleTypes.Post("", auth.RequirePage(navigation.PageVehicleTypes), cfg.Vehicles.CreateType)
	vehicleTypes.Put("/:id", auth.RequirePage(navigation.PageVehicleTypes), cfg.Vehicles.UpdateType)

	jobs := app.Group("/jobs", cfg.AuthMiddleware.Handle)
	jobs.Post("", auth.RequireRole(domain.RoleStaff, domain.RoleManager, domain.RoleAdmin), cfg.Jobs.Assign)
	jobs.Get("", auth.RequireRole(domain.RoleTechnician, domain.RoleStaff, domain.RoleManager, domain.RoleAdmin), cfg.Jobs.List)
	jobs.Patch("/:id/status", auth.RequireRole(domain.RoleTechnician, domain.RoleStaff, domain.RoleAdmin), cfg.Jobs.ChangeStatus)
	jobs.Get("/pending/count", auth.RequirePage(navigation.PagePendingJobs), cfg.Jobs.PendingCount)

	app.Get("/technicians", cfg.AuthMiddleware.Handle, auth.RequirePage(navigation.PageTechnicians), cfg.Users.ListTechnicians)
	app.Get("/customers", cfg.AuthMiddleware.Handle, auth.RequirePage(navigation.PageCustomers), cfg.Users.ListCustomers)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequirePage(navigation.PageUserManagement))
	users.Post("", cfg.Users.Create)
	users.Get("", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	inventory := app.Group("/inventory", cfg.AuthMiddleware.Handle, auth.RequirePage(navigation.PageInventory))
	inventory.Post("/items", cfg.Inventory.CreateItem)
	inventory.Get("/items", cfg.Inventory.ListItems)
	inventory.Get("/items/:id", cfg.Inventory.GetItem)
	inventory.Put("/items/:id", cfg.Inventory.UpdateItem)
	inventory.Post("/moves", cfg.Inventory.RecordMove)
	inventory.Get("/moves", cfg.Inventory.ListMoves)

	serviceTypes := app.Group("/service-types", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	serviceTypes.Get("", cfg.Catalog.ListServiceTypes)
	serviceTypes.Post("", auth.RequirePage(navigation.PageServiceTypes), cfg.Catalog.CreateServiceType)
	serviceTypes.Put("/:id", auth.RequirePage(navigation.PageServiceTypes), cfg.Catalog.UpdateServiceType)

	app.Get("/locations", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Catalog.ListLocations)

	invoices := app.Group("/invoices", cfg.AuthMiddleware.Handle, auth.RequirePage(navigation.PageInvoices))
	invoices.Post("", cfg.Billing.IssueInvoice)
	invoices.Get("", cfg.Billing.ListInvoices)
	invoices.Get("/:id", cfg.Billing.GetInvoice)
	invoices.Post("/:id/payments", cfg.Billing.RecordPayment)
	invoices.Get("/:id/payments", cfg.Billing.ListPayments)

	ledger := app.Group("/ledger", cfg.AuthMiddleware.Handle, auth.RequirePage(navigation.PageFinanceLedger))
	ledger.Get("", cfg.Billing.Ledger)
	ledger.Get("/balances", cfg.Billing.Balances)

	// Literal segments before :id so "recent" and friends never parse as ids.
	feedback := app.Group("/feedback", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	feedback.Post("", cfg.Feedback.Submit)
	feedback.Get("", cfg.Feedback.List)
	feedback.Get("/recent", cfg.Feedback.Recent)
	feedback.Get("/stats", cfg.Feedback.Stats)
	feedback.Get("/booking/:booking_id", cfg.Feedback.GetByBooking)
	feedback.Put("/:id", cfg.Feedback.Update)
	feedback.Delete("/:id", cfg.Feedback.Delete)

	reports := app.Group("/reports", cfg.AuthMiddleware.Handle, auth.RequirePage(navigation.PageOperationsDashboard))
	reports.Get("/summary", cfg.Reports.Summary)
	reports.Get("/inventory.csv", cfg.Reports.InventoryCSV)
	reports.Get("/customers.csv", cfg.Reports.CustomersCSV)
	reports.Get("/bookings.csv", cfg.Reports.BookingsCSV)
}
