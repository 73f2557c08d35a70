package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/jos3lo89/ice-pos-server/constants"
	"github.com/jos3lo89/ice-pos-server/handler"
	"github.com/jos3lo89/ice-pos-server/middleware"
	"github.com/jos3lo89/ice-pos-server/validate"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", middleware.Protected(), handler.Logout)

	users := v1.Group("/users", middleware.Protected())
	users.Get("/profile", handler.GetProfile)
	users.Get("/", middleware.RequireRole(constants.ROLE_ADMIN), handler.GetUsers)
	users.Post("/", middleware.RequireRole(constants.ROLE_ADMIN), validate.CreateUser(), handler.CreateUser)
	users.Patch("/:userId/state", middleware.RequireRole(constants.ROLE_ADMIN), validate.GetById("userId"), validate.ChangeUserState(), handler.ChangeUserState)

	floors := v1.Group("/floors", middleware.Protected())
	floors.Post("/", middleware.RequireRole(constants.ROLE_ADMIN), validate.CreateFloor(), handler.CreateFloor)
	floors.Get("/", handler.GetFloors)
	floors.Get("/all", handler.GetAllFloors)
	floors.Get("/tables", handler.GetFloorsWithTables)

	tables := v1.Group("/tables", middleware.Protected())
	tables.Post("/", middleware.RequireRole(constants.ROLE_ADMIN), validate.CreateTable(), handler.CreateTable)
	tables.Get("/", handler.GetTables)
	tables.Get("/:tableId/qr", validate.GetById("tableId"), handler.GetTableQR)

	categories := v1.Group("/categories", middleware.Protected())
	categories.Get("/", handler.GetCategories)
	categories.Get("/all", handler.GetAllCategories)
	categories.Get("/products", handler.GetCategoriesWithProducts)
	categories.Post("/", middleware.RequireRole(constants.ROLE_ADMIN), validate.CreateCategory(), handler.CreateCategory)
	categories.Patch("/:categoryId/status", middleware.RequireRole(constants.ROLE_ADMIN), validate.GetById("categoryId"), validate.ToggleStatus(), handler.ToggleCategoryStatus)

	products := v1.Group("/products", middleware.Protected())
	products.Post("/", middleware.RequireRole(constants.ROLE_ADMIN), validate.CreateProduct(), handler.CreateProduct)
	products.Get("/", handler.GetProducts)
	products.Patch("/:productId/status", middleware.RequireRole(constants.ROLE_ADMIN), validate.GetById("productId"), validate.ToggleStatus(), handler.ToggleProductStatus)
	products.Post("/variants", middleware.RequireRole(constants.ROLE_ADMIN), validate.CreateVariant(), handler.CreateVariant)
	products.Get("/:productId/variants", validate.GetById("productId"), handler.GetVariants)
	products.Post("/modifiers", middleware.RequireRole(constants.ROLE_ADMIN), validate.CreateModifier(), handler.CreateModifier)
	products.Get("/:productId/modifiers", validate.GetById("productId"), handler.GetModifiers)

	orders := v1.Group("/orders", middleware.Protected())
	orders.Post("/", middleware.RequireRole(constants.ROLE_MESERO, constants.ROLE_CAJERO), validate.CreateOrder(), handler.CreateOrder)
	orders.Post("/:orderId/items", middleware.RequireRole(constants.ROLE_MESERO, constants.ROLE_CAJERO), validate.GetById("orderId"), validate.AddOrderItem(), handler.AddOrderItem)
	orders.Get("/:orderId", validate.GetById("orderId"), handler.GetOrder)
	orders.Get("/:orderId/payments", validate.GetById("orderId"), handler.GetPaymentsByOrder)
	orders.Patch("/:orderId/cancel", middleware.RequireRole(constants.ROLE_CAJERO), validate.GetById("orderId"), validate.CancelOrder(), handler.CancelOrder)

	payments := v1.Group("/payments", middleware.Protected())
	payments.Post("/", middleware.RequireRole(constants.ROLE_CAJERO), validate.CreatePayment(), handler.CreatePayment)

	sessions := v1.Group("/cash-sessions", middleware.Protected(), middleware.RequireRole(constants.ROLE_CAJERO))
	sessions.Get("/current", handler.GetCurrentSession)
	sessions.Post("/open", validate.OpenSession(), handler.OpenCashSession)
	sessions.Post("/:sessionId/close", validate.GetById("sessionId"), validate.CloseSession(), handler.CloseCashSession)
	sessions.Post("/:sessionId/transactions", validate.GetById("sessionId"), validate.CreateCashTransaction(), handler.CreateCashTransaction)
	sessions.Get("/:sessionId/transactions", validate.GetById("sessionId"), handler.GetCashTransactions)

	settings := v1.Group("/settings", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN))
	settings.Get("/:key", handler.GetSetting)
	settings.Put("/:key", validate.UpdateSetting(), handler.UpdateSetting)

	app.Get("/ws/floors/:id", websocket.New(handler.FloorBoardSocket))
}
