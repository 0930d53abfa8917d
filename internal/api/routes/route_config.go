package routes

import (
	"bestbefore-backend/internal/api/handlers"
	"bestbefore-backend/internal/middleware"
	"bestbefore-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	InventoryHandler  handlers.InventoryHandler
	AdviceHandler     handlers.AdviceHandler
	ReconcileHandler  handlers.ReconcileHandler
	DetectionHandler  handlers.DetectionHandler
	CalendarHandler   handlers.CalendarHandler
	FoodBankHandler   handlers.FoodBankHandler
	SecondLifeHandler handlers.SecondLifeHandler
	GroceryHandler    handlers.GroceryHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Inventory()
	c.StorageAdvice()
	c.Reconcile()
	c.Detection()
	c.Calendar()
	c.FoodBanks()
	c.SecondLife()
	c.Grocery()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))

	inventory.Post("", c.InventoryHandler.AddItem)
	inventory.Get("", c.InventoryHandler.GetItems)
	inventory.Patch("/:id", c.InventoryHandler.UpdateItem)
	inventory.Delete("/clear", c.InventoryHandler.ClearAll)
	inventory.Delete("/:id", c.InventoryHandler.DeleteItem)
	inventory.Post("/reminders", c.InventoryHandler.SendReminders)
}

func (c *Config) StorageAdvice() {
	storage := c.App.Group("/api/v1/storage")

	storage.Get("/food-types", c.AdviceHandler.GetFoodTypes)
	storage.Post("/advice", c.AdviceHandler.GetStorageAdvice)
}

func (c *Config) Reconcile() {
	reconcile := c.App.Group("/api/v1/reconcile", c.Middleware.AuthMiddleware(c.JWTService))

	reconcile.Get("/buckets", c.ReconcileHandler.GetBuckets)
	reconcile.Post("/items", c.ReconcileHandler.AddItem)
	reconcile.Post("/decisions", c.ReconcileHandler.ResolveDecision)
	reconcile.Patch("/items/:id", c.ReconcileHandler.EditItem)
	reconcile.Delete("/items/:id", c.ReconcileHandler.DeleteItem)
	reconcile.Post("/items/:id/move", c.ReconcileHandler.MoveItem)
}

func (c *Config) Detection() {
	c.App.Post(
		"/api/v1/detect-produce",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.DetectionHandler.DetectProduce,
	)
}

func (c *Config) Calendar() {
	calendar := c.App.Group("/api/v1/calendar")

	calendar.Post("/generate", c.CalendarHandler.GenerateCalendar)
	calendar.Get("/:id/download", c.CalendarHandler.DownloadCalendar)
	calendar.Get("", c.CalendarHandler.ListCalendars)
}

func (c *Config) FoodBanks() {
	foodBanks := c.App.Group("/api/v1/food-banks")

	foodBanks.Get("", c.FoodBankHandler.GetFoodBanks)
	foodBanks.Post("/nearby", c.FoodBankHandler.GetNearby)
	foodBanks.Get("/:id", c.FoodBankHandler.GetFoodBank)
}

func (c *Config) SecondLife() {
	secondLife := c.App.Group("/api/v1/second-life")

	secondLife.Get("", c.SecondLifeHandler.GetItems)
	secondLife.Get("/:id", c.SecondLifeHandler.GetItem)
}

func (c *Config) Grocery() {
	c.App.Post("/api/v1/grocery/generate", c.GroceryHandler.GenerateList)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
