package config

import (
	"bestbefore-backend/internal/api/handlers"
	"bestbefore-backend/internal/api/routes"
	"bestbefore-backend/internal/middleware"
	"bestbefore-backend/internal/utils"
	"bestbefore-backend/internal/utils/anthropic"
	"bestbefore-backend/internal/utils/storage"
	"bestbefore-backend/pkg/advice"
	"bestbefore-backend/pkg/calendar"
	"bestbefore-backend/pkg/detection"
	"bestbefore-backend/pkg/foodbank"
	"bestbefore-backend/pkg/grocery"
	"bestbefore-backend/pkg/inventory"
	"bestbefore-backend/pkg/jwt"
	"bestbefore-backend/pkg/reconcile"
	"bestbefore-backend/pkg/secondlife"
	"bestbefore-backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         20 * 1024 * 1024, // base64 camera frames
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	claude := anthropic.NewClient()

	// Repository
	userRepository := user.NewUserRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	adviceRepository := advice.NewAdviceRepository(db)
	foodBankRepository := foodbank.NewFoodBankRepository(db)
	secondLifeRepository := secondlife.NewSecondLifeRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	inventoryService := inventory.NewInventoryService(inventoryRepository, userRepository)
	adviceService := advice.NewAdviceService(adviceRepository, claude)
	reconcileService := reconcile.NewReconcileService(inventoryService, adviceService)
	detectionService := detection.NewDetectionService(claude, adviceService, inventoryService, s3)
	calendarService := calendar.NewCalendarService()
	foodBankService := foodbank.NewFoodBankService(foodBankRepository)
	secondLifeService := secondlife.NewSecondLifeService(secondLifeRepository)
	groceryService := grocery.NewGroceryService(groceryRepository, claude)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	adviceHandler := handlers.NewAdviceHandler(adviceService, validator)
	reconcileHandler := handlers.NewReconcileHandler(reconcileService, validator)
	detectionHandler := handlers.NewDetectionHandler(detectionService, validator)
	calendarHandler := handlers.NewCalendarHandler(calendarService, validator)
	foodBankHandler := handlers.NewFoodBankHandler(foodBankService, validator)
	secondLifeHandler := handlers.NewSecondLifeHandler(secondLifeService)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		InventoryHandler:  inventoryHandler,
		AdviceHandler:     adviceHandler,
		ReconcileHandler:  reconcileHandler,
		DetectionHandler:  detectionHandler,
		CalendarHandler:   calendarHandler,
		FoodBankHandler:   foodBankHandler,
		SecondLifeHandler: secondLifeHandler,
		GroceryHandler:    groceryHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
