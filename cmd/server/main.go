package main

import (
	"log"
	"net/http"

	_ "shopkart/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"shopkart/internal/auth"
	"shopkart/internal/cache"
	"shopkart/internal/config"
	"shopkart/internal/db"
	"shopkart/internal/handler"
	"shopkart/internal/model"
	"shopkart/internal/repository"
	"shopkart/internal/router"
	"shopkart/internal/service"
)

// @title Online Shopping API
// @version 1.0
// @description Online shopping backend with user accounts, product catalog, orders and payments.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, cacheClient)
	catalogService := service.NewCatalogService(productRepo, cacheClient)
	orderService := service.NewOrderService(orderRepo)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		userHandler,
		productHandler,
		orderHandler,
		paymentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
