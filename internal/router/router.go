package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shopkart/internal/auth"
	"shopkart/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
) {
	// The Express predecessor answered both /api/users and /api/users/.
	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, "<h2>Welcome to Online Shopping Application Backend</h2>")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Private routes read the access token from the x-auth-token header.
	gate := auth.Middleware(jwtService)

	api := e.Group("/api")

	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("", userHandler.Me, gate)
	users.POST("/address", userHandler.UpdateAddress, gate)

	products := api.Group("/products")
	products.POST("/upload", productHandler.Upload, gate)
	products.GET("/men", productHandler.ListMen)
	products.GET("/women", productHandler.ListWomen)
	products.GET("/kids", productHandler.ListKids)
	products.GET("/:product_id", productHandler.Get)

	orders := api.Group("/orders", gate)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)

	payments := api.Group("/payments", gate)
	payments.POST("", paymentHandler.Create)
	payments.GET("", paymentHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
