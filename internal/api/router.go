package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	_ "github.com/gameronce/commerce-api/docs"
	"github.com/gameronce/commerce-api/internal/api/handler"
	"github.com/gameronce/commerce-api/internal/api/middleware"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// Dependencies carries everything the router needs, built once in main.
type Dependencies struct {
	Auth       ports.AuthService
	Tokens     ports.TokenIssuer
	Users      ports.UserService
	Admins     ports.AdminService
	Categories ports.CategoryService
	Brands     ports.BrandService
	Products   ports.ProductService
	Cart       ports.CartService
	Orders     ports.OrderService
	Addresses  ports.AddressService
	Payments   ports.PaymentService
	Reviews    ports.ReviewService
	Chat       ports.ChatService

	DB     *gorm.DB
	Redis  *redis.Client
	Mongo  *mongo.Database
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	adminHandler := handler.NewAdminHandler(deps.Admins)
	categoryHandler := handler.NewCategoryHandler(deps.Categories)
	brandHandler := handler.NewBrandHandler(deps.Brands)
	productHandler := handler.NewProductHandler(deps.Products)
	cartHandler := handler.NewCartHandler(deps.Cart)
	orderHandler := handler.NewOrderHandler(deps.Orders)
	addressHandler := handler.NewAddressHandler(deps.Addresses)
	paymentHandler := handler.NewPaymentHandler(deps.Payments)
	reviewHandler := handler.NewReviewHandler(deps.Reviews)
	chatHandler := handler.NewChatHandler(deps.Chat)

	authn := middleware.Authenticate(deps.Tokens, deps.Auth)
	admin := middleware.RequireAdmin()
	superadmin := middleware.RequireSuperAdmin()

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis, deps.Mongo)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Auth ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/login-admin", authHandler.LoginAdmin)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/register-admin", authHandler.RegisterAdmin, authn, superadmin)

	// --- Accounts ---
	usuarios := api.Group("/usuarios", authn, admin)
	usuarios.GET("", userHandler.List)
	usuarios.GET("/:id", userHandler.Get)
	usuarios.PUT("/:id", userHandler.Update)
	usuarios.DELETE("/:id", userHandler.Deactivate)

	administradores := api.Group("/administradores", authn, superadmin)
	administradores.GET("", adminHandler.List)
	administradores.GET("/:id", adminHandler.Get)
	administradores.PUT("/:id", adminHandler.Update)
	administradores.DELETE("/:id", adminHandler.Deactivate)

	// --- Catalog (public reads, admin writes) ---
	categorias := api.Group("/categorias")
	categorias.GET("", categoryHandler.List)
	categorias.GET("/:id", categoryHandler.Get)
	categorias.POST("", categoryHandler.Create, authn, admin)
	categorias.PUT("/:id", categoryHandler.Update, authn, admin)
	categorias.DELETE("/:id", categoryHandler.Deactivate, authn, admin)

	marcas := api.Group("/marcas")
	marcas.GET("", brandHandler.List)
	marcas.GET("/:id", brandHandler.Get)
	marcas.POST("", brandHandler.Create, authn, admin)
	marcas.PUT("/:id", brandHandler.Update, authn, admin)
	marcas.DELETE("/:id", brandHandler.Deactivate, authn, admin)

	productos := api.Group("/productos")
	productos.GET("", productHandler.List)
	productos.GET("/:id", productHandler.Get)
	productos.POST("", productHandler.Create, authn, admin)
	productos.PUT("/:id", productHandler.Update, authn, admin)
	productos.DELETE("/:id", productHandler.Deactivate, authn, admin)
	productos.DELETE("/:id/permanent", productHandler.DeletePermanent, authn, admin)
	productos.POST("/:id/imagen", productHandler.UploadImage, authn, admin)

	// --- Cart (storefront users) ---
	carrito := api.Group("/carrito", authn)
	carrito.GET("", cartHandler.Get)
	carrito.DELETE("", cartHandler.Clear)
	carrito.POST("/productos", cartHandler.AddProduct)
	carrito.PUT("/items/:id", cartHandler.UpdateItem)
	carrito.DELETE("/items/:id", cartHandler.RemoveItem)

	// --- Orders ---
	ordenes := api.Group("/ordenes", authn)
	ordenes.GET("", orderHandler.List, admin)
	ordenes.GET("/mis-ordenes", orderHandler.ListMine)
	ordenes.POST("", orderHandler.Create)
	ordenes.PUT("/:id/estado", orderHandler.UpdateStatus, admin)
	ordenes.DELETE("/:id", orderHandler.Delete, admin)

	detalle := api.Group("/detalle-ordenes", authn, admin)
	detalle.GET("", orderHandler.ListLines)
	detalle.GET("/:id", orderHandler.GetLine)
	detalle.POST("", orderHandler.AddLine)
	detalle.PUT("/:id", orderHandler.UpdateLine)
	detalle.DELETE("/:id", orderHandler.DeleteLine)

	// --- Addresses ---
	direcciones := api.Group("/direcciones", authn)
	direcciones.GET("", addressHandler.List)
	direcciones.GET("/:id", addressHandler.Get)
	direcciones.POST("", addressHandler.Create)
	direcciones.PUT("/:id", addressHandler.Update)
	direcciones.DELETE("/:id", addressHandler.Delete)

	// --- Payments (back office) ---
	pagos := api.Group("/pagos", authn, admin)
	pagos.GET("/:id", paymentHandler.Get)
	pagos.GET("/orden/:id", paymentHandler.ListByOrder)
	pagos.POST("", paymentHandler.Create)
	pagos.PUT("/:id/estado", paymentHandler.UpdateStatus)

	// --- Reviews ---
	opiniones := api.Group("/opiniones")
	opiniones.GET("/producto/:id", reviewHandler.ListByProduct)
	opiniones.GET("/:id", reviewHandler.Get)
	opiniones.POST("", reviewHandler.Create, authn)
	opiniones.DELETE("/:id", reviewHandler.Delete, authn)

	// --- Assistant ---
	api.POST("/chatbot/mensaje", chatHandler.Message)

	return e
}
