package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/davidmorac/asadero-pos/docs"
	"github.com/davidmorac/asadero-pos/internal/adapter/api/controller"
	"github.com/davidmorac/asadero-pos/internal/adapter/api/route"
	"github.com/davidmorac/asadero-pos/internal/adapter/repository"
	"github.com/davidmorac/asadero-pos/internal/infrastructure/database"
	"github.com/davidmorac/asadero-pos/internal/service"
	"github.com/davidmorac/asadero-pos/pkg/auth"
	"github.com/davidmorac/asadero-pos/pkg/logger"
)

// App representa la aplicación y sus dependencias
type App struct {
	router *gin.Engine
	pool   *pgxpool.Pool
	logger logger.Logger
}

// NewApp crea la aplicación: conecta la base de datos, aplica las
// migraciones pendientes, carga los datos iniciales y arma el router
func NewApp() (*App, error) {
	l := logger.NewLogger()

	// Los montos se serializan como números JSON, no como cadenas
	decimal.MarshalJSONWithoutQuotes = true

	// Los cuerpos con campos desconocidos se rechazan con 400
	binding.EnableDecoderDisallowUnknownFields = true

	pool, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	if err := database.RunMigrations(migrationsPath); err != nil {
		pool.Close()
		return nil, err
	}

	// Repositorios
	productRepo := repository.NewProductRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Datos iniciales
	seeder := database.NewSeeder(productRepo, customerRepo, userRepo, l)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seeder.Run(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	// Servicios
	saleService := service.NewSaleService(saleRepo, customerRepo, productRepo)

	jwtService, err := auth.NewJWTService()
	if err != nil {
		pool.Close()
		return nil, err
	}

	// Controllers
	authController := controller.NewAuthController(userRepo, jwtService, l)
	productController := controller.NewProductController(productRepo, l)
	customerController := controller.NewCustomerController(customerRepo, l)
	saleController := controller.NewSaleController(saleService, l)
	expenseController := controller.NewExpenseController(expenseRepo, l)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	route.SetupAuthRoutes(api, authController)

	// Todo lo demás exige un token válido
	protected := api.Group("")
	protected.Use(auth.JWTAuthMiddleware())
	route.SetupProductRoutes(protected, productController)
	route.SetupCustomerRoutes(protected, customerController)
	route.SetupSaleRoutes(protected, saleController)
	route.SetupExpenseRoutes(protected, expenseController)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &App{
		router: router,
		pool:   pool,
		logger: l,
	}, nil
}

// Start inicia el servidor HTTP en el puerto configurado
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera los recursos de la aplicación
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
