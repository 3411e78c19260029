package main

import (
	"fmt"
	"log"
	"os"

	"github.com/chloroplast/expense-server/internal/apiserver/database"
	"github.com/chloroplast/expense-server/internal/apiserver/handler"
	"github.com/chloroplast/expense-server/internal/apiserver/middleware"
	"github.com/chloroplast/expense-server/internal/auth/jwt"
	"github.com/chloroplast/expense-server/internal/common/config"
	"github.com/chloroplast/expense-server/pkg/logger"
	"github.com/chloroplast/expense-server/pkg/metrics"
	"github.com/chloroplast/expense-server/pkg/version"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "apiserver",
		Short: "Expense management API server",
		Long:  `Expense management API server providing authentication, the expense ledger and company registry`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "apiserver.yaml", "configuration file name or absolute path")
	rootCmd.AddCommand(versionCmd)
}

func run() {
	cfg, cfgPath, err := config.LoadConfig[config.APIServerConfig](configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	zapLogger.Info("Starting apiserver",
		zap.String("version", version.Get()),
		zap.String("config", cfgPath))

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize database",
			zap.String("type", cfg.Database.Type),
			zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := database.InitSuperAdmin(db, &cfg.SuperAdmin); err != nil {
		zapLogger.Fatal("Failed to seed super admin", zap.Error(err))
	}

	jwtService, err := jwt.NewService(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Duration:  cfg.JWT.Duration,
	})
	if err != nil {
		zapLogger.Fatal("Failed to initialize JWT service", zap.Error(err))
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics)
	}

	router := newRouter(db, jwtService, zapLogger, m)

	port := cfg.Server.Port
	if port == 0 {
		port = 5000
	}
	zapLogger.Info("Server listening", zap.Int("port", port))
	if err := router.Run(fmt.Sprintf(":%d", port)); err != nil {
		zapLogger.Fatal("Server terminated", zap.Error(err))
	}
}

func newRouter(db database.Database, jwtService *jwt.Service, zapLogger *zap.Logger, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(zapLogger))
	if m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	authHandler := handler.NewAuth(db, jwtService, zapLogger, m)
	adminHandler := handler.NewAdmin(db, jwtService, zapLogger, m)
	superAdminHandler := handler.NewSuperAdmin(db, jwtService, zapLogger, m)
	expenseHandler := handler.NewExpense(db, zapLogger, m)
	companyHandler := handler.NewCompany(db, zapLogger)

	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)
	router.POST("/admin/login", adminHandler.Login)
	router.POST("/superadmin/login", superAdminHandler.Login)
	router.POST("/superadmin/create",
		middleware.JWTAuthMiddleware(jwtService),
		middleware.RequireRole(string(database.RoleSuperAdmin)),
		superAdminHandler.Create)

	expenses := router.Group("/expenses")
	expenses.Use(middleware.JWTAuthMiddleware(jwtService))
	expenses.POST("", expenseHandler.Create)
	expenses.GET("", expenseHandler.List)
	expenses.GET("/summary", expenseHandler.Summary)
	expenses.DELETE("/:id", expenseHandler.Delete)
	expenses.PATCH("/:id/status", expenseHandler.UpdateStatus)

	router.POST("/companies", companyHandler.Create)
	router.GET("/companies", companyHandler.List)

	return router
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
