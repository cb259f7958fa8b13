package bootstrap

import (
	"context"
	"fmt"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/config"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/handler"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/logger"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type App struct {
	Echo   *echo.Echo
	Source *Source
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{Echo: e}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(logger.Config{
		FilePath: config.DefaultEnvConfig.LOG_FILE_PATH,
		Level:    config.DefaultEnvConfig.LOG_LEVEL,
		Pretty:   config.DefaultEnvConfig.LOG_PRETTY,
	})
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	sellerRule, err := domain.ParseSellerRule(config.DefaultEnvConfig.SELLER_RULE)
	if err != nil {
		return err
	}
	managerRule, err := domain.ParseManagerRule(config.DefaultEnvConfig.MANAGER_RULE)
	if err != nil {
		return err
	}

	src, err := OpenSource(ctx, config.DefaultEnvConfig.DATA_SOURCE, config.DefaultEnvConfig.DATASET_FILE,
		DatabaseConfig(), config.DefaultEnvConfig.DB_SCHEMA)
	if err != nil {
		return err
	}
	a.Source = src
	logger.InfoLog(ctx, "Reading relations from %s source", config.DefaultEnvConfig.DATA_SOURCE)

	// Initialize dependencies
	svc := service.NewAnalyticsService(src.Relations, sellerRule, managerRule)
	h := handler.NewAnalyticsHandler(svc, src.Ref)

	a.RegisterMiddlewares()
	a.RegisterRoutes(h)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(h *handler.AnalyticsHandler) {
	handler.RegisterRoutes(a.Echo, h)
}

func (a *App) Run() error {
	defer logger.Close()
	defer a.Source.Close()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
