package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "brokerage-service/internal/adapters/logger"
	"brokerage-service/internal/adapters/memory"
	"brokerage-service/internal/adapters/rest"
	"brokerage-service/internal/configs"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/usecase"
	"brokerage-service/pkg/fluentlogger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. ИНИЦИАЛИЗАЦИЯ ХРАНИЛИЩА ---
	store := memory.NewStore()
	if appConfig.LoadFixtures {
		if err := memory.LoadFixtures(store); err != nil {
			appLogger.Error("Failed to load fixtures", err, nil)
			return nil, fmt.Errorf("failed to load fixtures: %w", err)
		}
		appLogger.Info("Demo fixtures loaded into in-memory store.", nil)
	}

	clientsAdapter := memory.NewClientStorageAdapter(store)
	realtorsAdapter := memory.NewRealtorStorageAdapter(store)
	propertiesAdapter := memory.NewPropertyStorageAdapter(store)
	offersAdapter := memory.NewOfferStorageAdapter(store)
	needsAdapter := memory.NewNeedStorageAdapter(store)
	dealsAdapter := memory.NewDealStorageAdapter(store)
	eventsAdapter := memory.NewEventStorageAdapter(store)
	appLogger.Info("In-memory storage adapters initialized.", nil)

	// --- 3. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	listClientsUseCase := usecase.NewListClientsUseCase(clientsAdapter)
	getClientDetailsUseCase := usecase.NewGetClientDetailsUseCase(clientsAdapter, needsAdapter, offersAdapter)
	createClientUseCase := usecase.NewCreateClientUseCase(clientsAdapter)
	deleteClientUseCase := usecase.NewDeleteClientUseCase(clientsAdapter, needsAdapter, offersAdapter)

	listRealtorsUseCase := usecase.NewListRealtorsUseCase(realtorsAdapter)
	getRealtorDetailsUseCase := usecase.NewGetRealtorDetailsUseCase(realtorsAdapter, offersAdapter, needsAdapter, eventsAdapter)
	createRealtorUseCase := usecase.NewCreateRealtorUseCase(realtorsAdapter)
	deleteRealtorUseCase := usecase.NewDeleteRealtorUseCase(realtorsAdapter, offersAdapter, needsAdapter, eventsAdapter)

	findPropertiesUseCase := usecase.NewFindPropertiesUseCase(propertiesAdapter)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(propertiesAdapter, offersAdapter)
	createPropertyUseCase := usecase.NewCreatePropertyUseCase(propertiesAdapter)
	deletePropertyUseCase := usecase.NewDeletePropertyUseCase(propertiesAdapter, offersAdapter)

	listOffersUseCase := usecase.NewListOffersUseCase(offersAdapter, clientsAdapter, realtorsAdapter, propertiesAdapter)
	getOfferDetailsUseCase := usecase.NewGetOfferDetailsUseCase(offersAdapter, clientsAdapter, realtorsAdapter, propertiesAdapter, needsAdapter, dealsAdapter)
	createOfferUseCase := usecase.NewCreateOfferUseCase(offersAdapter, clientsAdapter, realtorsAdapter, propertiesAdapter)
	deleteOfferUseCase := usecase.NewDeleteOfferUseCase(offersAdapter, dealsAdapter)

	listNeedsUseCase := usecase.NewListNeedsUseCase(needsAdapter, clientsAdapter, realtorsAdapter)
	getNeedDetailsUseCase := usecase.NewGetNeedDetailsUseCase(needsAdapter, offersAdapter, clientsAdapter, realtorsAdapter, propertiesAdapter, dealsAdapter)
	createNeedUseCase := usecase.NewCreateNeedUseCase(needsAdapter, clientsAdapter, realtorsAdapter)
	deleteNeedUseCase := usecase.NewDeleteNeedUseCase(needsAdapter, dealsAdapter)

	listDealsUseCase := usecase.NewListDealsUseCase(dealsAdapter, needsAdapter, offersAdapter, propertiesAdapter, realtorsAdapter)
	getDealDetailsUseCase := usecase.NewGetDealDetailsUseCase(dealsAdapter, needsAdapter, offersAdapter, propertiesAdapter, realtorsAdapter, clientsAdapter)
	createDealUseCase := usecase.NewCreateDealUseCase(dealsAdapter, needsAdapter, offersAdapter)

	listEventsUseCase := usecase.NewListEventsUseCase(eventsAdapter)
	createEventUseCase := usecase.NewCreateEventUseCase(eventsAdapter, realtorsAdapter)

	searchUseCase := usecase.NewSearchUseCase(clientsAdapter, realtorsAdapter, propertiesAdapter)
	getDashboardStatsUseCase := usecase.NewGetDashboardStatsUseCase(clientsAdapter, realtorsAdapter, propertiesAdapter, offersAdapter, needsAdapter, dealsAdapter)

	appLogger.Info("All use cases initialized.", nil)

	// --- 4. REST API Server ---
	clientsHandler := rest.NewClientsHandler(listClientsUseCase, getClientDetailsUseCase, createClientUseCase, deleteClientUseCase)
	realtorsHandler := rest.NewRealtorsHandler(listRealtorsUseCase, getRealtorDetailsUseCase, createRealtorUseCase, deleteRealtorUseCase)
	propertiesHandler := rest.NewPropertiesHandler(findPropertiesUseCase, getPropertyDetailsUseCase, createPropertyUseCase, deletePropertyUseCase)
	offersHandler := rest.NewOffersHandler(listOffersUseCase, getOfferDetailsUseCase, createOfferUseCase, deleteOfferUseCase)
	needsHandler := rest.NewNeedsHandler(listNeedsUseCase, getNeedDetailsUseCase, createNeedUseCase, deleteNeedUseCase)
	dealsHandler := rest.NewDealsHandler(listDealsUseCase, getDealDetailsUseCase, createDealUseCase)
	eventsHandler := rest.NewEventsHandler(listEventsUseCase, createEventUseCase)
	searchHandler := rest.NewSearchHandler(searchUseCase, getDashboardStatsUseCase)

	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.CORSAllowedOrigins,
		clientsHandler, realtorsHandler, propertiesHandler, offersHandler,
		needsHandler, dealsHandler, eventsHandler, searchHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Пишем в stdout: fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
