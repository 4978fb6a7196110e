package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/slst/slst-backend/api"
	"github.com/slst/slst-backend/infra"
	"github.com/slst/slst-backend/repositories"
	"github.com/slst/slst-backend/repositories/listsources"
	"github.com/slst/slst-backend/usecases"
	"github.com/slst/slst-backend/utils"
)

const listDownloadTimeout = 2 * time.Minute

func RunServer() error {
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "slst-backend",
		Port:                utils.GetRequiredEnv[string]("PORT"),
		MaxBatchSize:        utils.GetEnv("MAX_BATCH_SIZE", 1000),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 10)) * time.Second,
		BatchTimeout:        time.Duration(utils.GetEnv("BATCH_TIMEOUT_SECOND", 55)) * time.Second,
		ListRefreshTimeout:  time.Duration(utils.GetEnv("LIST_REFRESH_TIMEOUT_SECOND", 300)) * time.Second,
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
	}
	serverConfig := ServerConfig{
		env:                 apiConfig.Env,
		port:                apiConfig.Port,
		loggingFormat:       utils.GetEnv("LOGGING_FORMAT", "text"),
		pgConnectionString:  utils.GetEnv("PG_CONNECTION_STRING", ""),
		maxBatchSize:        apiConfig.MaxBatchSize,
		thresholds:          matchThresholdsFromEnv(),
		refreshListsOnStart: utils.GetEnv("REFRESH_LISTS_ON_START", true),
	}
	if err := serverConfig.Validate(); err != nil {
		return err
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	uc, err := buildUsecases(ctx, serverConfig)
	if err != nil {
		return err
	}

	if serverConfig.refreshListsOnStart {
		if _, err := uc.ListRefresh.RefreshLists(ctx); err != nil {
			// The server can still come up; screenings degrade to empty
			// results until a manual refresh succeeds.
			logger.ErrorContext(ctx, "initial list refresh failed", "error", err)
		}
	}

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", "port", apiConfig.Port)
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app", "error", err)
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while shutting down the server")
	}
	return nil
}

func buildUsecases(ctx context.Context, config ServerConfig) (usecases.Usecases, error) {
	var audit usecases.AuditTrail = repositories.NoopAuditRepository{}
	if config.pgConnectionString != "" {
		pool, err := infra.NewPostgresConnectionPool(ctx, config.pgConnectionString)
		if err != nil {
			return usecases.Usecases{}, errors.Wrap(err, "could not connect to postgres")
		}
		audit = repositories.NewAuditRepository(pool)
	}

	client := &http.Client{Timeout: listDownloadTimeout}

	return usecases.NewUsecases(
		config.MatchThresholds(),
		audit,
		config.maxBatchSize,
		listsources.NewOfacFetcher(client),
		listsources.NewUnFetcher(client),
	), nil
}
