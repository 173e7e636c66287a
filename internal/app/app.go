package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/traveleats-backend/internal/activity"
	"github.com/heartmarshall/traveleats-backend/internal/adapter/cache"
	"github.com/heartmarshall/traveleats-backend/internal/adapter/postgres"
	"github.com/heartmarshall/traveleats-backend/internal/adapter/postgres/authmethod"
	"github.com/heartmarshall/traveleats-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/traveleats-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/traveleats-backend/internal/adapter/provider/contentdb"
	"github.com/heartmarshall/traveleats-backend/internal/auth"
	"github.com/heartmarshall/traveleats-backend/internal/config"
	"github.com/heartmarshall/traveleats-backend/internal/domain"
	authsvc "github.com/heartmarshall/traveleats-backend/internal/service/auth"
	"github.com/heartmarshall/traveleats-backend/internal/service/content"
	"github.com/heartmarshall/traveleats-backend/internal/service/profile"
	"github.com/heartmarshall/traveleats-backend/internal/transport/middleware"
	"github.com/heartmarshall/traveleats-backend/internal/transport/rest"
)

// Run is the server entry point. It wires every dependency, serves HTTP
// until ctx is canceled, then shuts down in reverse dependency order:
// the listener first, then pending activity writes, then the stores.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	users := user.New(pool)
	tokens := token.New(pool)
	authMethods := authmethod.New(pool)
	txm := postgres.NewTxManager(pool)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, authMethods, txm, jwtManager, cfg.Auth)
	profileService := profile.NewService(logger, users)
	historyService := activity.NewHistoryService(users)
	recorder := activity.NewRecorder(logger, users, cfg.Activity.WriteTimeout)

	health := rest.NewHealthHandler(pool, BuildVersion())

	meals := contentdb.NewProviderWithURL(domain.ContentMeal, cfg.Content.MealBaseURL, cfg.Content.RequestTimeout, logger)
	drinks := contentdb.NewProviderWithURL(domain.ContentDrink, cfg.Content.DrinkBaseURL, cfg.Content.RequestTimeout, logger)

	var contentService *content.Service
	if cfg.Cache.Enabled() {
		contentCache := cache.NewContentCache(cfg.Cache)
		defer contentCache.Close() //nolint:errcheck
		if err := contentCache.Ping(ctx); err != nil {
			logger.Warn("content cache unreachable at startup", slog.String("error", err.Error()))
		}
		health.AddCheck("cache", contentCache)
		contentService = content.NewService(logger, meals, drinks, contentCache, cfg.Content.CacheTTL, recorder)
	} else {
		logger.Info("content cache disabled")
		contentService = content.NewService(logger, meals, drinks, nil, 0, recorder)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Profile: rest.NewProfileHandler(profileService, historyService, logger),
		Content: rest.NewContentHandler(contentService, logger),
		Health:  health,
	}, middleware.Auth(authService), limiter.Limit(cfg.RateLimit.AuthPerMinute))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(logger, cfg.Server.ShutdownTimeout, srv, recorder)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// shutdown stops accepting requests and waits for in-flight ones, then
// drains the activity writes they queued. Both share one deadline.
func shutdown(logger *slog.Logger, timeout time.Duration, srv *http.Server, recorder *activity.Recorder) error {
	logger.Info("shutting down", slog.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("app: http shutdown: %w", err))
	}
	if err := recorder.Close(ctx); err != nil {
		logger.Warn("pending activity writes abandoned", slog.String("error", err.Error()))
		errs = append(errs, fmt.Errorf("app: activity recorder: %w", err))
	}
	return errors.Join(errs...)
}
