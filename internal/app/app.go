// Package app wires the CampusMarket server together: configuration,
// logging, storage, services, the HTTP surface, and graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/udalba/campusmarket/internal/accounts"
	"github.com/udalba/campusmarket/internal/config"
	"github.com/udalba/campusmarket/internal/db"
	"github.com/udalba/campusmarket/internal/follows"
	"github.com/udalba/campusmarket/internal/httpapi"
	"github.com/udalba/campusmarket/internal/listings"
	"github.com/udalba/campusmarket/internal/logging"
	"github.com/udalba/campusmarket/internal/messages"
	"github.com/udalba/campusmarket/internal/photos"
	"github.com/udalba/campusmarket/internal/requests"
	"github.com/udalba/campusmarket/internal/reviews"
)

type App struct {
	config *config.Config
	logger logging.Logger

	accountService *accounts.Service
	listingService *listings.Service
	requestService *requests.Service
	messageService *messages.Service
	followService  *follows.Service
	reviewService  *reviews.Service
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	// inline photos by default; object storage when configured
	var photoStore photos.Store
	if c.PhotoBackend == "s3" {
		photoStore = photos.NewS3Store(c)
	}

	return &App{
		config:         c,
		logger:         logger,
		accountService: accounts.NewService(rm.Accounts()),
		listingService: listings.NewService(rm.Listings(), photoStore),
		requestService: requests.NewService(rm.Requests()),
		messageService: messages.NewService(rm.Messages()),
		followService:  follows.NewService(rm.Follows()),
		reviewService:  reviews.NewService(rm.Reviews()),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	secretKey := []byte(app.config.SecretKey)

	router := httpapi.NewRouter(secretKey,
		httpapi.NewAuthHandler(app.accountService, secretKey, app.config.TokenValidityDuration, app.config.EmailDomain),
		httpapi.NewListingsHandler(app.listingService),
		httpapi.NewRequestsHandler(app.requestService),
		httpapi.NewMessagesHandler(app.messageService),
		httpapi.NewSocialHandler(app.followService, app.reviewService),
	)

	server := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "http shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "http server listening", "addr", app.config.EndpointAddrHTTP)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
