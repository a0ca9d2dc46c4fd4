package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	thumbnailserver "github.com/SniffleSneeze/thumbnail-server"
	"github.com/SniffleSneeze/thumbnail-server/config"
	"github.com/SniffleSneeze/thumbnail-server/internal/application/usecase"
	domainBlob "github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/blob"
	domainBroker "github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/broker"
	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/broker"
	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/database"
	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/fsblob"
	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/minio"
	"github.com/SniffleSneeze/thumbnail-server/internal/presentation"
	"github.com/SniffleSneeze/thumbnail-server/internal/presentation/handler"
	"github.com/SniffleSneeze/thumbnail-server/pkg/logger"
	"github.com/SniffleSneeze/thumbnail-server/pkg/thumbnail"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running thumbnail-server", "version", thumbnailserver.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer db.Stop() //nolint:errcheck

	var blobs domainBlob.Store
	switch cfg.BlobBackend {
	case "minio":
		blobs, err = minio.New(cfg.MinIOClient)
	default:
		blobs, err = fsblob.New(cfg.LocalBlob)
	}
	if err != nil {
		ExitOnError(err)
	}

	var publisher domainBroker.Publisher
	if cfg.BrokerConfig.Enabled {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close() //nolint:errcheck

		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	}

	dbWriter := database.NewImageWriter(db)
	dbRetriever := database.NewImageRetriever(db)
	dbLister := database.NewImageLister(db)
	dbSearcher := database.NewImageSearcher(db)
	dbRemover := database.NewImageRemover(db)

	generator := thumbnail.New(cfg.Thumbnail)

	ingestor := usecase.NewIngestor(blobs, dbWriter, publisher, generator, cfg.Ingest.MaxUploadBytes)
	getter := usecase.NewGetter(dbRetriever, blobs)
	lister := usecase.NewLister(dbLister, cfg.Default.PublicURL)
	searcher := usecase.NewSearcher(dbSearcher, cfg.Default.PublicURL)
	deleter := usecase.NewDeleter(dbRetriever, dbRemover, blobs)

	uploadHandler := handler.NewUploadHandler(ingestor, cfg.Default.PublicURL)
	getHandler := handler.NewGetHandler(getter, cfg.Default.PublicURL)
	listHandler := handler.NewListHandler(lister)
	searchHandler := handler.NewSearchHandler(searcher)
	deleteHandler := handler.NewDeleteHandler(deleter)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.Ingest.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/images", uploadHandler.Handle)
	e.GET("/images", listHandler.HandleList)
	e.GET("/images/search", searchHandler.HandleSearch)
	e.GET(fmt.Sprintf("/images/:%s", presentation.IDParam), getHandler.HandleGetRecord)
	e.GET(fmt.Sprintf("/images/:%s/original", presentation.IDParam), getHandler.HandleGetOriginal)
	e.GET(fmt.Sprintf("/images/:%s/thumbnail", presentation.IDParam), getHandler.HandleGetThumbnail)
	e.DELETE(fmt.Sprintf("/images/:%s", presentation.IDParam), deleteHandler.HandleDelete)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Sweeper.Enabled {
		sweeper := usecase.NewSweeper(blobs, dbLister, time.Duration(cfg.Sweeper.GraceMinutes)*time.Minute)
		go runSweeper(ctx, sweeper, time.Duration(cfg.Sweeper.IntervalMinutes)*time.Minute)
	}

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}

func runSweeper(ctx context.Context, sweeper *usecase.Sweeper, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := sweeper.Sweep(ctx)
			if err != nil {
				logger.Error("orphan sweep failed", "err", err)

				continue
			}
			if removed > 0 {
				logger.Info("orphan sweep reclaimed blobs", "count", removed)
			}
		}
	}
}
