package main

import (
	"context"
	"errors"
	"imageGallery/internal/config"
	"imageGallery/internal/http-server/router"
	"imageGallery/internal/kafka/consumer"
	"imageGallery/internal/kafka/producer"
	"imageGallery/internal/lib/logger/handlers/slogpretty"
	"imageGallery/internal/lib/logger/sl"
	"imageGallery/internal/lib/ratelimit"
	"imageGallery/internal/lib/upload"
	"imageGallery/internal/models"
	"imageGallery/internal/processor"
	"imageGallery/internal/storage/disk"
	"imageGallery/internal/storage/nop"
	"imageGallery/internal/storage/postgres"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type journal interface {
	RecordUpload(ctx context.Context, upload models.Upload) error
	UpdateUploadStatus(ctx context.Context, filename string, status string, thumbnailPath string) error
}

// @title        Image Gallery API
// @version      1.0
// @description  Upload images and browse the gallery.
// @BasePath     /
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting image gallery", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	images, err := disk.New(cfg.Storage.UploadDir)
	if err != nil {
		log.Error("failed to init upload storage", sl.Err(err))
		os.Exit(1)
	}

	limiter := ratelimit.New(cfg.RateLimit.Max, cfg.RateLimit.Window)
	limiter.StartCleanup(ctx, cfg.RateLimit.CleanupInterval)

	var (
		uploads   journal = nop.Journal{}
		closers   []namedCloser
		publisher producer.ProducerIface = producer.Nop{}
		thumbDir  string
	)

	if cfg.Database.Enabled {
		storage, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			log.Error("failed to init upload journal", sl.Err(err))
			os.Exit(1)
		}

		uploads = storage
		closers = append(closers, namedCloser{"postgres", storage})
		log.Info("upload journal enabled", slog.String("db", cfg.Database.DBName))
	}

	if cfg.Kafka.Enabled {
		kafkaProducer, err := producer.NewProducer(&cfg.Kafka, log)
		if err != nil {
			log.Error("failed to create kafka producer", sl.Err(err))
			os.Exit(1)
		}

		kafkaConsumer, err := consumer.NewConsumer(&cfg.Kafka, log)
		if err != nil {
			log.Error("failed to create kafka consumer", sl.Err(err))
			os.Exit(1)
		}

		thumbnailer, err := processor.NewImageProcessor(log, images.Dir(), cfg.Storage.ThumbnailDir, uploads)
		if err != nil {
			log.Error("failed to create image processor", sl.Err(err))
			os.Exit(1)
		}

		go kafkaConsumer.ReadMessages(ctx, thumbnailer.ProcessMessage)

		publisher = kafkaProducer
		thumbDir = cfg.Storage.ThumbnailDir
		closers = append(closers, namedCloser{"kafka producer", kafkaProducer}, namedCloser{"kafka consumer", kafkaConsumer})
		log.Info("upload events enabled", slog.String("topic", cfg.Kafka.Topic))
	}

	handler := router.New(router.Options{
		Log:          log,
		Images:       images,
		Validator:    upload.New(cfg.Upload.MaxSize, cfg.Upload.AllowedTypes),
		Limiter:      limiter,
		Journal:      uploads,
		Producer:     publisher,
		PublicDir:    cfg.Storage.PublicDir,
		ThumbnailDir: thumbDir,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("address", srv.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sign := <-stop:
		log.Info("application stopping", slog.String("signal", sign.String()))
	case err := <-serverErr:
		log.Error("failed to start server", sl.Err(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", sl.Err(err))
	}

	cancel()

	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.Error("failed to close "+c.name, sl.Err(err))
			continue
		}

		log.Info(c.name + " closed")
	}

	log.Info("application stopped")
}

type namedCloser struct {
	name string
	io.Closer
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
