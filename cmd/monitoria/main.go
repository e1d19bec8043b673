package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/fmcastro/monitoria/internal/app"
	"github.com/fmcastro/monitoria/internal/config"
	"github.com/fmcastro/monitoria/internal/controller"
	"github.com/fmcastro/monitoria/internal/repository"
	"github.com/fmcastro/monitoria/internal/service"
	"github.com/fmcastro/monitoria/internal/storage"
	"github.com/fmcastro/monitoria/internal/storage/idgen"
	"github.com/fmcastro/monitoria/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting monitoria",
		zap.String("environment", cfg.Environment),
		zap.String("data_dir", cfg.DataDir),
	)

	store, err := storage.New(afero.NewOsFs(), cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}

	ids := idgen.New()
	validate := validation.New()

	instructorRepo := repository.NewInstructorRepository(store, ids)
	subjectRepo := repository.NewSubjectRepository(store, ids)
	slotRepo := repository.NewSlotRepository(store, ids)
	sessionRepo := repository.NewSessionRepository(store)

	catalogService := service.NewCatalogService(instructorRepo, subjectRepo, validate, logger)
	slotService := service.NewSlotService(slotRepo, validate, logger)
	sessionService := service.NewSessionService(sessionRepo, validate, logger)

	dashboard := controller.NewDashboard(
		sessionService,
		catalogService,
		slotService,
		logger,
		os.Stdin,
		os.Stdout,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dashboard.Run(ctx); err != nil {
		logger.Fatal("Dashboard stopped", zap.Error(err))
	}

	logger.Info("Goodbye")
}
