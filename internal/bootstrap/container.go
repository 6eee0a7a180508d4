// FILE: internal/bootstrap/container.go
package bootstrap

import (
	"context"
	"log"

	"promptly-be/internal/config"
	"promptly-be/internal/controller"
	"promptly-be/internal/pkg/logger"
	"promptly-be/internal/repository/unitofwork"
	"promptly-be/internal/scheduler"
	"promptly-be/internal/service"
	"promptly-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PromptController     controller.IPromptController
	CategoryController   controller.ICategoryController
	RecycleBinController controller.IRecycleBinController
	TagController        controller.ITagController

	// Background components (exposed for main.go to run and shut down)
	CleanupScheduler *CleanupRunner
	Bus              *events.Bus
	Logger           logger.ILogger
}

// CleanupRunner wraps the scheduler with its configured cron expression so
// main.go can start it without knowing the config shape.
type CleanupRunner struct {
	scheduler *scheduler.CleanupScheduler
	schedule  string
}

func (r *CleanupRunner) Start(ctx context.Context) error {
	return r.scheduler.Start(ctx, r.schedule)
}

func (r *CleanupRunner) Stop() {
	r.scheduler.Stop()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	bus := events.NewBus(watermillLogger)

	// 3. Services
	tagService := service.NewTagService(uowFactory)
	recycleBinService := service.NewRecycleBinService(uowFactory, bus)
	promptService := service.NewPromptService(uowFactory, recycleBinService, tagService, bus)
	categoryService := service.NewCategoryService(uowFactory, bus)

	// Tag cloud invalidation worker
	if err := service.StartTagInvalidator(context.Background(), bus, tagService); err != nil {
		log.Printf("[WARN] Failed to start tag invalidator: %v", err)
	}

	// Retention sweep
	cleanupScheduler := scheduler.NewCleanupScheduler(recycleBinService, sysLogger)

	// 4. Controllers
	return &Container{
		PromptController:     controller.NewPromptController(promptService),
		CategoryController:   controller.NewCategoryController(categoryService),
		RecycleBinController: controller.NewRecycleBinController(recycleBinService),
		TagController:        controller.NewTagController(tagService),

		CleanupScheduler: &CleanupRunner{
			scheduler: cleanupScheduler,
			schedule:  cfg.RecycleBin.CleanupSchedule,
		},
		Bus:    bus,
		Logger: sysLogger,
	}
}
