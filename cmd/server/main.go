package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/recruitflow/hiring-pipeline/internal/config"
	"github.com/recruitflow/hiring-pipeline/internal/domain/fiber/handler"
	"github.com/recruitflow/hiring-pipeline/internal/middleware"
	"github.com/recruitflow/hiring-pipeline/internal/model"
	"github.com/recruitflow/hiring-pipeline/internal/repository"
	"github.com/recruitflow/hiring-pipeline/internal/service"
	"github.com/recruitflow/hiring-pipeline/internal/usecase"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: config.LoadAppConfig().Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := ConnectDB()

	// The Google clients are built once here and handed to the usecases.
	// Nothing below holds them as package state.
	googleConfig := config.LoadGoogleConfig()
	driveSvc, err := service.NewDriveService(ctx, googleConfig.CredentialsFile)
	if err != nil {
		log.Fatal(err)
	}
	sheetsSvc, err := service.NewSheetsService(ctx, googleConfig.CredentialsFile)
	if err != nil {
		log.Fatal(err)
	}

	jobRepo := repository.NewJobRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	jobUC := usecase.NewJobUsecase(jobRepo, uploadRepo, driveSvc)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, jobRepo, uploadRepo, driveSvc)
	evaluationUC := usecase.NewEvaluationUsecase(evaluationRepo)
	exportUC := usecase.NewExportUsecase(sheetsSvc)

	handler.NewJobHandler(jobUC).RegisterRoutes(app)
	handler.NewCandidateHandler(candidateUC).RegisterRoutes(app)
	handler.NewEvaluationHandler(evaluationUC).RegisterRoutes(app)
	handler.NewExportHandler(exportUC).RegisterRoutes(app)
	handler.NewAuthHandler(config.LoadAuthConfig().ServiceURL).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(&model.Job{}, &model.Candidate{}, &model.Evaluation{}, &model.UploadRecord{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
