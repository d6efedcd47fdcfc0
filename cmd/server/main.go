package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/fadilmartias/mock-interview/internal/config"
	"github.com/fadilmartias/mock-interview/internal/database"
	"github.com/fadilmartias/mock-interview/internal/domain/fiber/handler"
	"github.com/fadilmartias/mock-interview/internal/metrics"
	"github.com/fadilmartias/mock-interview/internal/middleware"
	"github.com/fadilmartias/mock-interview/internal/repository"
	"github.com/fadilmartias/mock-interview/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	ledgerConfig := config.LoadLedgerConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
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
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := database.MustOpen(config.LoadDBConfig(), appConfig.IsProduction())

	tokenRepo := repository.NewTokenAccountRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	tokenUC := usecase.NewTokenUsecase(tokenRepo, metrics.NewLedger(), ledgerConfig.DefaultBalance)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, feedbackRepo)

	seedAccounts(tokenUC, ledgerConfig.SeedFile)

	handler.NewTokenHandler(tokenUC, !appConfig.IsProduction()).RegisterRoutes(app)
	handler.NewInterviewHandler(interviewUC, tokenUC, config.LoadAuthConfig().JWTSecret).RegisterRoutes(app)

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

func seedAccounts(uc *usecase.TokenUsecase, path string) {
	seeds, err := config.LoadTokenSeeds(path)
	if err != nil {
		log.Fatalf("Could not load token seeds: %v", err)
	}
	if len(seeds.Accounts) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	created, err := uc.ApplySeeds(ctx, seeds.Accounts)
	if err != nil {
		log.Fatalf("Could not apply token seeds: %v", err)
	}
	log.Printf("Seeded %d of %d token accounts from %s", created, len(seeds.Accounts), path)
}
