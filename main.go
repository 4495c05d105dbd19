package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"train-occupancy/config"
	"train-occupancy/database"
	"train-occupancy/handlers"
	"train-occupancy/services"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)

	app := &cli.App{
		Name:  "trainctl",
		Usage: "seat and passenger queries over booked train tickets",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":" + cfg.ServerPort,
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "seed",
						Usage: "YAML fixture of trains and tickets to load before serving (STORE=memory only; use the seed command for postgres)",
					},
				},
				Action: func(c *cli.Context) error {
					if err := checkServeSeed(cfg, c.String("seed")); err != nil {
						return cli.Exit(err.Error(), 1)
					}

					repo, closeStore, err := openStore(c.Context, cfg)
					if err != nil {
						return err
					}
					defer closeStore()

					if path := c.String("seed"); path != "" {
						if err := seedFromFile(c.Context, repo, path); err != nil {
							return err
						}
					}

					return serve(c.String("listen"), cfg, repo)
				},
			},
			{
				Name:  "migrate",
				Usage: "create the database schema",
				Action: func(c *cli.Context) error {
					db, err := database.Connect(cfg)
					if err != nil {
						return err
					}
					defer db.Close()

					return database.Migrate(c.Context, db)
				},
			},
			{
				Name:      "seed",
				Usage:     "load a YAML fixture of trains and tickets into the database",
				ArgsUsage: "<fixture.yaml>",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("expected exactly one fixture path", 1)
					}

					repo, closeStore, err := openStore(c.Context, cfg)
					if err != nil {
						return err
					}
					defer closeStore()

					return seedFromFile(c.Context, repo, c.Args().First())
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("trainctl failed")
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.LogFormat != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if cfg.Debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}

// openStore returns the configured repository and a function releasing it
func openStore(ctx context.Context, cfg *config.Config) (database.Repository, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Info().Msg("Using in-memory train store")
		return database.NewMemoryStore(), func() {}, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return database.NewPostgresStore(db), func() { closeDB(db) }, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}
}

// checkServeSeed rejects seeding on serve for stores that outlive the process,
// since every restart would insert the fixture again.
func checkServeSeed(cfg *config.Config, path string) error {
	if path != "" && cfg.Store != config.StoreMemory {
		return errors.New("--seed only works with STORE=memory; load postgres once with the seed command")
	}
	return nil
}

func seedFromFile(ctx context.Context, repo database.Repository, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ids, err := database.Seed(ctx, repo, f)
	if err != nil {
		return err
	}

	log.Info().Str("file", path).Ints("trainIds", ids).Msg("Seeded trains")
	return nil
}

func serve(addr string, cfg *config.Config, repo database.Repository) error {
	handler := handlers.NewHandler(services.NewTrainService(repo))
	router := setupRouter(cfg, handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("listen", addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info().Msg("Server exited")
	return nil
}

func setupRouter(cfg *config.Config, handler *handlers.Handler) *gin.Engine {
	// Set Gin to release mode in production
	if cfg.GinMode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), handlers.RequestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	handler.Register(router)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
