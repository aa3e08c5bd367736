package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/moviedeck/moviedeck/internal/facades"
	"github.com/moviedeck/moviedeck/internal/handlers"
	"github.com/moviedeck/moviedeck/internal/jwt"
	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/middlewares"
	"github.com/moviedeck/moviedeck/internal/repositories"
	"github.com/moviedeck/moviedeck/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title moviedeck API
// @version 1.0.0
// @description Backend for the moviedeck movie browsing app: catalog proxy and per-user favorites
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, databaseURL,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		tmdbBaseURL, tmdbAPIKey, logLevel,
		jwtSecret, jwtExp, cacheTTL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, databaseURL,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		tmdbBaseURL, tmdbAPIKey,
		logLevel,
		jwtSecret, jwtExp, cacheTTL,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, TMDB, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, databaseURL string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	tmdbBaseURL, tmdbAPIKey, logLevel string,
	jwtSecretKey string, jwtExpSecond int, cacheTTLSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "3000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config. DATABASE_URL wins; otherwise the URL is composed
	// from the POSTGRES_* parts.
	databaseURL = getEnv("DATABASE_URL", "")
	if databaseURL == "" {
		pgHost := getEnv("POSTGRES_HOST", "localhost")
		pgUser := getEnv("POSTGRES_USER", "user")
		pgPassword := getEnv("POSTGRES_PASSWORD", "password")
		pgDB := getEnv("POSTGRES_DB", "database")
		var pgPort int
		if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
			return
		}
		databaseURL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config. Empty address disables event publishing.
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "favorite-events")

	// TMDB config
	tmdbBaseURL = getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	tmdbAPIKey = getEnv("TMDB_API_KEY", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Cache config
	if cacheTTLSecond, err = strconv.Atoi(getEnv("MOVIE_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, databaseURL string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	tmdbBaseURL, tmdbAPIKey, logLevel string,
	jwtSecretKey string, jwtExpSecond int, cacheTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL: %s", databaseURL)
	db, err := sqlx.ConnectContext(ctx, "pgx", databaseURL)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for favorite events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer initialized for topic %s at %s", kafkaTopic, kafkaAddr)
	}

	// Initialize JWT service
	tokenSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories and the TMDB facade
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db, middlewares.GetTxFromContext)
	movieCacheRepo := repositories.NewMovieCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)
	tmdbFacade := facades.NewTMDBFacade(tmdbBaseURL, tmdbAPIKey)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenSvc)
	favoritesService := services.NewFavoritesService(favoriteReadRepo, favoriteWriteRepo, kafkaWriter)
	moviesService := services.NewMoviesService(tmdbFacade, movieCacheRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	updateUserHandler := handlers.NewUpdateUserHandler(authService, tokenSvc)
	favoritesListHandler := handlers.NewFavoritesListHandler(favoritesService, tokenSvc)
	favoriteAddHandler := handlers.NewFavoriteAddHandler(favoritesService, tokenSvc)
	favoriteRemoveHandler := handlers.NewFavoriteRemoveHandler(favoritesService, tokenSvc)
	favoriteCheckHandler := handlers.NewFavoriteCheckHandler(favoritesService, tokenSvc)
	trendingHandler := handlers.NewTrendingMoviesHandler(moviesService)
	popularHandler := handlers.NewPopularMoviesHandler(moviesService)
	topRatedHandler := handlers.NewTopRatedMoviesHandler(moviesService)
	searchHandler := handlers.NewMoviesSearchHandler(moviesService)
	detailsHandler := handlers.NewMovieDetailsHandler(moviesService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)

		r.Get("/movies/trending", trendingHandler)
		r.Get("/movies/popular", popularHandler)
		r.Get("/movies/top-rated", topRatedHandler)
		r.Get("/movies/search", searchHandler)
		r.Get("/movies/{id}", detailsHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokenSvc))

			r.Put("/auth/update", updateUserHandler)
			r.Get("/favorites", favoritesListHandler)
			r.Get("/favorites/{tmdbId}/check", favoriteCheckHandler)

			// Favorite mutations run inside a per-request transaction
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))
				r.Post("/favorites", favoriteAddHandler)
				r.Delete("/favorites/{tmdbId}", favoriteRemoveHandler)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
