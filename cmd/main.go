package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/movie-ratings/internal/facades"
	"github.com/sbilibin2017/movie-ratings/internal/handlers"
	"github.com/sbilibin2017/movie-ratings/internal/jwt"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/repositories"
	"github.com/sbilibin2017/movie-ratings/internal/services"
	"github.com/sbilibin2017/movie-ratings/migrations"

	"github.com/sbilibin2017/movie-ratings/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/movie-ratings/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parsed from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string
	seed     bool

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBrokers []string
	kafkaTopic   string

	jwtSecretKey string
	jwtExpSecond int

	tmdbAPIKey  string
	tmdbBaseURL string
	tmdbRPS     float64

	adminEmail    string
	adminPassword string

	grpcPort      string
	corsOrigins   []string
	authRateLimit int
}

// @title movie-ratings API
// @version 1.0.0
// @description Personal movie ratings with reviews, favorites and public profiles
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// splitList splits a comma separated value and drops empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, JWT, TMDB and bootstrap configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.seed, err = strconv.ParseBool(getEnv("APP_SEED", "false")); err != nil {
		return
	}

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config
	cfg.kafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "movie-events")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	// TMDB config
	cfg.tmdbAPIKey = getEnv("TMDB_API_KEY", "")
	cfg.tmdbBaseURL = getEnv("TMDB_BASE_URL", facades.DefaultTMDBBaseURL)
	if cfg.tmdbRPS, err = strconv.ParseFloat(getEnv("TMDB_RPS", "20"), 64); err != nil {
		return
	}
	if cfg.tmdbRPS <= 0 {
		err = fmt.Errorf("TMDB_RPS must be positive, got %v", cfg.tmdbRPS)
		return
	}

	// Bootstrap admin
	cfg.adminEmail = getEnv("ADMIN_EMAIL", "")
	cfg.adminPassword = getEnv("ADMIN_PASSWORD", "")

	// Edge config
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")
	cfg.corsOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"))
	if cfg.authRateLimit, err = strconv.Atoi(getEnv("AUTH_RATE_LIMIT", "10")); err != nil {
		return
	}

	return
}

// bootstrap creates the configured admin account and, when asked, the sample catalog.
func bootstrap(ctx context.Context, cfg config, seeder *services.SeedService) error {
	if cfg.adminEmail == "" || cfg.adminPassword == "" {
		if cfg.seed {
			logger.Log.Warn("APP_SEED is set but ADMIN_EMAIL/ADMIN_PASSWORD are not, skipping seed")
		}
		return nil
	}

	admin, err := seeder.EnsureAdmin(ctx, cfg.adminEmail, cfg.adminPassword)
	if err != nil {
		return fmt.Errorf("admin bootstrap failed: %w", err)
	}

	if !cfg.seed {
		return nil
	}

	n, err := seeder.SeedMovies(ctx, admin.ID)
	if err != nil {
		return fmt.Errorf("seeding movies failed: %w", err)
	}
	logger.Log.Infof("Seeded %d sample movies", n)
	return nil
}

// run initializes the logger, database, Redis, Kafka, TMDB client, and the HTTP and gRPC servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if err := migrations.Up(db.DB); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka publisher, optional
	var events services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		events = kw
		log.Infof("Publishing movie events to %s on %v", cfg.kafkaTopic, cfg.kafkaBrokers)
	} else {
		log.Info("KAFKA_BROKERS not set, movie events are disabled")
	}

	// External clients
	tmdbClient := facades.NewTMDBFacade(cfg.tmdbAPIKey,
		facades.WithTMDBBaseURL(cfg.tmdbBaseURL),
		facades.WithTMDBRateLimit(cfg.tmdbRPS),
		facades.WithTMDBBreaker(5, 30*time.Second),
	)

	// Initialize JWT service
	jwt := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	movieReadRepo := repositories.NewMovieReadRepository(db, middlewares.GetTxFromContext)
	movieWriteRepo := repositories.NewMovieWriteRepository(db, middlewares.GetTxFromContext)
	tmdbCacheRepo := repositories.NewTMDBCacheRepository(rdb, time.Minute, time.Hour)

	// Initialize services
	usernameService := services.NewUsernameService(userReadRepo, userWriteRepo)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, usernameService, jwt)
	userService := services.NewUserService(userReadRepo, userWriteRepo, movieReadRepo)
	movieService := services.NewMovieService(movieReadRepo, movieWriteRepo, events,
		services.WithAfterCommit(middlewares.AfterCommit))
	tmdbService := services.NewTMDBService(tmdbClient, tmdbCacheRepo)
	seedService := services.NewSeedService(userWriteRepo, usernameService, userWriteRepo, movieReadRepo, movieWriteRepo)

	if err := bootstrap(ctx, cfg, seedService); err != nil {
		return err
	}

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	meHandler := handlers.NewMeHandler(userService)
	updateProfileHandler := handlers.NewUpdateProfileHandler(userService)
	getUserHandler := handlers.NewGetUserHandler(userService)
	listMoviesHandler := handlers.NewListMoviesHandler(movieService)
	getMovieHandler := handlers.NewGetMovieHandler(movieService)
	createMovieHandler := handlers.NewCreateMovieHandler(movieService)
	updateMovieHandler := handlers.NewUpdateMovieHandler(movieService)
	deleteMovieHandler := handlers.NewDeleteMovieHandler(movieService)
	favoriteHandler := handlers.NewFavoriteHandler(movieService)
	generateUsernamesHandler := handlers.NewGenerateUsernamesHandler(usernameService)
	tmdbSearchHandler := handlers.NewTMDBSearchHandler(tmdbService)
	tmdbMovieHandler := handlers.NewTMDBMovieHandler(tmdbService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.CORSMiddleware(cfg.corsOrigins))

	authMiddleware := middlewares.AuthMiddleware(jwt)
	optionalAuthMiddleware := middlewares.OptionalAuthMiddleware(jwt)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api", func(r chi.Router) {
		// Credential endpoints
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(cfg.authRateLimit, time.Minute))
			handlers.RegisterRegisterHandler(r, registerHandler)
			handlers.RegisterLoginHandler(r, loginHandler)
		})

		// Public routes
		r.Get("/tmdb/search", tmdbSearchHandler)
		r.Get("/tmdb/movie/{id}", tmdbMovieHandler)

		// Routes that personalise the response for a signed-in viewer
		r.Group(func(r chi.Router) {
			r.Use(optionalAuthMiddleware)
			r.Get("/movies", listMoviesHandler)
			r.Get("/movies/{id}", getMovieHandler)
			r.Get("/users/{userId}", getUserHandler)
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/users/me", meHandler)
			r.Put("/users/profile", updateProfileHandler)
			r.Post("/movies", createMovieHandler)
			r.Delete("/movies/{id}", deleteMovieHandler)

			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)
				r.Put("/movies/{id}", updateMovieHandler)
				r.Patch("/movies/{id}/favorite", favoriteHandler)
			})

			r.With(middlewares.AdminMiddleware).Post("/generate-usernames", generateUsernamesHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// gRPC health service
	grpcLis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.appHost, cfg.grpcPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("gRPC health server listening on %s:%s", cfg.appHost, cfg.grpcPort)
		if err := grpcSrv.Serve(grpcLis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcSrv.Stop()
		return serveErr
	}

	healthSrv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()

	log.Info("Servers stopped gracefully")
	return nil
}
