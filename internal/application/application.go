package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/dorm-area/internal/api"
	"github.com/eugenenazirov/dorm-area/internal/calculator"
	"github.com/eugenenazirov/dorm-area/internal/comparison"
	"github.com/eugenenazirov/dorm-area/internal/config"
	"github.com/eugenenazirov/dorm-area/internal/storage"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	storage    storage.Storage
	calculator calculator.Calculator
	engine     *comparison.Engine
	handler    *api.Handler
	router     http.Handler
	logger     *zap.Logger
	server     *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	dataset, err := loadDataset(cfg.ReferenceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference dataset: %w", err)
	}

	store := storage.NewMemoryStorage()
	if err := store.SetReference(dataset.Items); err != nil {
		return nil, fmt.Errorf("failed to apply reference dataset: %w", err)
	}

	calc := calculator.New()
	engine := comparison.NewEngine(comparison.NewResolver(dataset.Mapping))
	handler := api.NewHandler(calc, store,
		api.WithDefaultMode(cfg.DefaultMode),
		api.WithEngine(engine),
		api.WithLogger(logger),
	)
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	logger.Info("reference dataset loaded",
		zap.String("source", datasetSource(cfg.ReferenceFile)),
		zap.Int("items", len(dataset.Items)),
		zap.Int("mapped_spaces", len(dataset.Mapping)),
		zap.String("default_mode", string(cfg.DefaultMode)),
	)

	return &App{
		storage:    store,
		calculator: calc,
		engine:     engine,
		handler:    handler,
		router:     apiRouter,
		logger:     logger,
		server:     NewServer(cfg, BuildRootHandler(apiRouter)),
	}, nil
}

// BuildRootHandler constructs the root HTTP handler that routes API requests and
// answers the bare root with a short service description.
func BuildRootHandler(apiHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = fmt.Fprintln(w, "Dormitory floor-area program service. See /api/health, /api/calculate and /api/compare.")
	}))
	return mux
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

func loadDataset(path string) (storage.Dataset, error) {
	if path == "" {
		return storage.DefaultDataset(), nil
	}
	return storage.LoadDataset(path)
}

func datasetSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
