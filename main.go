package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Vesselcalc/internal/auth"
	"Vesselcalc/internal/calc/batch"
	"Vesselcalc/internal/calc/report"
	"Vesselcalc/internal/calc/sizing"
	"Vesselcalc/internal/calc/vessel"
	"Vesselcalc/internal/config"
	"Vesselcalc/internal/logging"
	"Vesselcalc/internal/metrics"
	"Vesselcalc/internal/repo"
	"Vesselcalc/internal/saved"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// HandleList registers every route on mux.
func HandleList(mux *mux.Router, cfg config.Config, store repo.Repository, m *metrics.Metrics, logger *log.Logger) {
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: store, Log: logger, Secure: cfg.TLS()}
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	mux.Use(m.Middleware, logging.Middleware(logger))
	mux.Handle("/metrics", m.Handler()).Methods("GET")

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	vesselH := &vessel.Handler{TablePoints: cfg.TablePoints, OnCalc: m.Calculated}
	batchH := &batch.Handler{Limit: cfg.BatchLimit, Table: *vesselH}
	sizingH := &sizing.Handler{}
	reportH := &report.Handler{}

	api.HandleFunc("/vessels/catalog", vesselH.Catalog).Methods("GET")

	tools := api.PathPrefix("/tools/vessel").Subrouter()
	tools.HandleFunc("/calc", vesselH.Calc).Methods("POST")
	tools.HandleFunc("/profile", vesselH.Profile).Methods("POST")
	tools.HandleFunc("/table", vesselH.Table).Methods("POST")
	tools.HandleFunc("/table/xlsx", batchH.TableXLSX).Methods("POST")
	tools.HandleFunc("/batch", batchH.Calc).Methods("POST")
	tools.HandleFunc("/import", batchH.Import).Methods("POST")
	tools.HandleFunc("/size", sizingH.Auto).Methods("POST")
	tools.HandleFunc("/levels", sizingH.Levels).Methods("POST")
	tools.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	savedH := &saved.Handler{Repo: store, Log: logger, OnCalc: m.Calculated}
	secureApi.HandleFunc("/vessels", savedH.List).Methods("GET")
	secureApi.HandleFunc("/vessels", savedH.Create).Methods("POST")
	secureApi.HandleFunc("/vessels/{id:[0-9]+}", savedH.Get).Methods("GET")
	secureApi.HandleFunc("/vessels/{id:[0-9]+}", savedH.Delete).Methods("DELETE")
	secureApi.HandleFunc("/vessels/{id:[0-9]+}/calc", savedH.Calc).Methods("GET")
}

// openRepository uses Postgres when a database is configured and process
// memory otherwise.
func openRepository(ctx context.Context, cfg config.Config, logger *log.Logger) (repo.Repository, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, keeping users and vessels in memory")
		return repo.NewMemory(), func() {}, nil
	}
	db, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	pg := repo.NewPostgres(db)
	if err := pg.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return pg, func() { db.Close() }, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", "err", err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	if cfg.TokenKey == "" {
		logger.Fatal("TOKEN_KEY environment variable is not set")
	}

	store, closeStore, err := openRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open repository", "err", err)
	}
	defer closeStore()

	mux := mux.NewRouter()
	HandleList(mux, cfg, store, metrics.New(), logger)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "addr", cfg.Addr, "tls", cfg.TLS())
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "err", err)
	}
	wg.Wait()
	logger.Info("server stopped")
}
