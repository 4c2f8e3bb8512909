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

	"graphql-service/internal/config"
	"graphql-service/internal/db"
	"graphql-service/internal/graph"
	"graphql-service/internal/logger"
	"graphql-service/internal/member"
	"graphql-service/internal/metrics"
	"graphql-service/internal/middleware"
	"graphql-service/internal/post"
	"graphql-service/internal/profile"
	"graphql-service/internal/transport"
	"graphql-service/internal/user"

	"github.com/99designs/gqlgen/graphql/playground"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var (
	initDBFunc      = db.NewDatabase
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := initDBFunc(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	app, err := newServer(cfg, database)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.limiter.Run(gctx)
		return nil
	})
	g.Go(func() error {
		// stop releases the limiter once the server is gone.
		defer stop()
		logger.L().Info("graphql server listening",
			zap.String("addr", srv.Addr),
			zap.String("playground", "http://localhost:"+cfg.AppPort+"/"),
		)
		return startServerFunc(gctx, srv)
	})

	return g.Wait()
}

type server struct {
	router  http.Handler
	limiter *middleware.RateLimiter
}

func newServer(cfg *config.Config, database *sql.DB) (*server, error) {
	resolver := &graph.Resolver{
		MemberSvc:  member.NewService(member.NewRepository(database)),
		PostSvc:    post.NewService(post.NewRepository(database)),
		ProfileSvc: profile.NewService(profile.NewRepository(database)),
		UserSvc:    user.NewService(user.NewRepository(database)),
	}

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, err
	}

	m := metrics.NewGraphQL()
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	gql := limiter.Middleware(transport.NewHandler(schema, cfg.MaxQueryDepth, m))

	router := setupRouter(gql, m.Handler())
	router = middleware.CORS(cfg.CORSOrigin)(router)
	router = middleware.LoggingMiddleware(router)
	router = logger.RequestIDMiddleware(router)

	return &server{router: router, limiter: limiter}, nil
}

func setupRouter(gql, metricsHandler http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/graphql", gql)
	mux.Handle("GET /{$}", playground.Handler("GraphQL Playground", "/graphql"))
	mux.Handle("GET /metrics", metricsHandler)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return mux
}

// startServer serves until ctx is cancelled, then drains connections.
func startServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.L().Info("shutting down graphql server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
