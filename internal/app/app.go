package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-ai/internal/config"
	"github.com/vancomm/minesweeper-ai/internal/database"
	"github.com/vancomm/minesweeper-ai/internal/middleware"
	"github.com/vancomm/minesweeper-ai/internal/repository"
)

type App struct {
	log     *logrus.Logger
	db      *pgxpool.Pool
	cookies *config.Cookies
	jwt     *config.JWT
	ws      *config.WebSocket
}

func New(log *logrus.Logger) *App {
	return &App{log: log}
}

// Start brings up the service and blocks until ctx is cancelled or the
// listener fails.
func (a *App) Start(ctx context.Context) error {
	jwt, err := config.NewJWT()
	if err != nil {
		return fmt.Errorf("unable to load jwt keys: %w", err)
	}
	a.jwt = jwt

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return fmt.Errorf("unable to load cookie config: %w", err)
	}
	a.cookies = cookies

	a.ws = config.NewWebSocket()

	db, err := database.Connect(ctx)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	a.db = db
	defer db.Close()

	if err := repository.New(db).Bootstrap(ctx); err != nil {
		return fmt.Errorf("unable to bootstrap schema: %w", err)
	}

	server := &http.Server{
		Addr: config.Port(),
		Handler: middleware.Wrap(
			mount(config.BasePath(), a.routes()),
			middleware.Auth(a.log, cookies),
			middleware.Cors(),
			middleware.Logging(a.log),
		),
	}

	a.log.Info("listening @ ", server.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
