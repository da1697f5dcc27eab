package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jimezsa/jobfeed/internal/server"
)

type ServeCmd struct {
	Addr string `help:"Listen address; defaults to listen_addr from config." env:"JOBFEED_LISTEN_ADDR"`
	FeedOptions
}

func (s *ServeCmd) Run(ctx *Context) error {
	loader, err := newLoader(ctx, s.FeedOptions)
	if err != nil {
		return err
	}
	defer loader.Close()

	addr := firstNonEmpty(s.Addr, ctx.Config.ListenAddr, "127.0.0.1:8080")
	srv := &http.Server{
		Addr: addr,
		Handler: server.Server{
			Loader:          loader,
			Logger:          ctx.Logger,
			DefaultCategory: ctx.Config.DefaultCategory,
		}.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := loader.Load(runCtx); err != nil {
			ctx.Logger.Warn().Err(err).Msg("initial feed load failed")
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		ctx.Logger.Info().Str("addr", addr).Msg("serving job feed")
		ctx.UI.Infof("Serving jobs at %s", ctx.UI.LinkText("http://"+addr+"/api/jobs"))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-runCtx.Done():
	}

	ctx.Logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
