package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-kbs-elements/components/dashboard"
	"github.com/goliatone/go-kbs-elements/components/usersearch"
	"github.com/goliatone/go-kbs-elements/pkg/controls"
	"github.com/goliatone/go-kbs-elements/pkg/elements"
	"github.com/goliatone/go-kbs-elements/pkg/render/template/gotemplate"
)

const shutdownTimeout = 5 * time.Second

func (app *application) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered screens, the user search endpoint and the dashboard widget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := app.newServeMux("")
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.listen(ctx, app.config.GetString(keyAddr), handler)
		},
	}
	cmd.Flags().String(keyAddr, ":8080", "listen address")
	_ = app.config.BindPFlag(keyAddr, cmd.Flags().Lookup(keyAddr))
	return cmd
}

// newServeMux wires the screen pages and both components onto one mux.
func (app *application) newServeMux(basePath string) (*http.ServeMux, error) {
	store, err := app.screens()
	if err != nil {
		return nil, err
	}
	data := newDemoData()
	renderer, err := app.elements(data)
	if err != nil {
		return nil, err
	}
	engine, err := newLayoutEngine(renderer)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("GET /screens/{id}", app.screenHandler(store, renderer, engine))

	userPath, err := usersearch.RegisterRoutes(mux, basePath,
		usersearch.WithDirectory(data.directory()),
		usersearch.WithLogger(app.logger),
	)
	if err != nil {
		return nil, err
	}

	dashboardOpts := []dashboard.OptionFn{
		dashboard.WithStats(data),
		dashboard.WithStatusKeys(data),
		dashboard.WithPopularArticles(data, dashboard.DefaultPopularLimit),
		dashboard.WithLogger(app.logger),
	}
	translator, err := app.translator()
	if err != nil {
		return nil, err
	}
	if translator != nil {
		dashboardOpts = append(dashboardOpts, dashboard.WithTranslator(translator, app.config.GetString(keyLocale)))
	}
	dashboardPath, err := dashboard.RegisterRoutes(mux, basePath, dashboardOpts...)
	if err != nil {
		return nil, err
	}

	app.logger.Debug("routes registered",
		zap.String("user_search", userPath),
		zap.String("dashboard", dashboardPath),
		zap.Strings("screens", store.IDs()),
	)
	return mux, nil
}

func (app *application) screenHandler(store *controls.Store, e *elements.Elements, engine *gotemplate.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		screen, ok := store.Screen(id)
		if !ok {
			http.NotFound(w, r)
			return
		}
		html, err := screen.RenderLayout(r.Context(), e, engine)
		if err != nil {
			app.logger.Error("screen render failed", zap.String("screen", id), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = fmt.Fprint(w, html)
	})
}

func (app *application) listen(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("listening", zap.String("addr", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("kbs-elements: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	app.logger.Info("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("kbs-elements: shutdown: %w", err)
	}
	return nil
}
