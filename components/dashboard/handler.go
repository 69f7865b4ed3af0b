package dashboard

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-kbs-elements/components/internal/httpguard"
)

// Handler builds the fragment handler with default options plus overrides.
func Handler(fns ...OptionFn) (http.Handler, error) {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds the fragment handler. Construction fails when the
// embedded template cannot be loaded.
func HandlerWithOptions(opts Options) (http.Handler, error) {
	opts = NewOptions(func(o *Options) { *o = opts })
	renderer, err := NewRenderer(opts)
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpguard.ReadOnly(w, r) {
			return
		}
		if !httpguard.Allow(w, r, opts.Guard) {
			return
		}

		summary, err := Collect(r.Context(), opts)
		if err != nil {
			opts.Logger.Error("dashboard stats failed", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		fragment, err := renderer.Render(summary)
		if err != nil {
			opts.Logger.Error("dashboard render failed", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write([]byte(fragment))
	}), nil
}
