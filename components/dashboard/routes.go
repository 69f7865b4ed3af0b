package dashboard

import (
	"fmt"

	"github.com/goliatone/go-kbs-elements/components/internal/httpguard"
)

// MountPath returns the full mount path for the fragment route under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return httpguard.MountPath(basePath, opts.RoutePath)
}

// RegisterRoutes registers the fragment handler under basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers a handler under basePath using a pre-built Options value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("dashboard: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	handler, err := HandlerWithOptions(opts)
	if err != nil {
		return "", err
	}
	pattern := httpguard.MountPath(basePath, opts.RoutePath)
	mux.Handle(pattern, handler)
	return pattern, nil
}
