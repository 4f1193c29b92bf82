package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/m-zajac/majorleaguegithub/internal/view"
	"github.com/sirupsen/logrus"
)

// Service returns leaderboard data.
//
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/majorleaguegithub/internal/api/http Service,Renderer
type Service interface {
	Page(ctx context.Context, filter app.Filter) (app.Page, error)
	Contributors(ctx context.Context, filter app.Filter) ([]app.Contributor, error)
}

// Renderer writes page html.
type Renderer interface {
	Render(w io.Writer, l view.Layout) error
}

// PageConfig holds page settings not coming from the request.
type PageConfig struct {
	DefaultTheme view.Mode
	Location     *time.Location
	Meta         view.Meta
}

// NewMux creates router for app's http server.
// apiProxy is optional, when set requests to /api/ are passed to it.
func NewMux(
	service Service,
	renderer Renderer,
	conf PageConfig,
	apiProxy http.Handler,
	timeout time.Duration,
	l logrus.FieldLogger,
) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	pageHandler := timeoutMiddleware(NewPageHandler(service, renderer, conf, l))
	contributorsHandler := timeoutMiddleware(NewContributorsHandler(service, l))

	m := http.NewServeMux()
	m.HandleFunc("GET /{$}", pageHandler)
	m.HandleFunc("GET /contributors", contributorsHandler)
	m.HandleFunc("GET /healthz", NewHealthHandler())
	if apiProxy != nil {
		m.Handle("/api/", apiProxy)
	}

	return m
}
