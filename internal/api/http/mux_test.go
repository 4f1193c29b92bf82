package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/majorleaguegithub/internal/api/http/mock"
	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/m-zajac/majorleaguegithub/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMux(t *testing.T) {
	t.Parallel()

	serviceDelay := time.Millisecond

	tests := []struct {
		name           string
		method         string
		path           string
		muxTimeout     time.Duration
		withProxy      bool
		wantStatusCode int
	}{
		{
			name:           "valid contributors request",
			path:           "/contributors",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "service exceeding handler timeout",
			path:           "/contributors",
			muxTimeout:     time.Microsecond,
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "page",
			path:           "/?region=south",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "page with invalid method",
			method:         http.MethodPost,
			path:           "/",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusMethodNotAllowed,
		},
		{
			name:           "health",
			path:           "/healthz",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid path",
			path:           "/invalid_path",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "api without proxy",
			path:           "/api/contributors",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "api with proxy",
			path:           "/api/contributors",
			muxTimeout:     time.Second,
			withProxy:      true,
			wantStatusCode: http.StatusTeapot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			service.EXPECT().
				Contributors(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, filter app.Filter) ([]app.Contributor, error) {
					time.Sleep(serviceDelay)

					select {
					case <-ctx.Done():
						return nil, errors.New("context timeout")
					default:
						return nil, nil
					}
				}).
				MaxTimes(1)
			service.EXPECT().
				Page(gomock.Any(), gomock.Any()).
				Return(app.Page{}, nil).
				MaxTimes(1)

			renderer := mock.NewMockRenderer(ctrl)
			renderer.EXPECT().
				Render(gomock.Any(), gomock.Any()).
				DoAndReturn(func(w io.Writer, l view.Layout) error {
					_, err := io.WriteString(w, "page")
					return err
				}).
				MaxTimes(1)

			var proxy http.Handler
			if tt.withProxy {
				proxy = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusTeapot)
				})
			}

			mux := NewMux(service, renderer, PageConfig{}, proxy, tt.muxTimeout, testLogger())

			server := httptest.NewServer(mux)
			defer server.Close()

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, err := http.NewRequest(method, server.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
