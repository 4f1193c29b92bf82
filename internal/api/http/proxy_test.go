package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIProxy(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.URL.Path+"?"+r.URL.RawQuery)
	}))
	defer backend.Close()

	proxy, err := NewAPIProxy(backend.URL, testLogger())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	proxy.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contributors?regionId=south", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/contributors?regionId=south", w.Body.String())
}

func TestNewAPIProxyBackendDown(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.NotFoundHandler())
	address := backend.URL
	backend.Close()

	proxy, err := NewAPIProxy(address, testLogger())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	proxy.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hiring", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestNewAPIProxyInvalidAddress(t *testing.T) {
	t.Parallel()

	_, err := NewAPIProxy("localhost", testLogger())
	assert.Error(t, err)

	_, err = NewAPIProxy("http://%zz", testLogger())
	assert.Error(t, err)
}
