package http

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/sirupsen/logrus"
)

// NewAPIProxy creates handler passing requests to the backend api unchanged.
func NewAPIProxy(backendAddress string, l logrus.FieldLogger) (http.Handler, error) {
	target, err := url.Parse(backendAddress)
	if err != nil {
		return nil, fmt.Errorf("parsing backend address: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("backend address %q must contain scheme and host", backendAddress)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	director := proxy.Director
	proxy.Director = func(r *http.Request) {
		director(r)
		r.Host = target.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		l.Warnf("api proxy: %s %s: %v", r.Method, r.URL.Path, err)
		w.WriteHeader(http.StatusBadGateway)
	}

	return proxy, nil
}
