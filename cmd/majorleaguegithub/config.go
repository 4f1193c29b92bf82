package main

import "time"

// Config is the container for app configuration
type Config struct {
	// Environment - "production" switches logs to json format
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// LogLevel - logrus level name
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Port - http server port
	Port int `envconfig:"PORT" default:"8450"`

	// HTTPHost - http server listen host
	HTTPHost string `envconfig:"HTTP_HOST" default:"0.0.0.0"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `envconfig:"HTTP_PROFILE_SERVER_ADDRESS" default:""`

	// GRPCServerAddress - listen address for grpc server. If empty, grpc server is disabled
	GRPCServerAddress string `envconfig:"GRPC_SERVER_ADDRESS" default:"0.0.0.0:9450"`

	// ServiceResponseTimeout - timeout for service execution
	ServiceResponseTimeout time.Duration `envconfig:"SERVICE_RESPONSE_TIMEOUT" default:"30s"`

	// HTTPRequestTimeout - timeout for handling single http request
	HTTPRequestTimeout time.Duration `envconfig:"HTTP_REQUEST_TIMEOUT" default:"60s"`

	// BackendAPIURL - address of leaderboard backend with protocol
	BackendAPIURL string `envconfig:"BACKEND_API_URL" default:"http://localhost:8080"`

	// BackendAPIRateLimit - max frequency for backend calls
	BackendAPIRateLimit float64 `envconfig:"BACKEND_API_RATE_LIMIT" default:"5"`

	// BackendAPIRateBurst - max burst of backend calls
	BackendAPIRateBurst int `envconfig:"BACKEND_API_RATE_BURST" default:"10"`

	// BackendTimeout - timeout for single backend http call
	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"30s"`

	// ProxyAPI - when enabled, /api/ requests are passed to the backend
	ProxyAPI bool `envconfig:"PROXY_API" default:"false"`

	// BackendCacheSize - maximum number of elements in cache for each backend client method
	BackendCacheSize int `envconfig:"BACKEND_CACHE_SIZE" default:"1000"`

	// BackendCacheTTL - maximum lifetime for backend client cache entries
	BackendCacheTTL time.Duration `envconfig:"BACKEND_CACHE_TTL" default:"1m"`

	// DBPath - filepath for bolt db data
	DBPath string `envconfig:"DB_PATH" default:"./leaderboard.data"`

	// DBBucketName - bolt db bucket name
	DBBucketName string `envconfig:"DB_BUCKET_NAME" default:"leaderboard"`

	// DBDataTTL - maximum lifetime for stale data in db
	DBDataTTL time.Duration `envconfig:"DB_DATA_TTL" default:"24h"`

	// DBDataRefreshTTL - maximum lifetime for stale data to be queued for refresh
	DBDataRefreshTTL time.Duration `envconfig:"DB_DATA_REFRESH_TTL" default:"10m"`

	// TeamsFile - optional yaml file with soccer teams details
	TeamsFile string `envconfig:"TEAMS_FILE" default:""`

	// DefaultTheme - "dark" or "light"
	DefaultTheme string `envconfig:"DEFAULT_THEME" default:"dark"`

	// DisplayTimezone - IANA zone used for dates on the page
	DisplayTimezone string `envconfig:"DISPLAY_TIMEZONE" default:"America/New_York"`

	OGTitle       string `envconfig:"OG_TITLE" default:"Major League GitHub"`
	OGDescription string `envconfig:"OG_DESCRIPTION" default:"GitHub Scouting Report: Major League Edition"`
	OGType        string `envconfig:"OG_TYPE" default:"website"`
	OGImageURL    string `envconfig:"OG_IMAGE_URL" default:"/og-image.jpg"`
	OGSiteName    string `envconfig:"OG_SITE_NAME" default:"Major League GitHub"`
}
