package main

import (
	"context"
	"errors"
	"fmt"
	netHttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/majorleaguegithub/internal/adapter/backend"
	"github.com/m-zajac/majorleaguegithub/internal/api/grpc"
	"github.com/m-zajac/majorleaguegithub/internal/api/http"
	"github.com/m-zajac/majorleaguegithub/internal/api/http/limiter"
	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/m-zajac/majorleaguegithub/internal/catalog"
	"github.com/m-zajac/majorleaguegithub/internal/database"
	"github.com/m-zajac/majorleaguegithub/internal/view"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		l.Fatalf("couldn't load .env file: %v", err)
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		l.Fatalf("invalid log level: %v", err)
	}
	l.Level = level
	if conf.Environment == "production" {
		l.Formatter = &logrus.JSONFormatter{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, l); err != nil {
		l.Fatalf("%v", err)
	}
}

func run(ctx context.Context, conf Config, l *logrus.Logger) error {
	pageConf, err := newPageConfig(conf)
	if err != nil {
		return err
	}

	httpClient := &netHttp.Client{
		Timeout: conf.BackendTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.BackendAPIRateLimit,
		conf.BackendAPIRateBurst,
	)

	kvStore, err := database.NewBoltKVStore(
		conf.DBPath,
		conf.DBBucketName,
	)
	if err != nil {
		return fmt.Errorf("couldn't create bolt kv store: %w", err)
	}
	defer kvStore.Close()

	backendClient := backend.NewClient(
		limitedHTTPClient,
		conf.BackendAPIURL,
	)
	staleDataClient, err := backend.NewClientWithStaleData(
		backendClient,
		kvStore,
		conf.DBDataTTL,
		conf.DBDataRefreshTTL,
		l.WithField("component", "backendStaleDataClient"),
	)
	if err != nil {
		return fmt.Errorf("couldn't create backend db client: %w", err)
	}
	staleDataClient.RunScheduler()
	defer staleDataClient.Close()
	cachedClient, err := backend.NewCachedClient(
		staleDataClient,
		conf.BackendCacheSize,
		conf.BackendCacheTTL,
	)
	if err != nil {
		return fmt.Errorf("couldn't create backend client cache: %w", err)
	}

	var teams app.TeamDirectory
	if conf.TeamsFile != "" {
		c, err := catalog.Load(conf.TeamsFile)
		if err != nil {
			return fmt.Errorf("couldn't load teams: %w", err)
		}
		l.Infof("loaded %d teams from %s", c.Len(), conf.TeamsFile)
		teams = c
	}

	service := app.NewService(
		cachedClient,
		teams,
		conf.ServiceResponseTimeout,
	)

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("couldn't create renderer: %w", err)
	}

	var apiProxy netHttp.Handler
	if conf.ProxyAPI {
		apiProxy, err = http.NewAPIProxy(conf.BackendAPIURL, l.WithField("component", "apiProxy"))
		if err != nil {
			return fmt.Errorf("couldn't create api proxy: %w", err)
		}
	}

	mux := http.NewMux(
		service,
		renderer,
		pageConf,
		apiProxy,
		conf.HTTPRequestTimeout,
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		fmt.Sprintf("%s:%d", conf.HTTPHost, conf.Port),
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(ctx)
	})
	if conf.GRPCServerAddress != "" {
		grpcServer := grpc.NewServer(
			grpc.NewService(service, l.WithField("component", "grpcService")),
			conf.GRPCServerAddress,
			l.WithField("component", "grpcServer"),
		)
		g.Go(func() error {
			return grpcServer.Run(ctx)
		})
	}

	return g.Wait()
}

func newPageConfig(conf Config) (http.PageConfig, error) {
	theme, ok := view.ParseMode(conf.DefaultTheme)
	if !ok {
		return http.PageConfig{}, fmt.Errorf("invalid default theme %q", conf.DefaultTheme)
	}
	loc, err := time.LoadLocation(conf.DisplayTimezone)
	if err != nil {
		return http.PageConfig{}, fmt.Errorf("invalid display timezone: %w", err)
	}

	return http.PageConfig{
		DefaultTheme: theme,
		Location:     loc,
		Meta: view.Meta{
			Title:       conf.OGTitle,
			Description: conf.OGDescription,
			Type:        conf.OGType,
			ImageURL:    conf.OGImageURL,
			SiteName:    conf.OGSiteName,
		},
	}, nil
}
