package main

import (
	netHttp "net/http"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/ghroster/internal/adapter/github"
	"github.com/m-zajac/ghroster/internal/api/grpc"
	"github.com/m-zajac/ghroster/internal/api/http"
	"github.com/m-zajac/ghroster/internal/api/http/limiter"
	"github.com/m-zajac/ghroster/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
	)
	githubCachedClient, err := github.NewCachedClient(
		githubClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create github client cache: %v", err)
	}

	service := app.NewService(
		githubCachedClient,
		conf.ServiceResponseTimeout,
		l.WithField("component", "service"),
	)

	mux := http.NewMux(service, 60*time.Second, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	grpcService := grpc.NewService(service)
	grpcServer := grpc.NewServer(
		grpcService,
		conf.GRPCServerAddress,
		l.WithField("component", "grpcServer"),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		server.Run()
		wg.Done()
	}()
	wg.Add(1)
	go func() {
		if err := grpcServer.Run(); err != nil {
			l.Fatalf("couldn't run grpc server: %v", err)
		}
		wg.Done()
	}()
	wg.Wait()
}
