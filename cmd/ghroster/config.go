package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// GRPCServerAddress - listen address for grpc server
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for service execution
	ServiceResponseTimeout time.Duration `default:"30s"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `default:"10"`

	// GithubClientCacheSize - maximum number of elements in cache for each github client method
	GithubClientCacheSize int `default:"10000"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries
	GithubClientCacheTTL time.Duration `default:"10m"`
}
