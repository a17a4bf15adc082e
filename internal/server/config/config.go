// Package config handles configuration for the registry server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the recmarket server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret shared with the identity provider (HS256 JWTs).
//   - RateLimitRPS / RateLimitBurst: token bucket per caller for mutating calls.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible image store.
//   - S3Bucket / S3Region / S3BaseEndpoint: image store settings.
//   - ImageUploadExpiry: lifetime of presigned image upload URLs.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC  string
	DatabaseDSN       string
	SecretKey         string
	RateLimitRPS      int
	RateLimitBurst    int
	S3RootUser        string
	S3RootPassword    string
	S3Bucket          string
	S3Region          string
	S3BaseEndpoint    string
	ImageUploadExpiry time.Duration
	LogLevel          string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey and the S3 credentials must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.RateLimitRPS = 10
	c.RateLimitBurst = 20
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "certificates"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.ImageUploadExpiry = 15 * time.Minute
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
