package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/recmarket/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN (empty: in-memory store)
//	-s string   identity token HMAC secret
//	-l int      rate limit, requests per second per caller
//	-m int      rate limit burst
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-x int      image upload URL expiry, minutes
//	-L string   log level
//
// Invalid flag values panic, like a failed JSON config.
func parseFlags(config *Config, osArgs []string) {
	args := flagx.FilterArgs(osArgs, []string{"-a", "-d", "-s", "-l", "-m", "-u", "-p", "-b", "-g", "-e", "-x", "-L"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "identity token secret key")
	fs.IntVar(&config.RateLimitRPS, "l", config.RateLimitRPS, "rate limit (requests per second per caller)")
	fs.IntVar(&config.RateLimitBurst, "m", config.RateLimitBurst, "rate limit burst")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	imageUploadExpiry := fs.Int("x", int(config.ImageUploadExpiry.Minutes()), "image upload URL expiry (in minutes)")
	fs.StringVar(&config.LogLevel, "L", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ImageUploadExpiry = time.Duration(*imageUploadExpiry) * time.Minute
}
