package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-d", "postgres://db", "-s", "secret",
				"-l", "5", "-m", "7", "-u", "user", "-p", "password", "-b", "bucket",
				"-g", "us-west-1", "-e", "http://endpoint", "-x", "30", "-L", "debug",
			},
			expected: &Config{
				EndpointAddrGRPC:  "127.0.0.1:9090",
				DatabaseDSN:       "postgres://db",
				SecretKey:         "secret",
				RateLimitRPS:      5,
				RateLimitBurst:    7,
				S3RootUser:        "user",
				S3RootPassword:    "password",
				S3Bucket:          "bucket",
				S3Region:          "us-west-1",
				S3BaseEndpoint:    "http://endpoint",
				ImageUploadExpiry: 30 * time.Minute,
				LogLevel:          "debug",
			},
		},
		{
			name:        "bad integer",
			args:        []string{"-l", "many"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	var c Config
	c.LoadDefaults()

	parseFlags(&c, []string{"-c", "cfg.json", "-z", "1", "-a", ":1"})

	assert.Equal(t, ":1", c.EndpointAddrGRPC)
	assert.Equal(t, 15*time.Minute, c.ImageUploadExpiry)
}
