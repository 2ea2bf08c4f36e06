package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-l", "debug", "-i", "jwt", "-s", "secret", "-t", "30",
		}, expected: &Config{
			EndpointAddrGRPC:      "127.0.0.1:9090",
			LogLevel:              "debug",
			TokenIssuer:           "jwt",
			SecretKey:             "secret",
			TokenValidityDuration: 30 * time.Minute,
		}},
		{name: "foreign flags ignored, ttl untouched", args: []string{"cmd",
			"-c", "cfg.json", "-a", "127.0.0.1:7000",
		}, expected: &Config{
			EndpointAddrGRPC:      "127.0.0.1:7000",
			TokenValidityDuration: 90 * time.Second,
		}},
		{name: "bad int panics", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{TokenValidityDuration: 90 * time.Second}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
