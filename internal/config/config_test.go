package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper to set env vars and clean up after
func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old := os.Getenv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if old == "" {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, old)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, "ENV", "")
	setEnv(t, "PORT", "")
	setEnv(t, "ANALYZE_TIMEOUT", "")
	setEnv(t, "RATE_LIMIT_RPM", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultEnv, cfg.Env)
	assert.Equal(t, DefaultAnalyzeTimeout, cfg.AnalyzeTimeout)
	assert.Equal(t, DefaultRateLimitRPM, cfg.RateLimitRPM)
	assert.Equal(t, int64(0), cfg.RandomSeed)
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, "PORT", "9090")
	setEnv(t, "ENV", "staging")
	setEnv(t, "ANALYZE_TIMEOUT", "500ms")
	setEnv(t, "RANDOM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, 500*time.Millisecond, cfg.AnalyzeTimeout)
	assert.Equal(t, int64(42), cfg.RandomSeed)
}

func TestLoad_InvalidEnv(t *testing.T) {
	setEnv(t, "ENV", "sandbox")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ENV must be")
}

func TestLoad_ProductionRequiresDatabase(t *testing.T) {
	setEnv(t, "ENV", "production")
	setEnv(t, "DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL is required")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name: "valid development config",
			config: Config{
				Env:            "development",
				AnalyzeTimeout: time.Second,
				RateLimitRPM:   60,
			},
			wantErr: "",
		},
		{
			name: "zero analyze timeout",
			config: Config{
				Env:            "development",
				AnalyzeTimeout: 0,
				RateLimitRPM:   60,
			},
			wantErr: "ANALYZE_TIMEOUT must be positive",
		},
		{
			name: "production with database",
			config: Config{
				Env:            "production",
				AnalyzeTimeout: time.Second,
				RateLimitRPM:   60,
				DatabaseURL:    "postgres://localhost/fraudscore",
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
