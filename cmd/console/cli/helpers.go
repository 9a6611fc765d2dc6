package cli

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/eduplay/console/internal/service"
	"github.com/eduplay/console/internal/store"
)

// resolveDataDir returns the data directory from the --data-dir flag, the
// EDUPLAY_DATA_DIR env var, or ~/.eduplay as fallback.
func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	if envDir := os.Getenv("EDUPLAY_DATA_DIR"); envDir != "" {
		return envDir
	}
	home, _ := os.UserHomeDir()
	return home + "/.eduplay"
}

// openStore opens the embedded store in the resolved data directory.
func openStore() (*store.Store, error) {
	return store.Open(resolveDataDir())
}

// newAuthService builds the auth service from configuration. The token TTL
// defaults to 24 hours.
func newAuthService() *service.AuthService {
	secret := viper.GetString("jwt_secret")
	if secret == "" {
		secret = viper.GetString("auth.jwt_secret")
	}
	if secret == "" {
		secret = "eduplay-dev-secret-change-in-production"
	}

	ttl := service.DefaultTokenTTL
	if raw := viper.GetString("auth.token_ttl"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	return service.NewAuthService(secret, ttl)
}
