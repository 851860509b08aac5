package cleanup

import (
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/pkg/config"
)

// Config holds cleanup worker configuration, sourced from the central config package.
type Config struct {
	CleanupInterval time.Duration
}

// NewConfig creates a cleanup configuration from the loaded service configuration.
func NewConfig(cfg *config.Config) *Config {
	return &Config{CleanupInterval: cfg.SessionCleanupInterval}
}
