// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
)

// Config holds the process-level settings, loaded once from the environment
// at startup (godotenv autoload runs in main).
type Config struct {
	Port     string
	LogLevel string
	Room     models.RoomConfig
}

// Load reads the environment, falling back to defaults for anything unset.
func Load() Config {
	cfg := Config{
		Port:     envOr("PORT", "8080"),
		LogLevel: envOr("LOG_LEVEL", "info"),
		Room:     models.DefaultRoomConfig(),
	}
	if v := envInt("AUCTION_BUDGET", 0); v > 0 {
		cfg.Room.Budget = v
	}
	if v := envInt("AUCTION_TIMER_TICKS", 0); v > 0 {
		cfg.Room.TimerTicks = v
	}
	if v := envInt("AUCTION_COOLDOWN_TICKS", 0); v > 0 {
		cfg.Room.CooldownTicks = v
	}
	if v := envInt("AUCTION_TICK_MS", 0); v > 0 {
		cfg.Room.TickInterval = time.Duration(v) * time.Millisecond
	}
	return cfg
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
