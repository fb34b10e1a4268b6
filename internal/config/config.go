// README: Config loader with env defaults for HTTP, Redis, search, and AI settings.
package config

import (
	"os"
	"strconv"
)

type SearchConfig struct {
	BaseURL        string
	APIKey         string
	DefaultRadiusM int
	CacheTTLMins   int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	Search SearchConfig
	AI     struct {
		GeminiKey string
	}
	SessionMaxAgeHours int
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("URNAV_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("URNAV_REDIS_ADDR", "")
	cfg.Search.BaseURL = envOrDefault("URNAV_PLACES_BASE_URL", "https://places-api.foursquare.com")
	cfg.Search.APIKey = envOrDefault("FOURSQUARE_API_KEY", "")
	cfg.Search.DefaultRadiusM = envOrDefaultInt("URNAV_SEARCH_RADIUS_M", 25000)
	cfg.Search.CacheTTLMins = envOrDefaultInt("URNAV_SEARCH_CACHE_TTL_MINS", 10)
	cfg.AI.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	cfg.SessionMaxAgeHours = envOrDefaultInt("URNAV_SESSION_MAX_AGE_HOURS", 24)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
