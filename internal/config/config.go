package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	ServerPort string
	TLSCert    string
	TLSKey     string
	DBPath     string
	LogLevel   string

	RiotAPIKey   string
	RiotPlatform string
	MatchID      int64
	MatchFile    string
	TimelineFile string

	ActiveSummoner string
	Patch          string
	Locale         string
	Speed          float64
	AutoStart      bool
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		// The real client API listens on 2999; tooling hardcodes it.
		ServerPort: getEnv("SERVER_PORT", "2999"),
		TLSCert:    getEnv("TLS_CERT", ""),
		TLSKey:     getEnv("TLS_KEY", ""),
		DBPath:     getEnv("DB_PATH", "liveclient.db"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		RiotAPIKey:   getEnv("RIOT_API_KEY", ""),
		RiotPlatform: getEnv("RIOT_PLATFORM", "euw1"),
		MatchFile:    getEnv("MATCH_FILE", ""),
		TimelineFile: getEnv("TIMELINE_FILE", ""),

		ActiveSummoner: getEnv("ACTIVE_SUMMONER", ""),
		Patch:          getEnv("PATCH", ""),
		Locale:         getEnv("LOCALE", "en_US"),
		Speed:          1,
		AutoStart:      getEnv("AUTOSTART", "true") == "true",
	}

	if raw := os.Getenv("MATCH_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MATCH_ID must be numeric: %w", err)
		}
		cfg.MatchID = id
	}

	if raw := os.Getenv("SPEED"); raw != "" {
		speed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("SPEED must be a number: %w", err)
		}
		if speed <= 0 {
			return nil, fmt.Errorf("SPEED must be > 0, got %v", speed)
		}
		cfg.Speed = speed
	}

	if cfg.MatchFile == "" && cfg.MatchID == 0 {
		return nil, fmt.Errorf("either MATCH_FILE or MATCH_ID is required")
	}
	if cfg.MatchFile == "" && cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required when fetching MATCH_ID from the Riot API")
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return nil, fmt.Errorf("TLS_CERT and TLS_KEY must be set together")
	}

	logger.Info().
		Str("server_port", cfg.ServerPort).
		Str("db_path", cfg.DBPath).
		Str("platform", cfg.RiotPlatform).
		Int64("match_id", cfg.MatchID).
		Str("match_file", cfg.MatchFile).
		Str("active_summoner", cfg.ActiveSummoner).
		Float64("speed", cfg.Speed).
		Bool("tls", cfg.TLSCert != "").
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
