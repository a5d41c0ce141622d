package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port            int
	DatabaseURL     string
	HeadshotMapPath string
	GenerateHour    int
	TimeZone        string
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("gridiron-pulse", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")

	// Poll generation config
	fs.StringVar(&cfg.HeadshotMapPath, "headshots", "", "Path to name->imageID JSON map")
	fs.IntVar(&cfg.GenerateHour, "generate-hour", -1, "Local hour (0-23) for daily poll generation")
	fs.StringVar(&cfg.TimeZone, "tz", "", "IANA time zone for the generation schedule")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3344 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.HeadshotMapPath == "" {
		cfg.HeadshotMapPath = os.Getenv("HEADSHOT_MAP")
	}

	if cfg.GenerateHour < 0 {
		if hourStr := os.Getenv("GENERATE_HOUR"); hourStr != "" {
			hour, err := strconv.Atoi(hourStr)
			if err != nil {
				return Config{}, errors.New("invalid GENERATE_HOUR env variable")
			}
			cfg.GenerateHour = hour
		} else {
			cfg.GenerateHour = 9 // default: 9am local
		}
	}
	if cfg.GenerateHour < 0 || cfg.GenerateHour > 23 {
		return Config{}, errors.New("generate hour must be between 0 and 23")
	}

	if cfg.TimeZone == "" {
		cfg.TimeZone = os.Getenv("TIME_ZONE")
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = "America/New_York"
	}

	return cfg, nil
}
