package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envHotelName    = "HOTEL_NAME"
	envSeedDemoData = "HOTEL_SEED_DEMO_DATA"
	envReportDir    = "HOTEL_REPORT_DIR"
	envLogFile      = "HOTEL_LOG_FILE"

	defaultHotelName = "Hotel Reservation App"
	defaultReportDir = "."
)

type Config struct {
	HotelName    string
	SeedDemoData bool
	ReportDir    string
	// LogFile is where the application log goes. Empty means stderr.
	LogFile string
}

// Load reads the optional dotenv file at path into the process environment
// and builds the config from it. Variables already set in the environment win.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	conf := Config{
		HotelName:    lookup(envHotelName, defaultHotelName),
		SeedDemoData: false,
		ReportDir:    lookup(envReportDir, defaultReportDir),
		LogFile:      os.Getenv(envLogFile),
	}

	if raw, ok := os.LookupEnv(envSeedDemoData); ok && raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s=%q: %w", envSeedDemoData, raw, err)
		}

		conf.SeedDemoData = seed
	}

	return conf, nil
}

func lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
