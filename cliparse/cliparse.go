// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DefaultPort      = 3318
	DefaultBasePath  = "/api"
	DefaultUploadDir = "public/uploads"
	DefaultRegion    = "New Orleans, LA"
)

type GeocoderConfig struct {
	URL       string
	Region    string
	UserAgent string
}

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	BasePath       string
	UploadDir      string
	AllowedOrigins []string
	Geocoder       GeocoderConfig
}

type SeedConfig struct {
	DatabaseURL  string
	DatabaseType string
	File         string
	DryRun       bool
	Geocoder     GeocoderConfig
}

// LoadEnvFile loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var origins string

	fs := pflag.NewFlagSet("christmas-map", pflag.ContinueOnError)

	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.DatabaseURL, "database", "d", "", "Database URL")
	fs.StringVarP(&cfg.DatabaseType, "type", "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.BasePath, "base-path", "", "Path prefix for API routes")
	fs.StringVar(&cfg.UploadDir, "upload-dir", "", "Directory uploaded images are written to")
	fs.StringVar(&origins, "origins", "", "Comma separated CORS origins (default any)")
	geocoderFlags(fs, &cfg.Geocoder)

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
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	var err error
	cfg.DatabaseURL, cfg.DatabaseType, err = database(cfg.DatabaseURL, cfg.DatabaseType)
	if err != nil {
		return Config{}, err
	}

	cfg.BasePath = normalizeBasePath(envOr(cfg.BasePath, "BASE_PATH", DefaultBasePath))
	cfg.UploadDir = envOr(cfg.UploadDir, "UPLOAD_DIR", DefaultUploadDir)
	cfg.AllowedOrigins = splitList(envOr(origins, "ALLOWED_ORIGINS", ""))
	geocoderEnv(&cfg.Geocoder)

	return cfg, nil
}

// ParseSeedFlags parses the seeder's command line
func ParseSeedFlags(args []string) (SeedConfig, error) {
	var cfg SeedConfig

	fs := pflag.NewFlagSet("seed", pflag.ContinueOnError)

	fs.StringVarP(&cfg.DatabaseURL, "database", "d", "", "Database URL")
	fs.StringVarP(&cfg.DatabaseType, "type", "t", "", "Database type (sqlite or postgres)")
	fs.StringVarP(&cfg.File, "file", "f", "", "YAML address list (default built-in list)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Geocode only, insert nothing")
	geocoderFlags(fs, &cfg.Geocoder)

	if err := fs.Parse(args); err != nil {
		return SeedConfig{}, err
	}

	// A dry run never opens the database
	if !cfg.DryRun {
		var err error
		cfg.DatabaseURL, cfg.DatabaseType, err = database(cfg.DatabaseURL, cfg.DatabaseType)
		if err != nil {
			return SeedConfig{}, err
		}
	}
	geocoderEnv(&cfg.Geocoder)

	return cfg, nil
}

func geocoderFlags(fs *pflag.FlagSet, g *GeocoderConfig) {
	fs.StringVar(&g.URL, "geocoder-url", "", "Nominatim base URL")
	fs.StringVar(&g.Region, "region", "", "Region appended to address searches")
	fs.StringVar(&g.UserAgent, "user-agent", "", "User-Agent sent to the geocoder")
}

func geocoderEnv(g *GeocoderConfig) {
	g.URL = envOr(g.URL, "GEOCODER_URL", "")
	g.Region = envOr(g.Region, "GEOCODE_REGION", DefaultRegion)
	g.UserAgent = envOr(g.UserAgent, "GEOCODER_USER_AGENT", "")
}

func database(url, dbType string) (string, string, error) {
	url = envOr(url, "DATABASE_URL", "")
	if url == "" {
		return "", "", errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	dbType = strings.ToLower(envOr(dbType, "DATABASE_TYPE", "sqlite"))
	if dbType != "sqlite" && dbType != "postgres" {
		return "", "", fmt.Errorf("unsupported database type %q (use sqlite or postgres)", dbType)
	}
	return url, dbType, nil
}

// envOr returns v, else the environment variable key, else def
func envOr(v, key, def string) string {
	if v != "" {
		return v
	}
	if env := os.Getenv(key); env != "" {
		return env
	}
	return def
}

// normalizeBasePath returns "" or a path with a leading slash and no trailing one
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
