package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultThreshold = 2000.0

// ServerConfig configures cmd/server.
type ServerConfig struct {
	MySQLDSN  string
	Addr      string
	DataFile  string
	Threshold float64
	CacheCap  int
}

// SearchConfig configures the interactive cmd/citysearch.
type SearchConfig struct {
	DataFile  string
	Threshold float64
	CacheCap  int
}

// ErrNoSource means neither a coordinate file nor a DSN was configured.
var ErrNoSource = errors.New("no location source: set -data or -dsn")

// LoadEnv reads a .env file from the working directory if there is one.
// Variables already set in the environment win. A missing file is not an error.
func LoadEnv() error {
	return loadEnvFile(".env")
}

func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// Validate checks that the server has somewhere to read locations from.
func (c ServerConfig) Validate() error {
	if c.DataFile == "" && c.MySQLDSN == "" {
		return ErrNoSource
	}
	return nil
}

func FromFlagsServer() ServerConfig {
	return serverFromFlags(flag.CommandLine, os.Args[1:])
}

func FromFlagsSearch() SearchConfig {
	return searchFromFlags(flag.CommandLine, os.Args[1:])
}

func serverFromFlags(fs *flag.FlagSet, args []string) ServerConfig {
	var cfg ServerConfig
	fs.StringVar(&cfg.MySQLDSN, "dsn", os.Getenv("DB_DSN"), "MySQL DSN to read locations from")
	fs.StringVar(&cfg.Addr, "addr", envString("ADDR", ":8080"), "HTTP bind address")
	fs.StringVar(&cfg.DataFile, "data", os.Getenv("DATA_FILE"), "coordinate file (takes precedence over -dsn)")
	fs.Float64Var(&cfg.Threshold, "threshold", envFloat("THRESHOLD_MILES", defaultThreshold), "connect cities closer than this many miles")
	fs.IntVar(&cfg.CacheCap, "cache-cap", envInt("CACHE_CAP", 0), "route cache capacity, 0 for unbounded")
	fs.Parse(args)
	return cfg
}

// searchFromFlags accepts the coordinate file as -data or as the first
// positional argument.
func searchFromFlags(fs *flag.FlagSet, args []string) SearchConfig {
	var cfg SearchConfig
	fs.StringVar(&cfg.DataFile, "data", os.Getenv("DATA_FILE"), "coordinate file")
	fs.Float64Var(&cfg.Threshold, "threshold", envFloat("THRESHOLD_MILES", defaultThreshold), "connect cities closer than this many miles")
	fs.IntVar(&cfg.CacheCap, "cache-cap", envInt("CACHE_CAP", 0), "route cache capacity, 0 for unbounded")
	fs.Parse(args)

	if fs.NArg() > 0 {
		cfg.DataFile = fs.Arg(0)
	}
	return cfg
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
