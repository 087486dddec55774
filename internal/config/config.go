package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

type Options struct {
	databaseDSN string
	cartDir     string
	ownerID     string
	logLevel    string
}

func NewOptions() *Options {
	return new(Options)
}

// ParseFlags handles command line arguments
// and stores their values in the corresponding variables.
// Environment variables (optionally from a .env file) supply the defaults.
func (o *Options) ParseFlags() {
	// Best-effort: a missing .env file is fine
	_ = godotenv.Load()

	flag.StringVar(&o.databaseDSN, "d", getEnvOrDefault("DATABASE_URI", ""), "postgres connection string; file persistence is used when empty")
	flag.StringVar(&o.cartDir, "c", getEnvOrDefault("CART_DIR", ".carts"), "directory for file-based cart persistence")
	flag.StringVar(&o.ownerID, "o", getEnvOrDefault("OWNER_ID", ""), "cart owner id; a random one is generated when empty")
	flag.StringVar(&o.logLevel, "l", getEnvOrDefault("LOG_LEVEL", "info"), "log level")

	flag.Parse()
}

func (o *Options) DatabaseDSN() string {
	return o.databaseDSN
}

func (o *Options) CartDir() string {
	return o.cartDir
}

func (o *Options) OwnerID() string {
	return o.ownerID
}

func (o *Options) LogLevel() string {
	return o.logLevel
}

// getEnvOrDefault reads an environment variable or returns a default value if the variable is not set or is empty.
func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
