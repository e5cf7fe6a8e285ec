package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port          string
	PublicURL     string
	SessionTTL    time.Duration
	SweepInterval time.Duration

	Store         string // "memory" | "redis"
	RedisHost     string
	RedisPort     string
	RedisPassword string

	ExportEnabled bool
	ExportFile    string
}

// Load reads .env (outside docker) and then the environment. A non-empty port wins over PORT.
func Load(port string) Config {
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("could not read .env")
		}
	}
	return fromEnv(port)
}

func FromEnv() Config {
	return fromEnv("")
}

func fromEnv(port string) Config {
	c := Config{}
	c.Port = port
	if c.Port == "" {
		c.Port = getenv("PORT", "8080")
	}
	c.PublicURL = getenv("PUBLIC_URL", "http://localhost:"+c.Port)
	c.SessionTTL = time.Duration(getenvInt("SESSION_TTL_MINUTES", 120)) * time.Minute
	c.SweepInterval = time.Duration(getenvInt("SWEEP_INTERVAL_SECONDS", 60)) * time.Second
	c.Store = getenv("STORE", "memory")
	c.RedisHost = getenv("REDIS_HOST", "localhost")
	c.RedisPort = getenv("REDIS_PORT", "6379")
	c.RedisPassword = os.Getenv("REDIS_PASSWORD")
	c.ExportEnabled = getenvBool("EXPORT_ENABLED", false)
	c.ExportFile = getenv("EXPORT_FILE", "./champ-rosters.txt")
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
