package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresURL string
	MongoURL    string
	DBType      string
	Port        string
	LogLevel    string

	// Branch is the default login prefix when a request carries none.
	Branch string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		Branch:      os.Getenv("BRANCH"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

// ConfigureLogging applies the LOG_LEVEL setting to the process logger.
func (c *Config) ConfigureLogging() {
	if c.LogLevel == "" {
		return
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithField("log_level", c.LogLevel).Warn("unknown log level, keeping default")
		return
	}
	logrus.SetLevel(level)
}
