package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config настройки процесса, читаются из окружения (и .env, если есть)
type Config struct {
	Port       string        `envconfig:"PORT"        default:":8080"`
	LogLevel   string        `envconfig:"LOG_LEVEL"   default:"info"`
	DataFile   string        `envconfig:"DATA_FILE"   default:"uzum-data.json"`
	OrderDelay time.Duration `envconfig:"ORDER_DELAY" default:"1s"` // имитация задержки при создании заказа
}

func LoadConfig(logger *logrus.Logger) *Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("config: error loading .env file (continuing): %v", err)
	} else if err == nil {
		logger.Info("config: loaded .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Fatalf("config: failed to process environment: %v", err)
	}
	logger.Infof("config: port=%s log_level=%s data_file=%s", cfg.Port, cfg.LogLevel, cfg.DataFile)
	return &cfg
}
