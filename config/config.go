package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort  string
	MaxFileSize int64
	LogLevel    string
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	maxFileSize := int64(32 * 1024 * 1024) // 32 MB
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxFileSize = n
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		ServerPort:  serverPort,
		MaxFileSize: maxFileSize,
		LogLevel:    logLevel,
	}
}
