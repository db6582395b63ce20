package config

import "os"

type Config struct {
	DatabasePath string
	Port         string
	Timezone     string
	PolicyPath   string
}

func Load() *Config {
	return &Config{
		DatabasePath: getEnv("DATABASE_PATH", "./scheduler.db"),
		Port:         getEnv("PORT", "3000"),
		Timezone:     getEnv("SCHEDULE_TIMEZONE", "America/Chicago"),
		PolicyPath:   getEnv("POLICY_PATH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
