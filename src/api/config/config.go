package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	MySQLDSN        string
	RedisURL        string
	JWTSecret       string
	BackendURL      string
	MinInputChars   int
	MaxInputWords   int
	ReportAvailable bool
	RateLimit       int
	RateWindow      time.Duration
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenv(key, strconv.Itoa(def)))
	if err != nil {
		log.Fatalf("env %s: %v", key, err)
	}
	return v
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getenv(key, strconv.FormatBool(def)))
	if err != nil {
		log.Fatalf("env %s: %v", key, err)
	}
	return v
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		MySQLDSN:      getenv("MYSQL_DSN", "truthlens:truthlens@tcp(127.0.0.1:3306)/truthlens?parseTime=true"),
		RedisURL:      getenv("REDIS_URL", "redis://127.0.0.1:6379/0"),
		JWTSecret:     getenv("JWT_SECRET", "c1a9f7e2d84b5a60e3f1b7c9d2a4e6f8a0b2c4d6e8f0a2b4c6d8e0f2a4b6c8d0"),
		BackendURL:    os.Getenv("ML_BACKEND_URL"), // empty = heuristic engine only
		MinInputChars: getenvInt("MIN_INPUT_CHARS", 20),
		MaxInputWords: getenvInt("MAX_INPUT_WORDS", 5000),
		// The synthesized contextual report claims availability by default so
		// the UI renders it like the real engine's. Set false to disclose the
		// fallback path.
		ReportAvailable: getenvBool("CONTEXTUAL_REPORT_AVAILABLE", true),
		RateLimit:       getenvInt("RATE_LIMIT", 30),
		RateWindow:      time.Duration(getenvInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
	}
}
