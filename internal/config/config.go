package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr string

	// Profile data
	ProfileSource   string // "http" or "db"
	ProfileBaseURL  string
	ProfileRefresh  time.Duration
	ProfileCacheTTL time.Duration
	DBDSN           string

	// Dialogue timings
	AutoOpenDelay         time.Duration
	ReplyThinkingDelay    time.Duration
	QuickActionRelayDelay time.Duration
	SessionIdleTTL        time.Duration

	// Admin auth
	JWTSecret         string
	AdminPasswordHash string

	// Redis (optional section cache for the HTTP provider)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// RabbitMQ (optional engagement events)
	RabbitURL   string
	RabbitQueue string
}

func Load() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	source := os.Getenv("PROFILE_SOURCE")
	if source == "" {
		source = "http"
	}

	baseURL := os.Getenv("PROFILE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000/profile"
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "portfolio.db"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	rabbitQueue := os.Getenv("RABBIT_QUEUE")
	if rabbitQueue == "" {
		rabbitQueue = "assistant_events"
	}

	return Config{
		HTTPAddr: addr,

		ProfileSource:   source,
		ProfileBaseURL:  baseURL,
		ProfileRefresh:  durationEnv("PROFILE_REFRESH_INTERVAL_MS", 5*time.Minute),
		ProfileCacheTTL: durationEnv("PROFILE_CACHE_TTL_MS", time.Minute),
		DBDSN:           dsn,

		AutoOpenDelay:         durationEnv("AUTO_OPEN_DELAY_MS", 3*time.Second),
		ReplyThinkingDelay:    durationEnv("REPLY_THINKING_DELAY_MS", time.Second),
		QuickActionRelayDelay: durationEnv("QUICK_ACTION_RELAY_DELAY_MS", 100*time.Millisecond),
		SessionIdleTTL:        durationEnv("SESSION_IDLE_TTL_MS", 30*time.Minute),

		JWTSecret:         secret,
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		RabbitURL:   os.Getenv("RABBIT_URL"),
		RabbitQueue: rabbitQueue,
	}
}

func durationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return time.Duration(n) * time.Millisecond
}
