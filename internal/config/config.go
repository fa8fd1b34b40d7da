package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	BotToken        string
	BotUsername     string
	AdminUsername   string
	AdminChatID     int64
	AllowedOrigins  []string
	DevMode         bool
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
// DEV_MODE disables the initData signature check for local development
// without a real bot token.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		BotToken:        envOrDefault("BOT_TOKEN", ""),
		BotUsername:     envOrDefault("BOT_USERNAME", "ResellHubBot"),
		AdminUsername:   envOrDefault("ADMIN_USERNAME", "next_gear_manager"),
		AdminChatID:     envInt64("ADMIN_CHAT_ID", 0),
		AllowedOrigins:  envList("ALLOWED_ORIGINS", []string{"https://web.telegram.org"}),
		DevMode:         envBool("DEV_MODE", false),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
