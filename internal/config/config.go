package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/copperline/callsink/internal/payload"
)

type Config struct {
	Port       int
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	CallsTable string
	NatsURL    string
	NatsToken  string
	LogLevel   string
	// VoicemailTriggers is the phrase set for voicemail detection,
	// lower-cased. Defaults to payload.DefaultVoicemailTriggers.
	VoicemailTriggers []string
}

func Load() Config {
	return Config{
		Port:              envInt("PORT", 5000),
		DBHost:            envStr("DB_HOST", "localhost"),
		DBPort:            envInt("DB_PORT", 5432),
		DBName:            envStr("DB_NAME", "your_db"),
		DBUser:            envStr("DB_USER", "your_user"),
		DBPassword:        envStr("DB_PASSWORD", "your_password"),
		CallsTable:        envStr("CALLS_TABLE", "responses"),
		NatsURL:           envStr("NATS_URL", ""),
		NatsToken:         envStr("NATS_TOKEN", ""),
		LogLevel:          envStr("LOG_LEVEL", "info"),
		VoicemailTriggers: envTriggers("VOICEMAIL_TRIGGERS"),
	}
}

// DatabaseURL assembles a postgres connection URL from the discrete DB_*
// settings.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:   c.DBName,
	}
	return u.String()
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// envTriggers parses a comma-separated phrase list, lower-casing each phrase
// to match the detector's comparison. Empty or unset keeps the default set.
func envTriggers(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return payload.DefaultVoicemailTriggers
	}
	var triggers []string
	for _, part := range strings.Split(v, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			triggers = append(triggers, part)
		}
	}
	if len(triggers) == 0 {
		return payload.DefaultVoicemailTriggers
	}
	return triggers
}
