package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Token verification. One of JWKSURL or JWKS is required.
	Issuer              string        // Required: expected iss claim (default: bartab-auth)
	Audience            []string      // Optional: accepted aud values, comma separated (default: any)
	JWKSURL             string        // Optional: auth service JWKS endpoint, polled every JWKSRefreshInterval
	JWKS                string        // Optional: inline JWKS document, for tests and air-gapped setups
	JWKSRefreshInterval time.Duration // Optional: JWKS poll interval (default: 15m)

	// Invites
	InviteTTL        time.Duration // Optional: invite lifetime (default: 7 days)
	InviteSecret     string        // Optional: secret for sealing invite tokens at rest
	InviteSecretFile string        // Optional: file holding the secret; wins over InviteSecret
	ConsoleBaseURL   string        // Required: where invitation links point

	// Delivery. With neither configured invites are logged, not sent.
	SendGridAPIKey   string
	SendGridFrom     string
	SendGridFromName string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string

	CORSAllowedOrigins []string // Optional: browser origins allowed to call the API

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./membership.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the environment, after loading .env when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "bartab-auth"),
		Audience:            splitList(os.Getenv("AUTH_AUDIENCE")),
		JWKSURL:             os.Getenv("AUTH_JWKS_URL"),
		JWKS:                os.Getenv("AUTH_JWKS"),
		JWKSRefreshInterval: getEnvDurationOrDefault("AUTH_JWKS_REFRESH_INTERVAL", 15*time.Minute),

		InviteTTL:        getEnvDurationOrDefault("INVITE_TTL", 7*24*time.Hour),
		InviteSecret:     os.Getenv("INVITE_SECRET"),
		InviteSecretFile: os.Getenv("INVITE_SECRET_FILE"),
		ConsoleBaseURL:   getEnvOrDefault("CONSOLE_BASE_URL", "http://localhost:3000"),

		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:     os.Getenv("SENDGRID_FROM"),
		SendGridFromName: getEnvOrDefault("SENDGRID_FROM_NAME", "Cashbook"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       os.Getenv("TWILIO_FROM"),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "membership.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// The console is the one origin that always needs access.
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{strings.TrimSuffix(cfg.ConsoleBaseURL, "/")}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// e.g. "168h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
