package config

import (
	"os"
	"strconv"
	"time"

	"mapmygap/internal/logger"

	"github.com/joho/godotenv"
)

// accepted names for the AI provider key, first match wins
var apiKeyVars = []string{"GOOGLE_AI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"}

type Config struct {
	ServerPort    string
	SessionSecret string

	DBDSN           string
	HistoryDisabled bool

	AIAPIKey        string
	AIEndpoint      string
	AIPrimaryModel  string
	AIFallbackModel string
	AnalysisTimeout time.Duration
	ControlTimeout  time.Duration

	// workload identity federation, used only by the diagnostic endpoint
	WIFProjectNumber string
	WIFPoolID        string
	WIFProviderID    string

	AdminUsername string
	AdminPassword string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:    getenv("SERVER_PORT", "8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),

		DBDSN:           os.Getenv("DB_DSN"),
		HistoryDisabled: boolenv("HISTORY_DISABLED"),

		AIEndpoint:      getenv("AI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta"),
		AIPrimaryModel:  getenv("AI_PRIMARY_MODEL", "gemini-1.5-pro"),
		AIFallbackModel: getenv("AI_FALLBACK_MODEL", "gemini-1.5-flash"),
		AnalysisTimeout: durenv("AI_ANALYSIS_TIMEOUT", 30*time.Second),
		ControlTimeout:  durenv("AI_CONTROL_TIMEOUT", 15*time.Second),

		WIFProjectNumber: os.Getenv("GOOGLE_WIF_PROJECT_NUMBER"),
		WIFPoolID:        os.Getenv("GOOGLE_WIF_POOL_ID"),
		WIFProviderID:    os.Getenv("GOOGLE_WIF_PROVIDER_ID"),

		AdminUsername: getenv("ADMIN_USERNAME", "admin@mapmygap.local"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	for _, name := range apiKeyVars {
		if v := os.Getenv(name); v != "" {
			cfg.AIAPIKey = v
			break
		}
	}

	if cfg.SessionSecret == "" {
		logger.S().Fatal("SESSION_SECRET is not set")
	}
	if cfg.AIAPIKey == "" {
		logger.S().Fatalf("AI API key is not set (checked %v)", apiKeyVars)
	}
	if cfg.DBDSN == "" && !cfg.HistoryDisabled {
		logger.S().Fatal("DB_DSN is not set (set HISTORY_DISABLED=true to run without history)")
	}

	return cfg
}

// Models returns the candidate model chain, primary first.
func (c *Config) Models() []string {
	if c.AIFallbackModel == "" || c.AIFallbackModel == c.AIPrimaryModel {
		return []string{c.AIPrimaryModel}
	}
	return []string{c.AIPrimaryModel, c.AIFallbackModel}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolenv(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func durenv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
