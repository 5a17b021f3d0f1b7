package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	AccessTokenMinutes int
	RefreshTokenHours  int

	OTPValidityMinutes    int
	OTPCooldownSeconds    int
	OTPBurstLimit         int
	OTPBurstWindowMinutes int
	OTPCodeLength         int

	SMSApiKey         string // presence toggles live delivery vs. log fallback
	SMSSenderID       string
	SMSTemplateID     string // DLT template ID
	SMSApiURL         string
	SMSTimeoutSeconds int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		AccessTokenMinutes: getEnvInt("ACCESS_TOKEN_MINUTES", 10),
		RefreshTokenHours:  getEnvInt("REFRESH_TOKEN_HOURS", 24),

		OTPValidityMinutes:    getEnvInt("OTP_VALIDITY_MINUTES", 5),
		OTPCooldownSeconds:    getEnvInt("OTP_COOLDOWN_SECONDS", 60),
		OTPBurstLimit:         getEnvInt("OTP_BURST_LIMIT", 3),
		OTPBurstWindowMinutes: getEnvInt("OTP_BURST_WINDOW_MINUTES", 10),
		OTPCodeLength:         getEnvInt("OTP_CODE_LENGTH", 6),

		SMSApiKey:         getEnv("SMS_API_KEY", ""),
		SMSSenderID:       getEnv("SMS_SENDER_ID", "SEVAKS"),
		SMSTemplateID:     getEnv("SMS_TEMPLATE_ID", "197302"),
		SMSApiURL:         getEnv("SMS_API_URL", "https://www.fast2sms.com/dev/bulkV2"),
		SMSTimeoutSeconds: getEnvInt("SMS_TIMEOUT_SECONDS", 10),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SMSApiKey == "" {
		log.Println("Warning: SMS_API_KEY not set. OTP delivery falls back to the operational log.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
