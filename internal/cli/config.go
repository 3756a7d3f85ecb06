package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	TokenFile string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("TRACKER_SERVER", "http://localhost:8000"),
		TokenFile: getEnvOrDefault("TRACKER_TOKEN_FILE", defaultTokenFile()),
		Output:    "text",
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tracker/token"
	}
	return filepath.Join(home, ".tracker", "token")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
