package configuration

import (
	"errors"
	"os"
	"strings"
	"time"
)

const defaultYouTubeBaseURL = "https://youtube.googleapis.com/"

var ErrMissingAPIKey = errors.New("youtube api key not configured")

// YouTubeConfig is the explicit configuration injected into the catalog client.
type YouTubeConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// GetYouTubeConfig resolves the catalog configuration: environment first, then
// the JSON config, then defaults. The API key has no default.
func GetYouTubeConfig() (*YouTubeConfig, error) {
	timeout := 10 * time.Second
	if C.YouTube.TimeoutSeconds > 0 {
		timeout = time.Duration(C.YouTube.TimeoutSeconds) * time.Second
	}
	config := &YouTubeConfig{
		APIKey:  getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", ""),
		BaseURL: getConfigValue(C.YouTube.BaseURL, "YOUTUBE_BASE_URL", defaultYouTubeBaseURL),
		Timeout: timeout,
	}
	if config.APIKey == "" {
		return config, ErrMissingAPIKey
	}
	return config, nil
}

// getConfigValue gets value from environment first, then config, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	// Placeholders such as YOUR_YOUTUBE_API_KEY count as unset
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
