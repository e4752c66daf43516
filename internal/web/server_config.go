package web

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvListenAddr = "BASEX402_LISTEN"
	EnvDevMode    = "BASEX402_DEV"
	EnvBaseURL    = "BASEX402_BASE_URL"
)

// DefaultListenAddr is used when neither a flag nor BASEX402_LISTEN is set.
const DefaultListenAddr = ":8080"

// ProductionBaseURL prefixes image and animation links in token metadata.
const ProductionBaseURL = "https://basex402.com"

// ServerConfig contains settings for running the preview server.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
	// BaseURL is the public origin written into metadata links.
	BaseURL string
}

func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	baseURL := os.Getenv(EnvBaseURL)
	if baseURL == "" {
		baseURL = ProductionBaseURL
	}

	return ServerConfig{ListenAddr: listenAddr, DevMode: devMode, BaseURL: baseURL}, nil
}
