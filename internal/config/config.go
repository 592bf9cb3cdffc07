// SPDX-License-Identifier: AGPL-3.0-only
package config

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/pbkdf2"
)

const AppVersion = "1.2.0"

// DefaultAPIBaseURL is the production social API. Override with API_BASE_URL
// to point at a local stub.
const DefaultAPIBaseURL = "https://v2.api.noroff.dev"

type AppConfig struct {
	ListenAddr  string
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Cookie store key pair derived from SESSION_SECRET.
	SessionAuthKey []byte
	SessionEncKey  []byte
}

func Load() (*AppConfig, error) {

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must be set")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}

	timeout := 30 * time.Second
	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: %q", raw)
		}
		timeout = time.Duration(secs) * time.Second
	}

	return &AppConfig{
		ListenAddr:     addr,
		APIBaseURL:     baseURL,
		HTTPTimeout:    timeout,
		SessionAuthKey: deriveKey(secret, "cookie-auth"),
		SessionEncKey:  deriveKey(secret, "cookie-enc"),
	}, nil
}

func deriveKey(secret, salt string) []byte {
	return pbkdf2.Key([]byte(secret), []byte(salt), 4096, 32, sha256.New)
}
