/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the public pet-store service.
	DefaultBaseURL = "https://petstore.swagger.io/v2"

	// DefaultContentType is sent on every request unless an operation
	// overrides it.
	DefaultContentType = "application/json"
)

// Target selects what the suites run against.
type Target string

const (
	// TargetFake runs an in-process twin of the service.
	TargetFake Target = "fake"
	// TargetLive runs against BaseURL.
	TargetLive Target = "live"
)

type TestConfig struct {
	BaseURL            string
	Target             Target
	ContentType        string
	RequestTimeout     time.Duration
	APIKey             string
	InventoryAPIKey    string
	InvalidAPIKey      string
	OAuthToken         string
	InvalidOAuthToken  string
	SkipIntegration    bool
	DebugLogging       bool
	LogRequests        bool
	LogResponses       bool
	LogCurl            bool
	ValidateSchema     bool
	StrictDecoding     bool
	DisableColorOutput bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if configuration values are missing or malformed.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:            getStringWithDefault("PETSTORE_BASE_URL", DefaultBaseURL),
		Target:             Target(getStringWithDefault("PETSTORE_TARGET", string(TargetFake))),
		ContentType:        getStringWithDefault("PETSTORE_CONTENT_TYPE", DefaultContentType),
		RequestTimeout:     getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		APIKey:             getStringWithDefault("PETSTORE_API_KEY", "special-key"),
		InventoryAPIKey:    getStringWithDefault("PETSTORE_INVENTORY_API_KEY", "api-key"),
		InvalidAPIKey:      getStringWithDefault("PETSTORE_INVALID_API_KEY", "invalid-key"),
		OAuthToken:         getStringWithDefault("PETSTORE_OAUTH_TOKEN", "test:abc123"),
		InvalidOAuthToken:  getStringWithDefault("PETSTORE_INVALID_OAUTH_TOKEN", "invalid-token"),
		SkipIntegration:    getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:       getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:        getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:       getBoolWithDefault("LOG_RESPONSES", false),
		LogCurl:            getBoolWithDefault("LOG_CURL", false),
		ValidateSchema:     getBoolWithDefault("VALIDATE_SCHEMA", false),
		StrictDecoding:     getBoolWithDefault("STRICT_DECODING", false),
		DisableColorOutput: getBoolWithDefault("NO_COLOR", false),
	}

	// Debug logging implies everything else.
	if config.DebugLogging {
		config.LogRequests = true
		config.LogResponses = true
		config.LogCurl = true
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env", // From test/api/suites directory
		"../.env",
		".env",
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Load never overrides variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that configuration values are present and usable.
func validateRequiredFields(config *TestConfig) error {
	var problems []string

	required := map[string]string{
		"PETSTORE_BASE_URL":     config.BaseURL,
		"PETSTORE_CONTENT_TYPE": config.ContentType,
		"PETSTORE_API_KEY":      config.APIKey,
		"PETSTORE_OAUTH_TOKEN":  config.OAuthToken,
	}

	for envVar, value := range required {
		if value == "" {
			problems = append(problems, envVar+" is empty")
		}
	}

	if config.BaseURL != "" {
		if u, err := url.Parse(config.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("PETSTORE_BASE_URL %q is not an absolute URL", config.BaseURL))
		}
	}

	if config.Target != TargetFake && config.Target != TargetLive {
		problems = append(problems, fmt.Sprintf("PETSTORE_TARGET %q must be %q or %q", config.Target, TargetFake, TargetLive))
	}

	if config.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		// Map iteration order is random, keep the message stable.
		slices.Sort(problems)

		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrInvalidConfig, strings.Join(problems, ", "))
	}

	return nil
}
