package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds the credentials for the external services. For the web
// path keys usually arrive per request instead; env-loaded keys only
// serve the CLI path and are never written anywhere.
type APIKeys struct {
	OpenAI     string
	AssemblyAI string
	Gemini     string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; keys may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// Keys are optional at this point; operations that need one fail fast
// when it is absent.
func GetAPIKeys() (*APIKeys, error) {
	keys := &APIKeys{
		OpenAI:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		AssemblyAI: strings.TrimSpace(os.Getenv("ASSEMBLYAI_API_KEY")),
		Gemini:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}

	if keys.OpenAI != "" {
		if !strings.HasPrefix(keys.OpenAI, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(keys.OpenAI) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	if keys.Gemini != "" {
		if !strings.HasPrefix(keys.Gemini, "AIza") {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
	}

	if keys.AssemblyAI != "" && len(keys.AssemblyAI) < 16 {
		return nil, fmt.Errorf("invalid ASSEMBLYAI_API_KEY format: too short")
	}

	return keys, nil
}

// InitializeConfig loads the environment and returns the API keys found
// there. This is the main entry point for CLI configuration loading.
func InitializeConfig() (*APIKeys, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	keys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return keys, nil
}
