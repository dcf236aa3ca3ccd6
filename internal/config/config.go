package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel       = "gemini-2.0-flash"
	DefaultTemperature = 0.7
	DefaultPort        = "8080"
)

type Generation struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	// BaseURL overrides the Gemini API endpoint, e.g. for a regional proxy.
	BaseURL string `yaml:"base_url"`
}

type Config struct {
	GeminiAPIKey  string
	Port          string
	AllowedOrigin string
	LogLevel      string
	Generation    Generation
}

// Load reads the process environment. GEMINI_API_KEY may be supplied in plain
// text or as GEMINI_API_KEY_ENCRYPTED sealed with CRYPTO_KEY.
func Load() (*Config, error) {
	apiKey, err := loadAPIKey()
	if err != nil {
		return nil, err
	}

	generation := Generation{Model: DefaultModel, Temperature: DefaultTemperature}
	if path := os.Getenv("DEBATE_CONFIG"); path != "" {
		generation, err = LoadGeneration(path)
		if err != nil {
			return nil, err
		}
	}

	return &Config{
		GeminiAPIKey:  apiKey,
		Port:          envOr("PORT", DefaultPort),
		AllowedOrigin: envOr("ALLOWED_ORIGIN", "*"),
		LogLevel:      envOr("LOG_LEVEL", "info"),
		Generation:    generation,
	}, nil
}

// LoadGeneration reads model settings from a YAML file, filling defaults for
// fields it leaves out.
func LoadGeneration(path string) (Generation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Generation{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var g Generation
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Generation{}, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	if g.Model == "" {
		g.Model = DefaultModel
	}
	if g.Temperature == 0 {
		g.Temperature = DefaultTemperature
	}
	if g.Temperature < 0 || g.Temperature > 2 {
		return Generation{}, fmt.Errorf("temperature must be between 0 and 2, got %v", g.Temperature)
	}
	return g, nil
}

func loadAPIKey() (string, error) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}

	encrypted := os.Getenv("GEMINI_API_KEY_ENCRYPTED")
	if encrypted == "" {
		return "", errors.New("GEMINI_API_KEY is required")
	}
	key, err := Decrypt(os.Getenv("CRYPTO_KEY"), encrypted)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt GEMINI_API_KEY_ENCRYPTED: %w", err)
	}
	return key, nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
