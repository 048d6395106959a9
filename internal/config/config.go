package config

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"alfredoptarigan/resume-optimizer/internal/services"
)

type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Prompt    PromptConfig
	Converter ConverterConfig
	Storage   StorageConfig
}

type ServerConfig struct {
	Port  string
	Env   string
	Debug bool
}

type AIConfig struct {
	DefaultProvider    string
	SupportedProviders []string
	Providers          map[string]services.ProviderSettings
	Timeout            time.Duration
}

type PromptConfig struct {
	BasePromptPath string
	MaxInputLength int
}

type ConverterConfig struct {
	Port string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:  getEnv("PORT", "5000"),
			Env:   getEnv("ENV", "development"),
			Debug: getEnvAsBool("DEBUG", false),
		},
		AI: AIConfig{
			DefaultProvider:    strings.ToLower(getEnv("DEFAULT_AI_PROVIDER", services.ProviderMistral)),
			SupportedProviders: getEnvAsList("SUPPORTED_PROVIDERS", "openai,anthropic,mistral"),
			Providers: map[string]services.ProviderSettings{
				services.ProviderOpenAI: {
					APIKey:       getEnv("OPENAI_API_KEY", ""),
					BaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
					DefaultModel: getEnv("OPENAI_DEFAULT_MODEL", ""),
				},
				services.ProviderAnthropic: {
					APIKey:       getEnv("ANTHROPIC_API_KEY", ""),
					BaseURL:      getEnv("ANTHROPIC_BASE_URL", ""),
					DefaultModel: getEnv("ANTHROPIC_DEFAULT_MODEL", ""),
				},
				services.ProviderMistral: {
					APIKey:       getEnv("MISTRAL_API_KEY", ""),
					BaseURL:      getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai"),
					DefaultModel: getEnv("MISTRAL_DEFAULT_MODEL", ""),
				},
				services.ProviderGemini: {
					APIKey:       getEnv("GEMINI_API_KEY", ""),
					BaseURL:      getEnv("GEMINI_BASE_URL", ""),
					DefaultModel: getEnv("GEMINI_DEFAULT_MODEL", ""),
				},
			},
			Timeout: getEnvAsDuration("PROVIDER_TIMEOUT", "0s"),
		},
		Prompt: PromptConfig{
			BasePromptPath: getEnv("BASE_PROMPT_PATH", "inputs/base_prompt.md"),
			MaxInputLength: getEnvAsInt("MAX_INPUT_LENGTH", 15000),
		},
		Converter: ConverterConfig{
			Port: getEnv("CONVERTER_PORT", "5001"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

// RegistryConfig returns the provider settings in the form the registry takes.
// A zero Timeout leaves provider calls bounded only by the request context.
func (c *Config) RegistryConfig() services.RegistryConfig {
	return services.RegistryConfig{
		DefaultProvider: c.AI.DefaultProvider,
		Supported:       c.AI.SupportedProviders,
		Providers:       c.AI.Providers,
		HTTPClient:      &http.Client{Timeout: c.AI.Timeout},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

// getEnvAsList splits a comma-separated value, lowercasing and dropping blanks.
func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
