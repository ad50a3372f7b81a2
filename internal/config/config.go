package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the health chatbot service
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LLMConfig holds the OpenAI-compatible completion provider configuration.
// Groq's endpoint is the default since the chatbot was built against it.
type LLMConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// AuthConfig holds session token configuration
type AuthConfig struct {
	Secret        string `mapstructure:"secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if specified
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("HEALTHBOT")
	v.AutomaticEnv()

	// Read config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.base_url", "http://localhost:3000")

	v.SetDefault("database.path", "./data/health_chatbot.db")

	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "llama-3.1-8b-instant")
	v.SetDefault("llm.timeout_seconds", 30)

	v.SetDefault("auth.secret", "health-chatbot-secret-key")
	v.SetDefault("auth.token_ttl_hours", 24)
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
