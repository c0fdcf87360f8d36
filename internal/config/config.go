// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application.
type Config struct {
	LLM    LLMConfig
	Jira   JiraConfig
	Server ServerConfig
}

// LLMConfig holds settings for the chat-completion provider.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// JiraConfig holds default Jira credentials for the CLI surface. The HTTP
// surface ignores these: it uses the credentials submitted with each request.
type JiraConfig struct {
	BaseURL string
	Email   string
	Token   string
	Timeout time.Duration
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	Addr string
}

// LoadConfig initializes and loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("llm.api.key", "LLM_API_KEY")
	v.BindEnv("llm.base.url", "LLM_BASE_URL")
	v.BindEnv("llm.model", "LLM_MODEL")
	v.BindEnv("llm.temperature", "LLM_TEMPERATURE")
	v.BindEnv("http.timeout", "HTTP_TIMEOUT")
	v.BindEnv("server.addr", "SERVER_ADDR")
	v.BindEnv("jira.url", "JIRA_URL")
	v.BindEnv("jira.email", "JIRA_EMAIL")
	v.BindEnv("jira.token", "JIRA_TOKEN")

	v.SetDefault("llm.base.url", "https://api.moonshot.cn/v1")
	v.SetDefault("llm.model", "moonshot-v1-8k")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("server.addr", ":5000")

	timeout := v.GetDuration("http.timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %q", v.GetString("http.timeout"))
	}

	config := &Config{
		LLM: LLMConfig{
			APIKey:      v.GetString("llm.api.key"),
			BaseURL:     strings.TrimRight(v.GetString("llm.base.url"), "/"),
			Model:       v.GetString("llm.model"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     timeout,
		},
		Jira: JiraConfig{
			BaseURL: v.GetString("jira.url"),
			Email:   v.GetString("jira.email"),
			Token:   v.GetString("jira.token"),
			Timeout: timeout,
		},
		Server: ServerConfig{
			Addr: v.GetString("server.addr"),
		},
	}

	return config, nil
}

// ValidateLLMConfig ensures the chat-completion provider can be reached.
func ValidateLLMConfig(config *Config) error {
	var missingVars []string

	if config.LLM.APIKey == "" {
		missingVars = append(missingVars, "LLM_API_KEY")
	}
	if config.LLM.BaseURL == "" {
		missingVars = append(missingVars, "LLM_BASE_URL")
	}
	if config.LLM.Model == "" {
		missingVars = append(missingVars, "LLM_MODEL")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}

// ValidateJiraConfig validates Jira-specific configuration. Only the CLI
// surface requires it; the HTTP surface carries credentials per request.
func ValidateJiraConfig(config *Config) error {
	var missingVars []string

	if config.Jira.BaseURL == "" {
		missingVars = append(missingVars, "JIRA_URL")
	}
	if config.Jira.Email == "" {
		missingVars = append(missingVars, "JIRA_EMAIL")
	}
	if config.Jira.Token == "" {
		missingVars = append(missingVars, "JIRA_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}
