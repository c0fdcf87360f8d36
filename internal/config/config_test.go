package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("SERVER_ADDR", "")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.moonshot.cn/v1", config.LLM.BaseURL)
	assert.Equal(t, "moonshot-v1-8k", config.LLM.Model)
	assert.InDelta(t, 0.3, config.LLM.Temperature, 0.001)
	assert.Equal(t, 30*time.Second, config.LLM.Timeout)
	assert.Equal(t, ":5000", config.Server.Addr)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_BASE_URL", "https://api.example.com/v1/")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("SERVER_ADDR", ":8080")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", config.LLM.APIKey)
	// Trailing slash is trimmed so URL joins stay predictable
	assert.Equal(t, "https://api.example.com/v1", config.LLM.BaseURL)
	assert.Equal(t, "gpt-4o-mini", config.LLM.Model)
	assert.Equal(t, 5*time.Second, config.LLM.Timeout)
	assert.Equal(t, ":8080", config.Server.Addr)
}

func TestLoadConfigInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")

	config, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, config)
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		baseURL string
		model   string
		wantErr bool
	}{
		{
			name:    "all fields present",
			apiKey:  "sk-test",
			baseURL: "https://api.example.com/v1",
			model:   "gpt-4o-mini",
			wantErr: false,
		},
		{
			name:    "missing api key",
			apiKey:  "",
			baseURL: "https://api.example.com/v1",
			model:   "gpt-4o-mini",
			wantErr: true,
		},
		{
			name:    "missing model",
			apiKey:  "sk-test",
			baseURL: "https://api.example.com/v1",
			model:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				LLM: LLMConfig{
					APIKey:  tt.apiKey,
					BaseURL: tt.baseURL,
					Model:   tt.model,
				},
			}

			err := ValidateLLMConfig(config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJiraConfig(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		email   string
		token   string
		wantErr bool
	}{
		{
			name:    "all fields present",
			baseURL: "https://example.atlassian.net",
			email:   "user@example.com",
			token:   "test-token",
			wantErr: false,
		},
		{
			name:    "missing base URL",
			baseURL: "",
			email:   "user@example.com",
			token:   "test-token",
			wantErr: true,
		},
		{
			name:    "missing email",
			baseURL: "https://example.atlassian.net",
			email:   "",
			token:   "test-token",
			wantErr: true,
		},
		{
			name:    "missing token",
			baseURL: "https://example.atlassian.net",
			email:   "user@example.com",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				Jira: JiraConfig{
					BaseURL: tt.baseURL,
					Email:   tt.email,
					Token:   tt.token,
				},
			}

			err := ValidateJiraConfig(config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
