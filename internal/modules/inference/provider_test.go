package inference

import (
	"context"
	"testing"

	appcfg "github.com/pentaview/core/internal/config"
	"github.com/stretchr/testify/assert"
	jetapi "go.jetify.com/ai/api"
)

func TestNormalizeProviderType(t *testing.T) {
	assert.True(t, isAnthropicProviderType("Anthropic"))
	assert.True(t, isAnthropicProviderType(" anthropic "))
	assert.False(t, isAnthropicProviderType("openai"))

	assert.True(t, isOpenAICompatibleProviderType("openai-compatible"))
	assert.True(t, isOpenAICompatibleProviderType("OpenAI_Compatible"))
	assert.True(t, isOpenAICompatibleProviderType("openai compatible"))
	assert.False(t, isOpenAICompatibleProviderType("openai"))
}

func TestNormalizeOpenAIBaseURL(t *testing.T) {
	cases := map[string]string{
		"":                             "",
		"https://api.example.com":      "https://api.example.com/v1",
		"https://api.example.com/":     "https://api.example.com/v1",
		"https://api.example.com/v1":   "https://api.example.com/v1",
		"https://api.example.com/v1/":  "https://api.example.com/v1",
		"https://api.example.com/sub":  "https://api.example.com/sub/v1",
		"not a url but has no scheme/": "not a url but has no scheme",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeOpenAIBaseURL(in), "input %q", in)
	}
}

func TestNormalizeOpenAICompatibleEndpoint(t *testing.T) {
	cases := map[string]string{
		"":                            "https://api.openai.com",
		"https://api.example.com":     "https://api.example.com",
		"https://api.example.com/":    "https://api.example.com",
		"https://api.example.com/v1":  "https://api.example.com",
		"https://api.example.com/v1/": "https://api.example.com",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeOpenAICompatibleEndpoint(in), "input %q", in)
	}
}

func TestExtractTextFromResponseHandlesMissingContent(t *testing.T) {
	assert.Empty(t, extractTextFromResponse(nil))
	assert.Empty(t, extractTextFromResponse(&jetapi.Response{}))
}

func TestNewPicksFirstEnabledProvider(t *testing.T) {
	_, err := New(appcfg.AIConfig{Providers: []appcfg.AIProvider{
		{ID: "off", Type: "anthropic", APIKey: "k", Enabled: false},
	}})
	assert.Error(t, err)

	c, err := New(appcfg.AIConfig{Providers: []appcfg.AIProvider{
		{ID: "off", Type: "anthropic", APIKey: "k", Enabled: false},
		{ID: "primary", Type: "anthropic", APIKey: "k", Enabled: true},
		{ID: "backup", Type: "openai", APIKey: "k", Enabled: true},
	}})
	assert.NoError(t, err)
	assert.Equal(t, "primary", c.Provider().ID)
}

func TestGenerateWithoutProviderFails(t *testing.T) {
	var c *Client
	_, err := c.Generate(context.Background(), "system", "user")
	assert.Error(t, err)
}
