// Package inference wraps the configured AI backend behind a single
// Generate call. The client is built once at startup and lives for the
// process lifetime.
package inference

import (
	"context"
	"errors"

	appcfg "github.com/pentaview/core/internal/config"
)

// Generator produces text from a system instruction and a user message.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Client is the process-wide inference client bound to one provider.
type Client struct {
	provider *appcfg.AIProvider
}

// Default is the global client, set by New.
var Default *Client

var errNoProvider = errors.New("no enabled AI provider configured")

// New selects the first enabled provider from config and builds the client.
func New(cfg appcfg.AIConfig) (*Client, error) {
	for _, provider := range cfg.Providers {
		if !provider.Enabled {
			continue
		}
		selected := provider
		c := &Client{provider: &selected}
		Default = c
		return c, nil
	}
	return nil, errNoProvider
}

// Provider returns the bound provider config.
func (c *Client) Provider() *appcfg.AIProvider { return c.provider }

// Generate runs one completion. A nil error with empty text means the call
// succeeded but the response carried no usable text content.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.provider == nil {
		return "", errNoProvider
	}
	return generate(ctx, c.provider, system, user)
}
