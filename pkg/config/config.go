// Package config defines the runtime configuration for the SDK: node HTTP
// endpoint, WebSocket endpoint, request timeout, and debug mode. It also
// provides validation, defaulting, and file/environment loading helpers.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Default endpoints of a locally running AIngle node.
const (
	DefaultNodeURL = "http://localhost:8080"
	DefaultWSURL   = "ws://localhost:8081"
	DefaultTimeout = 30 * time.Second
)

// Config holds all SDK settings required to talk to an AIngle node.
// Use Validate to fill implicit defaults and to check the endpoint URLs.
// A Config is read-only for the lifetime of a client constructed from it.
type Config struct {
	// NodeURL is the HTTP API base URL of the node.
	// Default: http://localhost:8080
	NodeURL string `json:"node_url" yaml:"node_url" mapstructure:"node_url"`
	// WSURL is the WebSocket endpoint for entry subscriptions.
	// Default: ws://localhost:8081
	WSURL string `json:"ws_url" yaml:"ws_url" mapstructure:"ws_url"`
	// Timeout bounds each HTTP request and the WebSocket handshake. It does
	// not bound the lifetime of an established subscription.
	// Default: 30s.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	// Debug enables a human-readable trace of connection attempts.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`
}

// Validate normalizes the configuration by applying implicit defaults for
// NodeURL, WSURL and Timeout, and verifies that both endpoints parse and use
// the expected schemes (http/https for the node, ws/wss for the socket).
func (c *Config) Validate() error {
	if c.NodeURL == "" {
		c.NodeURL = DefaultNodeURL
	}
	if c.WSURL == "" {
		c.WSURL = DefaultWSURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}

	nu, err := url.Parse(c.NodeURL)
	if err != nil {
		return fmt.Errorf("invalid node URL %q: %w", c.NodeURL, err)
	}
	if nu.Scheme != "http" && nu.Scheme != "https" {
		return fmt.Errorf("node URL %q must use http or https", c.NodeURL)
	}

	wu, err := url.Parse(c.WSURL)
	if err != nil {
		return fmt.Errorf("invalid websocket URL %q: %w", c.WSURL, err)
	}
	if wu.Scheme != "ws" && wu.Scheme != "wss" {
		return fmt.Errorf("websocket URL %q must use ws or wss", c.WSURL)
	}

	return nil
}
