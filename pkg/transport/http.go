package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/aingle/aingle-sdk-go/pkg/model"
)

// Adapter owns at most one live HTTP client bound to a node's base URL.
// The zero state is disconnected; Connect and Disconnect move between the
// connected and disconnected states idempotently. An Adapter is safe for
// concurrent use.
type Adapter struct {
	baseURL *url.URL
	timeout time.Duration
	debug   bool

	mu     sync.Mutex
	client *http.Client
}

// NewAdapter builds a disconnected Adapter for the given node base URL.
// The URL is parsed eagerly so misconfiguration fails at construction, not on
// the first request.
func NewAdapter(nodeURL string, timeout time.Duration, debug bool) (*Adapter, error) {
	parsed, err := url.Parse(nodeURL)
	if err != nil {
		return nil, fmt.Errorf("parse node URL: %w", err)
	}
	return &Adapter{
		baseURL: parsed,
		timeout: timeout,
		debug:   debug,
	}, nil
}

// Connect establishes the HTTP client. Calling Connect on an already
// connected adapter is a no-op.
func (a *Adapter) Connect() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.client != nil {
		return
	}
	if a.debug {
		zap.L().Info("connecting to node", zap.String("node_url", a.baseURL.String()), zap.Duration("timeout", a.timeout))
	}
	a.client = &http.Client{Timeout: a.timeout}
}

// Connected reports whether the HTTP client is established.
func (a *Adapter) Connected() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.client != nil
}

// Disconnect releases the HTTP client, closing idle connections. Safe to call
// multiple times; leaves the adapter in the same state as freshly constructed.
func (a *Adapter) Disconnect() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.client == nil {
		return
	}
	if a.debug {
		zap.L().Info("disconnecting from node", zap.String("node_url", a.baseURL.String()))
	}
	a.client.CloseIdleConnections()
	a.client = nil
}

// Request issues a single request against the node. body, when non-nil, is
// serialized as JSON. The raw status code and response body are returned for
// any completed HTTP exchange, including non-2xx ones; only transport-level
// failures produce an error, classified into the SDK taxonomy.
func (a *Adapter) Request(ctx context.Context, method, path string, body any) (int, []byte, error) {
	a.mu.Lock()
	client := a.client
	a.mu.Unlock()
	if client == nil {
		return 0, nil, model.NewError(model.KindConnectionFailed, "transport is not connected", nil)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, model.NewError(model.KindInvalidEntry, "encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return 0, nil, model.NewError(model.KindNetwork, "invalid request path", err)
	}
	fullURL := a.baseURL.ResolveReference(ref).String()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return 0, nil, model.NewError(model.KindNetwork, "build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, classify(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			zap.L().Error("failed to close response body", zap.Error(cerr))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, model.NewError(model.KindNetwork, "read response body", err)
	}

	if a.debug {
		zap.L().Info("node request completed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
	}

	return resp.StatusCode, data, nil
}

// classify maps a transport-level failure onto the SDK error taxonomy.
// Deadline and timeout conditions win over everything else; DNS failures and
// refused or unroutable dials count as connection failures; the remainder is
// generic network trouble.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.NewError(model.KindTimeout, "request deadline exceeded", err)
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return model.NewError(model.KindTimeout, "request timed out", err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return model.NewError(model.KindConnectionFailed, "DNS resolution failed", err)
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return model.NewError(model.KindConnectionFailed, "connection failed", err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return model.NewError(model.KindConnectionFailed, "connection failed", err)
	}

	return model.NewError(model.KindNetwork, "request failed", err)
}
