package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/aingle/aingle-sdk-go/pkg/config"
	"github.com/aingle/aingle-sdk-go/pkg/model"
	"github.com/aingle/aingle-sdk-go/pkg/transport"
)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Client is the AIngle client facade. All node operations go through it. A
// Client is safe for concurrent use; the HTTP connection is shared by all
// operations while each subscription owns its own WebSocket connection.
type Client struct {
	cfg  *config.Config
	http *transport.Adapter
}

// NewClient builds a Client from the validated configuration. Defaults are
// applied for missing endpoints and timeout. The configuration is read-only
// for the lifetime of the client.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	adapter, err := transport.NewAdapter(cfg.NodeURL, cfg.Timeout, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("init transport: %w", err)
	}

	return &Client{cfg: cfg, http: adapter}, nil
}

// Connect establishes the HTTP connection to the node. It is idempotent and
// optional: every operation connects lazily on first use.
func (c *Client) Connect() {
	c.http.Connect()
}

// Disconnect closes the HTTP connection. It is idempotent and leaves the
// client ready to reconnect on the next operation. Active subscriptions are
// not cancelled; each one is terminated by its own unsubscribe function or by
// the node dropping the socket.
func (c *Client) Disconnect() {
	c.http.Disconnect()
}

// ensureConnected is the single entry point every operation uses to
// establish the HTTP connection when it is not yet up.
func (c *Client) ensureConnected() {
	c.http.Connect()
}

// CreateEntry creates a new entry in the DAG from an arbitrary
// JSON-serializable payload and returns the hash assigned by the node.
func (c *Client) CreateEntry(ctx context.Context, data any) (model.EntryHash, error) {
	c.ensureConnected()

	status, body, err := c.http.Request(ctx, http.MethodPost, "/api/v1/entries", map[string]any{"data": data})
	if err != nil {
		return "", err
	}
	if !is2xx(status) {
		return "", statusError(status, body)
	}

	var result struct {
		Hash model.EntryHash `json:"hash"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", model.NewError(model.KindInvalidEntry, "decode create response", err)
	}
	if result.Hash == "" {
		return "", model.NewError(model.KindInvalidEntry, "create response is missing hash", nil)
	}
	return result.Hash, nil
}

// GetEntry retrieves an entry by hash. A nil entry with a nil error means the
// node does not have the entry; this is the documented not-found contract,
// distinct from transport failure.
func (c *Client) GetEntry(ctx context.Context, hash model.EntryHash) (*model.Entry, error) {
	c.ensureConnected()

	status, body, err := c.http.Request(ctx, http.MethodGet, "/api/v1/entries/"+url.PathEscape(hash), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if !is2xx(status) {
		return nil, statusError(status, body)
	}

	var entry model.Entry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, model.NewError(model.KindInvalidEntry, "decode entry", err)
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetNodeInfo retrieves a snapshot of the node's state.
func (c *Client) GetNodeInfo(ctx context.Context) (*model.NodeInfo, error) {
	c.ensureConnected()

	status, body, err := c.http.Request(ctx, http.MethodGet, "/api/v1/info", nil)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, statusError(status, body)
	}

	var info model.NodeInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, model.NewError(model.KindInvalidEntry, "decode node info", err)
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &info, nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

// statusError maps a non-2xx response onto the SDK error taxonomy:
// 401/403 to AUTH_ERROR, 404 to NOT_FOUND, 5xx to STORAGE_ERROR, and any
// other status to NETWORK_ERROR. GetEntry resolves its 404-to-absent contract
// before this mapping applies.
func statusError(status int, body []byte) error {
	msg := fmt.Sprintf("node returned status %d", status)
	if len(body) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, body)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return model.NewError(model.KindAuth, msg, nil)
	case status == http.StatusNotFound:
		return model.NewError(model.KindNotFound, msg, nil)
	case status >= 500:
		return model.NewError(model.KindStorage, msg, nil)
	default:
		return model.NewError(model.KindNetwork, msg, nil)
	}
}
