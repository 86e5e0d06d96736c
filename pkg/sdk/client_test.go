package sdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aingle/aingle-sdk-go/pkg/config"
	"github.com/aingle/aingle-sdk-go/pkg/model"
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(&config.Config{
		NodeURL: srv.URL,
		Timeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

// TestCreateEntry verifies that the payload is wrapped as {"data": ...} in a
// single POST and that the node-assigned hash is returned unchanged.
func TestCreateEntry(t *testing.T) {
	var posts int
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/entries" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		posts++
		var err error
		if gotBody, err = io.ReadAll(r.Body); err != nil {
			t.Errorf("read request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"hash":"QmNewEntry","sequence":9}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	defer client.Disconnect()

	hash, err := client.CreateEntry(context.Background(), map[string]any{"msg": "hello", "n": float64(1)})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	if hash != "QmNewEntry" {
		t.Fatalf("unexpected hash: %q", hash)
	}
	if posts != 1 {
		t.Fatalf("expected exactly one POST, got %d", posts)
	}

	var wrapped map[string]map[string]any
	if err := json.Unmarshal(gotBody, &wrapped); err != nil {
		t.Fatalf("decode captured body: %v", err)
	}
	data, ok := wrapped["data"]
	if !ok {
		t.Fatalf("payload not wrapped in data field: %s", gotBody)
	}
	if data["msg"] != "hello" || data["n"] != float64(1) {
		t.Fatalf("payload altered in flight: %v", data)
	}
}

// TestCreateEntry_MissingHash verifies INVALID_ENTRY when a 2xx response
// lacks the hash field.
func TestCreateEntry_MissingHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"accepted"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	defer client.Disconnect()

	_, err := client.CreateEntry(context.Background(), "payload")
	if !model.IsKind(err, model.KindInvalidEntry) {
		t.Fatalf("expected INVALID_ENTRY, got %v", err)
	}
}

// TestStatusMapping verifies the status-to-kind table shared by the HTTP
// operations.
func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   model.Kind
	}{
		{"unauthorized", http.StatusUnauthorized, model.KindAuth},
		{"forbidden", http.StatusForbidden, model.KindAuth},
		{"not found", http.StatusNotFound, model.KindNotFound},
		{"server error", http.StatusInternalServerError, model.KindStorage},
		{"unavailable", http.StatusServiceUnavailable, model.KindStorage},
		{"teapot", http.StatusTeapot, model.KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := newTestClient(t, srv)
			defer client.Disconnect()

			_, err := client.GetNodeInfo(context.Background())
			if !model.IsKind(err, tt.want) {
				t.Fatalf("status %d: expected %s, got %v", tt.status, tt.want, err)
			}
		})
	}
}

// TestGetEntry verifies field-for-field fidelity of a fetched entry.
func TestGetEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/entries/QmTarget" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"hash": "QmTarget",
			"author": "agent-key",
			"parents": ["QmP1", "QmP0"],
			"data": {"reading": 21.5},
			"timestamp": 1700000000,
			"sequence": 42,
			"signature": "sig-bytes"
		}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	defer client.Disconnect()

	entry, err := client.GetEntry(context.Background(), "QmTarget")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if entry == nil {
		t.Fatal("expected entry, got absent")
	}

	if entry.Hash != "QmTarget" || entry.Author != "agent-key" {
		t.Fatalf("identity mismatch: %+v", entry)
	}
	if len(entry.Parents) != 2 || entry.Parents[0] != "QmP1" || entry.Parents[1] != "QmP0" {
		t.Fatalf("parents order not preserved: %v", entry.Parents)
	}
	if entry.Timestamp != 1700000000 || entry.Sequence != 42 || entry.Signature != "sig-bytes" {
		t.Fatalf("field mismatch: %+v", entry)
	}
	var data map[string]float64
	if err := json.Unmarshal(entry.Data, &data); err != nil || data["reading"] != 21.5 {
		t.Fatalf("data payload mismatch: %s (%v)", entry.Data, err)
	}
}

// TestGetEntry_Absent verifies the 404-to-absent contract: not found is a
// nil entry, not an error.
func TestGetEntry_Absent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	defer client.Disconnect()

	entry, err := client.GetEntry(context.Background(), "QmMissing")
	if err != nil {
		t.Fatalf("expected absent, got error: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil entry, got %+v", entry)
	}
}

// TestGetEntry_InvalidBody verifies INVALID_ENTRY for malformed and mistyped
// response bodies.
func TestGetEntry_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing hash", `{"author":"a","parents":[],"timestamp":1,"sequence":1,"signature":"s"}`},
		{"mistyped timestamp", `{"hash":"h","author":"a","parents":[],"timestamp":"yesterday","sequence":1,"signature":"s"}`},
		{"not json", `<html>gateway error</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newTestClient(t, srv)
			defer client.Disconnect()

			_, err := client.GetEntry(context.Background(), "QmTarget")
			if !model.IsKind(err, model.KindInvalidEntry) {
				t.Fatalf("expected INVALID_ENTRY, got %v", err)
			}
		})
	}
}

// TestGetNodeInfo verifies field fidelity of the info snapshot.
func TestGetNodeInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/info" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"node_id": "node-7",
			"version": "1.4.0",
			"uptime": 3600,
			"entries_count": 99,
			"peers_count": 3,
			"storage_backend": "rocksdb",
			"features": ["subscribe"]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	defer client.Disconnect()

	info, err := client.GetNodeInfo(context.Background())
	if err != nil {
		t.Fatalf("GetNodeInfo: %v", err)
	}
	if info.NodeID != "node-7" || info.Version != "1.4.0" || info.Uptime != 3600 {
		t.Fatalf("info mismatch: %+v", info)
	}
	if info.EntriesCount != 99 || info.PeersCount != 3 || info.StorageBackend != "rocksdb" {
		t.Fatalf("info mismatch: %+v", info)
	}
}

// TestLazyConnect verifies that operations succeed without an explicit
// Connect call, and after a Disconnect.
func TestLazyConnect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"node_id":"n","version":"1","uptime":1,"entries_count":0,"peers_count":0,"storage_backend":"mem","features":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)

	// No Connect() before the first call.
	if _, err := client.GetNodeInfo(context.Background()); err != nil {
		t.Fatalf("lazy connect failed: %v", err)
	}

	// Reconnects transparently after Disconnect.
	client.Disconnect()
	if _, err := client.GetNodeInfo(context.Background()); err != nil {
		t.Fatalf("reconnect after Disconnect failed: %v", err)
	}
	client.Disconnect()
}

// TestDisconnectIdempotent verifies that repeated Disconnect calls are
// harmless, connected or not.
func TestDisconnectIdempotent(t *testing.T) {
	client, err := NewClient(&config.Config{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	client.Disconnect()
	client.Disconnect()

	client.Connect()
	client.Disconnect()
	client.Disconnect()
}

// TestTransportFailureKinds verifies TIMEOUT for a stalled node and
// CONNECTION_FAILED for a refused dial.
func TestTransportFailureKinds(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		client, err := NewClient(&config.Config{NodeURL: srv.URL, Timeout: 50 * time.Millisecond})
		if err != nil {
			t.Fatalf("NewClient: %v", err)
		}
		defer client.Disconnect()

		_, gerr := client.GetNodeInfo(context.Background())
		if !model.IsKind(gerr, model.KindTimeout) {
			t.Fatalf("expected TIMEOUT, got %v", gerr)
		}
	})

	t.Run("refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		addr := srv.URL
		srv.Close()

		client, err := NewClient(&config.Config{NodeURL: addr, Timeout: time.Second})
		if err != nil {
			t.Fatalf("NewClient: %v", err)
		}
		defer client.Disconnect()

		_, gerr := client.GetNodeInfo(context.Background())
		if !model.IsKind(gerr, model.KindConnectionFailed) {
			t.Fatalf("expected CONNECTION_FAILED, got %v", gerr)
		}
	})
}

// TestNewClient_InvalidConfig verifies that configuration problems surface at
// construction.
func TestNewClient_InvalidConfig(t *testing.T) {
	if _, err := NewClient(&config.Config{NodeURL: "ftp://node.example"}); err == nil {
		t.Fatal("expected error for bad node URL scheme")
	}
}
