package model

import "encoding/json"

// EntryHash is the opaque content hash of a DAG entry. The SDK performs no
// validation of its format.
type EntryHash = string

// AgentPubKey is the public key identifying the agent that authored an entry.
type AgentPubKey = string

// Timestamp is an epoch timestamp as reported by the node.
type Timestamp = int64

// Entry is one node in the AIngle DAG as represented to clients. Entries are
// immutable once constructed; hash and signature are assigned and verified by
// the remote node, never locally.
type Entry struct {
	Hash      EntryHash       `json:"hash"`
	Author    AgentPubKey     `json:"author"`
	Parents   []EntryHash     `json:"parents"`
	Data      json.RawMessage `json:"data"`
	Timestamp Timestamp       `json:"timestamp"`
	Sequence  int64           `json:"sequence"`
	Signature string          `json:"signature"`
}

// Validate checks that the fields the node is required to populate are
// present. It reports an *Error of kind KindInvalidEntry when they are not.
func (e *Entry) Validate() error {
	if e.Hash == "" {
		return NewError(KindInvalidEntry, "entry is missing hash", nil)
	}
	if e.Author == "" {
		return NewError(KindInvalidEntry, "entry is missing author", nil)
	}
	return nil
}

// NodeInfo is a point-in-time snapshot of an AIngle node. It has no lifecycle
// beyond single-response validity.
type NodeInfo struct {
	NodeID         string   `json:"node_id"`
	Version        string   `json:"version"`
	Uptime         int64    `json:"uptime"`
	EntriesCount   int64    `json:"entries_count"`
	PeersCount     int64    `json:"peers_count"`
	StorageBackend string   `json:"storage_backend"`
	Features       []string `json:"features"`
}

// Validate checks that the node populated the identifying fields of the
// snapshot.
func (n *NodeInfo) Validate() error {
	if n.NodeID == "" {
		return NewError(KindInvalidEntry, "node info is missing node_id", nil)
	}
	return nil
}

// PeerInfo describes one peer of the node. No operation fetches peers in this
// version; the shape is reserved for the upcoming peers endpoint.
type PeerInfo struct {
	PeerID    string    `json:"peer_id"`
	Address   string    `json:"address"`
	Quality   int       `json:"quality"`
	LastSeen  Timestamp `json:"last_seen"`
	LatestSeq int64     `json:"latest_seq"`
}

// SyncStatus describes the node's synchronization state. Reserved alongside
// PeerInfo.
type SyncStatus struct {
	Syncing  bool      `json:"syncing"`
	Pending  int64     `json:"pending"`
	LastSync Timestamp `json:"last_sync"`
}
