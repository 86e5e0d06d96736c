// Package model defines the data structures exchanged with an AIngle node and
// the SDK error taxonomy.
//
// This package contains the core data models that represent:
//   - DAG entries (Entry) as reported by the node
//   - Node information snapshots (NodeInfo)
//   - Peer and synchronization status shapes (PeerInfo, SyncStatus)
//   - The closed set of SDK error kinds (Kind, Error)
//
// These structures mirror the JSON documents served by the node's HTTP API and
// pushed over its WebSocket channel. The SDK never computes or verifies entry
// hashes or signatures; it trusts the node's responses and exposes them as-is.
//
// # Entries
//
// Entry represents one node in the AIngle DAG:
//
//	type Entry struct {
//		Hash      EntryHash       // Opaque content hash assigned by the node
//		Author    AgentPubKey     // Public key of the authoring agent
//		Parents   []EntryHash     // Parent hashes, order preserved exactly
//		Data      json.RawMessage // Arbitrary JSON payload, kept opaque
//		Timestamp Timestamp       // Epoch timestamp assigned by the node
//		Sequence  int64           // Author-local sequence number
//		Signature string          // Author signature over the entry
//	}
//
// Parents ordering is preserved exactly as received; the SDK performs no
// sorting or deduplication. Data is an opaque json.RawMessage so arbitrary
// payloads round-trip byte-for-byte.
//
// # Errors
//
// Every failure raised by the SDK is an *Error tagged with one of the seven
// Kind values, carrying a human-readable message and an optional wrapped
// cause for diagnostic chaining:
//
//	entry, err := client.GetEntry(ctx, hash)
//	if err != nil {
//		var aerr *model.Error
//		if errors.As(err, &aerr) && aerr.Kind == model.KindTimeout {
//			// retry, back off, ...
//		}
//	}
//
// The SDK performs no retries and no local recovery; every transport failure
// is classified into one of the kinds and propagated to the caller.
package model
