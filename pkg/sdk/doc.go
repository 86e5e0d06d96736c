// Package sdk exposes the high-level AIngle client. It wires together the
// HTTP transport for entry and node-info operations and the WebSocket channel
// for real-time entry subscriptions.
//
// # Quick Start
//
// Create a client with configuration, then call its operations:
//
//	import (
//		"context"
//
//		"github.com/aingle/aingle-sdk-go/pkg/config"
//		"github.com/aingle/aingle-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		client, err := sdk.NewClient(&config.Config{
//			NodeURL: "http://localhost:8080",
//			WSURL:   "ws://localhost:8081",
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer client.Disconnect()
//
//		ctx := context.Background()
//
//		hash, err := client.CreateEntry(ctx, map[string]any{"msg": "Hello, AIngle!"})
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		entry, err := client.GetEntry(ctx, hash)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("entry: %+v\n", entry)
//	}
//
// # Connection Lifecycle
//
// Connect and Disconnect are idempotent. Every operation lazily connects on
// first use, so calling Connect explicitly is optional. Callers are
// responsible for releasing the client on every exit path, typically with
// defer client.Disconnect().
//
// # Subscriptions
//
// Subscribe opens a dedicated WebSocket connection and delivers incoming
// entries to the callback one at a time, in arrival order:
//
//	unsub, err := client.Subscribe(func(e model.Entry) {
//		fmt.Println("new entry:", e.Hash)
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer unsub()
//
// Each Subscribe call is fully independent: its own connection, its own
// listener goroutine, no state shared with other subscriptions or with the
// HTTP side of the client. Disconnect does not cancel active subscriptions;
// call the unsubscribe function for that.
//
// # Error Handling
//
// Every failure is a *model.Error carrying one of the seven kinds defined in
// the model package. The SDK performs no retries; callers decide how to react:
//
//	hash, err := client.CreateEntry(ctx, payload)
//	if model.IsKind(err, model.KindTimeout) {
//		// back off and retry
//	}
//
// A not-found entry is a non-error: GetEntry returns (nil, nil) when the node
// responds 404.
//
// # Logging
//
// init configures a default global zap logger. Applications may replace it
// with zap.ReplaceGlobals(...) if they need custom logging. With Debug
// enabled in the configuration, the SDK traces connection attempts and
// request outcomes.
package sdk
