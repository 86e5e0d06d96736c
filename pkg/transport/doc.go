// Package transport performs the network I/O for the SDK: a lazily
// established HTTP client bound to the node's base URL, and WebSocket dialing
// for the subscription channel.
//
// The adapter holds at most one live HTTP client. Connect and Disconnect are
// idempotent; Request issues exactly one request/response cycle with no
// retries and no caching. Transport failures are classified into the SDK
// error taxonomy: deadline exceeded maps to TIMEOUT, DNS and refused
// connections to CONNECTION_FAILED, anything else to NETWORK_ERROR. Non-2xx
// statuses are not errors at this layer; callers receive the raw status code
// and body and apply their own mapping.
package transport
