package transport

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/aingle/aingle-sdk-go/pkg/model"
)

// DialSocket opens one WebSocket connection to wsURL. The handshake is
// bounded by timeout; any failure to complete it is reported as
// CONNECTION_FAILED. The returned connection is owned by the caller.
func DialSocket(wsURL string, timeout time.Duration, debug bool) (*websocket.Conn, error) {
	if debug {
		zap.L().Info("opening websocket", zap.String("ws_url", wsURL), zap.Duration("handshake_timeout", timeout))
	}

	dialer := websocket.Dialer{HandshakeTimeout: timeout}
	conn, resp, err := dialer.Dial(wsURL, nil)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, model.NewError(model.KindConnectionFailed, "websocket handshake failed", err)
	}
	return conn, nil
}
