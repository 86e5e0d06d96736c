package sdk

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/aingle/aingle-sdk-go/pkg/model"
	"github.com/aingle/aingle-sdk-go/pkg/transport"
)

// UnsubscribeFunc cancels a subscription: it stops the listener and closes
// the subscription's WebSocket connection. Calling it more than once is safe;
// calls after the first are no-ops.
type UnsubscribeFunc func()

const closeWriteWait = time.Second

// subscription owns one WebSocket connection and the listener consuming it.
// Nothing here is shared with the facade or with other subscriptions.
type subscription struct {
	conn *websocket.Conn
	done chan struct{}
	once sync.Once
}

// Subscribe opens a WebSocket connection to the node and starts one listener
// goroutine delivering every pushed entry to callback, one frame at a time in
// arrival order. The callback runs on the listener goroutine: a slow callback
// delays the next frame, and a panicking callback propagates.
//
// Each call creates an independent subscription with its own connection.
// The returned function cancels the subscription and may be called any number
// of times.
func (c *Client) Subscribe(callback func(model.Entry)) (UnsubscribeFunc, error) {
	conn, err := transport.DialSocket(c.cfg.WSURL, c.cfg.Timeout, c.cfg.Debug)
	if err != nil {
		return nil, err
	}

	sub := &subscription{
		conn: conn,
		done: make(chan struct{}),
	}
	go sub.listen(callback)

	return sub.unsubscribe, nil
}

func (s *subscription) listen(callback func(model.Entry)) {
	for {
		_, frame, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.done:
				// cancelled via unsubscribe
			default:
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					zap.L().Info("subscription closed by node")
				} else {
					zap.L().Error("subscription read failed", zap.Error(err))
				}
			}
			return
		}

		var entry model.Entry
		if err := json.Unmarshal(frame, &entry); err != nil {
			zap.L().Error("subscription frame is not a valid entry", zap.Error(err))
			_ = s.conn.Close()
			return
		}
		if err := entry.Validate(); err != nil {
			zap.L().Error("subscription entry failed validation", zap.Error(err))
			_ = s.conn.Close()
			return
		}

		callback(entry)
	}
}

func (s *subscription) unsubscribe() {
	s.once.Do(func() {
		close(s.done)
		deadline := time.Now().Add(closeWriteWait)
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		_ = s.conn.Close()
	})
}
