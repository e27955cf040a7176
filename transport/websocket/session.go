package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/match"
)

const (
	pingInterval = 30 * time.Second
	pongWait     = 2 * pingInterval
	writeWait    = 10 * time.Second
)

type session struct {
	logger *slog.Logger
	conn   *websocket.Conn
	player *entity.Player

	controller *match.Controller

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// Present queues the snapshot for the client. It runs under the controller lock, so it never blocks;
// a client whose buffer is full is disconnected.
func (that *session) Present(snapshot match.Snapshot) {
	that.push(actionState, snapshot)
}

func (that *session) pushError(action string, err error) {
	that.push(actionError, ErrorPayload{Action: action, Error: err.Error()})
}

func (that *session) push(action string, payload any) {
	data, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	select {
	case <-that.done:
	case that.send <- data:
	default:
		// a skipped state would leave the client drawing a stale board; drop the connection instead
		that.logger.Warn("client is not reading, closing connection", "action", action)
		that.close()
	}
}

func (that *session) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer that.conn.Close()

	for {
		select {
		case <-that.done:
			return
		case data := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				that.logger.Error("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				that.logger.Error("failed to write ping", "error", err)
				return
			}
		}
	}
}

func (that *session) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		that.conn.Close()
	})
}
