// internal/handlers/ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/room"
)

// AuctionWSHandler upgrades the connection and runs the read/write pumps.
// The client supplies its durable player identifier as the `pid` query
// parameter and an optional display name as `name`; the connection itself
// gets a fresh transient ID.
func AuctionWSHandler(logger *logrus.Logger, mgr *room.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"auction"},
			OriginPatterns: []string{"*"}, // Adjust in production
		})
		if err != nil {
			logger.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")

		if c.Subprotocol() != "auction" {
			c.Close(BadSubprotocolError, "client must speak the auction subprotocol")
			return
		}

		pid := r.URL.Query().Get("pid")
		if pid == "" {
			c.Close(MissingIdentityError, "missing pid query parameter")
			return
		}
		name := r.URL.Query().Get("name")
		if name == "" {
			name = "Player_" + pid
			if len(pid) > 4 {
				name = "Player_" + pid[:4]
			}
		}

		ctx, cancel := context.WithCancel(r.Context())
		conn := &room.Conn{
			ID:     uuid.New(),
			PID:    pid,
			Name:   name,
			Out:    make(chan room.Event, 32),
			Cancel: cancel,
		}
		logger.WithFields(logrus.Fields{
			"conn":   conn.ID,
			"pid":    pid,
			"remote": r.RemoteAddr,
		}).Info("client connected")

		go writePump(ctx, c, conn, logger)
		readPump(ctx, c, conn, mgr, logger)

		mgr.Disconnect(conn)
		cancel()
		logger.WithField("conn", conn.ID).Info("client disconnected")
	}
}

// readPump decodes inbound envelopes and hands them to the manager. It
// returns when the connection closes or the context is cancelled.
func readPump(ctx context.Context, c *websocket.Conn, conn *room.Conn, mgr *room.Manager, logger *logrus.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		typ, msg, err := c.Read(ctx)
		if err != nil {
			closeStatus := websocket.CloseStatus(err)
			if closeStatus == websocket.StatusNormalClosure || closeStatus == websocket.StatusGoingAway {
				return
			}
			if !strings.Contains(err.Error(), "context canceled") {
				logger.Warnf("conn %s: read error: %v", conn.ID, err)
			}
			return
		}
		if typ != websocket.MessageText {
			continue
		}

		var env room.Envelope
		if err := json.Unmarshal(msg, &env); err != nil {
			conn.WriteError("invalid JSON frame")
			continue
		}
		mgr.Dispatch(conn, env)
	}
}

// writePump drains the connection's outbound channel and keeps the socket
// alive with periodic pings.
func writePump(ctx context.Context, c *websocket.Conn, conn *room.Conn, logger *logrus.Logger) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-conn.Out:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				logger.Warnf("conn %s: marshal error: %v", conn.ID, err)
				continue
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = c.Write(writeCtx, websocket.MessageText, data)
			cancel()
			if err != nil {
				logger.Warnf("conn %s: write error: %v", conn.ID, err)
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
			err := c.Ping(pingCtx)
			cancel()
			if err != nil {
				logger.Warnf("conn %s: ping failed, assuming disconnect: %v", conn.ID, err)
				return
			}
		}
	}
}
