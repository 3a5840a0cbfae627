// internal/handlers/routes.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/middleware"
	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/room"
)

// NewRouter wires the HTTP surface: the auction websocket and a health probe.
func NewRouter(logger *logrus.Logger, mgr *room.Manager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.LogMiddleware(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/ws", AuctionWSHandler(logger, mgr))

	return r
}
