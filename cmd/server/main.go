// cmd/server/main.go
package main

import (
	"net/http"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/config"
	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/handlers"
	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/room"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	logrus.SetLevel(logger.GetLevel())

	mgr := room.NewManager(cfg.Room)
	router := handlers.NewRouter(logger, mgr)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", server.Addr)
		errc <- server.ListenAndServe()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	select {
	case err := <-errc:
		logger.Fatalf("server exited: %v", err)
	case sig := <-sigs:
		logger.Infof("terminating: %v", sig)
		server.Close()
	}
}
