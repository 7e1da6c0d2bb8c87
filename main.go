package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	clientDir := flag.String("client", "../client", "Path to client directory")
	dbPath := flag.String("db", "arena.db", "Path to SQLite database ('' disables accounts/analytics)")
	publicURL := flag.String("public-url", "", "Public game URL for the /join.png QR code")
	flag.Parse()

	var db *DB
	if *dbPath != "" {
		var err error
		db, err = OpenDB(*dbPath)
		if err != nil {
			// The arena runs fine without persistence; only career
			// stats and accounts are lost
			log.Printf("warning: database unavailable, running without accounts: %v", err)
			db = nil
		}
	}

	hub := NewHub(db)
	go hub.Run()
	go hub.game.Run()

	mux := SetupRoutes(hub, *clientDir, *publicURL)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		log.Printf("Server starting on %s", *addr)
		log.Printf("Serving client files from %s", *clientDir)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down...")
	hub.Stop()
	if db != nil {
		db.Close()
	}
	server.Close()
}
