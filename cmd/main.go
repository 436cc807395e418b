package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-registry/gateway"
	"chat-registry/internal"
	"chat-registry/repositories"
	"chat-registry/runtime"
	"chat-registry/runtime/workers"
	"chat-registry/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

const timelineCapacity = 512

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and returns once the server has shut down,
// so deferred cleanups run before exit.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Restore the registry and build the host
	store := repositories.NewSnapshotRepository(db, log)
	registry, err := runtime.Load(log, store)
	if err != nil {
		return fmt.Errorf("registry restore failed: %w", err)
	}
	users, rooms := registry.UserCount(), registry.RoomCount()
	log.Info("Registry restored", "users", users, "rooms", rooms)

	sup := workers.NewSupervisor(log, config.RestartInterval)
	host := runtime.NewHost(log, registry, store, sup, runtime.NewSessions(),
		config.BufferSize, config.SinkTimeout, config.CheckpointInterval)
	counter, timeline := sink.NewCounter(), sink.NewTimeline(timelineCapacity)
	host.Add(sink.NewLogSink(log), counter, timeline)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start the workers
	hostDone := make(chan struct{})
	go func() {
		defer close(hostDone)
		host.Start(ctx)
	}()

	// 6. HTTP Server Setup
	server := &http.Server{
		Addr:              config.Address(),
		Handler:           gateway.NewServer(log, host, counter, timeline, config.ConnectionBufferSize).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gateway", "address", server.Addr, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("gateway error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case serveErr = <-errChan:
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("Gateway shutdown incomplete", "error", err)
	}
	host.Stop()
	<-hostDone
	if err := host.Checkpoint(); err != nil {
		return errors.Join(serveErr, err)
	}
	log.Info("Program stopped cleanly")
	return serveErr
}
