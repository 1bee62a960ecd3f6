package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, os.Interrupt)

	go func() {
		<-sigChan
		cancel()
	}()

	setupDebugSignalHandlers()
}
