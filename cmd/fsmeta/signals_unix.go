//go:build unix

package main

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

const (
	stackTraceBufMax = 1 << 24
)

func setupDebugSignalHandlers() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGUSR1)

	go func() {
		for range sigChan {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen]) //nolint:errcheck
		}
	}()
}
