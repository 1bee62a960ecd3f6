//go:build !unix

package main

func setupDebugSignalHandlers() {}
