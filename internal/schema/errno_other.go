//go:build !unix

package schema

//nolint:gochecknoglobals
var errLoop error
