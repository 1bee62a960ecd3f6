// Package schema provides the principal schematics for all other packages. It
// defines the platform-normalized metadata records, the error taxonomy shared
// by the metadata and ownership packages and provides implementations wrapping
// the operating system calls they are built upon.
package schema
