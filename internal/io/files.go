package io

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/desertwitch/fsmeta/internal/schema"
	"github.com/zeebo/blake3"
)

const tmpSuffix = ".fsmeta"

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

// Checksum returns the hex-encoded BLAKE3 digest of the file at path.
func (i *Handler) Checksum(ctx context.Context, path string) (string, error) {
	f, err := i.osHandler.Open(path)
	if err != nil {
		return "", fmt.Errorf("(io-checksum) %w", schema.Classify("open", path, err))
	}
	defer f.Close()

	hasher := blake3.New()

	if _, err := io.Copy(hasher, &contextReader{ctx: ctx, reader: f}); err != nil {
		if errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("(io-checksum) %w: %w", ErrContextError, err)
		}

		return "", fmt.Errorf("(io-checksum) failed to read file: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// copyFile copies through a temporary file next to dst, which is only renamed
// to dst once the digests of both sides match.
func (i *Handler) copyFile(ctx context.Context, src string, dst string, stat schema.FileStat) (uint64, error) {
	var transferComplete bool

	srcFile, err := i.osHandler.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source file: %w", schema.Classify("open", src, err))
	}
	defer srcFile.Close()

	tmpPath := dst + tmpSuffix
	defer func() {
		if !transferComplete {
			i.osHandler.Remove(tmpPath) //nolint:errcheck
		}
	}()

	dstFile, err := i.osHandler.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, permissions(stat))
	if err != nil {
		return 0, fmt.Errorf("failed to open destination file %s: %w", tmpPath, schema.Classify("open", tmpPath, err))
	}
	defer dstFile.Close()

	srcHasher := blake3.New()
	dstHasher := blake3.New()

	ctxReader := &contextReader{
		ctx:    ctx,
		reader: io.TeeReader(srcFile, srcHasher),
	}
	multiWriter := io.MultiWriter(dstFile, dstHasher)

	n, err := io.Copy(multiWriter, ctxReader)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0, fmt.Errorf("%w: %w", ErrContextError, err)
		}

		return 0, fmt.Errorf("failed to copy file: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return 0, fmt.Errorf("failed to sync destination fs: %w", err)
	}

	if err := dstFile.Close(); err != nil {
		return 0, fmt.Errorf("failed to close destination file: %w", err)
	}

	srcChecksum := hex.EncodeToString(srcHasher.Sum(nil))
	dstChecksum := hex.EncodeToString(dstHasher.Sum(nil))

	if srcChecksum != dstChecksum {
		return 0, fmt.Errorf("%w: %s (src) != %s (dst)", ErrHashMismatch, srcChecksum, dstChecksum)
	}

	if err := i.ensureNotExists(dst); err != nil {
		return 0, err
	}

	if err := i.osHandler.Rename(tmpPath, dst); err != nil {
		return 0, fmt.Errorf("failed to rename temporary file to destination file: %w", err)
	}

	transferComplete = true

	if err := i.ensureMetadata(dst, stat); err != nil {
		return 0, err
	}

	return uint64(n), nil //nolint:gosec
}
