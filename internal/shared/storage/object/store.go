package object

import (
	"context"
	"io"
)

// Store defines the contract for saving and retrieving uploaded resume files.
type Store interface {
	Save(ctx context.Context, fileName string, r io.Reader) (storageKey string, sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
