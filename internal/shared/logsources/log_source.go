package logsources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidPath  = errors.New("invalid log path")
)

//go:generate mockgen -source=log_source.go -destination=./mocks/log_source_mock.go -package=mocks
type LogSource interface {
	// Open returns the log at path for a single forward read. The caller owns the returned reader.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type fileLogSource struct{}

func NewFileLogSource() LogSource {
	return &fileLogSource{}
}

func (s *fileLogSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := s.validatePath(path); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}

	return file, nil
}

func (s *fileLogSource) validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}
	return nil
}
