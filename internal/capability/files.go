package capability

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FilePicker "picks" the image stored at a path chosen up front.
type FilePicker struct {
	Path string
}

func (p FilePicker) PickPhoto(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Path == "" {
		return nil, ErrNoSelection
	}
	data, err := os.ReadFile(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoSelection, p.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	return data, nil
}

// FileSurface exchanges drawing payloads through a file.
type FileSurface struct {
	Path string
}

func (s FileSurface) Export(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Path == "" {
		return nil, ErrUnsupported
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read drawing: %w", err)
	}
	return data, nil
}

func (s FileSurface) Import(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Path == "" {
		return ErrUnsupported
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("create drawing dir: %w", err)
	}
	if err := os.WriteFile(s.Path, payload, 0o600); err != nil {
		return fmt.Errorf("write drawing: %w", err)
	}
	return nil
}
