// Package storage implements the generic JSON document store for pulse.
// Every piece of persistent state is a pretty-printed UTF-8 JSON document
// under the pulse home directory, written atomically via write-then-rename.
package storage

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/pulse/internal/constants"
	"github.com/mrz1836/pulse/internal/ctxutil"
	pulseerrors "github.com/mrz1836/pulse/internal/errors"
)

// Directory and file permission constants.
const (
	dirPerm  = 0o750 // Secure directory permissions
	filePerm = 0o600 // Secure file permissions
)

// Store reads and writes JSON documents relative to the pulse home directory.
type Store struct {
	home string // Usually ~/.pulse
}

// NewStore creates a Store rooted at the given home directory.
// If home is empty, uses PULSE_HOME or the default ~/.pulse directory.
func NewStore(home string) (*Store, error) {
	if home == "" {
		var err error
		home, err = DefaultHome()
		if err != nil {
			return nil, err
		}
	}
	return &Store{home: home}, nil
}

// DefaultHome returns the pulse home directory path.
// If the PULSE_HOME environment variable is set, it uses that.
// Otherwise, it defaults to ~/.pulse.
func DefaultHome() (string, error) {
	if home := os.Getenv(constants.HomeEnvVar); home != "" {
		return home, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.PulseHome), nil
}

// Home returns the root directory all documents live under.
func (s *Store) Home() string {
	return s.home
}

// Path joins the given elements under the store's home directory.
func (s *Store) Path(elem ...string) string {
	return filepath.Join(append([]string{s.home}, elem...)...)
}

// Load reads the JSON document at path into v.
//
// A missing file and a completely empty file both return ErrNotFound; only a
// non-empty file that fails to parse is reported as ErrMalformedDocument.
func (s *Store) Load(ctx context.Context, path string, v any) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if path == "" {
		return fmt.Errorf("failed to load document: path %w", pulseerrors.ErrEmptyValue)
	}

	data, err := os.ReadFile(path) //#nosec G304 -- path is constructed from the trusted home directory
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("failed to load document '%s': %w", path, pulseerrors.ErrNotFound)
		}
		return fmt.Errorf("failed to read document '%s': %w", path, err)
	}

	// An empty file means the document was never written, not corruption.
	if len(data) == 0 {
		return fmt.Errorf("failed to load document '%s': %w", path, pulseerrors.ErrNotFound)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse document '%s': %w: %w", path, pulseerrors.ErrMalformedDocument, err)
	}

	return nil
}

// Save writes v as a pretty-printed JSON document at path, creating parent
// directories as needed. The write is atomic (write-then-rename).
func (s *Store) Save(ctx context.Context, path string, v any) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if path == "" {
		return fmt.Errorf("failed to save document: path %w", pulseerrors.ErrEmptyValue)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document '%s': %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	if err := atomicWrite(path, data); err != nil {
		return fmt.Errorf("failed to save document '%s': %w", path, err)
	}

	return nil
}

// LoadOrInit loads the document at path into v, materializing it with the
// value produced by init on first access. Any error other than "absent"
// propagates unchanged.
func (s *Store) LoadOrInit(ctx context.Context, path string, v any, init func() any) error {
	err := s.Load(ctx, path, v)
	if err == nil {
		return nil
	}
	if !IsNotFound(err) {
		return err
	}

	def := init()
	if err := s.Save(ctx, path, def); err != nil {
		return err
	}
	return s.Load(ctx, path, v)
}

// IsNotFound reports whether err denotes an absent document.
func IsNotFound(err error) bool {
	return err != nil && stderrors.Is(err, pulseerrors.ErrNotFound)
}

// atomicWrite writes data to a file atomically using write-then-rename.
// Uses filePerm (0o600) for secure file permissions.
func atomicWrite(path string, data []byte) error {
	// Write to temp file
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	// Write data
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	// Sync to disk (ensure data is persisted before rename)
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	// Close file before rename
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
