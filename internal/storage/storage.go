// Package storage handles the flat files haikumator reads and writes:
// batch output directories, saved results and the per-user data
// directory used for logs.
package storage

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/aayushbajaj/haikumator/internal/poem"
)

// ErrNotDir is returned when a batch output path exists but is not a
// directory.
var ErrNotDir = errors.New("not a directory")

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback: get home dir from user.Current()
		if u, userErr := user.Current(); userErr == nil {
			return u.HomeDir, nil
		}
		return "", err
	}
	return home, nil
}

// DataDir returns ~/.local/share/haikumator, creating it if needed.
func DataDir() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	dataDir := filepath.Join(home, ".local", "share", "haikumator")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// LogDir returns the logs directory under DataDir, creating it if needed.
func LogDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}
	return logDir, nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// OutputDir writes batch variants as v1.txt, v2.txt, ... into an existing
// directory.
type OutputDir struct {
	path string
}

// OpenOutputDir checks that path is an existing directory. It does not
// create it.
func OpenOutputDir(path string) (*OutputDir, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open output directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotDir)
	}
	return &OutputDir{path: path}, nil
}

func (d *OutputDir) Path() string {
	return d.path
}

// VariantPath returns the file name used for variant index.
func (d *OutputDir) VariantPath(index int) string {
	return filepath.Join(d.path, fmt.Sprintf("v%d.txt", index))
}

// WriteVariant writes the rendered poem without a trailing newline.
func (d *OutputDir) WriteVariant(index int, p poem.Poem) error {
	return os.WriteFile(d.VariantPath(index), []byte(p.Render()), 0644)
}

// SaveText writes text to path, replacing any existing file.
func SaveText(path, text string) error {
	if path == "" {
		return errors.New("no file name given")
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}
