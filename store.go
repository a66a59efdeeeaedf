package mdreport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ReportExt is the file extension for stored reports.
const ReportExt = ".md"

// MaxReadSize caps how large a stored report may be before Read
// refuses to load it (50 MiB). Variable so tests can lower the
// ceiling.
var MaxReadSize int64 = 50 << 20

// Store persists reports as flat files under a root directory.
// Identity is the filename; persistence of a single report is
// all-or-nothing.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir. The directory is created on
// first Save, not here.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the configured reports directory.
func (s *Store) Root() string {
	return s.root
}

// Save writes a report atomically: content goes to a temporary file in
// the destination directory which is then renamed into place, so a
// concurrent reader never observes a half-written report at the final
// path. On rename failure the temporary file is removed best-effort.
// Parent directories are created as needed. Returns the full path.
func (s *Store) Save(name, content string) (string, error) {
	path := filepath.Join(s.root, name)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("renaming report into place: %w", err)
	}
	return path, nil
}

// Read returns the content of a stored report. The size ceiling is
// checked against file metadata before any content is read into
// memory.
func (s *Store) Read(name string) (string, error) {
	path := filepath.Join(s.root, name)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrReportNotFound, name)
		}
		return "", fmt.Errorf("reading report metadata: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, name)
	}
	if info.Size() > MaxReadSize {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrReportTooLarge, info.Size(), MaxReadSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path rooted at the configured reports dir
	if err != nil {
		return "", fmt.Errorf("reading report: %w", err)
	}
	return string(data), nil
}

// Delete removes a stored report. Deleting a report that does not
// exist is not an error; it reports false.
func (s *Store) Delete(name string) (bool, error) {
	path := filepath.Join(s.root, name)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("checking report: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("deleting report: %w", err)
	}
	return true, nil
}

// List returns the names of stored reports: regular files directly
// under the root with the report extension. Entries whose names are
// not valid UTF-8 are skipped rather than failing the whole listing.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, s.root)
		}
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !utf8.ValidString(name) || !strings.HasSuffix(name, ReportExt) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
