package discovery

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrCorpusUnavailable is wrapped by every error that prevents the corpus from being listed
var ErrCorpusUnavailable = errors.New("corpus directory unavailable")

// Include decides from a file name whether a regular file is a test image
type Include func(name string) bool

// AllFiles treats every regular file as a test image
func AllFiles(string) bool { return true }

// HasSuffix accepts names ending in the given token, e.g. "bin"
func HasSuffix(token string) Include {
	return func(name string) bool {
		return strings.HasSuffix(name, token)
	}
}

// IncludeFor returns AllFiles for an empty suffix and HasSuffix otherwise
func IncludeFor(suffix string) Include {
	if suffix == "" {
		return AllFiles
	}
	return HasSuffix(suffix)
}

// Scanner lists test images in a flat corpus directory
type Scanner struct {
	include Include
}

// NewScanner creates a new Scanner with the given inclusion filter
func NewScanner(include Include) *Scanner {
	if include == nil {
		include = AllFiles
	}
	return &Scanner{include: include}
}

// Scan returns the paths of the regular files in root accepted by the
// inclusion filter, in directory order. Directories, symlinks to directories,
// dangling links and other special files are skipped.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorpusUnavailable, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrCorpusUnavailable, root)
	}

	dir, err := os.Open(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusUnavailable, err)
	}
	defer dir.Close()

	// File.ReadDir keeps the order the filesystem returns, unlike os.ReadDir
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrCorpusUnavailable, root, err)
	}

	var images []string
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			slog.Debug("skipping non-regular entry", "path", path)
			continue
		}
		if !s.include(entry.Name()) {
			continue
		}
		images = append(images, path)
	}

	slog.Debug("scanned corpus", "dir", root, "entries", len(entries), "images", len(images))
	return images, nil
}
