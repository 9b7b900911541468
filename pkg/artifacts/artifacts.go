// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package artifacts lays out the on-disk directory where captured
// screenshots and page dumps are kept between runs.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store names artifact files under a base directory, one subdirectory
// per kind of capture.
type Store struct {
	BaseDir    string
	ShotsDir   string
	SourcesDir string
}

// NewStore creates a store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{
		BaseDir:    baseDir,
		ShotsDir:   filepath.Join(baseDir, "shots"),
		SourcesDir: filepath.Join(baseDir, "sources"),
	}
}

// Init creates the store directories.
func (s *Store) Init() error {
	for _, dir := range []string{s.ShotsDir, s.SourcesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create artifact dir: %w", err)
		}
	}
	return nil
}

// ScreenshotPath returns a timestamped path for a screenshot of the
// named page, e.g. shots/example-260826-1504.png.
func (s *Store) ScreenshotPath(name, ext string) string {
	return filepath.Join(s.ShotsDir, stamped(name, ext))
}

// SourcePath returns a timestamped path for a page source dump.
func (s *Store) SourcePath(name string) string {
	return filepath.Join(s.SourcesDir, stamped(name, "html"))
}

// WriteSource dumps page source to a timestamped file and returns its
// path.
func (s *Store) WriteSource(name, source string) (string, error) {
	path := s.SourcePath(name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return "", fmt.Errorf("failed to write page source: %w", err)
	}
	return path, nil
}

// Flush removes all files in the store directories, keeping the
// directories themselves.
func (s *Store) Flush() error {
	for _, dir := range []string{s.ShotsDir, s.SourcesDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to read artifact dir: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return fmt.Errorf("failed to remove artifact: %w", err)
			}
		}
	}
	return nil
}

func stamped(name, ext string) string {
	return fmt.Sprintf("%s-%s.%s", name, time.Now().Format("060102-1504"), ext)
}
