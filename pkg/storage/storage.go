package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage reads snapshot input and writes rendered output. An empty
// path or "-" means stdin for reads and stdout for writes.
type Storage struct {
	Stdin  io.Reader
	Stdout io.Writer
}

// New returns a Storage bound to the process stdin and stdout.
func New() *Storage {
	return &Storage{Stdin: os.Stdin, Stdout: os.Stdout}
}

func isStdio(path string) bool {
	return path == "" || path == "-"
}

func (s *Storage) ReadInput(path string) ([]byte, error) {
	if isStdio(path) {
		data, err := io.ReadAll(s.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return data, nil
	}
	return s.ReadFile(path)
}

func (s *Storage) WriteOutput(path string, content []byte) error {
	if isStdio(path) {
		if _, err := s.Stdout.Write(content); err != nil {
			return fmt.Errorf("error writing stdout: %w", err)
		}
		return nil
	}
	return s.SaveFile(path, content)
}

// SaveFile writes content to filePath, creating parent directories.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}
