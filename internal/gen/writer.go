package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes file into outputDir and returns its path. The content goes
// to a temporary file first and is renamed into place, so an interrupted run
// never leaves a truncated table behind.
func WriteFile(file *GeneratedFile, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(outputDir, "."+file.Filename+".*")
	if err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(file.Content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	outputPath := filepath.Join(outputDir, file.Filename)
	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return "", fmt.Errorf("replacing %s: %w", outputPath, err)
	}

	return outputPath, nil
}

// Unchanged reports whether the file on disk already has the generated content.
func Unchanged(file *GeneratedFile, outputDir string) bool {
	current, err := os.ReadFile(filepath.Join(outputDir, file.Filename))
	return err == nil && bytes.Equal(current, file.Content)
}
