// =============================================================================
// Outreach Merger - File Management Utilities
// =============================================================================
//
// Shared helpers for the output side of the pipeline: ensuring the output
// directory exists, generating output file names from the configured format
// string, and small file-system predicates.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureDir creates a directory (and any parents) if it does not exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GenerateOutputFileName builds an output file name from a format string.
//
// SUPPORTED PLACEHOLDERS:
//
//	{name}      - replaced with params["name"] (input file base name)
//	{ext}       - replaced with params["ext"] (output extension)
//	{uuid}      - replaced with a random UUID
//	{timestamp} - replaced with the current time as YYYYMMDD_HHMMSS
//
// Any additional keys in params are substituted as {key} -> value.
func GenerateOutputFileName(format string, params map[string]string) string {
	name := format

	name = strings.ReplaceAll(name, "{uuid}", uuid.NewString())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))

	for key, value := range params {
		name = strings.ReplaceAll(name, "{"+key+"}", value)
	}

	return name
}

// FileExists reports whether a path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteTextFile writes text content to a file, creating it if necessary.
func WriteTextFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
