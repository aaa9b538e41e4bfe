package errors

import (
	"math"
	"path/filepath"
	"strings"
)

// ValidateDimension checks that v is a positive, finite number.
// name identifies the value in the error message (e.g. "width").
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be greater than zero, got %v", name, v)
	}
	return nil
}

// ValidateOutputPath checks that path can name an output file.
//
// Validation rules:
//   - Path cannot be blank
//   - No null bytes
//   - Path cannot name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains a null byte")
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidInput, "output path %q names a directory", path)
	}
	return nil
}
