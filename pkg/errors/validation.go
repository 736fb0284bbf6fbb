package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateOutputPath validates an output file path supplied on the command
// line. It rejects paths that could clobber files outside the working tree
// through traversal sequences or embedded control characters.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// formKeyRegex matches Formidable form keys: lowercase slugs with optional
// digits and separators, as produced by the WordPress exporter.
var formKeyRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateFormKey validates a Formidable form key before it is searched for
// in an export file.
func ValidateFormKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "form key cannot be empty")
	}

	if len(key) > 128 {
		return New(ErrCodeInvalidInput, "form key too long (max 128 characters)")
	}

	if !formKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidInput, "invalid form key: %q", key)
	}

	return nil
}

// ValidateExtension validates a file extension filter for the line counter.
// Extensions must start with a dot and contain no separators.
func ValidateExtension(ext string) error {
	if ext == "" {
		return New(ErrCodeInvalidInput, "extension cannot be empty")
	}

	if !strings.HasPrefix(ext, ".") {
		return New(ErrCodeInvalidInput, "extension must start with a dot: %q", ext)
	}

	if strings.ContainsAny(ext, "/\\ ") {
		return New(ErrCodeInvalidInput, "extension contains invalid characters: %q", ext)
	}

	return nil
}
