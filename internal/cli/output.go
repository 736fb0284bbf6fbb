package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vibelux/toolkit/pkg/errors"
)

// writeArtifact writes data to path, creating parent directories, and prints
// the written-file line.
func writeArtifact(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	printFile(path)
	return nil
}

// basePath derives a base output path: an explicit output with a known
// format extension has that extension stripped; an empty output falls back
// to def.
func basePath(output, def string, knownExts map[string]bool) string {
	if output == "" {
		return def
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if knownExts[ext] {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

// invalidFormatError builds an INVALID_FORMAT error listing the allowed set.
func invalidFormatError(got string, allowed map[string]bool) error {
	keys := make([]string, 0, len(allowed))
	for k := range allowed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)",
		got, strings.Join(keys, ", "))
}
