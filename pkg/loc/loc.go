// Package loc counts source files and lines across a codebase. It replaces
// the ad-hoc counting scripts that accumulated around the VibeLux app with
// one scanner whose filters cover all of their behaviors.
package loc

import (
	"bufio"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vibelux/toolkit/pkg/errors"
)

// Options controls a scan.
type Options struct {
	// Root is the directory to scan.
	Root string
	// Extensions filters files by suffix. Each entry includes the dot.
	Extensions []string
	// ExcludeDirs prunes directories by base name anywhere in the tree.
	ExcludeDirs []string
	// TopFiles caps the largest-files list.
	TopFiles int
}

// DefaultExtensions covers the app's TypeScript/JavaScript sources.
var DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx"}

// DefaultExcludes skips generated and vendored trees.
var DefaultExcludes = []string{"node_modules", ".next", "dist", "build", "temp_disabled", ".git"}

// Defaults fills zero-valued fields with the standard filters.
func (o Options) Defaults() Options {
	if len(o.Extensions) == 0 {
		o.Extensions = slices.Clone(DefaultExtensions)
	}
	if len(o.ExcludeDirs) == 0 {
		o.ExcludeDirs = slices.Clone(DefaultExcludes)
	}
	if o.TopFiles == 0 {
		o.TopFiles = 10
	}
	return o
}

// Tally is a file/line pair for one aggregation bucket.
type Tally struct {
	Files int `json:"files"`
	Lines int `json:"lines"`
}

// FileCount records the size of a single file.
type FileCount struct {
	Path      string `json:"path"`
	Lines     int    `json:"lines"`
	Extension string `json:"extension"`
}

// Report is the scan result. Its JSON form is written as
// code_statistics.json by the CLI.
type Report struct {
	Root         string           `json:"root"`
	TotalFiles   int              `json:"total_files"`
	TotalLines   int              `json:"total_lines"`
	ByExtension  map[string]Tally `json:"by_extension"`
	ByDirectory  map[string]Tally `json:"by_directory"`
	LargestFiles []FileCount      `json:"largest_files"`
}

// Scan walks the tree under opts.Root counting lines in matching files.
// Unreadable files are skipped silently; an empty tree yields a zero report.
func Scan(ctx context.Context, opts Options) (*Report, error) {
	opts = opts.Defaults()

	root := opts.Root
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot scan %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s is not a directory", root)
	}

	extSet := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		extSet[e] = true
	}
	excludeSet := make(map[string]bool, len(opts.ExcludeDirs))
	for _, d := range opts.ExcludeDirs {
		excludeSet[d] = true
	}

	report := &Report{
		Root:        root,
		ByExtension: make(map[string]Tally),
		ByDirectory: make(map[string]Tally),
	}
	var largest []FileCount

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if path != root && excludeSet[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(d.Name())
		if !extSet[ext] {
			return nil
		}

		lines, err := countLines(path)
		if err != nil {
			return nil // unreadable files are not fatal
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		report.TotalFiles++
		report.TotalLines += lines
		bump(report.ByExtension, ext, lines)
		bump(report.ByDirectory, topDir(rel), lines)
		largest = append(largest, FileCount{Path: rel, Lines: lines, Extension: ext})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(largest, func(i, j int) bool {
		if largest[i].Lines != largest[j].Lines {
			return largest[i].Lines > largest[j].Lines
		}
		return largest[i].Path < largest[j].Path
	})
	if len(largest) > opts.TopFiles {
		largest = largest[:opts.TopFiles]
	}
	report.LargestFiles = largest

	return report, nil
}

func bump(m map[string]Tally, key string, lines int) {
	t := m[key]
	t.Files++
	t.Lines += lines
	m[key] = t
}

// topDir buckets a relative path by its first component; files directly
// under the root land in "root".
func topDir(rel string) string {
	dir, _, ok := strings.Cut(filepath.ToSlash(rel), "/")
	if !ok {
		return "root"
	}
	return dir
}

// countLines counts lines the way wc -l does, except a final line without a
// trailing newline still counts.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var n int
	r := bufio.NewReader(f)
	var lastHadContent bool
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			if strings.HasSuffix(line, "\n") {
				n++
				lastHadContent = false
			} else {
				lastHadContent = true
			}
		}
		if err != nil {
			break
		}
	}
	if lastHadContent {
		n++
	}
	return n, nil
}
