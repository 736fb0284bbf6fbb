package loc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vibelux/toolkit/pkg/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "app.ts"), "a\nb\nc\n")
	writeFile(t, filepath.Join(root, "src", "index.tsx"), "one\ntwo\n")
	writeFile(t, filepath.Join(root, "src", "util.js"), "x\n")
	writeFile(t, filepath.Join(root, "src", "README.md"), "ignored\n")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "big.ts"), "skip\nskip\nskip\n")

	report, err := Scan(context.Background(), Options{Root: root})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if report.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", report.TotalFiles)
	}
	if report.TotalLines != 6 {
		t.Errorf("TotalLines = %d, want 6", report.TotalLines)
	}

	if got := report.ByExtension[".ts"]; got != (Tally{Files: 1, Lines: 3}) {
		t.Errorf("ByExtension[.ts] = %+v", got)
	}
	if got := report.ByExtension[".tsx"]; got != (Tally{Files: 1, Lines: 2}) {
		t.Errorf("ByExtension[.tsx] = %+v", got)
	}

	if got := report.ByDirectory["root"]; got != (Tally{Files: 1, Lines: 3}) {
		t.Errorf("ByDirectory[root] = %+v", got)
	}
	if got := report.ByDirectory["src"]; got != (Tally{Files: 2, Lines: 3}) {
		t.Errorf("ByDirectory[src] = %+v", got)
	}
	if _, ok := report.ByDirectory["node_modules"]; ok {
		t.Error("node_modules should be pruned")
	}

	if len(report.LargestFiles) != 3 {
		t.Fatalf("LargestFiles = %d entries, want 3", len(report.LargestFiles))
	}
	if report.LargestFiles[0].Path != "app.ts" || report.LargestFiles[0].Lines != 3 {
		t.Errorf("largest = %+v, want app.ts with 3 lines", report.LargestFiles[0])
	}
}

func TestScanTopFilesCap(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.ts"), "1\n2\n3\n")
	writeFile(t, filepath.Join(root, "b.ts"), "1\n2\n")
	writeFile(t, filepath.Join(root, "c.ts"), "1\n")

	report, err := Scan(context.Background(), Options{Root: root, TopFiles: 2})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(report.LargestFiles) != 2 {
		t.Fatalf("LargestFiles = %d entries, want 2", len(report.LargestFiles))
	}
	if report.LargestFiles[0].Path != "a.ts" || report.LargestFiles[1].Path != "b.ts" {
		t.Errorf("order = %v, %v", report.LargestFiles[0].Path, report.LargestFiles[1].Path)
	}
}

func TestScanNoTrailingNewline(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.ts"), "one\ntwo") // no final newline

	report, err := Scan(context.Background(), Options{Root: root})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if report.TotalLines != 2 {
		t.Errorf("TotalLines = %d, want 2", report.TotalLines)
	}
}

func TestScanEmptyTree(t *testing.T) {
	report, err := Scan(context.Background(), Options{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if report.TotalFiles != 0 || report.TotalLines != 0 {
		t.Errorf("empty tree report = %+v, want zeros", report)
	}
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(context.Background(), Options{Root: filepath.Join(t.TempDir(), "nope")})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestScanCustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")
	writeFile(t, filepath.Join(root, "app.ts"), "x\n")

	report, err := Scan(context.Background(), Options{Root: root, Extensions: []string{".go"}})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if report.TotalFiles != 1 {
		t.Errorf("TotalFiles = %d, want 1 (.go only)", report.TotalFiles)
	}
	if _, ok := report.ByExtension[".ts"]; ok {
		t.Error(".ts should be filtered out")
	}
}

func TestDefaults(t *testing.T) {
	o := Options{}.Defaults()
	if o.TopFiles != 10 {
		t.Errorf("TopFiles = %d, want 10", o.TopFiles)
	}
	if len(o.Extensions) != 4 {
		t.Errorf("Extensions = %v", o.Extensions)
	}
	if len(o.ExcludeDirs) != 6 {
		t.Errorf("ExcludeDirs = %v", o.ExcludeDirs)
	}
}
