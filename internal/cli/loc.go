package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vibelux/toolkit/pkg/errors"
	"github.com/vibelux/toolkit/pkg/loc"
)

// locCommand creates the line-counter command.
func (c *CLI) locCommand() *cobra.Command {
	var (
		exts       string
		excludes   string
		top        int
		jsonOut    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "loc [dir]",
		Short: "Count source files and lines across a codebase",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			opts := loc.Options{
				Extensions:  cfg.Loc.Extensions,
				ExcludeDirs: cfg.Loc.Exclude,
				TopFiles:    cfg.Loc.Top,
			}
			if len(args) == 1 {
				opts.Root = args[0]
			}
			if exts != "" {
				opts.Extensions = splitList(exts)
			}
			for _, e := range opts.Extensions {
				if err := errors.ValidateExtension(e); err != nil {
					return err
				}
			}
			if excludes != "" {
				opts.ExcludeDirs = splitList(excludes)
			}
			if top > 0 {
				opts.TopFiles = top
			}

			logger.Debugf("Scanning %s", opts.Root)
			p := newProgress(logger)

			report, err := loc.Scan(ctx, opts)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Scanned %d files", report.TotalFiles))

			printLocReport(report)

			if jsonOut != "" {
				// A bare filename lands in the configured output directory.
				if cfg.Output != "" && filepath.Dir(jsonOut) == "." {
					jsonOut = filepath.Join(cfg.Output, jsonOut)
				}
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				if err := writeArtifact(jsonOut, append(data, '\n')); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exts, "ext", "", "file extensions to count (comma-separated, default .ts,.tsx,.js,.jsx)")
	cmd.Flags().StringVar(&excludes, "exclude", "", "directory names to skip (comma-separated)")
	cmd.Flags().IntVar(&top, "top", 0, "number of largest files to list (default 10)")
	cmd.Flags().StringVar(&jsonOut, "json", "", "write the full report as JSON to this path (e.g. code_statistics.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ./vibelux.toml if present)")

	return cmd
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// printLocReport renders the scan summary tables.
func printLocReport(r *loc.Report) {
	printNewline()
	fmt.Println(StyleTitle.Render("Code Statistics") + " " + StyleDim.Render(r.Root))
	printStats(r.TotalFiles, r.TotalLines)
	printNewline()

	extTable := newTable("Extension", "Files", "Lines")
	for _, ext := range sortedKeys(r.ByExtension) {
		t := r.ByExtension[ext]
		extTable.Row(ext, fmt.Sprintf("%d", t.Files), fmt.Sprintf("%d", t.Lines))
	}
	fmt.Println(extTable.Render())

	dirTable := newTable("Directory", "Files", "Lines")
	for _, dir := range sortedKeys(r.ByDirectory) {
		t := r.ByDirectory[dir]
		dirTable.Row(dir, fmt.Sprintf("%d", t.Files), fmt.Sprintf("%d", t.Lines))
	}
	fmt.Println(dirTable.Render())

	if len(r.LargestFiles) > 0 {
		fileTable := newTable("Largest Files", "Lines")
		for _, f := range r.LargestFiles {
			fileTable.Row(f.Path, fmt.Sprintf("%d", f.Lines))
		}
		fmt.Println(fileTable.Render())
	}
}

// sortedKeys orders bucket keys by descending line count, ties by name.
func sortedKeys(m map[string]loc.Tally) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]].Lines != m[keys[j]].Lines {
			return m[keys[i]].Lines > m[keys[j]].Lines
		}
		return keys[i] < keys[j]
	})
	return keys
}
