package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vibelux/toolkit/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "vibelux"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "VibeLux auxiliary tooling: decks, diagrams, reports, and stats",
		Long: `vibelux generates the standalone artifacts that support the VibeLux
platform: pitch deck slides, energy and revenue flow diagrams, the system
architecture diagram and report, codebase line counts, and Formidable form
exports.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.locCommand())
	root.AddCommand(c.deckCommand())
	root.AddCommand(c.flowCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.formsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// parseFormats splits a comma-separated format flag, defaulting when empty.
func parseFormats(s string, def string) []string {
	if s == "" {
		return []string{def}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// validateFormats checks every requested format against the allowed set.
func validateFormats(formats []string, allowed map[string]bool) error {
	for _, f := range formats {
		if !allowed[f] {
			return invalidFormatError(f, allowed)
		}
	}
	return nil
}
