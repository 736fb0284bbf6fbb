package cli

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	if c.Logger == nil {
		t.Fatal("New() should set a logger")
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("visible now")
	if buf.Len() == 0 {
		t.Error("debug output should appear after SetLogLevel(LogDebug)")
	}
}

func TestRootCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != "vibelux" {
		t.Errorf("Use = %q, want %q", root.Use, "vibelux")
	}

	want := []string{"loc", "deck", "flow", "diagram", "report", "forms", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  []string
	}{
		{"empty uses default", "", "png", []string{"png"}},
		{"single", "svg", "png", []string{"svg"}},
		{"comma separated", "svg,png", "x", []string{"svg", "png"}},
		{"whitespace trimmed", " svg , png ", "x", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input, tt.def); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	allowed := map[string]bool{"png": true, "jpg": true}

	if err := validateFormats([]string{"png", "jpg"}, allowed); err != nil {
		t.Errorf("validateFormats() error = %v", err)
	}
	if err := validateFormats([]string{"png", "bmp"}, allowed); err == nil {
		t.Error("validateFormats() should reject unknown formats")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" .ts, .tsx ,,node_modules ")
	want := []string{".ts", ".tsx", "node_modules"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitList() = %v, want %v", got, want)
	}
}
