package render

import (
	"strings"
	"testing"
)

func TestPagesToPDFEmpty(t *testing.T) {
	_, err := PagesToPDF(nil)
	if err == nil {
		t.Fatal("PagesToPDF(nil) = nil error, want error")
	}
	if !strings.Contains(err.Error(), "no pages") {
		t.Errorf("error = %v, want mention of no pages", err)
	}
}

func TestInstallHint(t *testing.T) {
	err := installHint("pdf")
	for _, want := range []string{"librsvg", "brew install", "apt install"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("installHint missing %q in %v", want, err)
		}
	}
}
