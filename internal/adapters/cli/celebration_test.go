package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestCelebrationPrinter(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var out bytes.Buffer
	NewCelebrationPrinter(&out).Celebrate("Demolition")

	if !strings.Contains(out.String(), "Phase complete!") {
		t.Errorf("expected banner, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Demolition") {
		t.Errorf("expected phase title, got %q", out.String())
	}
}
