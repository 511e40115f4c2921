// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// CelebrationPrinter implements secondary.CelebrationNotifier by printing a
// banner when a phase auto-completes. Fire-and-forget: it never returns an
// error and never blocks the cascade that triggered it.
type CelebrationPrinter struct {
	out io.Writer
}

// NewCelebrationPrinter creates a new CelebrationPrinter writing to out.
func NewCelebrationPrinter(out io.Writer) *CelebrationPrinter {
	return &CelebrationPrinter{out: out}
}

// Celebrate prints the completion banner for a phase.
func (p *CelebrationPrinter) Celebrate(phaseTitle string) {
	banner := color.New(color.FgHiGreen, color.Bold).Sprint("Phase complete!")
	fmt.Fprintf(p.out, "\n  🎉 %s  %s\n\n", banner, phaseTitle)
}
