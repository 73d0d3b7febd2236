package output

import (
	"os"

	"github.com/arthur-debert/packforge/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ColorEnabled reports whether styled output should be written to f.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if f == nil || termenv.EnvNoColor() {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// Configure applies the color mode to every styling library in use and
// returns whether color ended up enabled.
func Configure(mode string, f *os.File) bool {
	enabled := ColorEnabled(mode, f)
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
		return false
	}

	profile := termenv.ANSI256
	if f != nil {
		if p := termenv.NewOutput(f).ColorProfile(); p != termenv.Ascii {
			profile = p
		}
	}
	lipgloss.SetColorProfile(profile)
	pterm.EnableStyling()
	return true
}
