package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status bar content styles. Auto follows the terminal background.
const (
	StatusBarAuto  = "auto"
	StatusBarLight = "light"
	StatusBarDark  = "dark"
)

type statusBar struct {
	mode  string
	style lipgloss.Style
	keys  lipgloss.Style
}

func newStatusBar(mode string) statusBar {
	mode = strings.ToLower(strings.TrimSpace(mode))
	var fg, bg, muted lipgloss.TerminalColor
	switch mode {
	case StatusBarLight:
		fg, bg, muted = latteText, latteMantle, latteOverlay
	case StatusBarDark:
		fg, bg, muted = colorText, colorMantle, colorSubtext0
	default:
		mode = StatusBarAuto
		fg = lipgloss.AdaptiveColor{Light: string(latteText), Dark: string(colorText)}
		bg = lipgloss.AdaptiveColor{Light: string(latteMantle), Dark: string(colorMantle)}
		muted = lipgloss.AdaptiveColor{Light: string(latteOverlay), Dark: string(colorSubtext0)}
	}
	return statusBar{
		mode:  mode,
		style: lipgloss.NewStyle().Foreground(muted).Background(bg).Padding(0, 1),
		keys:  lipgloss.NewStyle().Foreground(fg).Background(bg).Bold(true),
	}
}

type helpEntry struct {
	key, desc string
}

func (b statusBar) Render(width int, help []helpEntry) string {
	parts := make([]string, 0, len(help))
	for _, h := range help {
		parts = append(parts, b.keys.Render(h.key)+b.style.UnsetPadding().Render(" "+h.desc))
	}
	sep := b.style.UnsetPadding().Render("  ")
	return b.style.Width(width).MaxHeight(1).Render(strings.Join(parts, sep))
}
