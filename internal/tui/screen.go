// Package tui renders the hike picker screen.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hikelist/internal/config"
	"github.com/jask/hikelist/internal/hikes"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type row struct {
	key    string
	name   string
	top    int // first line inside the viewport content
	height int // box lines, shadow excluded
	width  int // box columns, shadow excluded
	span   int // box plus shadow
}

// Screen lists every hike in the catalog as a pressable row. Pressing a row
// calls the SelectFunc with the hike name and leaves the screen as it was.
type Screen struct {
	catalog  hikes.Catalog
	title    string
	onSelect SelectFunc
	keys     keyMap
	bar      statusBar

	viewport viewport.Model
	rows     []row
	cursor   int
	width    int
	height   int
}

// New builds the screen. A nil onSelect makes presses a no-op.
func New(cfg config.UIConfig, catalog hikes.Catalog, onSelect SelectFunc) *Screen {
	if onSelect == nil {
		onSelect = func(string) {}
	}
	s := &Screen{
		catalog:  catalog,
		title:    cfg.Title,
		onSelect: onSelect,
		keys:     defaultKeyMap(),
		bar:      newStatusBar(cfg.StatusBar),
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	s.layout()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = m.Width, m.Height
		s.layout()
	case tea.KeyMsg:
		switch {
		case key.Matches(m, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(m, s.keys.Up):
			s.moveCursor(s.cursor - 1)
		case key.Matches(m, s.keys.Down):
			s.moveCursor(s.cursor + 1)
		case key.Matches(m, s.keys.Top):
			s.moveCursor(0)
		case key.Matches(m, s.keys.Bottom):
			s.moveCursor(len(s.rows) - 1)
		case key.Matches(m, s.keys.Select):
			s.press(s.cursor)
		}
	case tea.MouseMsg:
		if m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft {
			if i, ok := s.rowAt(m.X, m.Y); ok {
				s.press(i)
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(m)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.header(),
		s.viewport.View(),
		s.bar.Render(s.width, s.keys.help()),
	)
}

// RowKeys returns the rendering key of each row, top to bottom.
func (s *Screen) RowKeys() []string {
	out := make([]string, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r.key)
	}
	return out
}

func (s *Screen) press(i int) {
	if i < 0 || i >= len(s.rows) {
		return
	}
	s.onSelect(s.rows[i].name)
}

func (s *Screen) header() string {
	return titleStyle.Width(s.width).Render(s.title)
}

func (s *Screen) headerHeight() int {
	return lipgloss.Height(s.header())
}

// layout sizes the viewport to the space left by the header and status bar
// and re-renders every row.
func (s *Screen) layout() {
	s.viewport.Width = s.width
	s.viewport.Height = max(s.height-s.headerHeight()-1, 0)
	s.viewport.SetContent(s.renderRows())
	// SetContent keeps any offset short of the last line; clamp it to the new height.
	s.viewport.SetYOffset(s.viewport.YOffset)
	s.ensureVisible()
}

func (s *Screen) renderRows() string {
	inner := s.width - listStyle.GetHorizontalPadding()
	boxWidth := max(inner-rowStyle.GetHorizontalBorderSize()-1, 1)

	s.rows = s.rows[:0]
	blocks := make([]string, 0, s.catalog.Len())
	top := 0
	for i, h := range s.catalog.Hikes() {
		style := rowStyle
		if i == s.cursor {
			style = focusedRowStyle
		}
		box := style.Width(boxWidth).Render(h.Name)
		shadow := shadowStyle.Render(" " + strings.Repeat("▀", lipgloss.Width(box)-1))
		block := lipgloss.JoinVertical(lipgloss.Left, box, shadow)

		r := row{key: h.ID, name: h.Name, top: top, height: lipgloss.Height(box), width: lipgloss.Width(box), span: lipgloss.Height(block)}
		s.rows = append(s.rows, r)
		blocks = append(blocks, block)
		top += r.span
	}
	return listStyle.Render(strings.Join(blocks, "\n"))
}

func (s *Screen) moveCursor(i int) {
	if len(s.rows) == 0 {
		return
	}
	i = min(max(i, 0), len(s.rows)-1)
	if i == s.cursor {
		return
	}
	s.cursor = i
	s.viewport.SetContent(s.renderRows())
	s.ensureVisible()
}

func (s *Screen) ensureVisible() {
	if s.cursor >= len(s.rows) || s.viewport.Height == 0 {
		return
	}
	r := s.rows[s.cursor]
	switch {
	case r.top < s.viewport.YOffset:
		s.viewport.SetYOffset(r.top)
	case r.top+r.span > s.viewport.YOffset+s.viewport.Height:
		s.viewport.SetYOffset(r.top + r.span - s.viewport.Height)
	}
}

// rowAt maps a screen cell to the row whose box covers it.
func (s *Screen) rowAt(x, y int) (int, bool) {
	y -= s.headerHeight()
	if y < 0 || y >= s.viewport.Height {
		return 0, false
	}
	x -= listStyle.GetPaddingLeft()
	line := y + s.viewport.YOffset
	for i, r := range s.rows {
		if x >= 0 && x < r.width && line >= r.top && line < r.top+r.height {
			return i, true
		}
	}
	return 0, false
}
