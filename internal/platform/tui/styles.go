package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Tile layout constants
const (
	tileWidth  = 7
	tileHeight = 1
)

// tilePalette maps tile values to 256-color backgrounds, roughly
// following the classic 2048 beige-to-orange ramp.
var tilePalette = map[int]struct{ fg, bg string }{
	2:    {"235", "255"},
	4:    {"235", "223"},
	8:    {"255", "215"},
	16:   {"255", "209"},
	32:   {"255", "203"},
	64:   {"255", "196"},
	128:  {"235", "227"},
	256:  {"235", "221"},
	512:  {"235", "220"},
	1024: {"235", "214"},
	2048: {"235", "226"},
}

// Styles holds the rendered styles for one game view.
type Styles struct {
	color bool

	Title    lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style
	Help     lipgloss.Style
	Board    lipgloss.Style
	Overlay  lipgloss.Style
	empty    lipgloss.Style
	tiles    map[int]lipgloss.Style
	fallback lipgloss.Style
}

// NewStyles builds the style set. With color disabled, tiles render as
// plain bordered cells.
func NewStyles(color bool) Styles {
	s := Styles{
		color: color,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")),
		HUDLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		HUDValue: lipgloss.NewStyle().
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("229")).
			Padding(1, 3).
			Align(lipgloss.Center),
		empty: lipgloss.NewStyle().
			Width(tileWidth).
			Height(tileHeight).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("238")),
		tiles: make(map[int]lipgloss.Style),
	}

	base := lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center).
		Bold(true)

	if !color {
		s.fallback = base
		return s
	}

	for value, c := range tilePalette {
		s.tiles[value] = base.
			Foreground(lipgloss.Color(c.fg)).
			Background(lipgloss.Color(c.bg))
	}
	// Values past 2048 share one style.
	s.fallback = base.
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("93"))

	return s
}

// Tile renders one cell of the board.
func (s Styles) Tile(value int) string {
	if value == 0 {
		return s.empty.Render("·")
	}
	style, ok := s.tiles[value]
	if !ok {
		style = s.fallback
	}
	return style.Render(strconv.Itoa(value))
}
