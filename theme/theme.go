package theme

import "github.com/charmbracelet/lipgloss"

// Theme bundles the color roles and rune symbols used by the TUI.
type Theme struct {
	Symbols Symbols
}

type Symbols struct {
	// Guide rose
	SectorIdle   rune // · sector not sounding
	SectorActive rune // ● sector currently sounding
	Center       rune // rose center (the dead zone)

	// Header
	PowerOn  rune // ●
	PowerOff rune // ○
}

func New() *Theme {
	return &Theme{
		Symbols: Symbols{
			SectorIdle:   '·',
			SectorActive: '●',
			Center:       '+',

			PowerOn:  '●',
			PowerOff: '○',
		},
	}
}

// Fixed role palette. The original palette-file loader is gone; the
// status display only needs a handful of stable roles.
var (
	colFG     = lipgloss.Color("#d8c7ff")
	colMuted  = lipgloss.Color("#6b5a8a")
	colAccent = lipgloss.Color("#e04fd1")
	colActive = lipgloss.Color("#ff6f61")
	colWarn   = lipgloss.Color("#ffa94d")
)

func (t *Theme) FG() lipgloss.Color      { return colFG }
func (t *Theme) Muted() lipgloss.Color   { return colMuted }
func (t *Theme) Accent() lipgloss.Color  { return colAccent }
func (t *Theme) Active() lipgloss.Color  { return colActive }
func (t *Theme) Warning() lipgloss.Color { return colWarn }
