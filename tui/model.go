package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tiltone/midi"
	"tiltone/scale"
	"tiltone/theme"
	"tiltone/tilt"
	"tiltone/voice"
)

type Model struct {
	Controller *voice.Controller
	Out        *midi.OutputManager // may be nil (recorder/demo sink)
	Theme      *theme.Theme

	samples  <-chan tilt.Sample
	last     tilt.Point
	haveLast bool
	quitting bool
}

// SampleMsg carries one accelerometer sample into the update loop.
type SampleMsg tilt.Sample

// SourceClosedMsg is sent when the sample stream ends (serial error or
// demo cancelled).
type SourceClosedMsg struct{}

func NewModel(ctrl *voice.Controller, out *midi.OutputManager, samples <-chan tilt.Sample, th *theme.Theme) Model {
	return Model{
		Controller: ctrl,
		Out:        out,
		Theme:      th,
		samples:    samples,
	}
}

func ListenForSamples(samples <-chan tilt.Sample) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-samples
		if !ok {
			return SourceClosedMsg{}
		}
		return SampleMsg(s)
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForSamples(m.samples)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// Flush any sounding note before the program exits.
			m.Controller.PowerOff()
			m.quitting = true
			return m, tea.Quit

		case "]":
			m.Controller.OctaveUp()

		case "[":
			m.Controller.OctaveDown()

		case "s":
			m.Controller.NextScale()

		case "g":
			m.Controller.ToggleGuide()

		case "x":
			m.Controller.PowerOff()
		}

	case SampleMsg:
		m.Controller.ProcessSample(tilt.Sample(msg))
		m.last = tilt.Map(tilt.Sample(msg))
		m.haveLast = true
		return m, ListenForSamples(m.samples)

	case SourceClosedMsg:
		m.Controller.PowerOff()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	c := m.Controller
	sym := m.Theme.Symbols

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	warnStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	power := string(sym.PowerOn)
	if !c.Powered() {
		power = string(sym.PowerOff)
	}

	out := "no output"
	if m.Out != nil {
		if name := m.Out.PortName(); name != "" {
			out = name
		}
	}

	header := headerStyle.Render(fmt.Sprintf(
		"tiltone  %s  %-10s oct:%d  note:%-4s", power, c.CurrentScale(), c.Octave(), c.NoteName(),
	)) + dimStyle.Render("  out:"+out)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString("\n\n")

	if !c.Powered() {
		b.WriteString(warnStyle.Render("powered off — restart to play"))
		b.WriteString("\n\n")
	} else if c.GuideVisible() {
		b.WriteString(m.guideView())
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("[ ]:octave  s:scale  g:guide  x:power off  q:quit"))
	return b.String()
}

// guideView draws the 8-sector rose: the note each tilt direction
// plays, with the sounding sector marked.
//
//	b3 b2 b1
//	b4  + b0
//	b5 b6 b7
func (m Model) guideView() string {
	c := m.Controller
	offsets := scale.Offsets(c.CurrentScale())

	active := -1
	if m.haveLast && !m.last.Silent && c.SoundingNote() >= 0 {
		active = m.last.Bucket
	}

	cell := func(bucket int) string {
		name := scale.NoteName(c.Octave()*12 + offsets[bucket])
		s := fmt.Sprintf("%c%-4s", m.Theme.Symbols.SectorIdle, name)
		style := lipgloss.NewStyle().Foreground(m.Theme.FG())
		if bucket == active {
			s = fmt.Sprintf("%c%-4s", m.Theme.Symbols.SectorActive, name)
			style = style.Foreground(m.Theme.Active())
		}
		return style.Render(s)
	}

	center := lipgloss.NewStyle().Foreground(m.Theme.Muted()).Render(
		fmt.Sprintf("%c    ", m.Theme.Symbols.Center))

	rows := [3]string{
		cell(3) + " " + cell(2) + " " + cell(1),
		cell(4) + " " + center + " " + cell(0),
		cell(5) + " " + cell(6) + " " + cell(7),
	}
	return rows[0] + "\n" + rows[1] + "\n" + rows[2] + "\n"
}
