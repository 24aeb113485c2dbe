// Package tui implements the interactive statusdeck dashboard. The layout
// reflows live as the terminal is resized: the status line, diff view, and
// timer all re-derive their presentation from the current width.
package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/statusdeck/config"
	"gitlab.com/tinyland/lab/statusdeck/display/countdown"
	"gitlab.com/tinyland/lab/statusdeck/display/diffview"
	"gitlab.com/tinyland/lab/statusdeck/display/layout"
	"gitlab.com/tinyland/lab/statusdeck/display/widgets"
)

// Tab identifies which tab is currently active.
type Tab int

const (
	TabStatus Tab = iota
	TabDiff
	TabTimer
	tabCount // sentinel for wrapping
)

// tabNames maps each Tab value to its display label.
var tabNames = map[Tab]string{
	TabStatus: "Status",
	TabDiff:   "Diff",
	TabTimer:  "Timer",
}

// defaultTimerWindow is the countdown window started on launch and reset.
const defaultTimerWindow = 30 * time.Second

// tickMsg drives the once-a-second countdown refresh.
type tickMsg time.Time

// Model is the top-level Bubbletea model for the statusdeck TUI.
type Model struct {
	cfg       *config.Config
	activeTab Tab
	width     int
	height    int
	ready     bool

	density layout.Density
	abbrev  layout.AbbrevMode
	diff    diffview.Mode

	oldText string
	newText string

	deadline time.Time
	window   time.Duration
	// history holds the remaining seconds sampled each tick, newest last.
	history []float64

	// diffView scrolls the rendered diff when it exceeds the content area.
	diffView viewport.Model

	help     help.Model
	showHelp bool
}

// NewModel returns an initialized Model with TabStatus active.
func NewModel(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	zone.NewGlobal()
	return Model{
		cfg:       cfg,
		activeTab: TabStatus,
		density:   cfg.Density(),
		abbrev:    cfg.AbbrevMode(),
		diff:      cfg.DiffMode(),
		window:    defaultTimerWindow,
		deadline:  time.Now().Add(defaultTimerWindow),
		diffView:  viewport.New(0, 0),
		help:      help.New(),
	}
}

// SetDiffSource updates the before/after text shown in the diff tab.
func (m *Model) SetDiffSource(oldText, newText string) {
	m.oldText = oldText
	m.newText = newText
}

// Init implements tea.Model. It starts the countdown tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model. It handles key presses, mouse clicks on the
// tab bar, window resizes, and countdown ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextTab):
			m.activeTab = (m.activeTab + 1) % tabCount
		case key.Matches(msg, keys.PrevTab):
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		case key.Matches(msg, keys.Tab1):
			m.activeTab = TabStatus
		case key.Matches(msg, keys.Tab2):
			m.activeTab = TabDiff
		case key.Matches(msg, keys.Tab3):
			m.activeTab = TabTimer
		case key.Matches(msg, keys.Density):
			m.density = nextDensity(m.density)
		case key.Matches(msg, keys.Abbrev):
			m.abbrev = nextAbbrev(m.abbrev)
		case key.Matches(msg, keys.DiffMode):
			m.diff = nextDiffMode(m.diff)
		case key.Matches(msg, keys.Reset):
			m.deadline = time.Now().Add(m.window)
			m.history = nil
		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		default:
			if m.activeTab == TabDiff {
				var cmd tea.Cmd
				m.diffView, cmd = m.diffView.Update(msg)
				return m, cmd
			}
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for i := Tab(0); i < tabCount; i++ {
				if zone.Get(tabZoneID(i)).InBounds(msg) {
					m.activeTab = i
					break
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.diffView.Width = max(msg.Width-4, 1)
		m.diffView.Height = max(msg.Height-8, 1)

	case tickMsg:
		remaining := time.Until(m.deadline)
		m.history = append(m.history, float64(countdown.Seconds(remaining)))
		if len(m.history) > 60 {
			m.history = m.history[len(m.history)-60:]
		}
		return m, tick()
	}

	return m, nil
}

// View implements tea.Model. It renders the header, active tab content, and
// footer, then scans the output for click zones.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	content := m.renderTabContent()
	footer := m.renderFooter()

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, content, footer))
}

func tabZoneID(t Tab) string {
	return "tab:" + strconv.Itoa(int(t))
}

// renderHeader renders the tab bar with the active tab highlighted. Each tab
// label is marked as a click zone.
func (m Model) renderHeader() string {
	var tabs []string
	for i := Tab(0); i < tabCount; i++ {
		name := tabNames[i]
		var rendered string
		if i == m.activeTab {
			rendered = styleActiveTab.Render(name)
		} else {
			rendered = styleInactiveTab.Render(name)
		}
		tabs = append(tabs, zone.Mark(tabZoneID(i), rendered))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return styleHeader.Width(m.width).Render(tabBar)
}

// renderTabContent delegates to the appropriate tab renderer.
func (m Model) renderTabContent() string {
	contentHeight := m.height - 6
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Horizontal padding from styleContent.
	innerWidth := m.width - 4
	if innerWidth < 1 {
		innerWidth = 1
	}

	var content string
	switch m.activeTab {
	case TabStatus:
		content = m.renderStatusTab(innerWidth)
	case TabDiff:
		content = m.renderDiffTab(innerWidth)
	case TabTimer:
		content = m.renderTimerTab(innerWidth)
	default:
		content = ""
	}

	return styleContent.Width(m.width).Render(content)
}

// renderStatusTab shows the responsive status line plus the derived layout
// state so resizes are immediately visible.
func (m Model) renderStatusTab(width int) string {
	bp := layout.Classify(width, m.cfg.Thresholds())

	line := layout.ComposeLine(m.cfg.BuildSegments(), layout.LineOptions{
		Width:         width,
		Breakpoint:    bp,
		Density:       m.density,
		Mode:          m.abbrev,
		MaxValueWidth: m.cfg.Display.MaxValueWidth,
	})

	info := []string{
		styleTitle.Render("Status line"),
		line,
		"",
		"tier: " + bp.String() +
			"  density: " + m.density.String() +
			"  labels: " + m.abbrev.String(),
	}

	if m.density == layout.DensityVerbose && len(m.history) > 1 {
		spark := widgets.RenderSparkline(widgets.SparklineConfig{
			Data:  m.history,
			Width: min(width, 40),
			Label: "timer",
			Color: colorSecondary,
		})
		info = append(info, "", spark)
	}

	return strings.Join(info, "\n")
}

// renderDiffTab shows the before/after comparison in the current diff mode,
// scrollable through the viewport.
func (m Model) renderDiffTab(width int) string {
	res := diffview.SelectMode(m.diff, width, m.cfg.Diff.SplitMinWidth)
	rows := diffview.ComputeRows(m.oldText, m.newText)
	lines := diffview.Render(rows, res.Mode, width, m.cfg.Display.Color)

	out := []string{
		styleTitle.Render("Diff (" + res.Mode.String() + ")"),
	}
	if res.Fallback {
		out = append(out, styleNotice.Render(res.Notice))
	}

	vp := m.diffView
	vp.SetContent(strings.Join(lines, "\n"))
	out = append(out, "", vp.View())
	return strings.Join(out, "\n")
}

// renderTimerTab shows the countdown, its urgency color, and the elapsed
// portion of the window as a gauge.
func (m Model) renderTimerTab(width int) string {
	remaining := time.Until(m.deadline)

	gaugeWidth := min(width-2, 40)
	if gaugeWidth < 4 {
		gaugeWidth = 4
	}

	out := []string{
		styleTitle.Render("Timer"),
		"",
		widgets.RenderCountdownStatus(remaining),
		widgets.RenderCountdownGauge(remaining, m.window, gaugeWidth),
	}

	if len(m.history) > 1 {
		out = append(out, "", widgets.RenderSparkline(widgets.SparklineConfig{
			Data:  m.history,
			Width: gaugeWidth,
			Color: colorSecondary,
		}))
	}

	return strings.Join(out, "\n")
}

// renderFooter renders the keybinding help.
func (m Model) renderFooter() string {
	return styleFooter.Width(m.width).Render(m.help.View(keys))
}

func nextDensity(d layout.Density) layout.Density {
	switch d {
	case layout.DensityAuto:
		return layout.DensityCompact
	case layout.DensityCompact:
		return layout.DensityVerbose
	default:
		return layout.DensityAuto
	}
}

func nextAbbrev(m layout.AbbrevMode) layout.AbbrevMode {
	switch m {
	case layout.AbbrevAuto:
		return layout.AbbrevFull
	case layout.AbbrevFull:
		return layout.AbbrevAbbreviated
	default:
		return layout.AbbrevAuto
	}
}

func nextDiffMode(m diffview.Mode) diffview.Mode {
	switch m {
	case diffview.ModeAuto:
		return diffview.ModeUnified
	case diffview.ModeUnified:
		return diffview.ModeSplit
	case diffview.ModeSplit:
		return diffview.ModeInline
	default:
		return diffview.ModeAuto
	}
}
