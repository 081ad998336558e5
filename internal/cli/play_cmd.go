package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/twistycube"
	"github.com/SeamusWaldron/twistycube/internal/scripting"
)

var playCmd = &cobra.Command{
	Use:   "play [notation]...",
	Short: "Twist a cube interactively in the terminal",
	Long: `Open an interactive cube. Any notation given on the command line is
queued first and plays out one twist per tick.

Keys:
  f u r d l b m e s x y z   twist clockwise
  F U R D L B M E S X Y Z   twist anti-clockwise
  1-9                       layer for face twists
  ctrl+z / ctrl+y           undo / redo
  !                         shuffle
  ?                         queue the Lua solver's solution
  0                         reset
  p                         pause
  q                         quit

Usage:
  twistycube play
  twistycube play -n 4 --tick 100ms
  twistycube play "(R U R' U')6"`,
	RunE: runPlay,
}

var playStartShuffled bool

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playStartShuffled, "shuffled", false, "Start from a shuffled cube")
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	progressStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	twistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stickerColors = map[twistycube.Color]lipgloss.Color{
		twistycube.White:     lipgloss.Color("#FFFFFF"),
		twistycube.Yellow:    lipgloss.Color("#FFD500"),
		twistycube.Green:     lipgloss.Color("#009E60"),
		twistycube.Blue:      lipgloss.Color("#0051BA"),
		twistycube.Red:       lipgloss.Color("#C41E3A"),
		twistycube.Orange:    lipgloss.Color("#FF5800"),
		twistycube.Colorless: lipgloss.Color("#303030"),
	}
)

func runPlay(cmd *cobra.Command, args []string) error {
	cube, engine, err := newCube(cfg.Cube.Order, true)
	if err != nil {
		return err
	}
	if engine != nil {
		defer engine.Close()
	}

	if playStartShuffled {
		cube.Shuffle(cfg.Cube.ShuffleLength)
	}
	if len(args) > 0 {
		if _, err := cube.TwistNotation(strings.Join(args, " ")); err != nil {
			return err
		}
	}

	model := newPlayModel(cube, engine, cfg.Play.TickInterval)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

// playModel is the bubbletea model for the play command.
type playModel struct {
	cube      *twistycube.Cube
	tracker   *twistycube.Tracker
	engine    *scripting.Engine
	tick      time.Duration
	layer     int
	paused    bool
	quitting  bool
	last      *twistycube.TwistResult
	message   string
	err       error
	startTime time.Time
	elapsed   time.Duration
}

func newPlayModel(c *twistycube.Cube, engine *scripting.Engine, tick time.Duration) *playModel {
	m := &playModel{
		cube:      c,
		tracker:   twistycube.NewTracker(c),
		engine:    engine,
		tick:      tick,
		layer:     1,
		startTime: time.Now(),
	}
	m.tracker.SetCallback(func(p twistycube.Progress) {
		m.message = fmt.Sprintf("New best: %d faces", p.Faces)
	})
	c.OnShuffled(func() {
		m.message = "Shuffled"
		m.startTime = time.Now()
	})
	return m
}

type playTickMsg time.Time

func (m *playModel) Init() tea.Cmd {
	return m.scheduleTick()
}

func (m *playModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg.String())
		if m.quitting {
			return m, tea.Quit
		}

	case playTickMsg:
		m.elapsed = time.Since(m.startTime)
		if !m.paused {
			if r, ok := m.cube.Advance(); ok {
				m.last = &r
				if m.cube.IsSolved() && r.Counted && !m.cube.IsShuffling() {
					m.message = "Solved!"
				}
			}
		}
		return m, m.scheduleTick()
	}

	return m, nil
}

func (m *playModel) handleKey(key string) {
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true

	case "ctrl+z", "backspace":
		if !m.cube.Undo() {
			m.message = "Nothing to undo"
		}

	case "ctrl+y", "tab":
		if !m.cube.Redo() {
			m.message = "Nothing to redo"
		}

	case "!":
		m.cube.Shuffle(cfg.Cube.ShuffleLength)
		m.message = "Shuffling..."

	case "?":
		m.solve()

	case "0":
		m.cube.Reset()
		m.tracker.Reset()
		m.last = nil
		m.message = "Reset"
		m.startTime = time.Now()

	case "p":
		m.paused = !m.paused

	default:
		if len(key) != 1 {
			return
		}
		ch := key[0]
		if ch >= '1' && ch <= '9' {
			m.selectLayer(int(ch - '0'))
			return
		}
		m.twistKey(ch)
	}
}

func (m *playModel) selectLayer(layer int) {
	if layer > m.cube.Order() {
		m.message = fmt.Sprintf("Layer %d is deeper than the cube", layer)
		return
	}
	m.layer = layer
	m.message = fmt.Sprintf("Layer %d", layer)
}

func (m *playModel) twistKey(ch byte) {
	amount := 1
	base := ch
	if ch >= 'A' && ch <= 'Z' {
		amount = -1
	} else {
		base = ch - ('a' - 'A')
	}
	if !twistycube.ValidBase(base) || strings.IndexByte("FURDLBMESXYZ", base) < 0 {
		return
	}

	t := twistycube.NewTwist(base, amount)
	if strings.IndexByte("FURDLB", base) >= 0 {
		t.StartLayer, t.EndLayer = m.layer, m.layer
	}
	if _, err := m.cube.Twist(t); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.message = ""
}

func (m *playModel) solve() {
	if m.engine == nil {
		m.message = "No solver scripts loaded (set scripts.solver in the config)"
		return
	}
	alg, err := m.cube.Solve()
	if err != nil {
		m.err = err
		logger.Warn("solve failed", zap.Error(err))
		return
	}
	m.err = nil
	m.message = fmt.Sprintf("Solution queued: %d twists", alg.Len())
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	order := m.cube.Order()

	b.WriteString(titleStyle.Render(fmt.Sprintf("twistycube %dx%dx%d", order, order, order)))
	b.WriteString("\n\n")

	b.WriteString(m.renderNet())
	b.WriteString("\n")

	p := m.tracker.Current()
	if m.cube.IsSolved() {
		b.WriteString(fmt.Sprintf("State: %s\n", progressStyle.Render("SOLVED")))
	} else {
		b.WriteString(fmt.Sprintf("State: %s", progressStyle.Render(p.String())))
		b.WriteString(statusStyle.Render(fmt.Sprintf("  (best %d faces)", m.tracker.HighestFaces())))
		b.WriteString("\n")
	}

	status := fmt.Sprintf("Moves: %d  Pending: %d  Layer: %d  Time: %s",
		m.cube.MoveCounter(), m.cube.Pending(), m.layer, m.formatElapsed())
	if m.paused {
		status += " [PAUSED]"
	}
	if m.cube.IsShuffling() {
		status += " [SHUFFLING]"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if m.last != nil {
		label := m.last.Twist.String()
		if m.last.Undo {
			label += " (undo)"
		}
		b.WriteString("Last: ")
		b.WriteString(twistStyle.Render(label))
		b.WriteString("\n")
	}

	if h := m.recentHistory(20); h != "" {
		b.WriteString("History: ")
		b.WriteString(twistStyle.Render(h))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString(statusStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("furdlb/mesxyz=twist  SHIFT=prime  1-9=layer  ^z/^y=undo/redo  !=shuffle  ?=solve  0=reset  p=pause  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// renderNet draws U above L F R B with D below, two cells per sticker.
func (m *playModel) renderNet() string {
	c := m.cube
	n := c.Order()
	indent := strings.Repeat(" ", 2*n+1)

	var b strings.Builder
	row := func(stickers []twistycube.Color) {
		for _, col := range stickers {
			b.WriteString(lipgloss.NewStyle().Background(stickerColors[col]).Render("  "))
		}
	}

	for _, r := range c.Facelets(twistycube.Up) {
		b.WriteString(indent)
		row(r)
		b.WriteString("\n")
	}
	side := [4][][]twistycube.Color{
		c.Facelets(twistycube.Left),
		c.Facelets(twistycube.Front),
		c.Facelets(twistycube.Right),
		c.Facelets(twistycube.Back),
	}
	for r := 0; r < n; r++ {
		for i, face := range side {
			if i > 0 {
				b.WriteString(" ")
			}
			row(face[r])
		}
		b.WriteString("\n")
	}
	for _, r := range c.Facelets(twistycube.Down) {
		b.WriteString(indent)
		row(r)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *playModel) recentHistory(limit int) string {
	history := m.cube.History()
	if len(history) == 0 {
		return ""
	}
	var sb strings.Builder
	start := 0
	if len(history) > limit {
		start = len(history) - limit
		sb.WriteString("... ")
	}
	for i := start; i < len(history); i++ {
		if i > start {
			sb.WriteByte(' ')
		}
		sb.WriteString(history[i].Notation())
	}
	return sb.String()
}

func (m *playModel) formatElapsed() string {
	if m.elapsed < time.Minute {
		return fmt.Sprintf("%.1fs", m.elapsed.Seconds())
	}
	mins := int(m.elapsed.Minutes())
	secs := m.elapsed.Seconds() - float64(mins*60)
	return fmt.Sprintf("%d:%05.2f", mins, secs)
}
