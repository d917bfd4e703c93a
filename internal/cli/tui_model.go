package cli

import (
	"context"
	"fmt"
	"strings"

	weeksapp "github.com/alexanderramin/weeks/internal/app"
	"github.com/alexanderramin/weeks/internal/cli/formatter"
	"github.com/alexanderramin/weeks/internal/datemath"
	"github.com/alexanderramin/weeks/internal/domain"
	"github.com/alexanderramin/weeks/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// tuiChromeHeight is the number of lines drawn around the grid viewport:
// header (2), input line, status line, caption, blank, legend, summary, help.
const tuiChromeHeight = 9

type tuiKeyMap struct {
	Commit key.Binding
	Quit   key.Binding
	Close  key.Binding
}

func defaultTUIKeyMap() tuiKeyMap {
	return tuiKeyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "set date")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		// q only quits when there is no input to type into.
		Close: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// gridViewportKeyMap leaves letters and digits free for the date input.
func gridViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func isGridScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

// tuiModel shows the life grid for one session. When the birth date was not
// locked by parameter it also shows a date input; each committed date
// replaces the input and recomputes every cell.
type tuiModel struct {
	ctx     context.Context
	session weeksapp.CalendarSession
	resp    *weeksapp.GridResponse

	input    textinput.Model
	grid     viewport.Model
	keys     tuiKeyMap
	errMsg   string
	quitting bool
}

func newTUIModel(ctx context.Context, sess weeksapp.CalendarSession) tuiModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = len(datemath.DateLayout)
	ti.Width = len(datemath.DateLayout) + 1
	ti.SetValue(sess.Input().String())

	vp := viewport.New(domain.WeeksPerYear+8, domain.TotalYears+1)
	vp.KeyMap = gridViewportKeyMap()

	m := tuiModel{
		ctx:     ctx,
		session: sess,
		input:   ti,
		grid:    vp,
		keys:    defaultTUIKeyMap(),
	}
	if sess.Input().PickerVisible() {
		m.input.Focus()
	}
	m.recompute()
	return m
}

func (m *tuiModel) recompute() {
	m.resp = m.session.View(m.ctx)
	m.grid.SetContent(strings.TrimSuffix(formatter.GridBody(m.resp.Grid), "\n"))
}

func (m *tuiModel) commit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.errMsg = "enter a birth date"
		return
	}
	if err := m.session.SetBirthDate(m.ctx, text); err != nil {
		if service.IsInputLocked(err) {
			m.errMsg = "birth date is locked by --dob"
		} else {
			m.errMsg = dateErrorMessage(err)
		}
		return
	}
	m.errMsg = ""
	m.recompute()
}

func (m tuiModel) Init() tea.Cmd {
	if m.input.Focused() {
		return textinput.Blink
	}
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.grid.Width = msg.Width
		m.grid.Height = max(msg.Height-tuiChromeHeight, 1)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Close) && !m.input.Focused():
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Commit) && m.input.Focused():
			m.commit()
			return m, nil
		case isGridScrollKey(msg):
			var cmd tea.Cmd
			m.grid, cmd = m.grid.Update(msg)
			return m, cmd
		}
		if m.input.Focused() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Life in weeks"))
	b.WriteString("\n")
	b.WriteString(m.inputLine())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(formatter.StyleRed.Render(m.errMsg))
	} else {
		b.WriteString(scrollIndicator(m.grid))
	}
	b.WriteString("\n")
	b.WriteString(formatter.Caption(m.resp))
	b.WriteString("\n\n")
	b.WriteString(m.grid.View())
	b.WriteString("\n")
	b.WriteString(formatter.Legend(m.resp.Grid.Marks))
	b.WriteString("\n")
	b.WriteString(formatter.Summary(m.resp))
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m tuiModel) inputLine() string {
	label := formatter.Dim("Birth date") + " "
	in := m.session.Input()
	if !in.PickerVisible() {
		return label + formatter.Bold(in.String()) + " " + formatter.Dim("(locked)")
	}
	return label + formatter.StylePurple.Render("❯") + " " + m.input.View()
}

func (m tuiModel) helpLine() string {
	bindings := []key.Binding{m.keys.Quit}
	if m.input.Focused() {
		bindings = append([]key.Binding{m.keys.Commit}, bindings...)
	} else {
		bindings = append(bindings, m.keys.Close)
	}
	parts := make([]string, 0, len(bindings)+1)
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	parts = append(parts, formatter.Bold("↑/↓")+" "+formatter.Dim("scroll"))
	return strings.Join(parts, formatter.Dim(" · "))
}

// scrollIndicator returns a dim scroll position string for the status line.
func scrollIndicator(vp viewport.Model) string {
	if vp.TotalLineCount() <= vp.Height {
		return ""
	}
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}
