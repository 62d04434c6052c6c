package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runger/pickline/internal/options"
)

// columnGap separates adjacent columns.
const columnGap = "  "

// styles groups the lipgloss styles used by View. They are built from a
// renderer so the color profile follows the output terminal, not stdout.
type styles struct {
	cursor   lipgloss.Style
	selected lipgloss.Style
	normal   lipgloss.Style
	hint     lipgloss.Style
	filter   lipgloss.Style
	editing  lipgloss.Style
	page     lipgloss.Style
	title    lipgloss.Style
	dim      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		cursor:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		normal:   r.NewStyle().Foreground(lipgloss.Color("252")),
		hint:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("244")),
		filter:   r.NewStyle().Foreground(lipgloss.Color("241")),
		editing:  r.NewStyle().Foreground(lipgloss.Color("214")),
		page:     r.NewStyle().Foreground(lipgloss.Color("245")),
		title:    r.NewStyle().Bold(true),
		dim:      r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// ModelOptions configures the renderer.
type ModelOptions struct {
	// AutoPageSize resizes the page to the terminal on every WindowSizeMsg.
	AutoPageSize bool
	// Renderer is the lipgloss renderer for the output terminal. Nil uses
	// the default renderer.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for the picker. It translates key events
// into engine commands and draws the engine snapshot; it holds no picker
// state of its own.
type Model struct {
	engine *Engine
	keys   KeyMap
	help   help.Model
	styles styles

	autoPageSize bool
	showHelp     bool
	done         bool

	width  int
	height int
}

// NewModel wraps engine in a renderer.
func NewModel(engine *Engine, opts ModelOptions) Model {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.Styles.ShortKey = r.NewStyle().Foreground(lipgloss.Color("245"))
	h.Styles.ShortDesc = r.NewStyle().Foreground(lipgloss.Color("241"))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc

	return Model{
		engine:       engine,
		keys:         DefaultKeyMap(),
		help:         h,
		styles:       newStyles(r),
		autoPageSize: opts.AutoPageSize,
	}
}

// Engine returns the wrapped engine.
func (m Model) Engine() *Engine { return m.engine }

// Done reports whether the session has ended.
func (m Model) Done() bool { return m.done }

// Result returns the selected output lines, or false when nothing was
// selected.
func (m Model) Result() ([]string, bool) { return m.engine.Result() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.autoPageSize {
			size := options.ResolvePageSize(options.PageSize{Auto: true}, m.engine.Store().Len(), msg.Height)
			m.engine.SetPageSize(size)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if IsNormal(m.engine.Mode()) && msg.String() == "?" {
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	for _, cmd := range m.keys.Translate(m.engine.Mode(), msg) {
		if m.engine.Dispatch(cmd) {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model. It only reads the engine.
func (m Model) View() string {
	if m.done {
		return ""
	}

	snap := m.engine.Snapshot()

	var b strings.Builder
	if IsReview(snap.Mode) {
		b.WriteString(m.viewReview(snap))
	} else {
		b.WriteString(m.viewRows(snap))
	}
	b.WriteRune('\n')
	b.WriteString(m.viewStatus(snap))

	if IsNormal(snap.Mode) {
		b.WriteRune('\n')
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m Model) viewRows(snap Snapshot) string {
	if len(snap.Rows) == 0 {
		return m.styles.dim.Render("No matches")
	}

	widths := m.engine.ColumnWidths()
	lines := make([]string, len(snap.Rows))
	for i, row := range snap.Rows {
		lines[i] = m.viewRow(row, widths)
	}
	return strings.Join(lines, "\n")
}

// viewRow draws "<cursor><selected> <columns>", with the hint code laid over
// the start of the columns in HintMode.
func (m Model) viewRow(row Row, widths []int) string {
	cursor := " "
	if row.Cursor {
		cursor = m.styles.cursor.Render(">")
	}
	mark := " "
	if row.Selected {
		mark = "+"
	}

	text := joinColumns(row.Fields, widths)
	if m.width > 3 {
		text = MiddleTruncate(text, m.width-3)
	}

	style := m.styles.normal
	if row.Selected {
		style = m.styles.selected
	}

	if row.Hint == "" {
		return cursor + mark + " " + style.Render(text)
	}
	hw := runewidth.StringWidth(row.Hint)
	rest := truncateLeft(text, max(runewidth.StringWidth(text)-hw, 0))
	return cursor + mark + " " + m.styles.hint.Render(row.Hint) + style.Render(rest)
}

// joinColumns sanitizes fields and pads all but the last to the aligned
// column widths.
func joinColumns(fields []string, widths []int) string {
	var b strings.Builder
	for i, f := range fields {
		f = Sanitize(f)
		if i > 0 {
			b.WriteString(columnGap)
		}
		if i < len(fields)-1 && i < len(widths) {
			f = padRight(f, widths[i])
		}
		b.WriteString(f)
	}
	return b.String()
}

func (m Model) viewReview(snap Snapshot) string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Current selection:"))
	for _, line := range snap.Review {
		b.WriteRune('\n')
		line = Sanitize(line)
		if m.width > 2 {
			line = MiddleTruncate(line, m.width-2)
		}
		b.WriteString("  " + line)
	}
	return b.String()
}

func (m Model) viewStatus(snap Snapshot) string {
	var left string
	switch snap.Mode.(type) {
	case FilterMode:
		left = m.styles.editing.Render("filter:" + Sanitize(snap.Buffer))
	case HintMode:
		left = m.styles.hint.Render("hint:" + snap.Buffer)
	default:
		if snap.Filter != "" {
			left = m.styles.filter.Render("filter:" + Sanitize(snap.Filter))
		}
	}
	if snap.SelectedCount > 0 {
		if left != "" {
			left += " "
		}
		left += m.styles.dim.Render(fmt.Sprintf("[%d selected]", snap.SelectedCount))
	}

	if snap.PageCount <= 1 {
		return left
	}
	right := m.styles.page.Render(fmt.Sprintf("(%d/%d)", snap.PageNum+1, snap.PageCount))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
