package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, lines []string, cfg Config) Model {
	t.Helper()
	m := NewModel(newTestEngine(t, lines, cfg), ModelOptions{})
	m.width = 80
	m.height = 24
	return m
}

// press feeds key messages through Update and returns the resulting model
// and the last command.
func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var result tea.Model
		result, cmd = m.Update(msg)
		m = result.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(t, numberedLines(3), Config{})
	assert.Nil(t, m.Init())
	assert.False(t, m.Done())
}

func TestModel_HintExitQuits(t *testing.T) {
	m := newTestModel(t, numberedLines(10), Config{})

	m, cmd := press(t, m, runes("f"), runes("a"))
	assert.False(t, isQuit(cmd))
	assert.True(t, IsHint(m.Engine().Mode()))

	m, cmd = press(t, m, runes("b"))
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Done())

	out, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, []string{"line1"}, out)
}

func TestModel_EnterTogglesAndQuits(t *testing.T) {
	m := newTestModel(t, numberedLines(5), Config{})

	m, cmd := press(t, m, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))

	out, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, []string{"line2"}, out)
	assert.Empty(t, m.View())
}

func TestModel_QuitWithoutSelection(t *testing.T) {
	m := newTestModel(t, numberedLines(5), Config{})

	m, cmd := press(t, m, runes("q"))
	assert.True(t, isQuit(cmd))
	_, ok := m.Result()
	assert.False(t, ok)
}

func TestModel_QuitKeepsSelection(t *testing.T) {
	m := newTestModel(t, numberedLines(5), Config{})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, runes("j"))
	assert.False(t, isQuit(cmd))
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))

	out, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, []string{"line0"}, out)
}

func TestModel_IgnoresKeysAfterDone(t *testing.T) {
	m := newTestModel(t, numberedLines(5), Config{})
	m, _ = press(t, m, runes("q"))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Nil(t, cmd)
	assert.Zero(t, m.Engine().Store().SelectedCount())
}

func TestModel_FilterFlow(t *testing.T) {
	m := newTestModel(t, []string{"apple", "banana", "cherry"}, Config{})

	m, _ = press(t, m, runes("/"), runes("an"))
	assert.True(t, IsFilter(m.Engine().Mode()))
	view := m.View()
	assert.Contains(t, view, "filter:an")
	assert.Contains(t, view, "banana")
	assert.NotContains(t, view, "apple")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, IsNormal(m.Engine().Mode()))
	assert.Equal(t, "an", m.Engine().Filter())
	assert.Contains(t, m.View(), "filter:an")
}

func TestModel_WindowResizeAutoPageSize(t *testing.T) {
	m := NewModel(newTestEngine(t, numberedLines(100), Config{}), ModelOptions{AutoPageSize: true})

	result, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = result.(Model)
	assert.Len(t, m.Engine().Page(), 25)

	result, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = result.(Model)
	assert.Len(t, m.Engine().Page(), 5)
}

func TestModel_AutoPageFitsTerminal(t *testing.T) {
	const height = 24
	for _, records := range []int{5, 19, 20, 23, 24, 100} {
		m := NewModel(newTestEngine(t, numberedLines(records), Config{}), ModelOptions{AutoPageSize: true})
		result, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: height})
		m = result.(Model)

		lines := strings.Split(m.View(), "\n")
		assert.LessOrEqual(t, len(lines), height, "records=%d", records)
		assert.Contains(t, lines[0], "line0", "records=%d", records)

		m, _ = press(t, m, runes("?"))
		lines = strings.Split(m.View(), "\n")
		assert.LessOrEqual(t, len(lines), height, "records=%d full help", records)
		assert.Contains(t, lines[0], "line0", "records=%d full help", records)
	}
}

func TestModel_WindowResizeFixedPageSize(t *testing.T) {
	m := NewModel(newTestEngine(t, numberedLines(100), Config{PageSize: 7}), ModelOptions{})

	result, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = result.(Model)
	assert.Len(t, m.Engine().Page(), 7)
	assert.Equal(t, 80, m.width)
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, numberedLines(3), Config{})
	short := m.View()

	m, _ = press(t, m, runes("?"))
	assert.True(t, m.showHelp)
	full := m.View()
	assert.Greater(t, strings.Count(full, "\n"), strings.Count(short, "\n"))

	m, _ = press(t, m, runes("?"))
	assert.False(t, m.showHelp)
}

func TestView_Rows(t *testing.T) {
	m := newTestModel(t, numberedLines(10), Config{})
	m, _ = press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	lines := strings.Split(m.View(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[1], ">")
	assert.Contains(t, lines[1], "+")
	assert.Contains(t, lines[1], "line1")
	assert.NotContains(t, lines[0], ">")
	assert.Contains(t, lines[4], "(1/3)")
	assert.Contains(t, lines[4], "[1 selected]")
}

func TestView_HintCodes(t *testing.T) {
	m := newTestModel(t, numberedLines(4), Config{})
	m, _ = press(t, m, runes("F"))

	view := m.View()
	assert.Contains(t, view, "aa")
	assert.Contains(t, view, "bb")
	assert.Contains(t, view, "hint:")
}

func TestView_Review(t *testing.T) {
	m := newTestModel(t, numberedLines(4), Config{})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlAt}, runes("s"))
	require.True(t, IsReview(m.Engine().Mode()))

	view := m.View()
	assert.Contains(t, view, "Current selection:")
	assert.Contains(t, view, "line3")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, IsNormal(m.Engine().Mode()))
}

func TestView_NoMatches(t *testing.T) {
	m := newTestModel(t, []string{"apple"}, Config{})
	m, _ = press(t, m, runes("/"), runes("zz"))
	assert.Contains(t, m.View(), "No matches")
}

func TestJoinColumns(t *testing.T) {
	assert.Equal(t, "a    b", joinColumns([]string{"a", "b"}, []int{3, 1}))
	assert.Equal(t, "abc  b", joinColumns([]string{"abc", "b"}, []int{3, 1}))
	assert.Equal(t, "x y", joinColumns([]string{"x\ty"}, nil))
}
