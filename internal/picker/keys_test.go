package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTranslate_Normal(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
	}{
		{"j", runes("j"), MoveDown{}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, MoveDown{}},
		{"k", runes("k"), MoveUp{}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MoveUp{}},
		{"prev page", runes("["), PrevPage{}},
		{"next page", runes("]"), NextPage{}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ToggleSelection{}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, ToggleSelection{Exit: true}},
		{"ctrl+space", tea.KeyMsg{Type: tea.KeyCtrlAt}, ToggleVisible{}},
		{"review", runes("s"), ShowSelection{}},
		{"hint exit", runes("f"), SwitchMode{Mode: HintMode{ExitOnMatch: true}}},
		{"hint stay", runes("F"), SwitchMode{Mode: HintMode{}}},
		{"filter", runes("/"), SwitchMode{Mode: FilterMode{}}},
		{"q", runes("q"), Quit{}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, Quit{}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, Quit{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []Command{tt.want}, k.Translate(NormalMode{}, tt.msg))
		})
	}

	assert.Empty(t, k.Translate(NormalMode{}, runes("x")))
	assert.Empty(t, k.Translate(NormalMode{}, runes("?")))
}

func TestTranslate_Hint(t *testing.T) {
	k := DefaultKeyMap()
	exit := HintMode{ExitOnMatch: true}

	assert.Equal(t, []Command{SwitchMode{Mode: NormalMode{}}}, k.Translate(exit, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, []Command{RemoveHintChar{}}, k.Translate(exit, tea.KeyMsg{Type: tea.KeyBackspace}))
	assert.Equal(t, []Command{Quit{}}, k.Translate(exit, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, []Command{Quit{}}, k.Translate(exit, tea.KeyMsg{Type: tea.KeyCtrlC}))

	// Normal-mode letters are hint characters here.
	assert.Equal(t, []Command{AddHintChar{Char: 'j', Exit: true}}, k.Translate(exit, runes("j")))
	assert.Equal(t, []Command{AddHintChar{Char: 'f'}}, k.Translate(HintMode{}, runes("f")))
	assert.Equal(t,
		[]Command{AddHintChar{Char: 'a', Exit: true}, AddHintChar{Char: 's', Exit: true}},
		k.Translate(exit, runes("as")))
}

func TestTranslate_Filter(t *testing.T) {
	k := DefaultKeyMap()

	assert.Equal(t, []Command{SaveFilter{}}, k.Translate(FilterMode{}, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, []Command{DiscardFilter{}}, k.Translate(FilterMode{}, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, []Command{PopFilterChar{}}, k.Translate(FilterMode{}, tea.KeyMsg{Type: tea.KeyBackspace}))
	assert.Equal(t, []Command{AddFilterChar{Char: 'q'}}, k.Translate(FilterMode{}, runes("q")))
	assert.Equal(t, []Command{AddFilterChar{Char: ' '}}, k.Translate(FilterMode{}, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	assert.Empty(t, k.Translate(FilterMode{}, tea.KeyMsg{Type: tea.KeyUp}))
}

func TestTranslate_Review(t *testing.T) {
	k := DefaultKeyMap()

	assert.Equal(t, []Command{SwitchMode{Mode: NormalMode{}}}, k.Translate(ReviewMode{}, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, []Command{SwitchMode{Mode: NormalMode{}}}, k.Translate(ReviewMode{}, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Empty(t, k.Translate(ReviewMode{}, runes("j")))
	assert.Equal(t, []Command{Quit{}}, k.Translate(ReviewMode{}, tea.KeyMsg{Type: tea.KeyCtrlC}))
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()
	assert.NotEmpty(t, k.ShortHelp())
	for _, group := range k.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
			assert.NotEmpty(t, b.Help().Desc)
		}
	}
}
