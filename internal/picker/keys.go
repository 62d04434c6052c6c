package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the NormalMode bindings. Text-entry modes (filter and hint)
// take literal characters and only reserve enter, esc and backspace.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	PrevPage      key.Binding
	NextPage      key.Binding
	Toggle        key.Binding
	ToggleExit    key.Binding
	ToggleVisible key.Binding
	Review        key.Binding
	Hint          key.Binding
	HintStay      key.Binding
	Filter        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle"),
		),
		ToggleExit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle and exit"),
		),
		ToggleVisible: key.NewBinding(
			key.WithKeys("ctrl+@"),
			key.WithHelp("ctrl+space", "toggle page"),
		),
		Review: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show selection"),
		),
		Hint: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "jump and exit"),
		),
		HintStay: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "jump"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ToggleExit, k.Hint, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Toggle, k.ToggleExit, k.ToggleVisible, k.Review},
		{k.Hint, k.HintStay, k.Filter},
		{k.Help, k.Quit},
	}
}

// Translate maps a key event to engine commands for mode. A pasted run of
// characters yields one command per rune; an unbound key yields none.
func (k KeyMap) Translate(mode Mode, msg tea.KeyMsg) []Command {
	if msg.Type == tea.KeyCtrlC {
		return []Command{Quit{}}
	}

	switch m := mode.(type) {
	case NormalMode:
		return k.translateNormal(msg)

	case HintMode:
		switch msg.Type {
		case tea.KeyEsc:
			return []Command{SwitchMode{Mode: NormalMode{}}}
		case tea.KeyBackspace:
			return []Command{RemoveHintChar{}}
		case tea.KeyEnter:
			return []Command{Quit{}}
		}
		return eachRune(msg, func(r rune) Command {
			return AddHintChar{Char: r, Exit: m.ExitOnMatch}
		})

	case FilterMode:
		switch msg.Type {
		case tea.KeyEnter:
			return []Command{SaveFilter{}}
		case tea.KeyEsc:
			return []Command{DiscardFilter{}}
		case tea.KeyBackspace:
			return []Command{PopFilterChar{}}
		}
		return eachRune(msg, func(r rune) Command {
			return AddFilterChar{Char: r}
		})

	case ReviewMode:
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			return []Command{SwitchMode{Mode: NormalMode{}}}
		}
	}
	return nil
}

func (k KeyMap) translateNormal(msg tea.KeyMsg) []Command {
	var cmd Command
	switch {
	case key.Matches(msg, k.Up):
		cmd = MoveUp{}
	case key.Matches(msg, k.Down):
		cmd = MoveDown{}
	case key.Matches(msg, k.PrevPage):
		cmd = PrevPage{}
	case key.Matches(msg, k.NextPage):
		cmd = NextPage{}
	case key.Matches(msg, k.Toggle):
		cmd = ToggleSelection{}
	case key.Matches(msg, k.ToggleExit):
		cmd = ToggleSelection{Exit: true}
	case key.Matches(msg, k.ToggleVisible):
		cmd = ToggleVisible{}
	case key.Matches(msg, k.Review):
		cmd = ShowSelection{}
	case key.Matches(msg, k.Hint):
		cmd = SwitchMode{Mode: HintMode{ExitOnMatch: true}}
	case key.Matches(msg, k.HintStay):
		cmd = SwitchMode{Mode: HintMode{}}
	case key.Matches(msg, k.Filter):
		cmd = SwitchMode{Mode: FilterMode{}}
	case key.Matches(msg, k.Quit):
		cmd = Quit{}
	default:
		return nil
	}
	return []Command{cmd}
}

// eachRune converts the literal characters of msg, including a typed space.
func eachRune(msg tea.KeyMsg, fn func(rune) Command) []Command {
	switch msg.Type {
	case tea.KeySpace:
		return []Command{fn(' ')}
	case tea.KeyRunes:
		cmds := make([]Command, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			cmds = append(cmds, fn(r))
		}
		return cmds
	}
	return nil
}
