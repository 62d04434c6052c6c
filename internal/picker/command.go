package picker

// Command is a user intent already decoded from a key event.
type Command interface {
	isCommand()
}

type (
	// MoveUp moves the cursor one row up.
	MoveUp struct{}
	// MoveDown moves the cursor one row down.
	MoveDown struct{}
	// PrevPage shows the previous page.
	PrevPage struct{}
	// NextPage shows the next page.
	NextPage struct{}

	// ToggleSelection toggles the row under the cursor.
	ToggleSelection struct{ Exit bool }
	// ToggleVisible toggles every row on the current page.
	ToggleVisible struct{ Exit bool }
	// ShowSelection switches to the selection review.
	ShowSelection struct{}

	// SwitchMode requests a mode transition.
	SwitchMode struct{ Mode Mode }

	// AddFilterChar appends to the filter being edited.
	AddFilterChar struct{ Char rune }
	// PopFilterChar removes the last filter character.
	PopFilterChar struct{}
	// SaveFilter commits the edited filter.
	SaveFilter struct{}
	// DiscardFilter drops the edit and restores the applied filter.
	DiscardFilter struct{}

	// AddHintChar types one hint character.
	AddHintChar struct {
		Char rune
		Exit bool
	}
	// RemoveHintChar deletes the last typed hint character.
	RemoveHintChar struct{}

	// Quit ends the session immediately.
	Quit struct{}
)

func (MoveUp) isCommand()          {}
func (MoveDown) isCommand()        {}
func (PrevPage) isCommand()        {}
func (NextPage) isCommand()        {}
func (ToggleSelection) isCommand() {}
func (ToggleVisible) isCommand()   {}
func (ShowSelection) isCommand()   {}
func (SwitchMode) isCommand()      {}
func (AddFilterChar) isCommand()   {}
func (PopFilterChar) isCommand()   {}
func (SaveFilter) isCommand()      {}
func (DiscardFilter) isCommand()   {}
func (AddHintChar) isCommand()     {}
func (RemoveHintChar) isCommand()  {}
func (Quit) isCommand()            {}

// Dispatch applies cmd and reports whether the session should end.
func (e *Engine) Dispatch(cmd Command) bool {
	switch c := cmd.(type) {
	case MoveUp:
		e.MoveUp()
	case MoveDown:
		e.MoveDown()
	case PrevPage:
		e.PrevPage()
	case NextPage:
		e.NextPage()
	case ToggleSelection:
		return e.ToggleUnderCursor(c.Exit)
	case ToggleVisible:
		return e.ToggleVisible(c.Exit)
	case ShowSelection:
		e.EnterMode(ReviewMode{})
	case SwitchMode:
		e.EnterMode(c.Mode)
	case AddFilterChar:
		e.AddFilterChar(c.Char)
	case PopFilterChar:
		e.PopFilterChar()
	case SaveFilter:
		e.SaveFilter()
	case DiscardFilter:
		e.DiscardFilter()
	case AddHintChar:
		return e.CommitHintChar(c.Char, c.Exit)
	case RemoveHintChar:
		e.PopHintChar()
	case Quit:
		return true
	}
	return false
}
