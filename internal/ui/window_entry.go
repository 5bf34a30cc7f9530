package ui

import (
	"fyne.io/fyne/v2/widget"
)

// windowEntry is a strain bound entry that applies on Enter and when it
// loses focus
type windowEntry struct {
	widget.Entry

	onFocusLost func()
}

func newWindowEntry(onSubmit, onFocusLost func()) *windowEntry {
	e := &windowEntry{onFocusLost: onFocusLost}
	e.ExtendBaseWidget(e)
	e.OnSubmitted = func(string) {
		if onSubmit != nil {
			onSubmit()
		}
	}
	return e
}

// FocusLost applies the typed bound
func (e *windowEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onFocusLost != nil {
		e.onFocusLost()
	}
}
