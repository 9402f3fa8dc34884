package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/deformo/internal/engine/trigger"
)

// buttonMap binds tcell buttons to trigger buttons: primary pushes,
// secondary pulls, middle is tracked but unbound.
var buttonMap = []struct {
	mask   tcell.ButtonMask
	button trigger.Button
}{
	{tcell.Button1, trigger.ButtonLeft},
	{tcell.Button2, trigger.ButtonRight},
	{tcell.Button3, trigger.ButtonMiddle},
}

// foldButtons feeds the difference between two button masks to tr.
func foldButtons(tr *trigger.Tracker, prev, cur tcell.ButtonMask) {
	for _, b := range buttonMap {
		was, is := prev&b.mask != 0, cur&b.mask != 0
		switch {
		case is && !was:
			tr.Down(b.button)
		case was && !is:
			tr.Up(b.button)
		}
	}
}
