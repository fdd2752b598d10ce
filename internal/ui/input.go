package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/AkesSpur/the-snake/internal/game"
)

// Pump polls terminal events and translates them into game input events
// until the screen is finalized. Run it in its own goroutine; the driver
// drains the channel once per tick. Unrecognized keys are dropped, and a
// full channel drops the event rather than blocking the pump.
func Pump(screen *Screen, events chan<- game.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				send(events, game.EventUp)
			case tcell.KeyDown:
				send(events, game.EventDown)
			case tcell.KeyLeft:
				send(events, game.EventLeft)
			case tcell.KeyRight:
				send(events, game.EventRight)
			case tcell.KeyEscape, tcell.KeyCtrlC:
				send(events, game.EventQuit)
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					send(events, game.EventQuit)
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func send(events chan<- game.Event, ev game.Event) {
	select {
	case events <- ev:
	default:
	}
}
