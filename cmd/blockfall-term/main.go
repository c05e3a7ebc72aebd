// Command blockfall-term plays blockfall in the terminal. The keyboard is read on its
// own goroutine and handed over a channel, so the game loop blocks only on its tick: a
// is left, d is right, space rotates, q quits, and r restarts a finished game.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/niftysoft/blockfall/internal"
)

// tickInterval is how often the core advances. Shorter means a faster, harder game.
const tickInterval = 250 * time.Millisecond

// cellScale stretches each field cell when blitting; terminal cells are roughly twice
// as tall as they are wide, so two columns per cell keeps the field square-ish.
var cellScale = internal.IVec2{X: 2, Y: 1}

// boardOffset is where the field's top-left pixel lands on screen, leaving room for the
// border drawn around it.
var boardOffset = internal.IVec2{X: 1, Y: 1}

var fieldStyle = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
var borderStyle = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
var textStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Feed input through a channel so the select below is the only consumer; the core
	// assumes exclusive single-threaded access per tick.
	events := make(chan tcell.Event)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	game := internal.NewGame()
	var latched internal.KeyState
	score := 0

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	draw(screen, game, score)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return
				case ev.Rune() == 'a':
					latched.Left = true
				case ev.Rune() == 'd':
					latched.Right = true
				case ev.Rune() == ' ':
					latched.Rotate = true
				case ev.Rune() == 'r' && game.Finished():
					game = internal.NewGame()
					latched = internal.KeyState{}
					score = 0
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			// Set input, tick, reset input: each tick sees one snapshot.
			game.SetKeyState(latched)
			game.Update()
			game.SetKeyState(internal.KeyState{})
			latched = internal.KeyState{}
			if state := game.State(); state != nil {
				score = state.Score()
			}
			draw(screen, game, score)
		}
	}
}

// draw repaints the whole screen: border, field plus active piece, and the status line.
func draw(screen tcell.Screen, game *internal.Game, score int) {
	screen.Clear()

	w := internal.FieldWidth * cellScale.X
	h := internal.FieldHeight * cellScale.Y
	drawBorder(screen, w, h)

	if state := game.State(); state != nil {
		state.Draw(func(x, y int, set bool) {
			r := ' '
			if set {
				r = '█'
			}
			screen.SetContent(x, y, r, nil, fieldStyle)
		}, boardOffset, cellScale)
	} else {
		putString(screen, boardOffset.X+w/2-4, boardOffset.Y+h/2, "GAME OVER", textStyle)
		putString(screen, boardOffset.X+w/2-7, boardOffset.Y+h/2+2, "press r to restart", textStyle)
	}

	putString(screen, 0, h+2, fmt.Sprintf("Score: %d", score), textStyle)
	putString(screen, 0, h+3, "a/d move  space rotate  q quit", borderStyle)
	screen.Show()
}

// drawBorder frames the w-by-h board region at boardOffset.
func drawBorder(screen tcell.Screen, w, h int) {
	for x := 0; x < w+2; x++ {
		screen.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(x, h+1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y <= h; y++ {
		screen.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(w+1, y, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(w+1, 0, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(0, h+1, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(w+1, h+1, tcell.RuneLRCorner, nil, borderStyle)
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
