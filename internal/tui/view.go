// Package tui draws a match in the terminal and turns key presses into controller calls.
package tui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/match"
)

const (
	cellWidth = 3
	gridWidth = cellWidth*3 + 2
	keyHints  = "arrows/hjkl move  enter play  1/2/3 difficulty  r new match  t clear tally  q quit"
)

type controls interface {
	PlayerMove(index int)
	Reset()
	SetDifficulty(difficulty entity.Difficulty) error
	ResetTally()
}

// View is the board, a status line and the key hints.
type View struct {
	Box    *tview.Box
	status *tview.TextView
	layout *tview.Flex

	controls controls
	redraw   func()
	quit     func()

	mu       sync.Mutex
	snapshot match.Snapshot
	cursor   int
}

// New builds the view. redraw is called after every presented snapshot, quit on q or Esc.
func New(redraw, quit func()) *View {
	view := &View{
		Box:    tview.NewBox(),
		status: tview.NewTextView().SetDynamicColors(true),
		redraw: redraw,
		quit:   quit,
		cursor: 4,
	}

	view.Box.SetBorder(true).SetTitle(" Tic Tac Toe ")
	view.Box.SetDrawFunc(view.draw)
	view.Box.SetInputCapture(view.HandleKey)

	hints := tview.NewTextView().SetText(keyHints).SetTextColor(tcell.ColorGray)

	view.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(view.Box, 9, 0, true).
		AddItem(view.status, 2, 0, false).
		AddItem(hints, 1, 0, false)

	return view
}

func (that *View) Root() tview.Primitive {
	return that.layout
}

// Bind attaches the controller the keys drive.
func (that *View) Bind(controls controls) {
	that.controls = controls
}

func (that *View) Present(snapshot match.Snapshot) {
	that.mu.Lock()
	that.snapshot = snapshot
	that.mu.Unlock()

	that.status.SetText(statusText(snapshot))

	if that.redraw != nil {
		that.redraw()
	}
}

func (that *View) Cursor() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.cursor
}

// HandleKey consumes the keys the view knows and passes the rest on.
func (that *View) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		that.moveCursor(0, -1)
	case tcell.KeyRight:
		that.moveCursor(0, 1)
	case tcell.KeyUp:
		that.moveCursor(-1, 0)
	case tcell.KeyDown:
		that.moveCursor(1, 0)
	case tcell.KeyEnter:
		that.play()
	case tcell.KeyEscape:
		that.exit()
	case tcell.KeyRune:
		return that.handleRune(event)
	default:
		return event
	}

	return nil
}

func (that *View) handleRune(event *tcell.EventKey) *tcell.EventKey {
	switch r := event.Rune(); r {
	case 'h':
		that.moveCursor(0, -1)
	case 'l':
		that.moveCursor(0, 1)
	case 'k':
		that.moveCursor(-1, 0)
	case 'j':
		that.moveCursor(1, 0)
	case ' ':
		that.play()
	case '1', '2', '3':
		if that.controls != nil {
			// the tiers are fixed, the error path is unreachable
			_ = that.controls.SetDifficulty(entity.Difficulties[r-'1'])
		}
	case 'r':
		if that.controls != nil {
			that.controls.Reset()
		}
	case 't':
		if that.controls != nil {
			that.controls.ResetTally()
		}
	case 'q':
		that.exit()
	default:
		return event
	}

	return nil
}

func (that *View) moveCursor(rows, cols int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	row, col := that.cursor/3+rows, that.cursor%3+cols
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return
	}

	that.cursor = row*3 + col
}

func (that *View) play() {
	if that.controls == nil {
		return
	}

	that.controls.PlayerMove(that.Cursor())
}

func (that *View) exit() {
	if that.quit != nil {
		that.quit()
	}
}

func (that *View) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	that.mu.Lock()
	snapshot, cursor := that.snapshot, that.cursor
	that.mu.Unlock()

	// the border takes one cell on every side
	innerX, innerY, innerW, innerH := x+1, y+1, width-2, height-2
	left := innerX + (innerW-gridWidth)/2
	top := innerY + (innerH-5)/2

	winning := make(map[int]bool, len(snapshot.WinningLine))
	for _, cell := range snapshot.WinningLine {
		winning[cell] = true
	}

	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for row := 0; row < 3; row++ {
		lineY := top + row*2

		for col := 0; col < 3; col++ {
			index := row*3 + col
			cellX := left + col*(cellWidth+1)

			style := cellStyle(snapshot.Board[index], winning[index], index == cursor && !snapshot.IsOver())
			for i, r := range cellText(snapshot.Board[index]) {
				screen.SetContent(cellX+i, lineY, r, nil, style)
			}

			if col < 2 {
				screen.SetContent(cellX+cellWidth, lineY, tview.Borders.Vertical, nil, lineStyle)
			}
		}

		if row < 2 {
			for i := 0; i < gridWidth; i++ {
				r := tview.Borders.Horizontal
				if i%(cellWidth+1) == cellWidth {
					r = tview.Borders.Cross
				}
				screen.SetContent(left+i, lineY+1, r, nil, lineStyle)
			}
		}
	}

	return innerX, innerY, innerW, innerH
}

func cellText(mark entity.Mark) string {
	if mark == entity.Empty {
		return "   "
	}
	return " " + string(mark) + " "
}

func cellStyle(mark entity.Mark, winning, selected bool) tcell.Style {
	style := tcell.StyleDefault

	switch mark {
	case entity.PlayerMark:
		style = style.Foreground(tcell.ColorDodgerBlue).Bold(true)
	case entity.OpponentMark:
		style = style.Foreground(tcell.ColorOrangeRed).Bold(true)
	}

	if winning {
		style = style.Background(tcell.ColorDarkGreen)
	}

	if selected {
		style = style.Reverse(true)
	}

	return style
}

// statusText is the line under the board: turn or result, then difficulty and tally.
func statusText(snapshot match.Snapshot) string {
	var headline string

	switch {
	case snapshot.Outcome == entity.PlayerWin:
		headline = fmt.Sprintf("[green]You win! +%d[-]", snapshot.Difficulty.BasePoints())
	case snapshot.Outcome == entity.OpponentWin:
		headline = "[red]The computer wins[-]"
	case snapshot.Outcome == entity.Draw:
		headline = "[yellow]Draw[-]"
	case snapshot.State == match.AwaitingOpponentMove:
		headline = "Computer is thinking..."
	default:
		headline = "Your move (X)"
	}

	tally := snapshot.Tally

	return fmt.Sprintf("%s\nDifficulty: %s   Wins %d  Losses %d  Draws %d",
		headline, snapshot.Difficulty, tally.PlayerWins, tally.OpponentWins, tally.Draws)
}
