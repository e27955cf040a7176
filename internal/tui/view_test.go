package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/match"
)

type recordedControls struct {
	moves        []int
	difficulties []entity.Difficulty
	resets       int
	tallyResets  int
}

func (that *recordedControls) PlayerMove(index int) {
	that.moves = append(that.moves, index)
}

func (that *recordedControls) Reset() {
	that.resets++
}

func (that *recordedControls) SetDifficulty(difficulty entity.Difficulty) error {
	that.difficulties = append(that.difficulties, difficulty)
	return nil
}

func (that *recordedControls) ResetTally() {
	that.tallyResets++
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestView_Cursor(t *testing.T) {
	// Given: a fresh view with the cursor in the centre
	view := New(nil, nil)
	require.Equal(t, 4, view.Cursor())

	// When/Then: arrows and vi keys move it and the edges hold it
	view.HandleKey(key(tcell.KeyUp))
	assert.Equal(t, 1, view.Cursor())

	view.HandleKey(key(tcell.KeyUp))
	assert.Equal(t, 1, view.Cursor())

	view.HandleKey(char('h'))
	assert.Equal(t, 0, view.Cursor())

	view.HandleKey(char('h'))
	assert.Equal(t, 0, view.Cursor())

	view.HandleKey(char('j'))
	view.HandleKey(char('j'))
	view.HandleKey(key(tcell.KeyRight))
	view.HandleKey(char('l'))
	assert.Equal(t, 8, view.Cursor())

	view.HandleKey(char('k'))
	view.HandleKey(key(tcell.KeyLeft))
	view.HandleKey(key(tcell.KeyDown))
	assert.Equal(t, 7, view.Cursor())
}

func TestView_Actions(t *testing.T) {
	// Given: a view bound to a recorder
	quits := 0
	controls := &recordedControls{}
	view := New(nil, func() { quits++ })
	view.Bind(controls)

	// When: the player uses every action key
	view.HandleKey(key(tcell.KeyEnter))
	view.HandleKey(char('l'))
	view.HandleKey(char(' '))
	view.HandleKey(char('1'))
	view.HandleKey(char('3'))
	view.HandleKey(char('r'))
	view.HandleKey(char('t'))
	view.HandleKey(char('q'))
	view.HandleKey(key(tcell.KeyEscape))

	// Then: each one reached the controller
	assert.Equal(t, []int{4, 5}, controls.moves)
	assert.Equal(t, []entity.Difficulty{entity.Easy, entity.Hard}, controls.difficulties)
	assert.Equal(t, 1, controls.resets)
	assert.Equal(t, 1, controls.tallyResets)
	assert.Equal(t, 2, quits)
}

func TestView_UnknownKeysPassThrough(t *testing.T) {
	view := New(nil, nil)

	event := char('z')
	assert.Same(t, event, view.HandleKey(event))

	tab := key(tcell.KeyTab)
	assert.Same(t, tab, view.HandleKey(tab))
}

func TestView_Present(t *testing.T) {
	redraws := 0
	view := New(func() { redraws++ }, nil)

	view.Present(match.Snapshot{State: match.AwaitingPlayerMove, Difficulty: entity.Medium})

	assert.Equal(t, 1, redraws)
	assert.Contains(t, view.status.GetText(false), "Your move")
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name     string
		snapshot match.Snapshot
		want     string
	}{
		{
			name:     "player to move",
			snapshot: match.Snapshot{State: match.AwaitingPlayerMove, Outcome: entity.InProgress},
			want:     "Your move",
		},
		{
			name:     "opponent thinking",
			snapshot: match.Snapshot{State: match.AwaitingOpponentMove, Outcome: entity.InProgress},
			want:     "thinking",
		},
		{
			name:     "win shows the points",
			snapshot: match.Snapshot{State: match.MatchOver, Outcome: entity.PlayerWin, Difficulty: entity.Hard},
			want:     "You win! +30",
		},
		{
			name:     "loss",
			snapshot: match.Snapshot{State: match.MatchOver, Outcome: entity.OpponentWin},
			want:     "computer wins",
		},
		{
			name:     "draw",
			snapshot: match.Snapshot{State: match.MatchOver, Outcome: entity.Draw},
			want:     "Draw",
		},
		{
			name: "tally",
			snapshot: match.Snapshot{
				Difficulty: entity.Easy,
				Tally:      entity.Tally{PlayerWins: 2, OpponentWins: 1, Draws: 3},
			},
			want: "Difficulty: easy   Wins 2  Losses 1  Draws 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, statusText(tt.snapshot), tt.want)
		})
	}
}

func TestView_Draw(t *testing.T) {
	// Given: a simulation screen and a won board
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 12)

	view := New(nil, nil)
	view.Present(match.Snapshot{
		Board:       entity.Board{entity.PlayerMark, entity.PlayerMark, entity.PlayerMark, entity.OpponentMark, entity.OpponentMark},
		State:       match.MatchOver,
		Outcome:     entity.PlayerWin,
		WinningLine: []int{0, 1, 2},
	})

	// When: the board box is drawn
	view.Box.SetRect(0, 0, 40, 9)
	view.Box.Draw(screen)
	screen.Show()

	// Then: the marks are on screen
	cells, width, _ := screen.GetContents()
	var text []rune
	for i, cell := range cells {
		r := ' '
		if len(cell.Runes) > 0 && cell.Runes[0] != 0 {
			r = cell.Runes[0]
		}
		text = append(text, r)
		if (i+1)%width == 0 {
			text = append(text, '\n')
		}
	}

	assert.Contains(t, string(text), " X │ X │ X ")
	assert.Contains(t, string(text), " O │ O │   ")
}
