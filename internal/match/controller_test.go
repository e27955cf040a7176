package match

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	mockedMatch "github.com/rocketscienceinc/tictactoe-arcade/mocks/match"
)

type scriptedChooser struct {
	moves []int
	seen  []entity.Difficulty
}

func (that *scriptedChooser) ChooseMove(_ entity.Board, difficulty entity.Difficulty) int {
	that.seen = append(that.seen, difficulty)
	move := that.moves[0]
	that.moves = that.moves[1:]
	return move
}

type recorder struct {
	snapshots []Snapshot
}

func (that *recorder) Present(snapshot Snapshot) {
	that.snapshots = append(that.snapshots, snapshot)
}

func (that *recorder) last() Snapshot {
	return that.snapshots[len(that.snapshots)-1]
}

func newTestController(chooser MoveChooser, opts Options, deps Collaborators) *Controller {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	controller := New(logger, chooser, opts, deps)
	controller.dispatch = func(f func()) { f() }

	return controller
}

func TestController_Start(t *testing.T) {
	// Given: a controller with a play counter
	plays := mockedMatch.NewMockPlayCounter(t)
	plays.EXPECT().IncrementPlayCount(mock.Anything, "tic-tac-toe").Return(nil).Once()

	screen := &recorder{}
	controller := newTestController(&scriptedChooser{}, Options{GameID: "tic-tac-toe"},
		Collaborators{Plays: plays, Presenter: screen})

	// When: the session is started twice
	controller.Start()
	controller.Start()

	// Then: the play is counted once and the empty board presented each time
	require.Len(t, screen.snapshots, 2)
	assert.Equal(t, entity.Board{}, screen.last().Board)
	assert.Equal(t, AwaitingPlayerMove, screen.last().State)
	assert.Equal(t, entity.Medium, screen.last().Difficulty)
	assert.Equal(t, entity.InProgress, screen.last().Outcome)
}

func TestController_Start_PlayCountFailureIsLogged(t *testing.T) {
	plays := mockedMatch.NewMockPlayCounter(t)
	plays.EXPECT().IncrementPlayCount(mock.Anything, "tic-tac-toe").Return(errors.New("redis down")).Once()

	controller := newTestController(&scriptedChooser{}, Options{GameID: "tic-tac-toe"}, Collaborators{Plays: plays})

	assert.NotPanics(t, controller.Start)
	assert.Equal(t, AwaitingPlayerMove, controller.Snapshot().State)
}

func TestController_PlayerMove(t *testing.T) {
	t.Run("Opponent replies inline without a delay", func(t *testing.T) {
		// Given: an engine that answers with cell 4
		chooser := &scriptedChooser{moves: []int{4}}
		screen := &recorder{}
		controller := newTestController(chooser, Options{Difficulty: entity.Hard}, Collaborators{Presenter: screen})

		// When: the player takes the corner
		controller.PlayerMove(0)

		// Then: both the player's move and the reply are presented in order
		require.Len(t, screen.snapshots, 2)
		assert.Equal(t, AwaitingOpponentMove, screen.snapshots[0].State)
		assert.Equal(t, entity.PlayerMark, screen.snapshots[0].Board[0])
		assert.Equal(t, entity.Empty, screen.snapshots[0].Board[4])

		assert.Equal(t, AwaitingPlayerMove, screen.snapshots[1].State)
		assert.Equal(t, entity.OpponentMark, screen.snapshots[1].Board[4])
		assert.Equal(t, []entity.Difficulty{entity.Hard}, chooser.seen)
	})

	t.Run("Ignores taken and out of range cells", func(t *testing.T) {
		chooser := &scriptedChooser{moves: []int{4}}
		screen := &recorder{}
		controller := newTestController(chooser, Options{}, Collaborators{Presenter: screen})
		controller.PlayerMove(0)
		before := controller.Snapshot()

		for _, cell := range []int{0, 4, -1, 9} {
			controller.PlayerMove(cell)
		}

		assert.Equal(t, before, controller.Snapshot())
		assert.Len(t, screen.snapshots, 2)
	})

	t.Run("Player win submits the tier's points once", func(t *testing.T) {
		// Given: an engine that plays 3 then 4 while the player fills the top row
		scores := mockedMatch.NewMockScoreSubmitter(t)
		scores.EXPECT().SubmitScore(mock.Anything, "tic-tac-toe", "Ada", 20).Return(nil).Once()

		chooser := &scriptedChooser{moves: []int{3, 4}}
		controller := newTestController(chooser,
			Options{GameID: "tic-tac-toe", DisplayName: "Ada"},
			Collaborators{Scores: scores})

		// When: the player completes the row
		controller.PlayerMove(0)
		controller.PlayerMove(1)
		controller.PlayerMove(2)

		// Then: the match is over with the winning line and no further engine call
		snapshot := controller.Snapshot()
		assert.True(t, snapshot.IsOver())
		assert.Equal(t, entity.PlayerWin, snapshot.Outcome)
		assert.Equal(t, []int{0, 1, 2}, snapshot.WinningLine)
		assert.Equal(t, entity.Tally{PlayerWins: 1}, snapshot.Tally)
		assert.Empty(t, chooser.moves)

		// And: moves after the match are ignored
		controller.PlayerMove(8)
		assert.Equal(t, entity.Empty, controller.Snapshot().Board[8])
	})

	t.Run("Anonymous players are scored under the fallback name", func(t *testing.T) {
		scores := mockedMatch.NewMockScoreSubmitter(t)
		scores.EXPECT().SubmitScore(mock.Anything, "tic-tac-toe", entity.AnonymousName, 10).Return(nil).Once()

		controller := newTestController(&scriptedChooser{moves: []int{3, 4}},
			Options{GameID: "tic-tac-toe", Difficulty: entity.Easy},
			Collaborators{Scores: scores})

		controller.PlayerMove(0)
		controller.PlayerMove(1)
		controller.PlayerMove(2)

		assert.Equal(t, entity.PlayerWin, controller.Snapshot().Outcome)
	})

	t.Run("Opponent win records no score", func(t *testing.T) {
		// Given: a score sink that expects no calls
		scores := mockedMatch.NewMockScoreSubmitter(t)
		controller := newTestController(&scriptedChooser{moves: []int{3, 4, 5}}, Options{}, Collaborators{Scores: scores})

		// When: the engine completes the middle row
		controller.PlayerMove(0)
		controller.PlayerMove(8)
		controller.PlayerMove(7)

		// Then: the loss is tallied
		snapshot := controller.Snapshot()
		assert.Equal(t, entity.OpponentWin, snapshot.Outcome)
		assert.Equal(t, []int{3, 4, 5}, snapshot.WinningLine)
		assert.Equal(t, entity.Tally{OpponentWins: 1}, snapshot.Tally)
	})

	t.Run("Missing score sink is tolerated", func(t *testing.T) {
		controller := newTestController(&scriptedChooser{moves: []int{3, 4}}, Options{}, Collaborators{})

		controller.PlayerMove(0)
		controller.PlayerMove(1)
		assert.NotPanics(t, func() { controller.PlayerMove(2) })
	})
}

func TestController_DelayedReply(t *testing.T) {
	setup := func() (*Controller, *[]func()) {
		pending := &[]func(){}
		controller := newTestController(&scriptedChooser{moves: []int{4}},
			Options{ReplyDelay: 500 * time.Millisecond}, Collaborators{})
		controller.afterFunc = func(d time.Duration, f func()) {
			*pending = append(*pending, f)
		}
		return controller, pending
	}

	t.Run("Reply lands when the timer fires", func(t *testing.T) {
		controller, pending := setup()

		controller.PlayerMove(0)
		assert.Equal(t, AwaitingOpponentMove, controller.Snapshot().State)

		// player input is ignored while the opponent thinks
		controller.PlayerMove(1)
		assert.Equal(t, entity.Empty, controller.Snapshot().Board[1])

		require.Len(t, *pending, 1)
		(*pending)[0]()

		snapshot := controller.Snapshot()
		assert.Equal(t, AwaitingPlayerMove, snapshot.State)
		assert.Equal(t, entity.OpponentMark, snapshot.Board[4])
	})

	t.Run("Reset discards the pending reply", func(t *testing.T) {
		controller, pending := setup()

		controller.PlayerMove(0)
		controller.Reset()
		require.Len(t, *pending, 1)
		(*pending)[0]()

		snapshot := controller.Snapshot()
		assert.Equal(t, entity.Board{}, snapshot.Board)
		assert.Equal(t, AwaitingPlayerMove, snapshot.State)
	})

	t.Run("Difficulty change discards the pending reply", func(t *testing.T) {
		controller, pending := setup()

		controller.PlayerMove(0)
		require.NoError(t, controller.SetDifficulty(entity.Easy))
		(*pending)[0]()

		assert.Equal(t, entity.Board{}, controller.Snapshot().Board)
	})
}

func TestController_Reset(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
	}{
		{"before any move", nil},
		{"mid match", []int{0}},
		{"after the match ended", []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := newTestController(&scriptedChooser{moves: []int{3, 4}}, Options{}, Collaborators{})
			for _, cell := range tt.moves {
				controller.PlayerMove(cell)
			}
			tally := controller.Snapshot().Tally

			controller.Reset()

			snapshot := controller.Snapshot()
			assert.Equal(t, entity.Board{}, snapshot.Board)
			assert.Equal(t, AwaitingPlayerMove, snapshot.State)
			assert.Nil(t, snapshot.WinningLine)
			assert.Equal(t, tally, snapshot.Tally)
		})
	}
}

func TestController_SetDifficulty(t *testing.T) {
	t.Run("Starts a new match at the new tier", func(t *testing.T) {
		chooser := &scriptedChooser{moves: []int{4, 8}}
		screen := &recorder{}
		controller := newTestController(chooser, Options{}, Collaborators{Presenter: screen})
		controller.PlayerMove(0)

		err := controller.SetDifficulty(" HARD ")

		require.NoError(t, err)
		assert.Equal(t, entity.Board{}, screen.last().Board)
		assert.Equal(t, entity.Hard, screen.last().Difficulty)

		controller.PlayerMove(0)
		assert.Equal(t, []entity.Difficulty{entity.Medium, entity.Hard}, chooser.seen)
	})

	t.Run("Rejects unknown tiers and keeps the match", func(t *testing.T) {
		controller := newTestController(&scriptedChooser{moves: []int{4}}, Options{}, Collaborators{})
		controller.PlayerMove(0)
		before := controller.Snapshot()

		err := controller.SetDifficulty("impossible")

		require.ErrorIs(t, err, entity.ErrUnknownDifficulty)
		assert.Equal(t, before, controller.Snapshot())
	})
}

func TestController_ResetTally(t *testing.T) {
	controller := newTestController(&scriptedChooser{moves: []int{3, 4}}, Options{}, Collaborators{})
	controller.PlayerMove(0)
	controller.PlayerMove(1)
	controller.PlayerMove(2)
	require.Equal(t, 1, controller.Snapshot().Tally.PlayerWins)

	controller.ResetTally()

	snapshot := controller.Snapshot()
	assert.Equal(t, entity.Tally{}, snapshot.Tally)
	// the finished board stays on screen
	assert.True(t, snapshot.IsOver())
}

func TestController_PerfectPlayDraws(t *testing.T) {
	// Given: a hard engine on both sides
	player := engine.NewFor(entity.PlayerMark, engine.NewSeeded(1))
	controller := newTestController(engine.New(engine.NewSeeded(2)), Options{Difficulty: entity.Hard}, Collaborators{})

	// When: the player side follows its own best moves until the match ends
	for !controller.Snapshot().IsOver() {
		controller.PlayerMove(player.ChooseMove(controller.Snapshot().Board, entity.Hard))
	}

	// Then: the match is a draw and the tally survives a reset
	assert.Equal(t, entity.Draw, controller.Snapshot().Outcome)

	controller.Reset()

	snapshot := controller.Snapshot()
	assert.Equal(t, entity.Tally{Draws: 1}, snapshot.Tally)
	assert.Equal(t, entity.Board{}, snapshot.Board)
}

func TestController_New_UnknownDifficulty(t *testing.T) {
	// Given: a controller configured with a tier that does not exist
	controller := newTestController(engine.New(engine.NewSeeded(3)), Options{Difficulty: "impossible"}, Collaborators{})

	// Then: it falls back to medium
	assert.Equal(t, entity.Medium, controller.Snapshot().Difficulty)

	// And: the engine can reply without panicking
	assert.NotPanics(t, func() { controller.PlayerMove(0) })
	snapshot := controller.Snapshot()
	assert.Equal(t, AwaitingPlayerMove, snapshot.State)
	assert.Len(t, snapshot.Board.AvailableMoves(), 7)
}

func TestController_New_NormalizesDifficulty(t *testing.T) {
	controller := newTestController(&scriptedChooser{}, Options{Difficulty: " Hard "}, Collaborators{})

	assert.Equal(t, entity.Hard, controller.Snapshot().Difficulty)
}
