package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const (
	x = entity.PlayerMark
	o = entity.OpponentMark
	e = entity.Empty
)

// scriptedRand replays fixed values so tests can assert exact choices.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (that *scriptedRand) IntN(n int) int {
	v := that.ints[0]
	that.ints = that.ints[1:]
	return v % n
}

func (that *scriptedRand) Float64() float64 {
	v := that.floats[0]
	that.floats = that.floats[1:]
	return v
}

// bruteMinimax is plain minimax without pruning, used as a reference.
func bruteMinimax(board entity.Board, depth int, isMaximizing bool, self entity.Mark) int {
	if winner, _, ok := board.Winner(); ok {
		if winner == self {
			return 10 - depth
		}
		return depth - 10
	}
	if board.IsFull() {
		return 0
	}

	best := math.MaxInt
	mark := self.Rival()
	if isMaximizing {
		best = math.MinInt
		mark = self
	}
	for _, move := range board.AvailableMoves() {
		score := bruteMinimax(board.ApplyMove(move, mark), depth+1, !isMaximizing, self)
		if isMaximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

func bruteBestMove(board entity.Board, self entity.Mark) int {
	moves := board.AvailableMoves()
	bestMove, bestScore := moves[0], math.MinInt
	for _, move := range moves {
		if score := bruteMinimax(board.ApplyMove(move, self), 0, false, self); score > bestScore {
			bestMove, bestScore = move, score
		}
	}
	return bestMove
}

func TestEngine_Hard(t *testing.T) {
	eng := New(NewSeeded(1))

	t.Run("Takes an immediate win", func(t *testing.T) {
		// Given: O can complete the middle row at 5 while X threatens 2
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		// When: the engine picks a move
		move := eng.ChooseMove(board, entity.Hard)

		// Then: it wins at once instead of blocking
		assert.Equal(t, 5, move)
	})

	t.Run("Blocks the player's winning move", func(t *testing.T) {
		// Given: X threatens the top row and O has no win of its own
		board := entity.Board{
			x, x, e,
			o, e, e,
			e, e, e,
		}

		// When: the engine picks a move
		move := eng.ChooseMove(board, entity.Hard)

		// Then: it blocks at 2
		assert.Equal(t, 2, move)
	})

	t.Run("Answers a centre opening with a corner", func(t *testing.T) {
		// Given: X opened in the centre
		board := entity.Board{}.ApplyMove(4, x)

		// When: the engine picks a move
		move := eng.ChooseMove(board, entity.Hard)

		// Then: it is a corner, the first one in index order
		assert.Contains(t, []int{0, 2, 6, 8}, move)
		assert.Equal(t, 0, move)
	})

	t.Run("Prefers the faster of two wins", func(t *testing.T) {
		// Given: O wins now at 8 or could set up a slower win elsewhere
		board := entity.Board{
			o, x, x,
			e, o, x,
			e, e, e,
		}

		// When: the engine picks a move
		move := eng.BestMove(board)

		// Then: it finishes the diagonal
		assert.Equal(t, 8, move)
	})
}

func TestEngine_HardNeverLoses(t *testing.T) {
	eng := New(NewSeeded(7))

	// Every player line of play from the empty board is explored; the engine replies after each move.
	var explore func(board entity.Board)
	explore = func(board entity.Board) {
		for _, move := range board.AvailableMoves() {
			afterPlayer := board.ApplyMove(move, x)
			require.NotEqual(t, entity.PlayerWin, entity.OutcomeOf(afterPlayer), "player won on %s", afterPlayer)
			if entity.OutcomeOf(afterPlayer).IsTerminal() {
				continue
			}

			afterEngine := afterPlayer.ApplyMove(eng.ChooseMove(afterPlayer, entity.Hard), o)
			if entity.OutcomeOf(afterEngine).IsTerminal() {
				continue
			}
			explore(afterEngine)
		}
	}

	explore(entity.Board{})
}

func TestEngine_HardNeverLosesMovingFirst(t *testing.T) {
	eng := NewFor(x, NewSeeded(7))

	var explore func(board entity.Board)
	explore = func(board entity.Board) {
		afterEngine := board.ApplyMove(eng.BestMove(board), x)
		if entity.OutcomeOf(afterEngine).IsTerminal() {
			return
		}
		for _, move := range afterEngine.AvailableMoves() {
			afterRival := afterEngine.ApplyMove(move, o)
			require.NotEqual(t, entity.OpponentWin, entity.OutcomeOf(afterRival), "rival won on %s", afterRival)
			if !entity.OutcomeOf(afterRival).IsTerminal() {
				explore(afterRival)
			}
		}
	}

	explore(entity.Board{})
}

func TestEngine_PruningMatchesBruteForce(t *testing.T) {
	eng := New(NewSeeded(3))
	seen := make(map[entity.Board]bool)

	// Walk every reachable position where it is O's turn.
	var walk func(board entity.Board, turn entity.Mark)
	walk = func(board entity.Board, turn entity.Mark) {
		if seen[board] || entity.OutcomeOf(board).IsTerminal() {
			return
		}
		seen[board] = true

		if turn == o {
			require.Equal(t, bruteBestMove(board, o), eng.BestMove(board), "board %s", board)
			for _, move := range board.AvailableMoves() {
				next := board.ApplyMove(move, o)
				pruned := eng.Minimax(next, 0, false, math.MinInt, math.MaxInt)
				require.Equal(t, bruteMinimax(next, 0, false, o), pruned, "board %s move %d", board, move)
			}
		}

		for _, move := range board.AvailableMoves() {
			walk(board.ApplyMove(move, turn), turn.Rival())
		}
	}

	walk(entity.Board{}, x)
	assert.NotEmpty(t, seen)
}

func TestEngine_Minimax(t *testing.T) {
	eng := New(NewSeeded(1))

	t.Run("Scores an engine line as 10 minus depth", func(t *testing.T) {
		board := entity.Board{o, o, o, x, x, e, x, e, e}

		assert.Equal(t, 7, eng.Minimax(board, 3, true, math.MinInt, math.MaxInt))
	})

	t.Run("Scores a player line as depth minus 10", func(t *testing.T) {
		board := entity.Board{x, x, x, o, o, e, e, e, e}

		assert.Equal(t, -8, eng.Minimax(board, 2, false, math.MinInt, math.MaxInt))
	})

	t.Run("Scores a full board without a line as zero", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, x}

		assert.Equal(t, 0, eng.Minimax(board, 9, true, math.MinInt, math.MaxInt))
	})
}

func TestEngine_Easy(t *testing.T) {
	t.Run("Picks the scripted index among available moves", func(t *testing.T) {
		// Given: a source that returns 2 and a board with cells 1, 3, 5, 7 and 8 open
		eng := New(&scriptedRand{ints: []int{2}})
		board := entity.Board{x, e, o, e, x, e, o, e, e}

		// When: the engine picks an easy move
		move := eng.ChooseMove(board, entity.Easy)

		// Then: the third open cell is chosen without looking ahead
		assert.Equal(t, 5, move)
	})

	t.Run("Spreads choices evenly over the open cells", func(t *testing.T) {
		eng := New(NewSeeded(42))
		counts := make(map[int]int)

		const trials = 9000
		for range trials {
			counts[eng.ChooseMove(entity.Board{}, entity.Easy)]++
		}

		require.Len(t, counts, 9)
		for cell, n := range counts {
			assert.InDelta(t, trials/9, n, 150, "cell %d", cell)
		}
	})
}

func TestEngine_Medium(t *testing.T) {
	// X threatens 2; Hard always blocks there.
	board := entity.Board{
		x, x, e,
		o, e, e,
		e, e, e,
	}

	t.Run("Plays randomly when the coin lands below one half", func(t *testing.T) {
		eng := New(&scriptedRand{floats: []float64{0.25}, ints: []int{4}})

		assert.Equal(t, 7, eng.ChooseMove(board, entity.Medium))
	})

	t.Run("Plays the full search otherwise", func(t *testing.T) {
		eng := New(&scriptedRand{floats: []float64{0.5}})

		assert.Equal(t, 2, eng.ChooseMove(board, entity.Medium))
	})

	t.Run("Matches the hard move about half the time plus random luck", func(t *testing.T) {
		eng := New(NewSeeded(99))

		const trials = 4000
		hits := 0
		for range trials {
			if eng.ChooseMove(board, entity.Medium) == 2 {
				hits++
			}
		}

		// half from the search, plus 1/6 of the random half
		expected := 0.5 + 0.5/6
		assert.InDelta(t, expected, float64(hits)/trials, 0.04)
	})
}

func TestEngine_NoMovesPanics(t *testing.T) {
	eng := New(NewSeeded(1))
	full := entity.Board{x, o, x, x, o, o, o, x, x}

	for _, difficulty := range entity.Difficulties {
		assert.Panics(t, func() { eng.ChooseMove(full, difficulty) })
	}
}

func TestSource(t *testing.T) {
	src := NewSource()

	for range 1000 {
		n := src.IntN(9)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 9)

		f := src.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}
