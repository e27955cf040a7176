// Package engine picks the opponent's next move for a tic-tac-toe board.
package engine

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const (
	winScore = 10

	mediumRandomChance = 0.5
)

// Rand is the randomness source for the Easy and Medium tiers.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Engine chooses moves for one mark. It keeps no state between calls.
type Engine struct {
	rnd   Rand
	self  entity.Mark
	rival entity.Mark
}

// New returns an engine playing the opponent's mark.
func New(rnd Rand) *Engine {
	return NewFor(entity.OpponentMark, rnd)
}

// NewFor returns an engine playing mark.
func NewFor(mark entity.Mark, rnd Rand) *Engine {
	if rnd == nil {
		rnd = NewSource()
	}

	return &Engine{
		rnd:   rnd,
		self:  mark,
		rival: mark.Rival(),
	}
}

// ChooseMove returns the index of the engine's next move.
// The board must have at least one empty cell.
func (that *Engine) ChooseMove(board entity.Board, difficulty entity.Difficulty) int {
	moves := board.AvailableMoves()
	if len(moves) == 0 {
		panic(fmt.Errorf("choose move on %s: %w", board, ErrNoAvailableMoves))
	}

	switch difficulty {
	case entity.Easy:
		return that.randomMove(moves)
	case entity.Medium:
		if that.rnd.Float64() < mediumRandomChance {
			return that.randomMove(moves)
		}
		return that.BestMove(board)
	case entity.Hard:
		return that.BestMove(board)
	default:
		panic(fmt.Errorf("choose move: %w: %q", entity.ErrUnknownDifficulty, difficulty))
	}
}

func (that *Engine) randomMove(moves []int) int {
	return moves[that.rnd.IntN(len(moves))]
}

// BestMove runs the full search. Ties keep the lowest index.
func (that *Engine) BestMove(board entity.Board) int {
	moves := board.AvailableMoves()
	if len(moves) == 0 {
		panic(fmt.Errorf("best move on %s: %w", board, ErrNoAvailableMoves))
	}

	bestMove := moves[0]
	bestScore := math.MinInt

	for _, move := range moves {
		score := that.Minimax(board.ApplyMove(move, that.self), 0, false, math.MinInt, math.MaxInt)
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove
}

// Minimax scores board from the engine's point of view.
// Wins are worth 10 - depth, losses depth - 10, draws 0.
func (that *Engine) Minimax(board entity.Board, depth int, isMaximizing bool, alpha, beta int) int {
	if score, ok := that.terminalScore(board, depth); ok {
		return score
	}

	if isMaximizing {
		maxEval := math.MinInt
		for _, move := range board.AvailableMoves() {
			eval := that.Minimax(board.ApplyMove(move, that.self), depth+1, false, alpha, beta)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, move := range board.AvailableMoves() {
		eval := that.Minimax(board.ApplyMove(move, that.rival), depth+1, true, alpha, beta)
		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break
		}
	}
	return minEval
}

func (that *Engine) terminalScore(board entity.Board, depth int) (int, bool) {
	if winner, _, ok := board.Winner(); ok {
		if winner == that.self {
			return winScore - depth, true
		}
		return depth - winScore, true
	}

	if board.IsFull() {
		return 0, true
	}

	return 0, false
}
