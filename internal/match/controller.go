// Package match runs a single-player tic-tac-toe session against the engine.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const defaultScoreTimeout = 5 * time.Second

type MoveChooser interface {
	ChooseMove(board entity.Board, difficulty entity.Difficulty) int
}

// ScoreSubmitter persists the reward for a won match.
type ScoreSubmitter interface {
	SubmitScore(ctx context.Context, gameID, displayName string, points int) error
}

type PlayCounter interface {
	IncrementPlayCount(ctx context.Context, gameID string) error
}

// Presenter receives a snapshot after every state change. It is called with the
// controller locked and must not call back into the controller synchronously.
type Presenter interface {
	Present(snapshot Snapshot)
}

type PresenterFunc func(snapshot Snapshot)

func (that PresenterFunc) Present(snapshot Snapshot) {
	that(snapshot)
}

type Options struct {
	GameID      string
	DisplayName string
	Difficulty  entity.Difficulty

	// ReplyDelay postpones the engine reply for pacing. Zero replies inline.
	ReplyDelay   time.Duration
	ScoreTimeout time.Duration
}

// Collaborators are optional; a nil Scores means nothing is persisted.
type Collaborators struct {
	Scores    ScoreSubmitter
	Plays     PlayCounter
	Presenter Presenter
}

type Controller struct {
	logger *slog.Logger
	engine MoveChooser
	opts   Options
	deps   Collaborators

	afterFunc func(d time.Duration, f func())
	dispatch  func(f func())

	mu         sync.Mutex
	board      entity.Board
	state      State
	difficulty entity.Difficulty
	tally      entity.Tally
	generation uint64
	started    bool
}

func New(logger *slog.Logger, engine MoveChooser, opts Options, deps Collaborators) *Controller {
	logger = logger.With("component", "match", "game", opts.GameID)

	difficulty, err := entity.ParseDifficulty(string(opts.Difficulty))
	if err != nil {
		if opts.Difficulty != "" {
			logger.Warn("unknown difficulty, using medium", "error", err)
		}
		difficulty = entity.Medium
	}
	opts.Difficulty = difficulty

	if opts.ScoreTimeout <= 0 {
		opts.ScoreTimeout = defaultScoreTimeout
	}

	return &Controller{
		logger:     logger,
		engine:     engine,
		opts:       opts,
		deps:       deps,
		afterFunc:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		dispatch:   func(f func()) { go f() },
		state:      AwaitingPlayerMove,
		difficulty: opts.Difficulty,
	}
}

// Start opens the session: the play count is bumped once and the initial state presented.
func (that *Controller) Start() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.started {
		that.started = true
		that.countPlay()
	}

	that.present()
}

// PlayerMove places the player's mark. Moves out of turn or onto taken cells are dropped.
func (that *Controller) PlayerMove(index int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != AwaitingPlayerMove || !that.board.IsOpen(index) {
		that.logger.Debug("ignoring player move", "cell", index, "state", that.state)
		return
	}

	that.board = that.board.ApplyMove(index, entity.PlayerMark)
	that.state = AwaitingOpponentMove

	if that.finishIfTerminal() {
		return
	}

	that.present()

	if that.opts.ReplyDelay <= 0 {
		that.opponentTurn()
		return
	}

	generation := that.generation
	that.afterFunc(that.opts.ReplyDelay, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		// the match was reset while we waited
		if that.generation != generation || that.state != AwaitingOpponentMove {
			return
		}

		that.opponentTurn()
	})
}

// Reset starts a new match. The tally is kept.
func (that *Controller) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.reset()
	that.present()
}

// SetDifficulty changes the tier and starts a new match with it.
func (that *Controller) SetDifficulty(difficulty entity.Difficulty) error {
	parsed, err := entity.ParseDifficulty(string(difficulty))
	if err != nil {
		return fmt.Errorf("set difficulty: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.difficulty = parsed
	that.reset()
	that.present()

	return nil
}

// ResetTally zeroes the session counters.
func (that *Controller) ResetTally() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.tally = entity.Tally{}
	that.present()
}

func (that *Controller) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

func (that *Controller) reset() {
	that.generation++
	that.board = entity.Board{}
	that.state = AwaitingPlayerMove
}

func (that *Controller) opponentTurn() {
	move := that.engine.ChooseMove(that.board, that.difficulty)
	that.board = that.board.ApplyMove(move, entity.OpponentMark)

	if that.finishIfTerminal() {
		return
	}

	that.state = AwaitingPlayerMove
	that.present()
}

func (that *Controller) finishIfTerminal() bool {
	outcome := entity.OutcomeOf(that.board)
	if !outcome.IsTerminal() {
		return false
	}

	that.state = MatchOver
	that.tally.Record(outcome)
	that.present()

	that.logger.Info("match over", "outcome", outcome, "difficulty", that.difficulty, "board", that.board.String())

	if outcome == entity.PlayerWin {
		that.submitScore(that.difficulty.BasePoints())
	}

	return true
}

func (that *Controller) submitScore(points int) {
	scores := that.deps.Scores
	if scores == nil {
		return
	}

	gameID, name, timeout := that.opts.GameID, that.opts.DisplayName, that.opts.ScoreTimeout
	if name == "" {
		name = entity.AnonymousName
	}

	that.dispatch(func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := scores.SubmitScore(ctx, gameID, name, points); err != nil {
			that.logger.Error("failed to submit score", "points", points, "error", err)
		}
	})
}

func (that *Controller) countPlay() {
	plays := that.deps.Plays
	if plays == nil {
		return
	}

	gameID, timeout := that.opts.GameID, that.opts.ScoreTimeout

	that.dispatch(func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := plays.IncrementPlayCount(ctx, gameID); err != nil {
			that.logger.Error("failed to increment play count", "error", err)
		}
	})
}

func (that *Controller) present() {
	if that.deps.Presenter == nil {
		return
	}

	that.deps.Presenter.Present(that.snapshot())
}

func (that *Controller) snapshot() Snapshot {
	snapshot := Snapshot{
		Board:      that.board,
		State:      that.state,
		Outcome:    entity.OutcomeOf(that.board),
		Difficulty: that.difficulty,
		Tally:      that.tally,
	}

	if _, line, ok := that.board.Winner(); ok {
		snapshot.WinningLine = line[:]
	}

	return snapshot
}
