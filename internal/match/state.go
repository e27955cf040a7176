package match

import "github.com/rocketscienceinc/tictactoe-arcade/internal/entity"

type State string

const (
	AwaitingPlayerMove   State = "awaiting_player_move"
	AwaitingOpponentMove State = "awaiting_opponent_move"
	MatchOver            State = "match_over"
)

// Snapshot is everything a presenter needs to draw the match.
type Snapshot struct {
	Board       entity.Board      `json:"board"`
	State       State             `json:"state"`
	Outcome     entity.Outcome    `json:"outcome"`
	WinningLine []int             `json:"winning_line,omitempty"`
	Difficulty  entity.Difficulty `json:"difficulty"`
	Tally       entity.Tally      `json:"tally"`
}

func (that Snapshot) IsOver() bool {
	return that.State == MatchOver
}
