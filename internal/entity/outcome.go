package entity

// Outcome is derived from a board, never stored.
type Outcome string

const (
	InProgress  Outcome = "in_progress"
	PlayerWin   Outcome = "player_win"
	OpponentWin Outcome = "opponent_win"
	Draw        Outcome = "draw"
)

func OutcomeOf(board Board) Outcome {
	if winner, _, ok := board.Winner(); ok {
		if winner == PlayerMark {
			return PlayerWin
		}
		return OpponentWin
	}

	if board.IsFull() {
		return Draw
	}

	return InProgress
}

func (that Outcome) IsTerminal() bool {
	return that != InProgress
}

// Tally counts finished matches for one session.
type Tally struct {
	PlayerWins   int `json:"player_wins"`
	OpponentWins int `json:"opponent_wins"`
	Draws        int `json:"draws"`
}

// Record counts a terminal outcome; InProgress is ignored.
func (that *Tally) Record(outcome Outcome) {
	switch outcome {
	case PlayerWin:
		that.PlayerWins++
	case OpponentWin:
		that.OpponentWins++
	case Draw:
		that.Draws++
	case InProgress:
	}
}

func (that Tally) Total() int {
	return that.PlayerWins + that.OpponentWins + that.Draws
}
