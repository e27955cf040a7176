package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

func decodePayload(msg *Message, into any) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(msg.Payload, into); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	return nil
}

// handleStart optionally switches difficulty and re-presents the match. The play was already counted on connect.
func (that *Server) handleStart(sess *session, msg *Message) error {
	var payload StartPayload
	if err := decodePayload(msg, &payload); err != nil {
		return err
	}

	if payload.Difficulty != "" {
		difficulty, err := entity.ParseDifficulty(payload.Difficulty)
		if err != nil {
			return err
		}

		if difficulty != sess.controller.Snapshot().Difficulty {
			if err = sess.controller.SetDifficulty(difficulty); err != nil {
				return err
			}
		}
	}

	sess.controller.Start()

	return nil
}

func (that *Server) handleMove(sess *session, msg *Message) error {
	var payload MovePayload
	if err := decodePayload(msg, &payload); err != nil {
		return err
	}

	if payload.Cell == nil {
		return fmt.Errorf("%w: cell is required", apperror.ErrInvalidPayload)
	}

	sess.controller.PlayerMove(*payload.Cell)

	return nil
}

func (that *Server) handleReset(sess *session, _ *Message) error {
	sess.controller.Reset()
	return nil
}

func (that *Server) handleDifficulty(sess *session, msg *Message) error {
	var payload DifficultyPayload
	if err := decodePayload(msg, &payload); err != nil {
		return err
	}

	return sess.controller.SetDifficulty(entity.Difficulty(payload.Difficulty))
}

func (that *Server) handleTallyReset(sess *session, _ *Message) error {
	sess.controller.ResetTally()
	return nil
}
