package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const (
	scoreSeqKey       = "score:seq"
	globalBoardKey    = "leaderboard"
	userScoresKeep    = 50
	userScoresKeyTmpl = "user:%s:scores"

	// sorted set members are zero padded so equal scores order by id, newest first under ZREVRANGE
	boardMemberWidth = 20
)

type ScoreRepository interface {
	Add(ctx context.Context, score *entity.Score) error
	TopByGame(ctx context.Context, gameID string, limit int) ([]*entity.Score, error)
	Top(ctx context.Context, limit int) ([]*entity.Score, error)
	ByUser(ctx context.Context, userID string, limit int) ([]*entity.Score, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func scoreKey(id string) string {
	return "score:" + id
}

func gameBoardKey(gameID string) string {
	return globalBoardKey + ":" + gameID
}

func userScoresKey(userID string) string {
	return fmt.Sprintf(userScoresKeyTmpl, userID)
}

func boardMember(seq int64) string {
	return fmt.Sprintf("%0*d", boardMemberWidth, seq)
}

func memberScoreID(member string) (string, error) {
	seq, err := strconv.ParseInt(member, 10, 64)
	if err != nil {
		return "", fmt.Errorf("bad leaderboard member %q: %w", member, err)
	}

	return strconv.FormatInt(seq, 10), nil
}

// Add assigns the score an id and writes it to every index in one transaction.
func (that *dbScore) Add(ctx context.Context, score *entity.Score) error {
	seq, err := that.client.Incr(ctx, scoreSeqKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate score id: %w", err)
	}
	score.ID = strconv.FormatInt(seq, 10)

	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("could not marshal score: %w", err)
	}

	member := redis.Z{Score: float64(score.Score), Member: boardMember(seq)}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, scoreKey(score.ID), scoreJSON, 0)
		pipe.ZAdd(ctx, gameBoardKey(score.GameID), member)
		pipe.ZAdd(ctx, globalBoardKey, member)
		pipe.LPush(ctx, userScoresKey(score.UserID), score.ID)
		pipe.LTrim(ctx, userScoresKey(score.UserID), 0, userScoresKeep-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}

	return nil
}

func (that *dbScore) TopByGame(ctx context.Context, gameID string, limit int) ([]*entity.Score, error) {
	return that.top(ctx, gameBoardKey(gameID), limit)
}

func (that *dbScore) Top(ctx context.Context, limit int) ([]*entity.Score, error) {
	return that.top(ctx, globalBoardKey, limit)
}

// ByUser returns the user's latest scores, newest first.
func (that *dbScore) ByUser(ctx context.Context, userID string, limit int) ([]*entity.Score, error) {
	ids, err := that.client.LRange(ctx, userScoresKey(userID), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user scores: %w", err)
	}

	return that.load(ctx, ids)
}

func (that *dbScore) top(ctx context.Context, key string, limit int) ([]*entity.Score, error) {
	members, err := that.client.ZRevRange(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	ids := make([]string, len(members))
	for i, member := range members {
		if ids[i], err = memberScoreID(member); err != nil {
			return nil, err
		}
	}

	return that.load(ctx, ids)
}

func (that *dbScore) load(ctx context.Context, ids []string) ([]*entity.Score, error) {
	scores := make([]*entity.Score, 0, len(ids))
	if len(ids) == 0 {
		return scores, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = scoreKey(id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var score entity.Score
		if err = json.Unmarshal([]byte(raw), &score); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score: %w", err)
		}
		scores = append(scores, &score)
	}

	return scores, nil
}
