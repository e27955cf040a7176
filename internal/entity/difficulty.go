package entity

import (
	"fmt"
	"strings"
)

// Difficulty selects the opponent's move policy.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

func ParseDifficulty(value string) (Difficulty, error) {
	switch difficulty := Difficulty(strings.ToLower(strings.TrimSpace(value))); difficulty {
	case Easy, Medium, Hard:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}
}

// BasePoints is the flat reward for beating the opponent at this tier.
func (that Difficulty) BasePoints() int {
	switch that {
	case Hard:
		return 30
	case Medium:
		return 20
	case Easy:
		return 10
	default:
		return 0
	}
}
