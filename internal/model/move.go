package model

import "fmt"

// Move is a rock-paper-scissors hand
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves lists every move; the index matches the move's numeric value
var Moves = []Move{Rock, Paper, Scissors}

func (m Move) String() string {
	switch m {
	case Rock:
		return "ROCK"
	case Paper:
		return "PAPER"
	case Scissors:
		return "SCISSORS"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Valid reports whether m is one of ROCK, PAPER or SCISSORS
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// ParseMove converts the numeric menu choice (0, 1, 2) into a Move
func ParseMove(n int) (Move, error) {
	m := Move(n)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMove, n)
	}
	return m, nil
}

// Beats reports whether m defeats other
func (m Move) Beats(other Move) bool {
	switch m {
	case Rock:
		return other == Scissors
	case Scissors:
		return other == Paper
	case Paper:
		return other == Rock
	default:
		return false
	}
}

// Outcome is the result of a round from the human player's perspective
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "tie"
	}
}

// Play resolves a single round between the player and the computer
func Play(player, computer Move) Outcome {
	switch {
	case player == computer:
		return OutcomeTie
	case player.Beats(computer):
		return OutcomeWin
	default:
		return OutcomeLoss
	}
}
