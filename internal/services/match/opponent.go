package match

import (
	"github.com/mcoot/rockpaperscissors/internal/dependencies/random"
	"github.com/mcoot/rockpaperscissors/internal/model"
)

// Opponent decides the computer's move for a round
type Opponent interface {
	ChooseMove() model.Move
}

// RandomOpponent picks each move uniformly and independently
type RandomOpponent struct {
	random random.Random
}

// NewRandomOpponent creates a new RandomOpponent
func NewRandomOpponent(rnd random.Random) *RandomOpponent {
	return &RandomOpponent{random: rnd}
}

// ChooseMove returns ROCK, PAPER or SCISSORS with equal probability
func (o *RandomOpponent) ChooseMove() model.Move {
	return model.Moves[o.random.Intn(len(model.Moves))]
}
