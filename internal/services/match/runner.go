package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/rockpaperscissors/internal/dependencies/clock"
	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/services/auth"
	"github.com/mcoot/rockpaperscissors/internal/services/profile"
	"github.com/mcoot/rockpaperscissors/internal/services/scoring"
)

// Player supplies the human side of each round
type Player interface {
	// ChooseMove returns the player's move for the given 1-based round
	ChooseMove(ctx context.Context, round int) (model.Move, error)
}

// PlayerFunc adapts a function to the Player interface
type PlayerFunc func(ctx context.Context, round int) (model.Move, error)

func (f PlayerFunc) ChooseMove(ctx context.Context, round int) (model.Move, error) {
	return f(ctx, round)
}

// Round describes one resolved round
type Round struct {
	Number   int
	Player   model.Move
	Computer model.Move
	Outcome  model.Outcome
}

// Report is the outcome of a completed match
type Report struct {
	PlayerName string
	Result     model.MatchResult
	Unlocked   []model.AchievementID
}

// Verdict returns the overall winner announcement
func (r Report) Verdict() string {
	switch {
	case r.Result.Wins > r.Result.Losses:
		return "Congratulations! You are the overall winner!"
	case r.Result.Losses > r.Result.Wins:
		return "Computer is the overall winner. Better luck next time!"
	default:
		return "It's a draw overall!"
	}
}

// Runner plays matches between the current session player and the computer
type Runner struct {
	store    *profile.Store
	scoring  *scoring.Service
	session  *auth.Session
	opponent Opponent
	clock    clock.Clock
	logger   *slog.Logger
}

// NewRunner creates a new match Runner
func NewRunner(
	store *profile.Store,
	scoring *scoring.Service,
	session *auth.Session,
	opponent Opponent,
	clock clock.Clock,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		store:    store,
		scoring:  scoring,
		session:  session,
		opponent: opponent,
		clock:    clock,
		logger:   logger,
	}
}

// CurrentPlayer returns the name of the player whose turn it is
func (r *Runner) CurrentPlayer() (string, error) {
	return r.session.Current()
}

// PlayRounds plays n rounds against the opponent and tallies the result.
// onRound, if non-nil, is called after each round is resolved.
func (r *Runner) PlayRounds(ctx context.Context, n int, player Player, onRound func(Round)) (model.MatchResult, error) {
	var result model.MatchResult
	if n <= 0 {
		return result, fmt.Errorf("%w: %d", model.ErrInvalidRounds, n)
	}

	for i := 1; i <= n; i++ {
		move, err := player.ChooseMove(ctx, i)
		if err != nil {
			return result, fmt.Errorf("round %d: %w", i, err)
		}
		if !move.Valid() {
			return result, fmt.Errorf("round %d: %w: %d", i, model.ErrInvalidMove, int(move))
		}

		computer := r.opponent.ChooseMove()
		outcome := model.Play(move, computer)
		result.Record(outcome)

		if onRound != nil {
			onRound(Round{Number: i, Player: move, Computer: computer, Outcome: outcome})
		}
	}

	return result, nil
}

// Run plays a full match for the current session player, applies the result to their
// profile, persists the store and passes the turn to the next logged-in player.
// If the match is interrupted nothing is recorded and the turn does not advance.
func (r *Runner) Run(ctx context.Context, rounds int, player Player, onRound func(Round)) (*Report, error) {
	name, err := r.session.Current()
	if err != nil {
		return nil, err
	}
	p, err := r.store.Get(name)
	if err != nil {
		return nil, err
	}

	started := r.clock.Now()
	result, err := r.PlayRounds(ctx, rounds, player, onRound)
	if err != nil {
		return nil, err
	}

	unlocked := r.scoring.ApplyMatchResult(p, result)
	r.store.Flush(ctx)
	r.session.Advance()

	r.logger.Info("match completed",
		slog.String("name", name),
		slog.Int("wins", result.Wins),
		slog.Int("losses", result.Losses),
		slog.Int("ties", result.Ties),
		slog.Int("streak", result.Streak),
		slog.Duration("elapsed", r.clock.Since(started)),
	)

	return &Report{
		PlayerName: name,
		Result:     result,
		Unlocked:   unlocked,
	}, nil
}
