package match

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rockpaperscissors/internal/dependencies/mocks"
	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/services/auth"
	"github.com/mcoot/rockpaperscissors/internal/services/profile"
	"github.com/mcoot/rockpaperscissors/internal/services/scoring"
	"github.com/mcoot/rockpaperscissors/internal/storage/memory"
	"github.com/mcoot/rockpaperscissors/internal/testutil"
)

type RunnerSuite struct {
	suite.Suite
	storage    *memory.Storage
	store      *profile.Store
	session    *auth.Session
	auth       *auth.Service
	mockRandom *mocks.MockRandom
	mockClock  *mocks.MockClock
	runner     *Runner
	ctx        context.Context
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.store = profile.New(s.storage, logger)
	s.session = auth.NewSession()
	s.auth = auth.New(s.store, s.session, logger)
	s.mockRandom = mocks.NewMockRandom()
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.runner = NewRunner(s.store, scoring.New(logger), s.session, NewRandomOpponent(s.mockRandom), s.mockClock, logger)
	s.ctx = context.Background()
}

// always plays the same move
func constant(m model.Move) Player {
	return PlayerFunc(func(ctx context.Context, round int) (model.Move, error) {
		return m, nil
	})
}

// plays the given moves in order
func sequence(moves ...model.Move) Player {
	return PlayerFunc(func(ctx context.Context, round int) (model.Move, error) {
		return moves[round-1], nil
	})
}

func (s *RunnerSuite) queueComputer(moves ...model.Move) {
	for _, m := range moves {
		s.mockRandom.QueueIntn(int(m))
	}
}

func (s *RunnerSuite) TestRandomOpponentDrawsFromThreeMoves() {
	s.queueComputer(model.Paper)
	opp := NewRandomOpponent(s.mockRandom)
	s.Equal(model.Paper, opp.ChooseMove())
	s.Equal([]int{3}, s.mockRandom.Calls)
}

func (s *RunnerSuite) TestPlayRoundsTallies() {
	s.queueComputer(model.Scissors, model.Rock, model.Paper, model.Scissors)

	var rounds []Round
	result, err := s.runner.PlayRounds(s.ctx, 4, constant(model.Rock), func(r Round) {
		rounds = append(rounds, r)
	})
	s.Require().NoError(err)

	s.Equal(model.MatchResult{Wins: 2, Losses: 1, Ties: 1, Streak: 1}, result)
	s.Require().Len(rounds, 4)
	s.Equal(Round{Number: 1, Player: model.Rock, Computer: model.Scissors, Outcome: model.OutcomeWin}, rounds[0])
	s.Equal(model.OutcomeTie, rounds[1].Outcome)
	s.Equal(model.OutcomeLoss, rounds[2].Outcome)
}

func (s *RunnerSuite) TestPlayRoundsRejectsNonPositiveCount() {
	_, err := s.runner.PlayRounds(s.ctx, 0, constant(model.Rock), nil)
	s.ErrorIs(err, model.ErrInvalidRounds)
	_, err = s.runner.PlayRounds(s.ctx, -2, constant(model.Rock), nil)
	s.ErrorIs(err, model.ErrInvalidRounds)
}

func (s *RunnerSuite) TestRunWithoutPlayers() {
	_, err := s.runner.Run(s.ctx, 3, constant(model.Rock), nil)
	s.ErrorIs(err, model.ErrNoActivePlayer)
}

func (s *RunnerSuite) TestTenWinsScenario() {
	_, err := s.auth.Register(s.ctx, "alice", "pw")
	s.Require().NoError(err)

	for i := 0; i < 10; i++ {
		s.queueComputer(model.Scissors)
	}

	report, err := s.runner.Run(s.ctx, 10, constant(model.Rock), nil)
	s.Require().NoError(err)

	s.Equal("alice", report.PlayerName)
	s.Equal(10, report.Result.Wins)
	s.Equal([]model.AchievementID{model.AchievementWin10, model.AchievementStreak5}, report.Unlocked)
	s.Equal("Congratulations! You are the overall winner!", report.Verdict())

	alice, err := s.store.Get("alice")
	s.Require().NoError(err)
	s.Equal(10, alice.TotalWins)
	s.Equal(10, alice.TotalGames)
	s.Equal(10, alice.Score)
	s.True(alice.Achievements.Unlocked(model.AchievementWin10))
	s.True(alice.Achievements.Unlocked(model.AchievementStreak5))
	s.False(alice.Achievements.Unlocked(model.AchievementWin20))

	// Persisted after the match
	snapshot := s.storage.Snapshot()
	s.Require().Len(snapshot, 1)
	s.Equal(10, snapshot[0].Score)
	s.Equal([]string{"Player Wins: 10, Computer Wins: 0, Ties: 0"}, snapshot[0].GameHistory)
}

func (s *RunnerSuite) TestStreakBrokenByTieIsNotAwarded() {
	_, _ = s.auth.Register(s.ctx, "alice", "pw")
	s.queueComputer(model.Scissors, model.Scissors, model.Scissors, model.Scissors, model.Scissors, model.Rock)

	report, err := s.runner.Run(s.ctx, 6, constant(model.Rock), nil)
	s.Require().NoError(err)
	s.Equal(0, report.Result.Streak)
	s.Empty(report.Unlocked)
}

func (s *RunnerSuite) TestLosingMatchLowersScore() {
	_, _ = s.auth.Register(s.ctx, "alice", "pw")
	s.queueComputer(model.Paper, model.Rock, model.Rock)

	report, err := s.runner.Run(s.ctx, 3, sequence(model.Rock, model.Scissors, model.Rock), nil)
	s.Require().NoError(err)
	s.Equal("Computer is the overall winner. Better luck next time!", report.Verdict())

	alice, _ := s.store.Get("alice")
	s.Equal(-2, alice.Score)
	s.Equal(3, alice.TotalGames)
	s.Equal(0, alice.TotalWins)
}

func (s *RunnerSuite) TestRunRotatesPlayers() {
	_, _ = s.auth.Register(s.ctx, "alice", "pw")
	_, _ = s.auth.Register(s.ctx, "bob", "pw")

	var players []string
	for i := 0; i < 3; i++ {
		report, err := s.runner.Run(s.ctx, 1, constant(model.Rock), nil)
		s.Require().NoError(err)
		players = append(players, report.PlayerName)
	}
	s.Equal([]string{"alice", "bob", "alice"}, players)
}

func (s *RunnerSuite) TestInterruptedMatchRecordsNothing() {
	_, _ = s.auth.Register(s.ctx, "alice", "pw")
	saves := s.storage.Saves()

	failing := PlayerFunc(func(ctx context.Context, round int) (model.Move, error) {
		if round == 2 {
			return 0, io.EOF
		}
		return model.Rock, nil
	})

	_, err := s.runner.Run(s.ctx, 3, failing, nil)
	s.True(errors.Is(err, io.EOF))

	alice, _ := s.store.Get("alice")
	s.Equal(0, alice.TotalGames)
	s.Equal(saves, s.storage.Saves())

	current, _ := s.runner.CurrentPlayer()
	s.Equal("alice", current)
}

func (s *RunnerSuite) TestRunAfterProfileRemoved() {
	_, _ = s.auth.Register(s.ctx, "alice", "pw")
	s.store.Reset(s.ctx)

	_, err := s.runner.Run(s.ctx, 1, constant(model.Rock), nil)
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *RunnerSuite) TestDrawVerdict() {
	s.Equal("It's a draw overall!", Report{Result: model.MatchResult{Wins: 2, Losses: 2, Ties: 1}}.Verdict())
}
