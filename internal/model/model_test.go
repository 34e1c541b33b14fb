package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeatsRelation(t *testing.T) {
	assert.True(t, Rock.Beats(Scissors))
	assert.True(t, Scissors.Beats(Paper))
	assert.True(t, Paper.Beats(Rock))

	for _, m := range Moves {
		assert.False(t, m.Beats(m), "%s should not beat itself", m)
	}
	assert.False(t, Scissors.Beats(Rock))
	assert.False(t, Paper.Beats(Scissors))
	assert.False(t, Rock.Beats(Paper))
}

func TestPlay(t *testing.T) {
	tests := []struct {
		player, computer Move
		want             Outcome
	}{
		{Rock, Rock, OutcomeTie},
		{Rock, Scissors, OutcomeWin},
		{Rock, Paper, OutcomeLoss},
		{Paper, Rock, OutcomeWin},
		{Scissors, Rock, OutcomeLoss},
		{Scissors, Paper, OutcomeWin},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Play(tt.player, tt.computer), "%s vs %s", tt.player, tt.computer)
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove(2)
	require.NoError(t, err)
	assert.Equal(t, Scissors, m)

	_, err = ParseMove(3)
	assert.ErrorIs(t, err, ErrInvalidMove)
	_, err = ParseMove(-1)
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestMatchResultRecordStreak(t *testing.T) {
	var r MatchResult
	r.Record(OutcomeWin)
	r.Record(OutcomeWin)
	assert.Equal(t, 2, r.Streak)

	r.Record(OutcomeTie)
	assert.Equal(t, 0, r.Streak)

	r.Record(OutcomeWin)
	r.Record(OutcomeLoss)
	assert.Equal(t, 0, r.Streak)

	assert.Equal(t, 3, r.Wins)
	assert.Equal(t, 1, r.Losses)
	assert.Equal(t, 1, r.Ties)
	assert.Equal(t, 5, r.Rounds())
	assert.Equal(t, "Player Wins: 3, Computer Wins: 1, Ties: 1", r.Summary())
}

func TestAchievementSetIsOneWay(t *testing.T) {
	var s AchievementSet
	assert.False(t, s.Unlocked(AchievementWin10))
	assert.True(t, s.Unlock(AchievementWin10))
	assert.False(t, s.Unlock(AchievementWin10))
	assert.True(t, s.Unlocked(AchievementWin10))

	assert.False(t, s.Unlock(AchievementID(42)))
	assert.Len(t, Achievements, NumAchievements)
}

func TestProfileCloneIsDeep(t *testing.T) {
	p := NewProfile("alice", "pw")
	p.Friends = []string{"bob"}

	c := p.Clone()
	c.Friends[0] = "carol"
	c.Achievements.Unlock(AchievementWin20)

	assert.Equal(t, "bob", p.Friends[0])
	assert.False(t, p.Achievements.Unlocked(AchievementWin20))
}
