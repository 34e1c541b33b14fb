package scoring

import (
	"log/slog"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

const (
	winsForFirstMilestone  = 10
	winsForSecondMilestone = 20
	winStreakTarget        = 5
)

// Predicate decides whether an achievement is earned given a profile whose counters
// already include the match, and that match's result
type Predicate func(p *model.Profile, result model.MatchResult) bool

// Predicates maps each achievement to its unlock rule
var Predicates = map[model.AchievementID]Predicate{
	model.AchievementWin10: func(p *model.Profile, _ model.MatchResult) bool {
		return p.TotalWins >= winsForFirstMilestone
	},
	model.AchievementWin20: func(p *model.Profile, _ model.MatchResult) bool {
		return p.TotalWins >= winsForSecondMilestone
	},
	model.AchievementStreak5: func(_ *model.Profile, r model.MatchResult) bool {
		return r.Streak >= winStreakTarget
	},
}

// Service applies match results to profiles
type Service struct {
	logger *slog.Logger
}

// New creates a new scoring Service
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// ApplyMatchResult adds the match tallies to the profile, records the match in its
// history and unlocks any newly earned achievements. It returns the achievements
// unlocked by this call, in canonical order.
func (s *Service) ApplyMatchResult(p *model.Profile, result model.MatchResult) []model.AchievementID {
	p.TotalGames += result.Rounds()
	p.TotalWins += result.Wins
	p.Score += result.Wins - result.Losses

	var unlocked []model.AchievementID
	for _, id := range model.Achievements {
		if p.Achievements.Unlocked(id) {
			continue
		}
		if Predicates[id](p, result) && p.Achievements.Unlock(id) {
			unlocked = append(unlocked, id)
			s.logger.Info("achievement unlocked",
				slog.String("name", p.Name),
				slog.String("achievement", id.Description()),
			)
		}
	}

	p.GameHistory = append(p.GameHistory, result.Summary())

	return unlocked
}
