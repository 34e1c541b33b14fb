package model

// AchievementID identifies one of the fixed achievements.
// The numeric order is the canonical order used when persisting flags.
type AchievementID int

const (
	AchievementWin10 AchievementID = iota
	AchievementWin20
	AchievementStreak5

	achievementCount
)

// Achievements lists every achievement in canonical order
var Achievements = []AchievementID{AchievementWin10, AchievementWin20, AchievementStreak5}

// NumAchievements is the number of achievement flags stored per profile
const NumAchievements = int(achievementCount)

// Description returns the human-readable achievement name
func (a AchievementID) Description() string {
	switch a {
	case AchievementWin10:
		return "Win 10 games"
	case AchievementWin20:
		return "Win 20 games"
	case AchievementStreak5:
		return "Win 5 games in a row"
	default:
		return "Unknown achievement"
	}
}

func (a AchievementID) String() string {
	return a.Description()
}

// Valid reports whether a is one of the known achievements
func (a AchievementID) Valid() bool {
	return a >= 0 && a < achievementCount
}

// AchievementSet holds the unlock state of every achievement.
// Flags only move from locked to unlocked.
type AchievementSet [achievementCount]bool

// Unlocked reports whether the achievement has been unlocked
func (s *AchievementSet) Unlocked(id AchievementID) bool {
	if !id.Valid() {
		return false
	}
	return s[id]
}

// Unlock marks the achievement as unlocked. It returns true only if the flag changed.
func (s *AchievementSet) Unlock(id AchievementID) bool {
	if !id.Valid() || s[id] {
		return false
	}
	s[id] = true
	return true
}
