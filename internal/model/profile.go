package model

// Profile is the persisted record of a registered player
type Profile struct {
	Name     string // store key (immutable)
	Password string // plaintext, compared byte-for-byte

	Score      int // sum of (wins - losses) across matches; may be negative
	TotalGames int
	TotalWins  int

	Achievements AchievementSet

	GameHistory []string
	Friends     []string
	// Messages sent by this player, each prefixed with the recipient
	Messages []string
}

// NewProfile creates a profile with zeroed counters and every achievement locked
func NewProfile(name, password string) *Profile {
	return &Profile{
		Name:     name,
		Password: password,
	}
}

// HasFriend reports whether name is already in the friends list
func (p *Profile) HasFriend(name string) bool {
	for _, f := range p.Friends {
		if f == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the profile
func (p *Profile) Clone() *Profile {
	c := *p
	c.GameHistory = append([]string(nil), p.GameHistory...)
	c.Friends = append([]string(nil), p.Friends...)
	c.Messages = append([]string(nil), p.Messages...)
	return &c
}

// PlayerScore is the leaderboard view of a profile
type PlayerScore struct {
	Name       string  `json:"name"`
	Score      int     `json:"score"`
	TotalGames int     `json:"total_games"`
	TotalWins  int     `json:"total_wins"`
	WinRate    float64 `json:"win_rate"` // percentage, derived for display only
}
