package auth

import "github.com/mcoot/rockpaperscissors/internal/model"

// Session tracks the players logged in during this process and whose turn is next.
// It is never persisted.
type Session struct {
	players []string
	current int
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{}
}

// Add appends a player to the turn rotation. The same name may appear more than
// once if that player logs in again.
func (s *Session) Add(name string) {
	s.players = append(s.players, name)
}

// Players returns the logged-in player names in login order
func (s *Session) Players() []string {
	return append([]string(nil), s.players...)
}

// Empty reports whether nobody has logged in
func (s *Session) Empty() bool {
	return len(s.players) == 0
}

// Current returns the player whose turn it is
func (s *Session) Current() (string, error) {
	if len(s.players) == 0 {
		return "", model.ErrNoActivePlayer
	}
	return s.players[s.current], nil
}

// Advance passes the turn to the next logged-in player
func (s *Session) Advance() {
	if len(s.players) == 0 {
		return
	}
	s.current = (s.current + 1) % len(s.players)
}

// Forget removes every occurrence of the given names. The turn stays with the
// current player, or passes to the next remaining one if the current player is removed.
func (s *Session) Forget(names ...string) {
	if len(names) == 0 {
		return
	}
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	kept := make([]string, 0, len(s.players))
	current := 0
	for i, p := range s.players {
		if i == s.current {
			current = len(kept)
		}
		if !drop[p] {
			kept = append(kept, p)
		}
	}
	s.players = kept
	if current >= len(s.players) {
		current = 0
	}
	s.current = current
}
