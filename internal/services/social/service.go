package social

import (
	"iter"
	"log/slog"

	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/storage/record"
)

// Service manages friends lists and messages on profiles
type Service struct {
	logger *slog.Logger
}

// New creates a new social Service
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// AddFriend adds friendName to the profile's friends. The friend does not need to be
// a registered player. Returns false if the name was already present.
func (s *Service) AddFriend(p *model.Profile, friendName string) (bool, error) {
	if !record.ValidToken(friendName) {
		return false, model.ErrInvalidName
	}
	if p.HasFriend(friendName) {
		return false, nil
	}

	p.Friends = append(p.Friends, friendName)
	s.logger.Debug("friend added", slog.String("name", p.Name), slog.String("friend", friendName))
	return true, nil
}

// SendMessage records a message on the sender's own profile as "To <recipient>: <text>".
// Nothing is written to the recipient's profile.
func (s *Service) SendMessage(sender *model.Profile, recipient, text string) (string, error) {
	if !record.ValidToken(recipient) {
		return "", model.ErrInvalidName
	}

	entry := record.CleanText("To " + recipient + ": " + text)
	sender.Messages = append(sender.Messages, entry)

	s.logger.Debug("message stored", slog.String("name", sender.Name), slog.String("recipient", recipient))
	return entry, nil
}

// Messages yields the profile's messages in insertion order. The sequence reads the
// profile each time it is ranged over.
func (s *Service) Messages(p *model.Profile) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, m := range p.Messages {
			if !yield(m) {
				return
			}
		}
	}
}
