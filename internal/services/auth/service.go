package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/services/profile"
)

// Service handles registration and login against the profile store
type Service struct {
	store   *profile.Store
	session *Session
	logger  *slog.Logger
}

// New creates a new auth Service
func New(store *profile.Store, session *Session, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		session: session,
		logger:  logger,
	}
}

// Session returns the session players are logged into
func (s *Service) Session() *Session {
	return s.session
}

// Register creates a profile, persists the store and logs the new player in
func (s *Service) Register(ctx context.Context, name, password string) (*model.Profile, error) {
	p, err := s.store.Create(name, password)
	if err != nil {
		return nil, err
	}

	s.store.Flush(ctx)
	s.session.Add(name)

	s.logger.Info("player registered", slog.String("name", name))
	return p, nil
}

// Login checks the password byte-for-byte and adds the player to the session
func (s *Service) Login(ctx context.Context, name, password string) (*model.Profile, error) {
	p, err := s.store.Get(name)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if p.Password != password {
		s.logger.Debug("login rejected", slog.String("name", name))
		return nil, model.ErrInvalidCredentials
	}

	s.session.Add(name)

	s.logger.Info("player logged in", slog.String("name", name))
	return p, nil
}
