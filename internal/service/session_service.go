package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fmcastro/monitoria/internal/model"
	"github.com/fmcastro/monitoria/internal/repository"
	"github.com/fmcastro/monitoria/internal/validation"
)

// SessionService decides who is currently acting. Identities are taken on
// trust; the guard only cares that one exists and that the role is one of
// the three known values.
type SessionService struct {
	sessionRepo *repository.SessionRepository
	validate    *validation.Validator
	logger      *zap.Logger
}

func NewSessionService(
	sessionRepo *repository.SessionRepository,
	validate *validation.Validator,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		validate:    validate,
		logger:      logger,
	}
}

type loginInput struct {
	Role     string `json:"role" validate:"required"`
	Identity string `json:"identity" validate:"required"`
}

// Login records a session for the role and identity. A blank identity or
// an unknown role is a validation error and nothing is recorded.
func (s *SessionService) Login(role model.Role, identity string) (*model.Session, error) {
	identity = strings.TrimSpace(identity)

	in := loginInput{Identity: identity}
	if role.Valid() {
		in.Role = string(role)
	}
	if err := s.validate.Check(in); err != nil {
		return nil, err
	}

	session := model.Session{
		ID:        uuid.New(),
		Role:      role,
		Identity:  identity,
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Set(session); err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}

	s.logger.Info("Session established",
		zap.String("session_id", session.ID.String()),
		zap.String("role", string(session.Role)),
		zap.String("identity", session.Identity),
	)

	return &session, nil
}

// Current returns the active session, or nil when nobody is logged in.
// A stored session with a role outside the known set is torn down and
// reported as absent: the role comes from uncontrolled storage and must
// not reach the panel dispatch.
func (s *SessionService) Current() (*model.Session, error) {
	session, err := s.sessionRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	if !session.Role.Valid() {
		s.logger.Warn("Stored session has an unknown role, logging out",
			zap.String("role", string(session.Role)),
			zap.String("identity", session.Identity),
		)
		if err := s.sessionRepo.Clear(); err != nil {
			return nil, fmt.Errorf("clear invalid session: %w", err)
		}
		return nil, nil
	}

	return session, nil
}

// Require returns the active session or ErrLoginRequired, which tells the
// caller to navigate to the login screen.
func (s *SessionService) Require() (*model.Session, error) {
	session, err := s.Current()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrLoginRequired
	}
	return session, nil
}

// Logout clears the session unconditionally.
func (s *SessionService) Logout() error {
	if err := s.sessionRepo.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.logger.Info("Session cleared")
	return nil
}
