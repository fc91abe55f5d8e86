package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/movie-match/internal/datasources"
	"github.com/jbeshir/movie-match/internal/domain"
)

// CreateSessionRequest is the request for the CreateSession command.
type CreateSessionRequest struct {
	HostUserID string
}

// CreateSession starts a new swiping session hosted by the requesting user.
type CreateSession struct {
	Creator datasources.SessionCreator
	NewID   func() string
	Now     func() time.Time
}

// NewCreateSession creates a properly initialized CreateSession command.
func NewCreateSession(creator datasources.SessionCreator) *CreateSession {
	return &CreateSession{
		Creator: creator,
		NewID:   uuid.NewString,
		Now:     time.Now,
	}
}

// Execute creates the session and returns it.
func (c *CreateSession) Execute(ctx context.Context, req CreateSessionRequest) (domain.Session, error) {
	now := c.Now().UTC().Truncate(time.Millisecond)
	session := domain.Session{
		ID:         c.NewID(),
		HostUserID: req.HostUserID,
		Status:     domain.SessionStatusSwiping,
		Participants: []domain.Participant{
			{UserID: req.HostUserID, JoinedAt: now},
		},
		CreatedAt: now,
	}

	if err := c.Creator.CreateSession(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("creating session: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "created session",
		"sessionID", session.ID, "hostUserID", session.HostUserID)

	return session, nil
}
