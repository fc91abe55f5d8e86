package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/movie-match/internal/datasources"
	"github.com/jbeshir/movie-match/internal/domain"
)

// JoinSessionRequest is the request for the JoinSession command.
type JoinSessionRequest struct {
	SessionID string
	UserID    string
}

// JoinSession adds the requesting user to a session that is still swiping.
type JoinSession struct {
	Adder datasources.ParticipantAdder
}

func NewJoinSession(adder datasources.ParticipantAdder) *JoinSession {
	return &JoinSession{Adder: adder}
}

func (c *JoinSession) Execute(ctx context.Context, req JoinSessionRequest) (Empty, error) {
	if err := c.Adder.AddParticipant(ctx, req.SessionID, req.UserID); err != nil {
		return Empty{}, fmt.Errorf("joining session: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "joined session",
		"sessionID", req.SessionID, "userID", req.UserID)

	return Empty{}, nil
}
