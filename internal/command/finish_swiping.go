package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/movie-match/internal/datasources"
	"github.com/jbeshir/movie-match/internal/domain"
)

// SessionMatcher computes the result of a completed session.
type SessionMatcher interface {
	MatchSession(ctx context.Context, swipes []domain.Swipe, userIDs []string, sessionSeed string) domain.MatchSessionResult
}

var _ SessionMatcher = (*domain.Matcher)(nil)

// FinishSwipingRequest is the request for the FinishSwiping command.
type FinishSwipingRequest struct {
	SessionID string
	UserID    string
}

// FinishSwiping marks the requesting user as done. The last participant to
// finish triggers matching, seeded by the session id so a replay of the same
// swipes reproduces any fallback selection.
type FinishSwiping struct {
	Finisher datasources.SessionFinisher
	Matcher  SessionMatcher
}

// NewFinishSwiping creates a properly initialized FinishSwiping command.
func NewFinishSwiping(finisher datasources.SessionFinisher, matcher SessionMatcher) *FinishSwiping {
	return &FinishSwiping{Finisher: finisher, Matcher: matcher}
}

// Execute finishes the participant and returns the session, with its result
// when it is complete.
func (c *FinishSwiping) Execute(ctx context.Context, req FinishSwipingRequest) (domain.Session, error) {
	logger := domain.LoggerFromContext(ctx).With("sessionID", req.SessionID)

	complete := datasources.CompletionFunc(func(
		ctx context.Context, swipes []domain.Swipe, userIDs []string,
	) domain.MatchSessionResult {
		result := c.Matcher.MatchSession(ctx, swipes, userIDs, req.SessionID)
		logger.InfoContext(ctx, "session matched",
			"swipes", len(swipes),
			"titles", len(result.MatchedTitles),
			"certainty", result.Certainty,
			"fallback", result.Fallback,
			"algorithmVersion", result.AlgorithmVersion)
		return result
	})

	session, err := c.Finisher.FinishParticipant(ctx, req.SessionID, req.UserID, complete)
	if err != nil {
		return domain.Session{}, fmt.Errorf("finishing participant: %w", err)
	}

	logger.DebugContext(ctx, "participant finished swiping",
		"userID", req.UserID, "status", session.Status)

	return session, nil
}
