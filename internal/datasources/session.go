package datasources

import (
	"context"

	"github.com/jbeshir/movie-match/internal/domain"
)

// SessionCreator stores a new session together with its host participant.
type SessionCreator interface {
	CreateSession(ctx context.Context, session domain.Session) error
}

// ParticipantAdder joins a user to an existing session. Joining twice is a no-op.
type ParticipantAdder interface {
	AddParticipant(ctx context.Context, sessionID, userID string) error
}

// SessionGetter retrieves a session with its participants and stored result.
type SessionGetter interface {
	GetSession(ctx context.Context, sessionID string) (domain.Session, error)
}

// SwipeAppender appends a swipe to a session. Swipes are never updated.
type SwipeAppender interface {
	AppendSwipe(ctx context.Context, sessionID string, swipe domain.Swipe) error
}

// SwipeLister lists a session's swipes ordered by creation time.
type SwipeLister interface {
	ListSessionSwipes(ctx context.Context, sessionID string) ([]domain.Swipe, error)
}

// CompletionFunc computes the result of a session once all participants have finished.
type CompletionFunc func(ctx context.Context, swipes []domain.Swipe, userIDs []string) domain.MatchSessionResult

// SessionFinisher marks a participant as finished, completing the session
// with complete when they were the last one.
type SessionFinisher interface {
	FinishParticipant(
		ctx context.Context,
		sessionID, userID string,
		complete CompletionFunc,
	) (domain.Session, error)
}

// FallbackNoticeMarker records that a participant has been shown the fallback notice.
// It reports whether this was the first time.
type FallbackNoticeMarker interface {
	MarkFallbackNoticeShown(ctx context.Context, sessionID, userID string) (bool, error)
}

// SessionRepository combines all session operations.
type SessionRepository interface {
	SessionCreator
	ParticipantAdder
	SessionGetter
	SwipeAppender
	SwipeLister
	SessionFinisher
	FallbackNoticeMarker
}
