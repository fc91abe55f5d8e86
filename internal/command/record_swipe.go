package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jbeshir/movie-match/internal/datasources"
	"github.com/jbeshir/movie-match/internal/domain"
)

// RecordSwipeRequest is the request for the RecordSwipe command.
// Swipe.UserID and Swipe.ID are ignored and derived from UserID.
type RecordSwipeRequest struct {
	SessionID string
	UserID    string
	Swipe     domain.Swipe
}

// RecordSwipe validates a swipe and appends it to the session.
type RecordSwipe struct {
	Appender datasources.SwipeAppender
	Now      func() time.Time
}

// NewRecordSwipe creates a properly initialized RecordSwipe command.
func NewRecordSwipe(appender datasources.SwipeAppender) *RecordSwipe {
	return &RecordSwipe{Appender: appender, Now: time.Now}
}

// Execute records the swipe, returning the stored form.
func (c *RecordSwipe) Execute(ctx context.Context, req RecordSwipeRequest) (domain.Swipe, error) {
	swipe := req.Swipe
	swipe.UserID = req.UserID
	swipe.MediaID = strings.TrimSpace(swipe.MediaID)
	if swipe.MediaID == "" {
		return domain.Swipe{}, fmt.Errorf("%w: media id is required", domain.ErrInvalidSwipe)
	}

	decision, err := domain.ParseDecision(string(swipe.Decision))
	if err != nil {
		return domain.Swipe{}, err
	}
	swipe.Decision = decision

	if swipe.CreatedAt <= 0 {
		swipe.CreatedAt = c.Now().UnixMilli()
	}
	swipe.ID = domain.SwipeID(swipe.UserID, swipe.MediaID, swipe.CreatedAt)

	if err := c.Appender.AppendSwipe(ctx, req.SessionID, swipe); err != nil {
		return domain.Swipe{}, fmt.Errorf("appending swipe: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "recorded swipe",
		"sessionID", req.SessionID, "swipeID", swipe.ID, "decision", swipe.Decision)

	return swipe, nil
}
