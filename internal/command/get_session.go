package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/movie-match/internal/datasources"
	"github.com/jbeshir/movie-match/internal/domain"
)

// GetSessionRequest is the request for the GetSession command.
type GetSessionRequest struct {
	SessionID string
	UserID    string
}

// GetSessionResponse is the response from the GetSession command.
type GetSessionResponse struct {
	Session domain.Session

	// ShowFallbackNotice is set the first time a participant views a
	// fallback result, so clients can explain that the picks are random.
	ShowFallbackNotice bool
}

// GetSession returns a session to one of its participants.
type GetSession struct {
	Getter       datasources.SessionGetter
	NoticeMarker datasources.FallbackNoticeMarker
}

// NewGetSession creates a properly initialized GetSession command.
func NewGetSession(getter datasources.SessionGetter, noticeMarker datasources.FallbackNoticeMarker) *GetSession {
	return &GetSession{Getter: getter, NoticeMarker: noticeMarker}
}

func (c *GetSession) Execute(ctx context.Context, req GetSessionRequest) (GetSessionResponse, error) {
	session, err := c.Getter.GetSession(ctx, req.SessionID)
	if err != nil {
		return GetSessionResponse{}, fmt.Errorf("getting session: %w", err)
	}
	if !session.HasParticipant(req.UserID) {
		return GetSessionResponse{}, domain.ErrNotParticipant
	}

	resp := GetSessionResponse{Session: session}
	if session.Result == nil || !session.Result.Fallback {
		return resp, nil
	}

	// Best-effort: a failure only means the notice is skipped.
	first, err := c.NoticeMarker.MarkFallbackNoticeShown(ctx, req.SessionID, req.UserID)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to mark fallback notice shown",
			"error", err, "sessionID", req.SessionID)
		return resp, nil
	}
	resp.ShowFallbackNotice = first

	return resp, nil
}
