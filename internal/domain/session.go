package domain

import "time"

// SessionStatus tracks where a session is in its lifecycle.
type SessionStatus string

const (
	SessionStatusSwiping  SessionStatus = "swiping"
	SessionStatusComplete SessionStatus = "complete"
)

// Session is a shared swiping session between its participants.
type Session struct {
	ID           string              `json:"id"`
	HostUserID   string              `json:"host_user_id"`
	Status       SessionStatus       `json:"status"`
	Participants []Participant       `json:"participants"`
	Result       *MatchSessionResult `json:"result,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
}

// Participant is a user's membership in a session.
type Participant struct {
	UserID              string    `json:"user_id"`
	Finished            bool      `json:"finished"`
	FallbackNoticeShown bool      `json:"-"`
	JoinedAt            time.Time `json:"joined_at"`
}

// UserIDs returns participant identifiers in join order.
func (s Session) UserIDs() []string {
	ids := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		ids = append(ids, p.UserID)
	}
	return ids
}

// HasParticipant reports whether userID has joined the session.
func (s Session) HasParticipant(userID string) bool {
	for _, p := range s.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// AllFinished reports whether every participant has finished swiping.
// A session without participants is never finished.
func (s Session) AllFinished() bool {
	if len(s.Participants) == 0 {
		return false
	}
	for _, p := range s.Participants {
		if !p.Finished {
			return false
		}
	}
	return true
}
