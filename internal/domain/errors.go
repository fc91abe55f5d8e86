package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotParticipant  = errors.New("user is not a participant of the session")
	ErrSessionComplete = errors.New("session is already complete")
	ErrInvalidDecision = errors.New("invalid swipe decision")
	ErrInvalidSwipe    = errors.New("invalid swipe")
)
