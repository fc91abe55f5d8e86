package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/movie-match/internal/command"
	"github.com/jbeshir/movie-match/internal/domain"
)

// SessionJoin handles POST /v1/sessions/{session_id}/join.
type SessionJoin struct {
	JoinCmd command.Command[command.JoinSessionRequest, command.Empty]
}

func (c SessionJoin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("session_id", sessionID))

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := c.JoinCmd.Execute(ctx, command.JoinSessionRequest{
		SessionID: sessionID,
		UserID:    userID,
	}); err != nil {
		writeError(ctx, w, "unable to join session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
