package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/movie-match/internal/command"
	"github.com/jbeshir/movie-match/internal/domain"
)

// SessionFinish handles POST /v1/sessions/{session_id}/finish.
type SessionFinish struct {
	FinishCmd command.Command[command.FinishSwipingRequest, domain.Session]
}

func (c SessionFinish) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("session_id", sessionID))

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	session, err := c.FinishCmd.Execute(ctx, command.FinishSwipingRequest{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		writeError(ctx, w, "unable to finish swiping", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, session)
}
