package controller

import (
	"net/http"

	"github.com/jbeshir/movie-match/internal/command"
	"github.com/jbeshir/movie-match/internal/domain"
)

// SessionCreate handles POST /v1/sessions.
type SessionCreate struct {
	CreateCmd command.Command[command.CreateSessionRequest, domain.Session]
}

func (c SessionCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	session, err := c.CreateCmd.Execute(ctx, command.CreateSessionRequest{HostUserID: userID})
	if err != nil {
		writeError(ctx, w, "unable to create session", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, session)
}
