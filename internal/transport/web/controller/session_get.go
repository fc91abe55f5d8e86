package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/movie-match/internal/command"
	"github.com/jbeshir/movie-match/internal/domain"
)

// SessionGetResponse is the JSON response for GET /v1/sessions/{session_id}.
type SessionGetResponse struct {
	Session            domain.Session `json:"session"`
	ShowFallbackNotice bool           `json:"show_fallback_notice"`
}

// SessionGet handles GET /v1/sessions/{session_id}.
type SessionGet struct {
	GetCmd command.Command[command.GetSessionRequest, command.GetSessionResponse]
}

func (c SessionGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("session_id", sessionID))

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	resp, err := c.GetCmd.Execute(ctx, command.GetSessionRequest{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		writeError(ctx, w, "unable to get session", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(ctx, w, http.StatusOK, SessionGetResponse{
		Session:            resp.Session,
		ShowFallbackNotice: resp.ShowFallbackNotice,
	})
}
