package controller

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/jbeshir/movie-match/internal/command"
	"github.com/jbeshir/movie-match/internal/domain"
)

// SwipeRecord handles POST /v1/sessions/{session_id}/swipes.
// The body is a swipe; its id and user are assigned by the server.
type SwipeRecord struct {
	RecordCmd command.Command[command.RecordSwipeRequest, domain.Swipe]
}

func (c SwipeRecord) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("session_id", sessionID))

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var swipe domain.Swipe
	if err := json.NewDecoder(r.Body).Decode(&swipe); err != nil {
		logger.DebugContext(ctx, "unable to parse request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := c.RecordCmd.Execute(ctx, command.RecordSwipeRequest{
		SessionID: sessionID,
		UserID:    userID,
		Swipe:     swipe,
	}); err != nil {
		writeError(ctx, w, "unable to record swipe", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
