package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/movie-match/internal/command"
	"github.com/jbeshir/movie-match/internal/datasources"
	"github.com/jbeshir/movie-match/internal/transport/web/controller"
)

func MakeRouter(
	sessions datasources.SessionRepository,
	matcher command.SessionMatcher,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/sessions", requireAuthMiddleware(controller.SessionCreate{
		CreateCmd: command.NewCreateSession(sessions),
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/sessions/{session_id}", requireAuthMiddleware(controller.SessionGet{
		GetCmd: command.NewGetSession(sessions, sessions),
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/sessions/{session_id}/join", requireAuthMiddleware(controller.SessionJoin{
		JoinCmd: command.NewJoinSession(sessions),
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/sessions/{session_id}/swipes", requireAuthMiddleware(controller.SwipeRecord{
		RecordCmd: command.NewRecordSwipe(sessions),
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/sessions/{session_id}/finish", requireAuthMiddleware(controller.SessionFinish{
		FinishCmd: command.NewFinishSwiping(sessions, matcher),
	})).Methods(http.MethodPost, http.MethodOptions)

	return r, nil
}
