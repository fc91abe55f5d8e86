package command

import (
	"context"
	"log/slog"

	"github.com/jbeshir/movie-match/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}
