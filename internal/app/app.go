package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/movie-match/internal/datasources/sqlstore"
	"github.com/jbeshir/movie-match/internal/transport/web/router"
	"github.com/jbeshir/movie-match/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	sessions, err := SetupSessionRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up session repository: %w", err)
	}

	matcher, err := SetupMatcher(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up matcher: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	httpRouter, err := router.MakeRouter(sessions, matcher, authMiddleware)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: GetEnvAsStringsOrDefault(ctx, "HTTP_AUTOCERT_HOSTNAMES", nil),
			Router:            httpRouter,
		},
	}, nil
}

// SetupSessionRepository opens the session store selected by DB_DRIVER.
func SetupSessionRepository(ctx context.Context) (*sqlstore.Repository, error) {
	switch driver := GetEnvAsStringOrDefault(ctx, "DB_DRIVER", "mysql"); driver {
	case "mysql":
		return sqlstore.Open(ctx, driver, MustGetEnvAsString(ctx, "MYSQL_URI"))
	case "sqlite":
		return sqlstore.Open(ctx, driver, GetEnvAsStringOrDefault(ctx, "SQLITE_PATH", "movie-match.db"))
	default:
		return nil, fmt.Errorf("unknown database driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "user_header":
			validators = append(validators, router.NewUserHeaderValidator())
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
