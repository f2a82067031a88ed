// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/clubkit/clubkit/internal/api"
	"github.com/clubkit/clubkit/internal/api/clubs"
	"github.com/clubkit/clubkit/internal/api/members"
	"github.com/clubkit/clubkit/internal/api/sessions"
	"github.com/clubkit/clubkit/internal/config"
	"github.com/clubkit/clubkit/internal/db"
	"github.com/clubkit/clubkit/internal/ratelimit"
)

func newServer(cfg *config.Config, database *db.DB) (*http.Server, *ratelimit.Limiter) {
	limiter := ratelimit.New(nil)

	clubs.InitHandlers(database)
	members.InitHandlers(database)
	sessions.InitHandlers(database, limiter)

	router := http.NewServeMux()
	registerRoutes(router)

	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		limiter.Middleware(false),
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, limiter
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Club routes
	mux.HandleFunc("/api/v1/clubs", clubs.HandleClubs)
	mux.HandleFunc("/api/v1/clubs/", clubs.HandleClubDetail)
	mux.HandleFunc("/api/v1/sports", clubs.HandleSports)

	// Member routes
	mux.HandleFunc("/api/v1/members", members.HandleMembers)
	mux.HandleFunc("/api/v1/members/", members.HandleMemberDetail)

	// Session routes, including team generation and match results
	mux.HandleFunc("/api/v1/sessions", sessions.HandleSessions)
	mux.HandleFunc("/api/v1/sessions/", sessions.HandleSessionRoutes)
}
