// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/danielhkuo/gridiron-pulse/generator"
	"github.com/danielhkuo/gridiron-pulse/handlers"
	"github.com/danielhkuo/gridiron-pulse/images"
	"github.com/danielhkuo/gridiron-pulse/middleware"
)

// NewRouter wires every endpoint. loc is the zone manual generation derives
// its default week/year in, the same one the scheduler runs on.
func NewRouter(db *sql.DB, imgs *images.Resolver, gen *generator.Generator, loc *time.Location) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(db, imgs)
	votingHandler := handlers.NewVotingHandler(db)
	resultsHandler := handlers.NewResultsHandler(db)
	generateHandler := handlers.NewGenerateHandler(gen, loc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Community sentiment polls
	mux.HandleFunc("GET /api/sentiment/polls", middleware.WithLogging(pollHandler.ListActive))
	mux.HandleFunc("POST /api/sentiment/polls", middleware.WithLogging(pollHandler.Create))
	mux.HandleFunc("DELETE /api/sentiment/polls/{id}", middleware.WithLogging(pollHandler.Delete))

	// Voting (anonymous, session-keyed)
	mux.HandleFunc("POST /api/sentiment/polls/{id}/vote", middleware.WithLogging(votingHandler.SubmitVote))

	// Derived statistics
	mux.HandleFunc("GET /api/sentiment/results", middleware.WithLogging(resultsHandler.Results))

	// Daily generation (also fired by the scheduler)
	mux.HandleFunc("POST /api/sentiment/generate", middleware.WithLogging(generateHandler.Generate))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("gridiron-pulse sentiment API v1"))
	})

	return mux
}
