// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/gridiron-pulse/middleware"
	"github.com/danielhkuo/gridiron-pulse/models"
	"github.com/danielhkuo/gridiron-pulse/pollstore"
)

type ResultsHandler struct {
	db *sql.DB
}

func NewResultsHandler(db *sql.DB) *ResultsHandler {
	return &ResultsHandler{db: db}
}

// Results handles GET /api/sentiment/results?week=&year=
// Majority side, vote shares, and totals are derived from the stored
// counters at read time - nothing extra is persisted.
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	week, ok := optionalIntParam(w, r, "week")
	if !ok {
		return
	}
	year, ok := optionalIntParam(w, r, "year")
	if !ok {
		return
	}

	results, err := pollstore.Results(h.db, week, year)
	if err != nil {
		slog.Error("failed to query results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{Results: results})
}

// optionalIntParam parses an optional integer query parameter. On a
// malformed value it writes a 400 and reports !ok.
func optionalIntParam(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" must be numeric")
		return nil, false
	}
	return &val, true
}
