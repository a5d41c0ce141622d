// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/gridiron-pulse/images"
	"github.com/danielhkuo/gridiron-pulse/middleware"
	"github.com/danielhkuo/gridiron-pulse/models"
	"github.com/danielhkuo/gridiron-pulse/pollstore"
	"github.com/danielhkuo/gridiron-pulse/session"
)

type PollHandler struct {
	db     *sql.DB
	images *images.Resolver
}

func NewPollHandler(db *sql.DB, imgs *images.Resolver) *PollHandler {
	return &PollHandler{db: db, images: imgs}
}

// ListActive handles GET /api/sentiment/polls
// Read-only: safe for clients to call on every refresh.
func (h *PollHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	sessionID := session.Resolve(r)

	polls, err := pollstore.ListActive(h.db, sessionID)
	if err != nil {
		slog.Error("failed to list active polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Decorate sides with display images. A missing mapping yields a
	// placeholder; it never blocks the listing.
	for i := range polls {
		decorateSide(&polls[i].SideA, h.images)
		decorateSide(&polls[i].SideB, h.images)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListPollsResponse{
		Polls:     polls,
		SessionID: sessionID,
	})
}

// Create handles POST /api/sentiment/polls
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidCategory(req.Category) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "category must be one of ADD_DROP, START_SIT, TRADE")
		return
	}
	if req.Prompt == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "prompt is required")
		return
	}
	if len(req.Prompt) > models.MaxPromptLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "prompt exceeds maximum length")
		return
	}
	if msg, ok := validateSide("side_a", req.SideA); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if msg, ok := validateSide("side_b", req.SideB); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	pollID, err := pollstore.Insert(h.db, pollstore.NewPoll{
		Category: req.Category,
		Prompt:   req.Prompt,
		SideA:    req.SideA,
		SideB:    req.SideB,
		Week:     models.ClampWeek(req.Week),
		Year:     models.ClampYear(req.Year),
	})
	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "category", req.Category)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID: pollID,
	})
}

// Delete handles DELETE /api/sentiment/polls/{id}
// Administrative side channel; cascades to the poll's votes.
func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be numeric")
		return
	}

	if err := pollstore.Delete(h.db, pollID); err != nil {
		if errors.Is(err, pollstore.ErrPollNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
			return
		}
		slog.Error("failed to delete poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)
	w.WriteHeader(http.StatusNoContent)
}

func decorateSide(s *models.Side, imgs *images.Resolver) {
	s.ImageURL = imgs.HeadshotURL(s.Name)
	s.FallbackImage = imgs.FallbackURL(s.Name)
}

func validateSide(field string, s models.SidePayload) (string, bool) {
	switch {
	case s.PlayerID == "":
		return field + ".player_id is required", false
	case s.Name == "":
		return field + ".name is required", false
	case s.Team == "":
		return field + ".team is required", false
	case s.Position == "":
		return field + ".position is required", false
	}
	return "", true
}
