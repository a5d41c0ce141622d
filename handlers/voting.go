// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/gridiron-pulse/middleware"
	"github.com/danielhkuo/gridiron-pulse/models"
	"github.com/danielhkuo/gridiron-pulse/pollstore"
	"github.com/danielhkuo/gridiron-pulse/session"
)

type VotingHandler struct {
	db *sql.DB
}

func NewVotingHandler(db *sql.DB) *VotingHandler {
	return &VotingHandler{db: db}
}

// SubmitVote handles POST /api/sentiment/polls/{id}/vote
//
// Validation happens before any storage interaction; the store then runs
// the duplicate check, ledger insert, and tally increment as one
// transaction. The response includes the resolved session identifier so a
// first-time caller learns the one assigned to them.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || pollID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be numeric")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !models.ValidSide(req.Side) {
		middleware.ErrorResponse(w, http.StatusBadRequest, `side must be "A" or "B"`)
		return
	}

	sessionID := session.Resolve(r)

	tally, err := pollstore.RecordVote(h.db, pollID, sessionID, req.Side)
	if err != nil {
		switch {
		case errors.Is(err, pollstore.ErrPollNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		case errors.Is(err, pollstore.ErrDuplicateVote):
			middleware.ErrorResponse(w, http.StatusConflict, "You have already voted on this poll")
		default:
			slog.Error("failed to record vote", "error", err, "poll_id", pollID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		}
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "side", req.Side)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		PollID:    pollID,
		VotesA:    tally.VotesA,
		VotesB:    tally.VotesB,
		SessionID: sessionID,
	})
}
