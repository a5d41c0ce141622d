// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/gridiron-pulse/generator"
	"github.com/danielhkuo/gridiron-pulse/middleware"
	"github.com/danielhkuo/gridiron-pulse/models"
)

type GenerateHandler struct {
	gen *generator.Generator
	loc *time.Location
}

// NewGenerateHandler builds the manual-trigger handler. loc is the zone the
// default week/year is derived in, shared with the scheduler so a manual
// trigger near midnight targets the same week as the scheduled one.
func NewGenerateHandler(gen *generator.Generator, loc *time.Location) *GenerateHandler {
	if loc == nil {
		loc = time.Local
	}
	return &GenerateHandler{gen: gen, loc: loc}
}

// Generate handles POST /api/sentiment/generate
// Optional week/year overrides are clamped into valid bounds; an empty body
// targets the current in-season week.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	week, year := generator.DefaultTarget(time.Now().In(h.loc))
	if req.Week != nil {
		week = models.ClampWeek(*req.Week)
	}
	if req.Year != nil {
		year = models.ClampYear(*req.Year)
	}

	created, err := h.gen.Run(week, year)
	if err != nil {
		slog.Error("poll generation failed", "error", err, "week", week, "year", year)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Poll generation failed")
		return
	}

	message := fmt.Sprintf("Created %d polls for week %d of %d", created, week, year)
	if created == 0 {
		message = fmt.Sprintf("No polls created for week %d of %d: not enough trending players", week, year)
	}

	middleware.JSONResponse(w, http.StatusOK, models.GenerateResponse{
		PollsCreated: created,
		Message:      message,
	})
}
