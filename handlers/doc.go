// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the sentiment API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - PollHandler: active-poll listing, creation, administrative deletion
  - VotingHandler: at-most-once vote submission
  - ResultsHandler: derived per-poll statistics
  - GenerateHandler: on-demand daily generation cycle

# Voting Flow

Voters are anonymous, identified only by an opaque session token:

	GET  /api/sentiment/polls           → ListActive (viewer's vote joined in)
	POST /api/sentiment/polls/{id}/vote → SubmitVote (409 on duplicate)

The session token travels in the X-Session-ID header (preferred) or the
sessionId query parameter. Responses echo the resolved token so first-time
callers can persist it.

# Generation

	POST /api/sentiment/generate → Generate

Deactivates every active poll, then synthesizes a new batch from the week's
trending players. Also fired daily by the scheduler.

# Error Mapping

Validation failures are 400s and happen before any storage call. Duplicate
votes are 409s, unknown polls 404s, storage failures 500s. Messages are
precise enough for the frontend to show directly.
*/
package handlers
