// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: category, prompt, side_a, side_b, week, year
  - VoteRequest: side ("A" or "B")
  - GenerateRequest: optional week/year overrides

# Response Types

Types for JSON responses:

  - CreatePollResponse: poll_id
  - VoteResponse: poll_id, votes_a, votes_b, session_id
  - ListPollsResponse: polls, session_id
  - GenerateResponse: polls_created, message
  - ResultsResponse: results
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: two-sided voting card with denormalized running tallies
  - Side: one choice on a poll (player metadata + vote count + images)
  - ActivePoll: Poll annotated with the viewer's own vote
  - PollResult: derived majority/share/total statistics

# Constants

Categories (fixed taxonomy, generation order):

	CategoryAddDrop  = "ADD_DROP"
	CategoryStartSit = "START_SIT"
	CategoryTrade    = "TRADE"

Sides:

	SideA = "A"
	SideB = "B"

Bounds:

	MinWeek/MaxWeek = 1/18
	MinYear/MaxYear = 2020/2030
	ActivePollLimit = 3
	MaxPromptLength = 280
*/
package models
