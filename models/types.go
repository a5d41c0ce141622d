package models

import "time"

// Poll category constants
const (
	CategoryAddDrop  = "ADD_DROP"
	CategoryStartSit = "START_SIT"
	CategoryTrade    = "TRADE"
)

// Categories lists every valid poll category, in generation order.
var Categories = []string{CategoryAddDrop, CategoryStartSit, CategoryTrade}

// Poll side constants
const (
	SideA = "A"
	SideB = "B"
)

// Week/year bounds and display limits
const (
	MinWeek = 1
	MaxWeek = 18
	MinYear = 2020
	MaxYear = 2030

	ActivePollLimit = 3
	MaxPromptLength = 280
)

// ValidCategory reports whether c is one of the fixed poll categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ValidSide reports whether s is exactly "A" or "B".
func ValidSide(s string) bool {
	return s == SideA || s == SideB
}

// ClampWeek bounds a week number to the regular season range.
func ClampWeek(week int) int {
	if week < MinWeek {
		return MinWeek
	}
	if week > MaxWeek {
		return MaxWeek
	}
	return week
}

// ClampYear bounds a season year to the range covered by the stats store.
func ClampYear(year int) int {
	if year < MinYear {
		return MinYear
	}
	if year > MaxYear {
		return MaxYear
	}
	return year
}

// Request types

type SidePayload struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
}

type CreatePollRequest struct {
	Category string      `json:"category"`
	Prompt   string      `json:"prompt"`
	SideA    SidePayload `json:"side_a"`
	SideB    SidePayload `json:"side_b"`
	Week     int         `json:"week"`
	Year     int         `json:"year"`
}

type VoteRequest struct {
	Side string `json:"side"`
}

// Week and year are pointers so "not supplied" is distinguishable from zero.
type GenerateRequest struct {
	Week *int `json:"week,omitempty"`
	Year *int `json:"year,omitempty"`
}

// Response types

type CreatePollResponse struct {
	PollID int64 `json:"poll_id"`
}

type VoteResponse struct {
	PollID    int64  `json:"poll_id"`
	VotesA    int    `json:"votes_a"`
	VotesB    int    `json:"votes_b"`
	SessionID string `json:"session_id"`
}

type ListPollsResponse struct {
	Polls     []ActivePoll `json:"polls"`
	SessionID string       `json:"session_id"`
}

type GenerateResponse struct {
	PollsCreated int    `json:"polls_created"`
	Message      string `json:"message"`
}

type ResultsResponse struct {
	Results []PollResult `json:"results"`
}

// Domain types

// Side is one of the two choices on a poll, carrying player metadata, the
// running tally, and display image URLs resolved at read time.
type Side struct {
	PlayerID      string `json:"player_id"`
	Name          string `json:"name"`
	Team          string `json:"team"`
	Position      string `json:"position"`
	Votes         int    `json:"votes"`
	ImageURL      string `json:"image_url,omitempty"`
	FallbackImage string `json:"fallback_image,omitempty"`
}

type Poll struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Prompt    string    `json:"prompt"`
	SideA     Side      `json:"side_a"`
	SideB     Side      `json:"side_b"`
	Week      int       `json:"week"`
	Year      int       `json:"year"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivePoll is a poll annotated with the viewer's own prior vote, if any.
type ActivePoll struct {
	Poll
	MyVote *string `json:"my_vote"`
}

// PollResult carries the derived statistics for one poll. Majority, shares,
// and totals are computed from the stored counters at read time, never persisted.
type PollResult struct {
	PollID     int64   `json:"poll_id"`
	Category   string  `json:"category"`
	Prompt     string  `json:"prompt"`
	Week       int     `json:"week"`
	Year       int     `json:"year"`
	SideA      Side    `json:"side_a"`
	SideB      Side    `json:"side_b"`
	TotalVotes int     `json:"total_votes"`
	Majority   string  `json:"majority"`
	ShareA     float64 `json:"share_a"`
	ShareB     float64 `json:"share_b"`
}

// Majority values for PollResult
const (
	MajorityA   = "A"
	MajorityB   = "B"
	MajorityTie = "TIE"
)

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
