// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Header and query parameter carrying the voter session identifier.
// The header wins when both are present.
const (
	Header     = "X-Session-ID"
	QueryParam = "sessionId"
)

// Resolve returns the opaque voter session identifier for a request. A
// caller-supplied identifier always wins; otherwise a fresh one is generated
// and returned in the response so the client can persist it and send it back
// on subsequent requests. No uniqueness check happens here - the vote
// ledger's constraint is the enforcement point.
func Resolve(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(Header)); id != "" {
		return id
	}
	if id := strings.TrimSpace(r.URL.Query().Get(QueryParam)); id != "" {
		return id
	}
	return uuid.NewString()
}
