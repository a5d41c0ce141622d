// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines routes using Go 1.22+ method and path routing.

Routes:

	GET    /health
	GET    /api/sentiment/polls
	POST   /api/sentiment/polls
	DELETE /api/sentiment/polls/{id}
	POST   /api/sentiment/polls/{id}/vote
	GET    /api/sentiment/results
	POST   /api/sentiment/generate
	GET    /

All API routes are wrapped with request logging. CORS is applied at the
server level in main.
*/
package router
