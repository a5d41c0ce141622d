// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - CORS: cross-origin support for the charting frontend

# Helpers

  - JSONResponse / ErrorResponse: JSON encoding with standard error shape
  - ParseJSONBody: request body decoding
  - GetClientIP: X-Forwarded-For / X-Real-IP / RemoteAddr resolution
*/
package middleware
