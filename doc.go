// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Gridiron Pulse sentiment API.

Gridiron Pulse is an NFL analytics application; this service is its
"Community Sentiment" subsystem: daily-rotated two-sided player polls with
anonymous, at-most-once voting.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3344 -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3344)
  - HEADSHOT_MAP (--headshots): Path to the name->imageID JSON table
  - GENERATE_HOUR (--generate-hour): Local hour for daily generation (default: 9)
  - TIME_ZONE (--tz): IANA zone for the schedule (default: America/New_York)

A .env file in the working directory is loaded at startup if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, voting, results, generation)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and the category/side taxonomy
  - session: Anonymous voter session resolution
  - pollstore: Poll/vote persistence and the at-most-once invariant
  - trending: Weekly player ranking from the stats read model
  - generator: Daily poll batch synthesis
  - scheduler: Wall-clock trigger for the generator
  - images: Head-shot URL resolution with placeholder fallback
  - db: Schema creation and transaction scoping
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
