// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment.

# Precedence

CLI flags win over environment variables; defaults apply last:

	-p / PORT                      (default 3344)
	-d / DATABASE_URL              (required)
	--headshots / HEADSHOT_MAP     (optional; listings degrade to placeholders)
	--generate-hour / GENERATE_HOUR (default 9)
	--tz / TIME_ZONE               (default America/New_York)
*/
package cliparse
