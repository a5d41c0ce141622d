// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session resolves the anonymous voter session identifier.

Voting is anonymous: there is no account, no login, and no cross-device
linkage. Each browser generates (or receives) one opaque identifier, stores
it client-side, and passes it back on every request via the X-Session-ID
header or the sessionId query parameter. The identifier exists only to key
duplicate-vote detection in the vote ledger.
*/
package session
