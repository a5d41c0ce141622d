// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pollstore owns poll and vote persistence and the transactional
invariant linking them.

# Operations

  - Insert: create a poll (zero counters, active)
  - ListActive: newest-first active polls with the viewer's vote joined in
  - RecordVote: duplicate-checked vote insert + relative tally increment
  - DeactivateAll / ActiveCount: bulk lifecycle operations for generation
  - Results: derived majority/share/total statistics
  - Delete: administrative removal, cascading to votes

# At-Most-Once Voting

RecordVote wraps its existence check, duplicate check, ledger insert, and
counter increment in one transaction via db.WithTx. The pre-check gives
callers a clean ErrDuplicateVote; the UNIQUE (poll_id, session_id)
constraint is the actual enforcement under concurrency, mapped from the
Postgres unique-violation error code to the same sentinel. Counters only
ever move by relative increment inside that transaction, so the sum of
votes_a and votes_b always equals the number of ledger rows for the poll.

# Errors

Callers branch on the sentinels:

	ErrPollNotFound
	ErrDuplicateVote

Anything else is a storage failure wrapped with context.
*/
package pollstore
