// Package ledger implements a batch transaction-replay engine over per-client
// accounts.
//
// Core flow:
//   - New creates an empty Ledger.
//   - Apply feeds one transaction at a time, in input order.
//   - Account and Accounts expose the resulting state for encoding.
//
// The engine is a tolerant replayer: duplicate money-movement ids, references to
// unknown or ineligible transactions, insufficient-funds withdrawals, and any
// transaction addressed to a locked account are absorbed as silent no-ops. Apply
// never fails and never panics on a well-typed stream.
//
// A Ledger is not safe for concurrent use; callers must not share one across
// goroutines without external synchronization.
package ledger
