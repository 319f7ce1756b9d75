// Package csvio adapts CSV transaction streams and account snapshots to the
// ledger core.
//
// Input is a headed `type, client, tx, amount` stream; output is a headed
// `client, available, held, total, locked` stream. The reader is tolerant of
// unrecognized or incomplete records (they are skipped and counted) but treats
// schema and syntax errors as fatal, matching the replay engine's split between
// silent domain no-ops and loud parse failures.
package csvio
