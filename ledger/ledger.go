package ledger

import (
	"iter"
)

// Ledger owns the full set of client accounts and the set of money-movement
// transaction ids consumed so far. The dedup set is per-instance state,
// constructed fresh with New; nothing in the package is process-global.
type Ledger struct {
	accounts map[ClientID]*Account
	consumed map[TransactionID]struct{}
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[ClientID]*Account),
		consumed: make(map[TransactionID]struct{}),
	}
}

// Apply replays one transaction against the addressed client account.
//
// Money movements consume their id globally: a reused id is ignored before any
// account is looked up, so the duplicate is a no-op for every client including
// the one that first used it. An id consumed by a movement that is later
// dropped (insufficient funds) stays consumed.
//
// Accounts are created lazily by the first deposit addressed to an unknown
// client; any other kind addressed to an unknown client is dropped.
//
// Apply never fails: every invalid case is absorbed as a no-op.
func (l *Ledger) Apply(client ClientID, tx TransactionID, t Transaction) {
	if t.isMovement() {
		if _, dup := l.consumed[tx]; dup {
			return
		}

		l.consumed[tx] = struct{}{}
	}

	if account, ok := l.accounts[client]; ok {
		account.apply(tx, t)
		return
	}

	if account := newAccount(tx, t); account != nil {
		l.accounts[client] = account
	}
}

// Account returns a read-only reference to the client's account, if it exists.
func (l *Ledger) Account(client ClientID) (*Account, bool) {
	account, ok := l.accounts[client]
	return account, ok
}

// Accounts returns a restartable sequence over all accounts. Order is map
// order and therefore unspecified.
func (l *Ledger) Accounts() iter.Seq2[ClientID, *Account] {
	return func(yield func(ClientID, *Account) bool) {
		for client, account := range l.accounts {
			if !yield(client, account) {
				return
			}
		}
	}
}

// Len returns the number of accounts.
func (l *Ledger) Len() int {
	return len(l.accounts)
}
