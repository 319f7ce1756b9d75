package ledger

import (
	"github.com/shopspring/decimal"
)

// Account is a per-client state machine over an available balance, a held
// balance, and a log of money movements with their dispute state. Accounts are
// created and mutated only through a Ledger; outside the package they are
// read-only.
type Account struct {
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool
	entries   map[TransactionID]Entry
}

// newAccount creates an account from its first transaction. Only a deposit can
// open an account; any other kind has nothing to apply to and returns nil.
func newAccount(tx TransactionID, t Transaction) *Account {
	if t.Kind != KindDeposit {
		return nil
	}

	return &Account{
		available: t.Amount,
		held:      decimal.Zero,
		entries: map[TransactionID]Entry{
			tx: {Kind: KindDeposit, Amount: t.Amount, State: StateResolved},
		},
	}
}

// Available returns the withdrawable balance.
func (a *Account) Available() decimal.Decimal {
	return a.available
}

// Held returns the balance set aside pending dispute resolution.
func (a *Account) Held() decimal.Decimal {
	return a.held
}

// Locked reports whether the account has undergone a chargeback and is
// permanently frozen.
func (a *Account) Locked() bool {
	return a.locked
}

// Entry returns the logged movement for tx, if one exists.
func (a *Account) Entry(tx TransactionID) (Entry, bool) {
	entry, ok := a.entries[tx]
	return entry, ok
}

// EntryCount returns the number of logged movements.
func (a *Account) EntryCount() int {
	return len(a.entries)
}

// apply runs one transaction through the state machine. A locked account
// accepts nothing, unconditionally. Every ineligible case below is a silent
// no-op per the replay contract.
func (a *Account) apply(tx TransactionID, t Transaction) {
	if a.locked {
		return
	}

	switch t.Kind {
	case KindDeposit:
		a.entries[tx] = Entry{Kind: KindDeposit, Amount: t.Amount, State: StateResolved}
		a.available = a.available.Add(t.Amount)

	case KindWithdrawal:
		// Insufficient funds drops the withdrawal without logging it.
		if a.available.LessThan(t.Amount) {
			return
		}

		a.entries[tx] = Entry{Kind: KindWithdrawal, Amount: t.Amount, State: StateResolved}
		a.available = a.available.Sub(t.Amount)

	case KindDispute:
		entry, ok := a.entries[tx]
		if !ok || entry.State != StateResolved {
			return
		}

		entry.State = StateDisputed
		a.entries[tx] = entry
		a.held = a.held.Add(entry.Amount)

		// A disputed deposit is quarantined out of available; a disputed
		// withdrawal's funds already left the account, so held tracks the
		// liability without re-crediting availability.
		if entry.Kind == KindDeposit {
			a.available = a.available.Sub(entry.Amount)
		}

	case KindResolve:
		entry, ok := a.entries[tx]
		if !ok || entry.State != StateDisputed {
			return
		}

		entry.State = StateResolved
		a.entries[tx] = entry
		a.held = a.held.Sub(entry.Amount)

		if entry.Kind == KindDeposit {
			a.available = a.available.Add(entry.Amount)
		}

	case KindChargeback:
		entry, ok := a.entries[tx]
		if !ok || entry.State != StateDisputed {
			return
		}

		entry.State = StateChargedBack
		a.entries[tx] = entry
		a.held = a.held.Sub(entry.Amount)
		a.locked = true
	}
}
