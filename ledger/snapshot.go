package ledger

import (
	"github.com/shopspring/decimal"
)

// snapshotPlaces is the decimal precision of reported balances.
const snapshotPlaces = 4

// Snapshot is the output-boundary view of an account: balances rounded to four
// decimal places, with total derived from the rounded parts so the reported
// columns always add up.
type Snapshot struct {
	Client    ClientID        `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}

// Snapshot builds the reporting view of the account for the given client id.
func (a *Account) Snapshot(client ClientID) Snapshot {
	available := a.available.Round(snapshotPlaces)
	held := a.held.Round(snapshotPlaces)

	return Snapshot{
		Client:    client,
		Available: available,
		Held:      held,
		Total:     available.Add(held),
		Locked:    a.locked,
	}
}
