package ledger

import (
	"github.com/shopspring/decimal"
)

// ClientID identifies a client account.
type ClientID uint16

// TransactionID identifies a transaction. Ids are globally unique across
// money-movement transactions; dispute, resolve, and chargeback reuse the id
// of the movement they reference.
type TransactionID uint32

// Kind classifies a replay transaction.
type Kind string

const (
	// KindDeposit credits the available balance.
	KindDeposit Kind = "deposit"
	// KindWithdrawal debits the available balance.
	KindWithdrawal Kind = "withdrawal"
	// KindDispute puts a prior movement's amount on hold.
	KindDispute Kind = "dispute"
	// KindResolve releases a disputed movement back to resolved.
	KindResolve Kind = "resolve"
	// KindChargeback reverses a disputed movement and locks the account.
	KindChargeback Kind = "chargeback"
)

// Transaction is one replay input record. Amount is meaningful only for the
// money-movement kinds; the reference kinds carry the id of the movement they
// act on in the Apply call itself.
type Transaction struct {
	Kind   Kind
	Amount decimal.Decimal
}

// Deposit builds a deposit movement.
func Deposit(amount decimal.Decimal) Transaction {
	return Transaction{Kind: KindDeposit, Amount: amount}
}

// Withdrawal builds a withdrawal movement.
func Withdrawal(amount decimal.Decimal) Transaction {
	return Transaction{Kind: KindWithdrawal, Amount: amount}
}

// Dispute builds a dispute referencing a prior movement.
func Dispute() Transaction {
	return Transaction{Kind: KindDispute}
}

// Resolve builds a resolve referencing a disputed movement.
func Resolve() Transaction {
	return Transaction{Kind: KindResolve}
}

// Chargeback builds a chargeback referencing a disputed movement.
func Chargeback() Transaction {
	return Transaction{Kind: KindChargeback}
}

// isMovement reports whether the transaction moves money and is therefore
// subject to the global id uniqueness check.
func (t Transaction) isMovement() bool {
	return t.Kind == KindDeposit || t.Kind == KindWithdrawal
}

// EntryState is the dispute lifecycle state of a logged movement.
//
// Transitions:
//
//	Resolved → Disputed → Resolved | ChargedBack
//
// ChargedBack is terminal; no transition leaves it.
type EntryState string

const (
	// StateResolved marks a movement as settled and eligible for dispute.
	StateResolved EntryState = "RESOLVED"
	// StateDisputed marks a movement with its amount held pending resolution.
	StateDisputed EntryState = "DISPUTED"
	// StateChargedBack marks a reversed movement; terminal.
	StateChargedBack EntryState = "CHARGED_BACK"
)

// Entry is a logged money movement with its current dispute state. One entry
// exists per movement id, created when the movement is applied and mutated only
// by subsequent dispute, resolve, or chargeback transactions referencing it.
type Entry struct {
	Kind   Kind
	Amount decimal.Decimal
	State  EntryState
}
