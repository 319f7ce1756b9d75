package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Account creation
// ---------------------------------------------------------------------------

func TestDepositCreatesAccount(t *testing.T) {
	t.Parallel()

	l := replaySteps([]step{
		{1, 1, Deposit(dec(100))},
		{2, 2, Deposit(dec(1000))},
	})

	require.Equal(t, 2, l.Len())

	first := requireBalances(t, l, 1, 100, 0, false)
	entry, ok := first.Entry(1)
	require.True(t, ok)
	assert.Equal(t, Entry{Kind: KindDeposit, Amount: dec(100), State: StateResolved}, entry)

	requireBalances(t, l, 2, 1000, 0, false)
}

func TestOnlyDepositCreatesAccount(t *testing.T) {
	tests := []struct {
		name string
		t    Transaction
	}{
		{name: "withdrawal", t: Withdrawal(dec(100))},
		{name: "dispute", t: Dispute()},
		{name: "resolve", t: Resolve()},
		{name: "chargeback", t: Chargeback()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New()
			l.Apply(1, 1, tt.t)

			_, ok := l.Account(1)
			assert.False(t, ok)
			assert.Equal(t, 0, l.Len())
		})
	}
}

// ---------------------------------------------------------------------------
// Global movement-id dedup
// ---------------------------------------------------------------------------

func TestDuplicateMovementIDsAreIgnored(t *testing.T) {
	t.Parallel()

	l := replaySteps([]step{
		{1, 1, Deposit(dec(100))},
		{1, 1, Deposit(dec(100))},
		{1, 1, Deposit(dec(100))},
		{1, 1, Withdrawal(dec(400))},
	})

	account := requireBalances(t, l, 1, 100, 0, false)
	assert.Equal(t, 1, account.EntryCount())
}

func TestMovementIDsAreUniqueAcrossClients(t *testing.T) {
	t.Parallel()

	l := replaySteps([]step{
		{1, 1, Deposit(dec(100))},
		{2, 1, Deposit(dec(500))},
	})

	requireBalances(t, l, 1, 100, 0, false)

	// Client 2's deposit reused id 1, so no account was ever created.
	_, ok := l.Account(2)
	assert.False(t, ok)
	assert.Equal(t, 1, l.Len())
}

func TestDroppedWithdrawalStillConsumesItsID(t *testing.T) {
	t.Parallel()

	l := replaySteps([]step{
		{1, 1, Deposit(dec(100))},
		{1, 2, Withdrawal(dec(500))},
		// Id 2 was consumed by the dropped withdrawal; this deposit is ignored.
		{1, 2, Deposit(dec(500))},
	})

	account := requireBalances(t, l, 1, 100, 0, false)
	assert.Equal(t, 1, account.EntryCount())
}

func TestReferenceKindsAreNotDeduplicated(t *testing.T) {
	t.Parallel()

	l := replaySteps([]step{
		{1, 1, Deposit(dec(100))},
		{1, 1, Dispute()},
		{1, 1, Resolve()},
		// Reference kinds reuse movement ids freely: a second full cycle works.
		{1, 1, Dispute()},
		{1, 1, Resolve()},
	})

	requireBalances(t, l, 1, 100, 0, false)
}

func TestDisputeForUnknownTransactionIsNoOp(t *testing.T) {
	t.Parallel()

	l := replaySteps([]step{
		{1, 1, Deposit(dec(100))},
		{1, 99, Dispute()},
	})

	requireBalances(t, l, 1, 100, 0, false)
}

// ---------------------------------------------------------------------------
// Isolation and iteration
// ---------------------------------------------------------------------------

func TestAccountsAreIsolated(t *testing.T) {
	t.Parallel()

	l := replaySteps([]step{
		{1, 1, Deposit(dec(100))},
		{2, 2, Deposit(dec(200))},
		{1, 1, Dispute()},
		{1, 1, Chargeback()},
		{2, 3, Withdrawal(dec(50))},
	})

	requireBalances(t, l, 1, 0, 0, true)
	requireBalances(t, l, 2, 150, 0, false)
}

func TestAccountsIterationIsRestartable(t *testing.T) {
	t.Parallel()

	l := replaySteps([]step{
		{1, 1, Deposit(dec(100))},
		{2, 2, Deposit(dec(200))},
		{3, 3, Deposit(dec(300))},
	})

	seq := l.Accounts()

	for range 2 {
		seen := make(map[ClientID]bool)
		for client, account := range seq {
			require.NotNil(t, account)
			seen[client] = true
		}

		assert.Len(t, seen, 3)
	}
}

func TestAccountsIterationStopsEarly(t *testing.T) {
	t.Parallel()

	l := replaySteps([]step{
		{1, 1, Deposit(dec(100))},
		{2, 2, Deposit(dec(200))},
	})

	count := 0
	for range l.Accounts() {
		count++
		break
	}

	assert.Equal(t, 1, count)
}
