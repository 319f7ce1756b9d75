package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/payments-replay/ledger"
)

const (
	columnType   = "type"
	columnClient = "client"
	columnTx     = "tx"
	columnAmount = "amount"
)

// Applier consumes decoded transactions; satisfied by *ledger.Ledger.
type Applier interface {
	Apply(client ledger.ClientID, tx ledger.TransactionID, t ledger.Transaction)
}

// Stats summarizes one replay pass over an input stream.
type Stats struct {
	Rows    int // data rows read, excluding the header
	Applied int // rows decoded and handed to the core
	Skipped int // rows dropped at the boundary
}

// columns maps the header names to field positions. The amount column is
// optional; without it every money movement is skipped for lack of an amount.
type columns struct {
	typ    int
	client int
	tx     int
	amount int // -1 when absent
}

// Replay decodes the transaction stream from r and applies each record to
// target in input order.
//
// Records are skipped, not failed, when the declared type is unrecognized,
// when a deposit or withdrawal is missing its amount, or when the amount is
// negative (the core assumes non-negative amounts, so the boundary enforces
// it). Unreadable syntax, a missing required column, or an unparseable field
// aborts with an error.
func Replay(r io.Reader, target Applier) (Stats, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return stats, nil
		}

		if err != nil {
			return stats, fmt.Errorf("failed to read record: %w", err)
		}

		stats.Rows++

		client, tx, transaction, ok, err := decodeRecord(cols, record)
		if err != nil {
			return stats, fmt.Errorf("record %d: %w", stats.Rows, err)
		}

		if !ok {
			stats.Skipped++
			continue
		}

		target.Apply(client, tx, transaction)
		stats.Applied++
	}
}

func mapColumns(header []string) (columns, error) {
	cols := columns{typ: -1, client: -1, tx: -1, amount: -1}

	for i, name := range header {
		switch strings.TrimSpace(name) {
		case columnType:
			cols.typ = i
		case columnClient:
			cols.client = i
		case columnTx:
			cols.tx = i
		case columnAmount:
			cols.amount = i
		}
	}

	if cols.typ < 0 || cols.client < 0 || cols.tx < 0 {
		return columns{}, fmt.Errorf("header must contain %q, %q, and %q columns",
			columnType, columnClient, columnTx)
	}

	return cols, nil
}

// decodeRecord converts one CSV record into a typed transaction. ok=false
// marks a record the boundary drops without failing the stream.
func decodeRecord(cols columns, record []string) (ledger.ClientID, ledger.TransactionID, ledger.Transaction, bool, error) {
	client, err := strconv.ParseUint(strings.TrimSpace(record[cols.client]), 10, 16)
	if err != nil {
		return 0, 0, ledger.Transaction{}, false, fmt.Errorf("invalid client id: %w", err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(record[cols.tx]), 10, 32)
	if err != nil {
		return 0, 0, ledger.Transaction{}, false, fmt.Errorf("invalid transaction id: %w", err)
	}

	amount, hasAmount, err := decodeAmount(cols, record)
	if err != nil {
		return 0, 0, ledger.Transaction{}, false, err
	}

	var transaction ledger.Transaction

	switch strings.TrimSpace(record[cols.typ]) {
	case string(ledger.KindDeposit):
		if !hasAmount {
			return 0, 0, ledger.Transaction{}, false, nil
		}

		transaction = ledger.Deposit(amount)
	case string(ledger.KindWithdrawal):
		if !hasAmount {
			return 0, 0, ledger.Transaction{}, false, nil
		}

		transaction = ledger.Withdrawal(amount)
	case string(ledger.KindDispute):
		transaction = ledger.Dispute()
	case string(ledger.KindResolve):
		transaction = ledger.Resolve()
	case string(ledger.KindChargeback):
		transaction = ledger.Chargeback()
	default:
		return 0, 0, ledger.Transaction{}, false, nil
	}

	return ledger.ClientID(client), ledger.TransactionID(tx), transaction, true, nil
}

// decodeAmount parses the optional amount field. A present but negative amount
// reports hasAmount=false so the record is dropped at the boundary.
func decodeAmount(cols columns, record []string) (decimal.Decimal, bool, error) {
	if cols.amount < 0 {
		return decimal.Zero, false, nil
	}

	raw := strings.TrimSpace(record[cols.amount])
	if raw == "" {
		return decimal.Zero, false, nil
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	if amount.IsNegative() {
		return decimal.Zero, false, nil
	}

	return amount, true, nil
}
