package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/LerianStudio/payments-replay/ledger"
)

// WriteSnapshots encodes one snapshot row per account. Row order follows the
// sequence and is therefore unspecified.
func WriteSnapshots(w io.Writer, accounts iter.Seq2[ledger.ClientID, *ledger.Account]) error {
	writer := csv.NewWriter(w)

	header := []string{columnClient, "available", "held", "total", "locked"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for client, account := range accounts {
		snapshot := account.Snapshot(client)

		row := []string{
			strconv.FormatUint(uint64(snapshot.Client), 10),
			snapshot.Available.String(),
			snapshot.Held.String(),
			snapshot.Total.String(),
			strconv.FormatBool(snapshot.Locked),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write snapshot for client %d: %w", client, err)
		}
	}

	writer.Flush()

	return writer.Error()
}
