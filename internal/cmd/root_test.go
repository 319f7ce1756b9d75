package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/payments-replay/internal/zlog"
)

func TestReplayEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "transactions.csv")
	outputPath := filepath.Join(dir, "accounts.csv")

	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit, 1, 1, 1.0",
		"deposit, 2, 2, 2.0",
		"deposit, 1, 3, 2.0",
		"withdrawal, 1, 4, 1.5",
		"withdrawal, 2, 5, 3.0",
	}, "\n")
	require.NoError(t, os.WriteFile(inputPath, []byte(input), 0o644))

	var table strings.Builder
	require.NoError(t, replay(zlog.Nop(), inputPath, outputPath, &table))

	written, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, table.String(), string(written),
		"stdout table and output file must match")

	lines := strings.Split(strings.TrimSpace(string(written)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "client,available,held,total,locked", lines[0])

	rows := map[string]bool{lines[1]: true, lines[2]: true}
	assert.True(t, rows["1,1.5,0,1.5,false"], "rows: %v", rows)
	assert.True(t, rows["2,2,0,2,false"], "rows: %v", rows)
}

func TestReplayMissingInputFails(t *testing.T) {
	dir := t.TempDir()

	err := replay(zlog.Nop(), filepath.Join(dir, "missing.csv"), filepath.Join(dir, "out.csv"), io.Discard)
	require.Error(t, err)
}

func TestReplayMalformedInputFails(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "transactions.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte("type, client, tx, amount\ndeposit, nope, 1, 1.0"), 0o644))

	err := replay(zlog.Nop(), inputPath, filepath.Join(dir, "out.csv"), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid client id")
}
