package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spicery/treepath/pkg/common"
	"github.com/spicery/treepath/pkg/store"
)

func TestRunReturnsErrors(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "trees.db")
	report := common.NewReporterTo("treepath-store", io.Discard)

	cmd := &command{loadName: "missing", format: "JSON"}
	err := cmd.run(dbFile, report)
	assert.ErrorIs(t, err, store.ErrTreeNotFound)

	cmd = &command{saveName: "t", inputFile: filepath.Join(dir, "absent.json"), inputFormat: "JSON"}
	err = cmd.run(dbFile, report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")

	cmd = &command{loadName: "t", pathText: "x/y", format: "JSON"}
	assert.Error(t, cmd.run(dbFile, report))
}

func TestRunSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "trees.db")
	report := common.NewReporterTo("treepath-store", io.Discard)

	input := filepath.Join(dir, "tree.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"name":"R","children":[{"name":"A"},{"name":"B","options":{"value":"2"}}]}`), 0o644))

	save := &command{saveName: "t", inputFile: input, inputFormat: "JSON"}
	require.NoError(t, save.run(dbFile, report))

	output := filepath.Join(dir, "out.txt")
	load := &command{loadName: "t", pathText: "1", outputFile: output, format: "PATHS"}
	require.NoError(t, load.run(dbFile, report))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "/\tB: 2\n", string(got))
}
