package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, arg := range []string{"0", "-3", "abc", ""} {
		_, err := parseID(arg)
		assert.Error(t, err, arg)
	}
}

func TestReadPayload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ai.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"globalScore": 80, "details": [{"criterionId": 3, "score": 90}]}`), 0o644))

	payload, err := readPayload(path)
	require.NoError(t, err)
	assert.Equal(t, 80.0, payload.GlobalScore)
	require.Len(t, payload.Details, 1)
	assert.Equal(t, int64(3), payload.Details[0].CriterionID)

	_, err = readPayload(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to open payload")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o644))
	_, err = readPayload(bad)
	assert.ErrorContains(t, err, "failed to decode payload")
}

func TestSQLiteFilePath(t *testing.T) {
	saved := *cfg
	t.Cleanup(func() { *cfg = saved })

	cfg.Backend = schema.SQLiteBackend
	cfg.DBConnect = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", sqliteFilePath())

	cfg.DBConnect = ""
	assert.Equal(t, contract.GetDBFilePath(), sqliteFilePath())
}
