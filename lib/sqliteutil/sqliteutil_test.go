package sqliteutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	db, err := Config{File: path}.OpenDB()
	require.NoError(t, err)

	require.NoError(t, Migrate(db, `create table if not exists kv (k text primary key, v text);`))
	_, err = db.Exec("insert into kv(k, v) values ('a', 'b')")
	require.NoError(t, err)

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	require.Equal(t, "wal", mode)

	// reopening keeps the data
	require.NoError(t, db.Close())
	db, err = OpenFile(path)
	require.NoError(t, err)
	defer db.Close()
	var v string
	require.NoError(t, db.QueryRow("select v from kv where k = 'a'").Scan(&v))
	require.Equal(t, "b", v)
}

func TestOpenDBWithoutPath(t *testing.T) {
	_, err := Config{}.OpenDB()
	require.Error(t, err)
}
