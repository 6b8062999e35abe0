package sqliteutil

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Config selects either a local sqlite file or a remote libsql database,
// Url wins when both are given.
type Config struct {
	File      string `json:"file"`
	Url       string `json:"url" env:"LIBSQL_URL"`
	AuthToken string `json:"auth_token" env:"LIBSQL_AUTH_TOKEN"`
}

func (config Config) OpenDB() (*sql.DB, error) {
	if config.Url != "" {
		return openRemote(config.Url, config.AuthToken)
	}
	if config.File == "" {
		return nil, fmt.Errorf("a path was not specified")
	}
	return OpenFile(config.File)
}

func openRemote(rawUrl, authToken string) (*sql.DB, error) {
	dburl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, fmt.Errorf("parse libsql url: %w", err)
	}
	if authToken != "" {
		query := dburl.Query()
		query.Set("authToken", authToken)
		dburl.RawQuery = query.Encode()
	}
	return sql.Open("libsql", dburl.String())
}

// OpenFile opens (and creates if needed) a sqlite database file in WAL
// mode.
func OpenFile(path string) (*sql.DB, error) {
	dbpath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	err = os.MkdirAll(filepath.Dir(dbpath), 0755)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbpath)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate runs a schema made of idempotent statements.
func Migrate(db *sql.DB, schema string) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
