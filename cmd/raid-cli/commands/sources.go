package commands

import (
	"context"
	"fmt"
	"raidchampions/lib/champion"
	"raidchampions/lib/championstore"
	"raidchampions/lib/championstore/db"
	"raidchampions/lib/pagecache"
	"raidchampions/lib/restyutil"
	"raidchampions/lib/scrapers/hellhades"
	"raidchampions/lib/sqliteutil"
	"raidchampions/lib/workbook"
	"raidchampions/lib/workbook/gsheets"
	"time"
)

// recordSource is anything that can list the champions it stores.
type recordSource interface {
	Names(ctx context.Context) ([]string, error)
	Records(ctx context.Context) ([]champion.Record, error)
}

func openStore() (championstore.Store, func(), error) {
	database, err := config.Database.OpenDB()
	if err != nil {
		return championstore.Store{}, nil, fmt.Errorf("open database: %w", err)
	}
	err = sqliteutil.Migrate(database, db.Schema)
	if err != nil {
		database.Close()
		return championstore.Store{}, nil, err
	}
	return championstore.NewStore(database), func() { database.Close() }, nil
}

func openExcel() (*workbook.Workbook, error) {
	if config.Excel.Path == "" {
		return nil, fmt.Errorf("no excel workbook configured (excel.path)")
	}
	return workbook.NewExcel(config.Excel.Path), nil
}

func openSheets(ctx context.Context) (*workbook.Workbook, error) {
	if config.GoogleSheets.SpreadsheetId == "" {
		return nil, fmt.Errorf("no google spreadsheet configured (google_sheets.spreadsheet_id)")
	}
	return gsheets.New(ctx, gsheets.Options{
		SpreadsheetId:   config.GoogleSheets.SpreadsheetId,
		CredentialsFile: config.GoogleSheets.CredentialsFile,
	})
}

// openSource opens one of the "db", "excel" or "sheets" backends.
func openSource(ctx context.Context, name string) (recordSource, func(), error) {
	switch name {
	case "db":
		store, closer, err := openStore()
		if err != nil {
			return nil, nil, err
		}
		return store, closer, nil
	case "excel":
		book, err := openExcel()
		return book, func() {}, err
	case "sheets":
		book, err := openSheets(ctx)
		return book, func() {}, err
	}
	return nil, nil, fmt.Errorf("unknown source '%s' (expected db, excel or sheets)", name)
}

func openPageSource(ctx context.Context) (hellhades.PageSource, func(), error) {
	if config.Scrape.PagesDir != "" {
		return hellhades.DirSource{Dir: config.Scrape.PagesDir}, func() {}, nil
	}

	lifetime := time.Duration(config.Cache.LifetimeMinutes) * time.Minute
	var cache pagecache.Cache = pagecache.NewMemory(lifetime)
	closer := func() {}
	if config.Cache.RedisUrl != "" {
		redis, err := pagecache.NewRedis(ctx, config.Cache.RedisUrl, lifetime)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to page cache: %w", err)
		}
		cache = redis
		closer = func() { redis.Close() }
	}

	opts := hellhades.ClientOptions{
		BaseUrl: config.Scrape.BaseUrl,
		Timeout: time.Duration(config.Scrape.TimeoutSecs) * time.Second,
		Cache:   cache,
	}
	if config.Scrape.ArchiveDir != "" {
		archive, err := restyutil.NewFilesystemOutput(config.Scrape.ArchiveDir)
		if err != nil {
			closer()
			return nil, nil, fmt.Errorf("create page archive: %w", err)
		}
		opts.Archive = archive
	}

	client := hellhades.NewClient(opts)
	return client, closer, nil
}
