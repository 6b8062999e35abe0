package commands

import (
	"raidchampions/lib/reports"
	"raidchampions/lib/sqliteutil"
)

type ScrapeConfig struct {
	BaseUrl string `json:"base_url" validate:"omitempty,url"`
	// pre-rendered pages, used instead of fetching when set
	PagesDir string `json:"pages_dir"`
	// fetched pages are also saved here, readable later through pages_dir
	ArchiveDir   string  `json:"archive_dir"`
	DelaySeconds float64 `json:"delay_seconds" validate:"gte=0"`
	FactionWars  bool    `json:"faction_wars"`
	TimeoutSecs  int     `json:"timeout_seconds" validate:"gte=0"`
}

type CacheConfig struct {
	RedisUrl        string `json:"redis_url" env:"REDIS_URL" validate:"omitempty,url"`
	LifetimeMinutes int    `json:"lifetime_minutes" validate:"gte=0"`
}

type ExcelConfig struct {
	Path string `json:"path" env:"EXCEL_PATH"`
}

type GoogleSheetsConfig struct {
	SpreadsheetId   string `json:"spreadsheet_id" env:"GS_SPREADSHEET"`
	CredentialsFile string `json:"credentials_file" env:"GOOGLE_SA_CREDS" validate:"required_with=SpreadsheetId"`
}

type Config struct {
	Database     sqliteutil.Config  `json:"database"`
	Excel        ExcelConfig        `json:"excel"`
	GoogleSheets GoogleSheetsConfig `json:"google_sheets"`
	Cache        CacheConfig        `json:"cache"`
	Scrape       ScrapeConfig       `json:"scrape"`
	Smtp         reports.SmtpConfig `json:"smtp"`
}

func defaultConfig() Config {
	return Config{
		Database: sqliteutil.Config{File: "champions.db"},
		Scrape: ScrapeConfig{
			DelaySeconds: 1,
			TimeoutSecs:  30,
		},
		Cache: CacheConfig{LifetimeMinutes: 60},
	}
}
