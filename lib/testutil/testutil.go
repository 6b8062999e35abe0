package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"
	"raidchampions/lib/telemetry"
	"strings"
	"sync"
	"testing"

	_ "modernc.org/sqlite"
)

type ServiceParams struct {
	Name string
	// if unspecified, it will skip setting up a db
	DbSchema string
}

type ServiceResult struct {
	DB *sql.DB
}

func SetupService(t testing.TB, params ServiceParams) (ServiceResult, func()) {
	cleanup := telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", params.Name))

	if params.DbSchema == "" {
		return ServiceResult{}, cleanup
	}

	sqlite, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// every connection to :memory: is its own database
	sqlite.SetMaxOpenConns(1)
	_, err = sqlite.Exec(params.DbSchema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		t.Fatal(err)
	}

	return ServiceResult{DB: sqlite}, func() {
		sqlite.Close()
		cleanup()
	}
}

// LogRecorder is a slog.Handler that keeps every record it receives.
type LogRecorder struct {
	mutex   sync.Mutex
	records []slog.Record
}

func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *LogRecorder) Handle(_ context.Context, record slog.Record) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.records = append(r.records, record.Clone())
	return nil
}

func (r *LogRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *LogRecorder) WithGroup(string) slog.Handler      { return r }

// Messages returns the messages logged at exactly the given level.
func (r *LogRecorder) Messages(level slog.Level) []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var out []string
	for _, rec := range r.records {
		if rec.Level == level {
			out = append(out, rec.Message)
		}
	}
	return out
}

func (r *LogRecorder) Warnings() []string {
	return r.Messages(slog.LevelWarn)
}

func (r *LogRecorder) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.records = nil
}

// RecordLogs installs a LogRecorder as the default slog logger for the
// duration of the test.
func RecordLogs(t testing.TB) *LogRecorder {
	previous := slog.Default()
	recorder := &LogRecorder{}
	slog.SetDefault(slog.New(recorder))
	t.Cleanup(func() {
		slog.SetDefault(previous)
	})
	return recorder
}

// RandomString generates a random lowercase string given the pseudo random source.
func RandomString(rndm *rand.Rand, length int) string {
	str := make([]rune, length)
	for i := range length {
		str[i] = 'a' + rune(rndm.Intn(26))
	}
	return string(str)
}
