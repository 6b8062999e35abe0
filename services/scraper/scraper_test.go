package scraper

import (
	"context"
	"errors"
	"raidchampions/lib/champion"
	"raidchampions/lib/championstore"
	"raidchampions/lib/championstore/db"
	"raidchampions/lib/scrapers/hellhades"
	"raidchampions/lib/testutil"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSource = hellhades.DirSource{Dir: "../../lib/scrapers/hellhades/testdata"}

type memorySink struct {
	mutex   sync.Mutex
	records []champion.Record
	err     error
}

func (s *memorySink) Name() string { return "memory" }

func (s *memorySink) Save(ctx context.Context, record champion.Record) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	logs := testutil.RecordLogs(t)

	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "scraper",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := championstore.NewStore(res.DB)

	sink := &memorySink{}
	service := NewService(testSource, []Sink{sink, store}, Options{FactionWars: true})

	summary, err := service.Run(ctx, []string{"Ninja", "Kael", " ninja", ""})
	require.NoError(t, err)
	require.Len(t, summary.RunId, 8)

	require.Equal(t, []string{"Ninja"}, summary.Succeeded)
	require.Len(t, summary.Failed, 1)
	require.Equal(t, "Kael", summary.Failed[0].Name)
	require.True(t, errors.Is(summary.Failed[0].Err, hellhades.ErrPageUnavailable))
	require.Equal(t, []string{"failed to scrape champion"}, logs.Warnings())

	require.Len(t, sink.records, 1)
	require.Equal(t, "Ninja", sink.records[0].Name)

	stored, err := store.Get(ctx, "Ninja")
	require.NoError(t, err)
	value, ok := stored.Lookup("Faction Wars", "Crowd Control")
	require.True(t, ok)
	require.Equal(t, 5.0, value)

	table := summary.Table()
	require.Len(t, table.Rows, 2)
	require.Equal(t, []string{"Ninja", "OK", ""}, table.Rows[0])
	require.Equal(t, "FAILED", table.Rows[1][1])
}

func TestRunSinkFailure(t *testing.T) {
	ctx := context.Background()
	testutil.RecordLogs(t)

	good := &memorySink{}
	bad := &memorySink{err: errors.New("disk full")}
	service := NewService(testSource, []Sink{bad, good}, Options{})

	summary, err := service.Run(ctx, []string{"Ninja"})
	require.NoError(t, err)
	require.Empty(t, summary.Succeeded)
	require.Len(t, summary.Failed, 1)
	require.Contains(t, summary.Failed[0].Err.Error(), "memory: disk full")

	// the other sinks still receive the champion
	require.Len(t, good.records, 1)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	testutil.RecordLogs(t)

	sink := &memorySink{}
	service := NewService(testSource, []Sink{sink}, Options{Delay: time.Hour})

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	summary, err := service.Run(ctx, []string{"Ninja", "Arbiter"})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, []string{"Ninja"}, summary.Succeeded)
	require.Len(t, sink.records, 1)
}

func TestScrape(t *testing.T) {
	ctx := context.Background()
	testutil.RecordLogs(t)

	service := NewService(testSource, nil, Options{})
	c, err := service.Scrape(ctx, "ninja")
	require.NoError(t, err)
	require.Equal(t, "Ninja", c.Name)
	require.Nil(t, c.Ratings.FactionWars)
}
