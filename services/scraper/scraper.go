package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"raidchampions/lib/champion"
	"raidchampions/lib/reports"
	"raidchampions/lib/scrapers/hellhades"
	"raidchampions/lib/telemetry"
	"raidchampions/lib/textutil"
	"strings"
	"time"

	"github.com/mazen160/go-random"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var tracer = telemetry.Tracer("raidchampions.services.scraper")
var meter = telemetry.Meter("raidchampions.services.scraper")
var championCounter, _ = meter.Int64Counter(
	"scrape.champions",
	metric.WithDescription("champions processed by the scrape loop"),
)

// Sink receives every champion that was scraped successfully.
type Sink interface {
	Name() string
	Save(ctx context.Context, record champion.Record) error
}

type Options struct {
	// pause between two champion pages
	Delay       time.Duration
	FactionWars bool
}

type Service struct {
	source hellhades.PageSource
	sinks  []Sink
	opts   Options
}

func NewService(source hellhades.PageSource, sinks []Sink, opts Options) Service {
	return Service{source: source, sinks: sinks, opts: opts}
}

// Scrape fetches and extracts a single champion.
func (s Service) Scrape(ctx context.Context, name string) (champion.Champion, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()
	span.SetAttributes(attribute.String("champion.name", name))

	page, err := s.source.Page(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return champion.Champion{}, err
	}
	c, err := hellhades.Load(ctx, page, hellhades.WithFactionWars(s.opts.FactionWars))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract champion")
		return champion.Champion{}, err
	}
	return c, nil
}

func (s Service) save(ctx context.Context, record champion.Record) error {
	var errlist []error
	for _, sink := range s.sinks {
		err := sink.Save(ctx, record)
		if err != nil {
			errlist = append(errlist, fmt.Errorf("%s: %w", sink.Name(), err))
		}
	}
	return errors.Join(errlist...)
}

type Failure struct {
	Name string
	Err  error
}

type Summary struct {
	RunId     string
	Started   time.Time
	Finished  time.Time
	Succeeded []string
	Failed    []Failure
}

// Table renders the summary as a report, one row per champion.
func (s Summary) Table() reports.Table {
	table := reports.Table{
		Title:  fmt.Sprintf("Scrape %s: %d ok, %d failed", s.RunId, len(s.Succeeded), len(s.Failed)),
		Header: []string{"Champion", "Status", "Error"},
	}
	for _, name := range s.Succeeded {
		table.Rows = append(table.Rows, []string{name, "OK", ""})
	}
	for _, f := range s.Failed {
		table.Rows = append(table.Rows, []string{f.Name, "FAILED", f.Err.Error()})
	}
	return table
}

func newRunId() string {
	id, err := random.String(8)
	if err != nil {
		return fmt.Sprintf("%d", time.Now().Unix())
	}
	return strings.ToLower(id)
}

// Run scrapes the champions one after another, waiting Delay between two
// pages. A champion that cannot be fetched, extracted or saved is recorded
// as a failure and the loop moves on. The error is only set when ctx is
// cancelled, the summary then covers what was done until that point.
func (s Service) Run(ctx context.Context, names []string) (Summary, error) {
	summary := Summary{RunId: newRunId(), Started: time.Now()}

	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()
	span.SetAttributes(attribute.String("run_id", summary.RunId))

	names = lo.Filter(names, func(name string, _ int) bool {
		return strings.TrimSpace(name) != ""
	})
	names = lo.UniqBy(names, textutil.NormalizeName)
	span.SetAttributes(attribute.Int("champions", len(names)))

	logger := slog.Default().With("run_id", summary.RunId)
	logger.InfoContext(ctx, "starting scrape", "champions", len(names), "sinks", len(s.sinks))

	for i, name := range names {
		if i > 0 && s.opts.Delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(s.opts.Delay):
			}
		}
		if ctx.Err() != nil {
			summary.Finished = time.Now()
			span.SetStatus(codes.Error, "scrape cancelled")
			return summary, ctx.Err()
		}

		err := s.scrapeAndSave(ctx, name)
		if err != nil {
			logger.WarnContext(ctx, "failed to scrape champion", "name", name, "err", err)
			summary.Failed = append(summary.Failed, Failure{Name: name, Err: err})
			championCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "failed")))
			continue
		}
		logger.InfoContext(ctx, "scraped champion", "name", name, "progress", fmt.Sprintf("%d/%d", i+1, len(names)))
		summary.Succeeded = append(summary.Succeeded, name)
		championCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "ok")))
	}

	summary.Finished = time.Now()
	logger.InfoContext(
		ctx, "scrape finished",
		"ok", len(summary.Succeeded),
		"failed", len(summary.Failed),
		"duration", summary.Finished.Sub(summary.Started),
	)
	return summary, nil
}

func (s Service) scrapeAndSave(ctx context.Context, name string) error {
	c, err := s.Scrape(ctx, name)
	if err != nil {
		return err
	}
	return s.save(ctx, c.Record())
}
