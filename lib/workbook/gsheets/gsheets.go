package gsheets

import (
	"context"
	"fmt"
	"raidchampions/lib/telemetry"
	"raidchampions/lib/workbook"

	"go.opentelemetry.io/otel/codes"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var tracer = telemetry.Tracer("raidchampions.lib.workbook.gsheets")

// Spreadsheet is a workbook backend backed by an existing Google
// spreadsheet, it creates the worksheets it needs on first use.
type Spreadsheet struct {
	svc *sheets.Service
	id  string
}

type Options struct {
	SpreadsheetId string
	// path to a service account json key
	CredentialsFile string
	// optional, overrides the default client options (used by tests)
	ClientOptions []option.ClientOption
}

func NewSpreadsheet(ctx context.Context, opts Options) (Spreadsheet, error) {
	if opts.SpreadsheetId == "" {
		return Spreadsheet{}, fmt.Errorf("a spreadsheet id was not specified")
	}

	clientOpts := opts.ClientOptions
	if clientOpts == nil {
		clientOpts = []option.ClientOption{
			option.WithCredentialsFile(opts.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope),
		}
	}
	svc, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return Spreadsheet{}, err
	}
	return Spreadsheet{svc: svc, id: opts.SpreadsheetId}, nil
}

// New returns a workbook syncing to the spreadsheet.
func New(ctx context.Context, opts Options) (*workbook.Workbook, error) {
	s, err := NewSpreadsheet(ctx, opts)
	if err != nil {
		return nil, err
	}
	return workbook.New(fmt.Sprintf("gsheets:%s", opts.SpreadsheetId), s), nil
}

// ensureSheets adds any missing worksheet along with its header row.
func (s Spreadsheet) ensureSheets(ctx context.Context) error {
	ss, err := s.svc.Spreadsheets.Get(s.id).Context(ctx).Do()
	if err != nil {
		return err
	}
	existing := map[string]bool{}
	for _, sheet := range ss.Sheets {
		existing[sheet.Properties.Title] = true
	}

	headers := []struct {
		title  string
		header []string
	}{
		{title: workbook.ChampionsSheet, header: workbook.ChampionsHeader},
		{title: workbook.RatingsSheet, header: workbook.RatingsHeader},
	}
	for _, h := range headers {
		if existing[h.title] {
			continue
		}
		_, err := s.svc.Spreadsheets.BatchUpdate(s.id, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: h.title},
				},
			}},
		}).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("add sheet %s: %w", h.title, err)
		}
		err = s.update(ctx, h.title, [][]any{workbook.HeaderRow(h.header)})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s Spreadsheet) read(ctx context.Context, title string) ([][]string, error) {
	res, err := s.svc.Spreadsheets.Values.Get(s.id, title).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", title, err)
	}
	grid := make([][]string, len(res.Values))
	for i, row := range res.Values {
		grid[i] = make([]string, len(row))
		for j, v := range row {
			grid[i][j] = fmt.Sprint(v)
		}
	}
	return grid, nil
}

func (s Spreadsheet) update(ctx context.Context, title string, grid [][]any) error {
	_, err := s.svc.Spreadsheets.Values.Update(s.id, title, &sheets.ValueRange{
		Values: grid,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update sheet %s: %w", title, err)
	}
	return nil
}

func (s Spreadsheet) Read(ctx context.Context) (workbook.Book, error) {
	ctx, span := tracer.Start(ctx, "Read")
	defer span.End()

	err := s.ensureSheets(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to prepare spreadsheet")
		return workbook.Book{}, err
	}
	champions, err := s.read(ctx, workbook.ChampionsSheet)
	if err != nil {
		return workbook.Book{}, err
	}
	ratings, err := s.read(ctx, workbook.RatingsSheet)
	if err != nil {
		return workbook.Book{}, err
	}
	return workbook.FromGrids(champions, ratings)
}

// Write clears both worksheets and rewrites them.
func (s Spreadsheet) Write(ctx context.Context, book workbook.Book) error {
	ctx, span := tracer.Start(ctx, "Write")
	defer span.End()

	err := s.ensureSheets(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to prepare spreadsheet")
		return err
	}

	grids := []struct {
		title string
		grid  [][]any
	}{
		{title: workbook.ChampionsSheet, grid: book.ChampionsGrid()},
		{title: workbook.RatingsSheet, grid: book.RatingsGrid()},
	}
	for _, g := range grids {
		_, err := s.svc.Spreadsheets.Values.Clear(s.id, g.title, &sheets.ClearValuesRequest{}).Context(ctx).Do()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to clear sheet")
			return fmt.Errorf("clear sheet %s: %w", g.title, err)
		}
		err = s.update(ctx, g.title, g.grid)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to update sheet")
			return err
		}
	}
	return nil
}
