package workbook

import (
	"context"
	"fmt"
	"raidchampions/lib/champion"
	"raidchampions/lib/telemetry"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("raidchampions.lib.workbook")

// Backend loads and stores a whole book, Write replaces everything that
// was there before.
type Backend interface {
	Read(ctx context.Context) (Book, error)
	Write(ctx context.Context, book Book) error
}

// Workbook keeps a spreadsheet backend in sync with scraped champions.
type Workbook struct {
	name    string
	backend Backend
	mutex   sync.Mutex
}

func New(name string, backend Backend) *Workbook {
	return &Workbook{name: name, backend: backend}
}

func (w *Workbook) Name() string {
	return w.name
}

// Save upserts a champion into the book and writes it back.
func (w *Workbook) Save(ctx context.Context, record champion.Record) error {
	ctx, span := tracer.Start(ctx, "Save")
	defer span.End()
	span.SetAttributes(
		attribute.String("workbook", w.name),
		attribute.String("champion.name", record.Name),
	)

	w.mutex.Lock()
	defer w.mutex.Unlock()

	book, err := w.backend.Read(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read workbook")
		return fmt.Errorf("read %s: %w", w.name, err)
	}
	id := book.Upsert(record)
	span.SetAttributes(attribute.Int("champion.id", id))

	err = w.backend.Write(ctx, book)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write workbook")
		return fmt.Errorf("write %s: %w", w.name, err)
	}
	return nil
}

func (w *Workbook) Names(ctx context.Context) ([]string, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	book, err := w.backend.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", w.name, err)
	}
	return book.Names(), nil
}

func (w *Workbook) Records(ctx context.Context) ([]champion.Record, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	book, err := w.backend.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", w.name, err)
	}
	return book.Records(), nil
}
