package championstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"raidchampions/lib/champion"
	"raidchampions/lib/championstore/db"
	"raidchampions/lib/telemetry"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("raidchampions.lib.championstore")

var ErrChampionNotFound = errors.New("champion not found")

type Store struct {
	db  *sql.DB
	qry *db.Queries
	now func() time.Time
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
		now: time.Now,
	}
}

func (s Store) Name() string {
	return "sqlite"
}

// Save writes the champion and replaces all of its ratings in a single
// transaction, saving the same record twice leaves the store unchanged.
func (s Store) Save(ctx context.Context, record champion.Record) error {
	ctx, span := tracer.Start(ctx, "Save")
	defer span.End()
	span.SetAttributes(attribute.String("champion.name", record.Name))

	err := s.save(ctx, record)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to save champion")
		return fmt.Errorf("save %s: %w", record.Name, err)
	}
	return nil
}

func (s Store) save(ctx context.Context, record champion.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	id, err := txqry.UpsertChampion(ctx, db.UpsertChampionParams{
		Name:      record.Name,
		Faction:   record.Faction,
		Affinity:  record.Affinity,
		Rarity:    record.Rarity,
		UpdatedAt: s.now().Unix(),
	})
	if err != nil {
		return err
	}

	err = txqry.DeleteChampionRatings(ctx, id)
	if err != nil {
		return err
	}
	for _, row := range record.Rows() {
		err = txqry.InsertRating(ctx, db.InsertRatingParams{
			ChampionID:  id,
			Category:    row.Category,
			Subcategory: row.Subcategory,
			Rating:      row.Rating,
		})
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Names returns every stored champion name in alphabetical order.
func (s Store) Names(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Names")
	defer span.End()

	names, err := s.qry.GetChampionNames(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read names")
		return nil, err
	}
	return names, nil
}

// Get returns the stored record for a champion, the name is matched case
// insensitively.
func (s Store) Get(ctx context.Context, name string) (champion.Record, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	row, err := s.qry.GetChampion(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return champion.Record{}, fmt.Errorf("%w: %s", ErrChampionNotFound, name)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read champion")
		return champion.Record{}, err
	}

	ratings, err := s.qry.GetChampionRatings(ctx, row.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read ratings")
		return champion.Record{}, err
	}
	rows := make([]champion.RatingRow, len(ratings))
	for i, r := range ratings {
		rows[i] = champion.RatingRow{Category: r.Category, Subcategory: r.Subcategory, Rating: r.Rating}
	}

	record := recordFromRow(row)
	record.Ratings = champion.EntriesFromRows(rows)
	return record, nil
}

// Records returns every stored champion ordered by name.
func (s Store) Records(ctx context.Context) ([]champion.Record, error) {
	ctx, span := tracer.Start(ctx, "Records")
	defer span.End()

	champions, err := s.qry.GetAllChampions(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read champions")
		return nil, err
	}
	ratings, err := s.qry.GetAllRatings(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read ratings")
		return nil, err
	}

	rowsByChampion := make(map[int64][]champion.RatingRow, len(champions))
	for _, r := range ratings {
		rowsByChampion[r.ID] = append(rowsByChampion[r.ID], champion.RatingRow{
			Category:    r.Category,
			Subcategory: r.Subcategory,
			Rating:      r.Rating,
		})
	}

	records := make([]champion.Record, len(champions))
	for i, c := range champions {
		records[i] = recordFromRow(c)
		records[i].Ratings = champion.EntriesFromRows(rowsByChampion[c.ID])
	}
	span.SetAttributes(attribute.Int("champions", len(records)))
	return records, nil
}

type Ranked struct {
	Name   string
	Rating float64
}

// Top returns the best rated champions for a category and subcategory, use
// champion.OverallCategory for the overall rating.
func (s Store) Top(ctx context.Context, category, subcategory string, limit int) ([]Ranked, error) {
	ctx, span := tracer.Start(ctx, "Top")
	defer span.End()

	rows, err := s.qry.GetTopRatings(ctx, db.GetTopRatingsParams{
		Category:    category,
		Subcategory: subcategory,
		Limit:       int64(limit),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read top ratings")
		return nil, err
	}

	out := make([]Ranked, len(rows))
	for i, r := range rows {
		out[i] = Ranked{Name: r.Name, Rating: r.Rating}
	}
	return out, nil
}

func recordFromRow(row db.Champion) champion.Record {
	return champion.Record{
		Name:     row.Name,
		Faction:  row.Faction,
		Affinity: row.Affinity,
		Rarity:   row.Rarity,
	}
}
