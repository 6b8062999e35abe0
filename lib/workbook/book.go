package workbook

import (
	"fmt"
	"raidchampions/lib/champion"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	ChampionsSheet = "Champions"
	RatingsSheet   = "Ratings"
)

var (
	ChampionsHeader = []string{"Champion_ID", "Name", "Faction", "Affinity", "Rarity"}
	RatingsHeader   = []string{"Champion_ID", "Category", "Battle", "Rating"}
)

type ChampionRow struct {
	ID       int
	Name     string
	Faction  string
	Affinity string
	Rarity   string
}

type RatingRow struct {
	ChampionID int
	Category   string
	Battle     string
	Rating     float64
}

// Book is the two sheet layout shared by every spreadsheet backend.
type Book struct {
	Champions []ChampionRow
	Ratings   []RatingRow
}

func (b Book) find(name string) (ChampionRow, bool) {
	return lo.Find(b.Champions, func(row ChampionRow) bool {
		return strings.EqualFold(row.Name, name)
	})
}

func (b Book) nextID() int {
	if len(b.Champions) == 0 {
		return 1
	}
	return lo.MaxBy(b.Champions, func(a, max ChampionRow) bool {
		return a.ID > max.ID
	}).ID + 1
}

// Upsert replaces the row and every rating of a champion, an existing
// champion (matched without case) keeps its id. The updated champion moves
// to the end of both sheets.
func (b *Book) Upsert(record champion.Record) int {
	id := b.nextID()
	if existing, ok := b.find(record.Name); ok {
		id = existing.ID
	}

	b.Champions = lo.Reject(b.Champions, func(row ChampionRow, _ int) bool {
		return row.ID == id
	})
	b.Champions = append(b.Champions, ChampionRow{
		ID:       id,
		Name:     record.Name,
		Faction:  record.Faction,
		Affinity: record.Affinity,
		Rarity:   record.Rarity,
	})

	b.Ratings = lo.Reject(b.Ratings, func(row RatingRow, _ int) bool {
		return row.ChampionID == id
	})
	for _, r := range record.Rows() {
		b.Ratings = append(b.Ratings, RatingRow{
			ChampionID: id,
			Category:   r.Category,
			Battle:     r.Subcategory,
			Rating:     r.Rating,
		})
	}
	return id
}

func (b Book) Names() []string {
	return lo.Map(b.Champions, func(row ChampionRow, _ int) string {
		return row.Name
	})
}

// Records rebuilds a record per champion row, in sheet order.
func (b Book) Records() []champion.Record {
	ratings := lo.GroupBy(b.Ratings, func(row RatingRow) int {
		return row.ChampionID
	})
	return lo.Map(b.Champions, func(row ChampionRow, _ int) champion.Record {
		rows := lo.Map(ratings[row.ID], func(r RatingRow, _ int) champion.RatingRow {
			return champion.RatingRow{Category: r.Category, Subcategory: r.Battle, Rating: r.Rating}
		})
		return champion.Record{
			Name:     row.Name,
			Faction:  row.Faction,
			Affinity: row.Affinity,
			Rarity:   row.Rarity,
			Ratings:  champion.EntriesFromRows(rows),
		}
	})
}

// ChampionsGrid returns the Champions sheet including its header row.
func (b Book) ChampionsGrid() [][]any {
	grid := [][]any{HeaderRow(ChampionsHeader)}
	for _, row := range b.Champions {
		grid = append(grid, []any{row.ID, row.Name, row.Faction, row.Affinity, row.Rarity})
	}
	return grid
}

// RatingsGrid returns the Ratings sheet including its header row.
func (b Book) RatingsGrid() [][]any {
	grid := [][]any{HeaderRow(RatingsHeader)}
	for _, row := range b.Ratings {
		grid = append(grid, []any{row.ChampionID, row.Category, row.Battle, row.Rating})
	}
	return grid
}

// HeaderRow turns a sheet header into a row of cell values.
func HeaderRow(values []string) []any {
	return lo.Map(values, func(v string, _ int) any { return v })
}

// columns maps header names to their position, so sheets whose columns
// were reordered by hand can still be read.
func columns(header []string, expected []string) (map[string]int, error) {
	index := map[string]int{}
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, e := range expected {
		if _, ok := index[e]; !ok {
			return nil, fmt.Errorf("missing column '%s'", e)
		}
	}
	return index, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	return lo.EveryBy(row, func(c string) bool { return strings.TrimSpace(c) == "" })
}

// FromGrids parses the two sheets as read from a backend. Empty grids are
// valid and produce an empty book, the first row of a non-empty grid is its
// header.
func FromGrids(champions, ratings [][]string) (Book, error) {
	var book Book

	if len(champions) > 0 {
		cols, err := columns(champions[0], ChampionsHeader)
		if err != nil {
			return Book{}, fmt.Errorf("%s: %w", ChampionsSheet, err)
		}
		for i, row := range champions[1:] {
			if isBlank(row) {
				continue
			}
			id, err := strconv.Atoi(cell(row, cols["Champion_ID"]))
			if err != nil {
				return Book{}, fmt.Errorf("%s row %d: invalid id: %w", ChampionsSheet, i+2, err)
			}
			book.Champions = append(book.Champions, ChampionRow{
				ID:       id,
				Name:     cell(row, cols["Name"]),
				Faction:  cell(row, cols["Faction"]),
				Affinity: cell(row, cols["Affinity"]),
				Rarity:   cell(row, cols["Rarity"]),
			})
		}
	}

	if len(ratings) > 0 {
		cols, err := columns(ratings[0], RatingsHeader)
		if err != nil {
			return Book{}, fmt.Errorf("%s: %w", RatingsSheet, err)
		}
		for i, row := range ratings[1:] {
			if isBlank(row) {
				continue
			}
			id, err := strconv.Atoi(cell(row, cols["Champion_ID"]))
			if err != nil {
				return Book{}, fmt.Errorf("%s row %d: invalid id: %w", RatingsSheet, i+2, err)
			}
			rating, err := strconv.ParseFloat(cell(row, cols["Rating"]), 64)
			if err != nil {
				return Book{}, fmt.Errorf("%s row %d: invalid rating: %w", RatingsSheet, i+2, err)
			}
			book.Ratings = append(book.Ratings, RatingRow{
				ChampionID: id,
				Category:   cell(row, cols["Category"]),
				Battle:     cell(row, cols["Battle"]),
				Rating:     rating,
			})
		}
	}

	return book, nil
}
